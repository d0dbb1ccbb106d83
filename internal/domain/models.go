package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	RFID  string `json:"-"`
}

type FamilyGroup struct {
	ID           string   `json:"id"`
	PrimaryPayer string   `json:"primary_payer"`
	PackageType  string   `json:"package_type,omitempty"`
	Members      []string `json:"members"`
}

// IsPrimary reports whether payerID is the group's primary payer.
func (g *FamilyGroup) IsPrimary(payerID string) bool {
	return g != nil && g.PrimaryPayer == payerID
}

// Contains reports whether payerID is the primary payer or a listed member.
func (g *FamilyGroup) Contains(payerID string) bool {
	if g == nil {
		return false
	}
	if g.PrimaryPayer == payerID {
		return true
	}
	for _, m := range g.Members {
		if m == payerID {
			return true
		}
	}
	return false
}

type Invoice struct {
	ID           string
	Customer     string
	CustomerName string
	PostingDate  time.Time
	DueDate      time.Time
	Total        decimal.Decimal
	Outstanding  decimal.Decimal
	Status       string
	Subscription string
	PeriodFrom   time.Time
	PeriodTo     time.Time
}

// Description renders the line shown on the kiosk for the invoice.
func (i Invoice) Description() string {
	desc := "Monthly Subscription"
	if i.Subscription != "" {
		desc += " - " + i.Subscription
	}
	if !i.PeriodFrom.IsZero() && !i.PeriodTo.IsZero() {
		desc += " (" + i.PeriodFrom.Format(time.DateOnly) + " to " + i.PeriodTo.Format(time.DateOnly) + ")"
	}
	return desc
}

// BillingContext is the outcome of resolving a scanned card: who was scanned and who pays.
type BillingContext struct {
	Scanned     Payer
	Payer       Payer
	FamilyGroup *FamilyGroup
}

// IsDependent reports whether the scanned member bills to somebody else.
func (b BillingContext) IsDependent() bool {
	return b.Scanned.ID != b.Payer.ID
}

const (
	CustomerTypeIndividual   = "individual"
	CustomerTypeFamilyMember = "family_member"
	CustomerTypePrimaryPayer = "primary_payer"
)

func (b BillingContext) CustomerType() string {
	switch {
	case b.FamilyGroup == nil:
		return CustomerTypeIndividual
	case b.IsDependent():
		return CustomerTypeFamilyMember
	default:
		return CustomerTypePrimaryPayer
	}
}

type PaymentSession struct {
	ID            string
	Payer         Payer
	ScannedMember Payer
	FamilyGroup   *FamilyGroup
	Invoices      []Invoice
	CreatedAt     time.Time
}

// Invoice looks up a candidate invoice of the session by id.
func (s *PaymentSession) Invoice(id string) (Invoice, bool) {
	for _, inv := range s.Invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return Invoice{}, false
}

type Staff struct {
	UserID   string
	FullName string
	Enabled  bool
	Roles    []string
}

// HasAnyRole reports whether the staff member holds at least one of roles.
func (s *Staff) HasAnyRole(roles []string) bool {
	for _, have := range s.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

type Allocation struct {
	InvoiceID string
	Amount    decimal.Decimal
}

type Payment struct {
	ID               string
	Payer            string
	PayerName        string
	ScannedMember    string
	Total            decimal.Decimal
	Currency         string
	Allocations      []Allocation
	AuthorizedBy     string
	AuthorizedByName string
	AuthorizedAt     time.Time
	PostingDate      time.Time
	ReferenceNo      string
	Notes            string
	Owner            string
	Submitted        bool
	CreatedAt        time.Time
}

// Collector is the staff user that took the money in.
func (p *Payment) Collector() string {
	if p.AuthorizedBy != "" {
		return p.AuthorizedBy
	}
	return p.Owner
}

// PaymentFilter narrows a payment listing. Zero values disable the corresponding filter.
type PaymentFilter struct {
	Since time.Time
	Names []string
}

// SubmitRequest carries a kiosk's process-payment call into the capture engine.
type SubmitRequest struct {
	SessionID  string
	StaffRFID  string
	InvoiceIDs []string
	Amounts    map[string]decimal.Decimal
	Total      decimal.Decimal
	Notes      string
}

type HandoverStatus string

const (
	HandoverPending     HandoverStatus = "pending"
	HandoverTransferred HandoverStatus = "transferred"
)

type HandoverRecord struct {
	ID            string
	PaymentID     string
	ReceivedBy    string
	ReceivedAt    time.Time
	TransferredTo string
	TransferredAt time.Time
	Notes         string
	Status        HandoverStatus

	// TransferredToName is the treasurer's display name. Only Confirm fills it.
	TransferredToName string
}

// PaymentView is a payment enriched for the custody ledger screens.
type PaymentView struct {
	Payment           Payment
	InvoiceIDs        []string
	ReceivedByName    string
	TransferredToName string
	Handover          *HandoverRecord
	Status            HandoverStatus
}

const (
	AttemptPending    = "pending"
	AttemptDraft      = "draft"
	AttemptSubmitted  = "submitted"
	AttemptRolledBack = "rolled_back"
	AttemptOrphaned   = "orphaned"
	AttemptReconciled = "reconciled"
)

type PaymentAttempt struct {
	ID        int       `db:"id"`
	SessionID string    `db:"session_id"`
	Payer     string    `db:"payer"`
	Amount    float64   `db:"amount"`
	Currency  string    `db:"currency"`
	StaffUser string    `db:"staff_user"`
	DraftName string    `db:"draft_name"`
	Status    string    `db:"status"`
	Error     string    `db:"error"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type InvoiceOverviewItem struct {
	Invoice      Invoice
	Overdue      bool
	DaysOverdue  int
	DaysUntilDue int
}

type InvoiceOverview struct {
	Overdue      []InvoiceOverviewItem
	Unpaid       []InvoiceOverviewItem
	OverdueTotal decimal.Decimal
	UnpaidTotal  decimal.Decimal
	Total        decimal.Decimal
}
