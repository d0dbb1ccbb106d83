package paymentrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/internal/erp"
)

const (
	paymentEntryDoctype = "Payment Entry"
	salesInvoiceDoctype = "Sales Invoice"
	paymentTypeReceive  = "Receive"
)

var listFields = []string{
	"name", "party", "party_name", "paid_amount", "paid_to_account_currency", "posting_date",
	"reference_no", "remarks", "authorized_by_staff", "authorization_time", "staff_notes",
	"owner", "creation", "docstatus",
}

// Settings are the company-wide accounting defaults stamped on every Payment Entry.
type Settings struct {
	Company           string
	ModeOfPayment     string
	ReceivableAccount string
	CashAccount       string
	Currency          string
}

type referenceDoc struct {
	ReferenceDoctype string     `json:"reference_doctype"`
	ReferenceName    string     `json:"reference_name"`
	AllocatedAmount  erp.Amount `json:"allocated_amount"`
}

type paymentDoc struct {
	Name              string         `json:"name"`
	Party             string         `json:"party"`
	PartyName         string         `json:"party_name"`
	PaidAmount        erp.Amount     `json:"paid_amount"`
	Currency          string         `json:"paid_to_account_currency"`
	PostingDate       erp.Time       `json:"posting_date"`
	ReferenceNo       string         `json:"reference_no"`
	Remarks           string         `json:"remarks"`
	AuthorizedByStaff string         `json:"authorized_by_staff"`
	AuthorizationTime erp.Time       `json:"authorization_time"`
	StaffNotes        string         `json:"staff_notes"`
	Owner             string         `json:"owner"`
	Creation          erp.Time       `json:"creation"`
	Docstatus         int            `json:"docstatus"`
	References        []referenceDoc `json:"references"`
}

func (d paymentDoc) toDomain() *domain.Payment {
	p := &domain.Payment{
		ID:           d.Name,
		Payer:        d.Party,
		PayerName:    d.PartyName,
		Total:        d.PaidAmount.Value,
		Currency:     d.Currency,
		AuthorizedBy: d.AuthorizedByStaff,
		AuthorizedAt: d.AuthorizationTime.Time,
		PostingDate:  d.PostingDate.Time,
		ReferenceNo:  d.ReferenceNo,
		Notes:        d.StaffNotes,
		Owner:        d.Owner,
		Submitted:    d.Docstatus == 1,
		CreatedAt:    d.Creation.Time,
	}
	if p.PayerName == "" {
		p.PayerName = d.Party
	}
	for _, ref := range d.References {
		if ref.ReferenceDoctype != salesInvoiceDoctype {
			continue
		}
		p.Allocations = append(p.Allocations, domain.Allocation{
			InvoiceID: ref.ReferenceName,
			Amount:    ref.AllocatedAmount.Value,
		})
	}
	return p
}

type Repository struct {
	erp      erp.Gateway
	settings Settings
	now      func() time.Time
}

func New(gateway erp.Gateway, settings Settings) *Repository {
	return &Repository{
		erp:      gateway,
		settings: settings,
		now:      time.Now,
	}
}

// ReferenceNo renders a receipt number of the form PMT-YYYYMMDD-XXXXXX.
func ReferenceNo(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("PMT-%s-%s", now.Format("20060102"), suffix)
}

func (r *Repository) draftDoc(p *domain.Payment) map[string]any {
	now := r.now()
	authAt := p.AuthorizedAt
	if authAt.IsZero() {
		authAt = now
	}
	total := p.Total.StringFixed(2)
	currency := p.Currency
	if currency == "" {
		currency = r.settings.Currency
	}

	staffName := p.AuthorizedByName
	if staffName == "" {
		staffName = p.AuthorizedBy
	}
	notes := p.Notes
	if notes == "" {
		notes = "Payment processed by " + staffName
	}
	remarks := fmt.Sprintf("Payment processed by %s on %s\nAmount %s %s received from %s",
		staffName, erp.FormatDateTime(authAt), currency, total, p.PayerName)
	if p.ScannedMember != "" {
		remarks += " for family member " + p.ScannedMember
	}

	refs := make([]map[string]any, 0, len(p.Allocations))
	for _, a := range p.Allocations {
		refs = append(refs, map[string]any{
			"reference_doctype": salesInvoiceDoctype,
			"reference_name":    a.InvoiceID,
			"allocated_amount":  erp.NewAmount(a.Amount),
		})
	}

	referenceNo := p.ReferenceNo
	if referenceNo == "" {
		referenceNo = ReferenceNo(now)
	}
	amount := erp.NewAmount(p.Total)
	return map[string]any{
		"doctype":                    paymentEntryDoctype,
		"payment_type":               paymentTypeReceive,
		"posting_date":               erp.FormatDate(now),
		"company":                    r.settings.Company,
		"mode_of_payment":            r.settings.ModeOfPayment,
		"party_type":                 "Customer",
		"party":                      p.Payer,
		"party_name":                 p.PayerName,
		"paid_from":                  r.settings.ReceivableAccount,
		"paid_from_account_currency": currency,
		"paid_to":                    r.settings.CashAccount,
		"paid_to_account_currency":   currency,
		"paid_amount":                amount,
		"received_amount":            amount,
		"base_paid_amount":           amount,
		"base_received_amount":       amount,
		"source_exchange_rate":       1,
		"target_exchange_rate":       1,
		"reference_no":               referenceNo,
		"reference_date":             erp.FormatDate(now),
		"authorized_by_staff":        p.AuthorizedBy,
		"authorization_time":         erp.FormatDateTime(authAt),
		"staff_notes":                notes,
		"remarks":                    remarks,
		"references":                 refs,
	}
}

// CreateDraft inserts p as a draft Payment Entry and returns the document name.
func (r *Repository) CreateDraft(ctx context.Context, p *domain.Payment) (string, error) {
	var created paymentDoc
	if err := r.erp.Insert(ctx, r.draftDoc(p), &created); err != nil {
		zap.L().Error("failed to insert payment entry", zap.String("payer", p.Payer), zap.Error(err))
		return "", err
	}
	if created.Name == "" {
		return "", errors.New("insert payment entry: no document name returned")
	}
	return created.Name, nil
}

// SubmitDraft finalizes a draft Payment Entry and returns the submitted document.
func (r *Repository) SubmitDraft(ctx context.Context, name string) (*domain.Payment, error) {
	var submitted paymentDoc
	if err := r.erp.SubmitDoc(ctx, paymentEntryDoctype, name, &submitted); err != nil {
		zap.L().Error("failed to submit payment entry", zap.String("payment", name), zap.Error(err))
		return nil, err
	}
	if submitted.Name == "" {
		submitted.Name = name
	}
	return submitted.toDomain(), nil
}

// DeleteDraft removes a draft Payment Entry. Deleting an absent draft is not an error.
func (r *Repository) DeleteDraft(ctx context.Context, name string) error {
	err := r.erp.Delete(ctx, paymentEntryDoctype, name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

// Get loads a Payment Entry with its invoice references. A missing entry yields nil, nil.
func (r *Repository) Get(ctx context.Context, name string) (*domain.Payment, error) {
	var doc paymentDoc
	err := r.erp.Get(ctx, paymentEntryDoctype, name, &doc)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		zap.L().Error("failed to get payment entry", zap.String("payment", name), zap.Error(err))
		return nil, err
	}
	if doc.Name == "" {
		return nil, nil
	}
	return doc.toDomain(), nil
}

// ListReceived lists submitted Receive payments, newest first. Invoice references are not
// included; callers that need them load each payment with Get.
func (r *Repository) ListReceived(ctx context.Context, f domain.PaymentFilter) ([]domain.Payment, error) {
	filters := []erp.Filter{
		erp.Eq("docstatus", 1),
		erp.Eq("payment_type", paymentTypeReceive),
	}
	if !f.Since.IsZero() {
		filters = append(filters, erp.Where("posting_date", ">=", erp.FormatDate(f.Since)))
	}
	if len(f.Names) > 0 {
		filters = append(filters, erp.Where("name", "in", f.Names))
	}

	var docs []paymentDoc
	err := r.erp.List(ctx, paymentEntryDoctype, erp.ListQuery{
		Fields:  listFields,
		Filters: filters,
		OrderBy: "creation desc",
	}, &docs)
	if err != nil {
		zap.L().Error("failed to list payment entries", zap.Error(err))
		return nil, err
	}

	payments := make([]domain.Payment, 0, len(docs))
	for _, d := range docs {
		payments = append(payments, *d.toDomain())
	}
	return payments, nil
}

