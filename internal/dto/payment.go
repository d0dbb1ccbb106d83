package dto

import "github.com/shopspring/decimal"

type ScanRequestDTO struct {
	RFID string `json:"rfid" example:"A123"`
}

type PayerDTO struct {
	ID    string `json:"id" example:"CUST-00042"`
	Name  string `json:"name" example:"Ana Lima"`
	Email string `json:"email,omitempty" example:"ana@example.com"`
	Phone string `json:"phone,omitempty" example:"+597 812 3456"`
}

type FamilyGroupDTO struct {
	ID           string   `json:"id" example:"FG-0007"`
	PrimaryPayer string   `json:"primary_payer" example:"CUST-00042"`
	PackageType  string   `json:"package_type,omitempty" example:"Family of 3"`
	Members      []string `json:"members"`
}

type InvoiceDTO struct {
	InvoiceID   string  `json:"invoice_id" example:"ACC-SINV-2024-00001"`
	Customer    string  `json:"customer" example:"CUST-00042"`
	PostingDate string  `json:"posting_date" example:"2024-05-01"`
	DueDate     string  `json:"due_date" example:"2024-05-15"`
	Total       float64 `json:"grand_total" example:"400"`
	Outstanding float64 `json:"outstanding_amount" example:"400"`
	Status      string  `json:"status" example:"Unpaid"`
	Description string  `json:"description" example:"Monthly Subscription - SUB-0001 (2024-05-01 to 2024-05-31)"`
}

type ScanResponseDTO struct {
	Status        string          `json:"status" example:"success"`
	SessionID     string          `json:"session_id" example:"5f0c1c9e-7a43-4c1f-9d59-2f3f1b0c6b1a"`
	CustomerType  string          `json:"customer_type" example:"individual"`
	ScannedMember PayerDTO        `json:"scanned_member"`
	Payer         PayerDTO        `json:"payer"`
	FamilyGroup   *FamilyGroupDTO `json:"family_group,omitempty"`
	Invoices      []InvoiceDTO    `json:"invoices"`
}

type SessionResponseDTO struct {
	SessionID     string          `json:"session_id" example:"5f0c1c9e-7a43-4c1f-9d59-2f3f1b0c6b1a"`
	Payer         PayerDTO        `json:"payer"`
	ScannedMember PayerDTO        `json:"scanned_member"`
	FamilyGroup   *FamilyGroupDTO `json:"family_group,omitempty"`
	Invoices      []InvoiceDTO    `json:"invoices"`
	CreatedAt     string          `json:"created_at" example:"2024-05-20T10:00:00Z"`
}

type AuthorizeStaffRequestDTO struct {
	StaffRFID string `json:"staff_rfid" example:"S900"`
}

type AuthorizeStaffResponseDTO struct {
	Status     string   `json:"status" example:"success"`
	Authorized bool     `json:"authorized" example:"true"`
	StaffName  string   `json:"staff_name" example:"Tess Reyes"`
	Roles      []string `json:"roles"`
}

type StaffRejectedDTO struct {
	Verified bool   `json:"verified" example:"false"`
	Error    string `json:"error" example:"user does not have required roles"`
}

type ProcessPaymentRequestDTO struct {
	SessionID      string                     `json:"session_id" example:"5f0c1c9e-7a43-4c1f-9d59-2f3f1b0c6b1a"`
	Invoices       []string                   `json:"invoices"`
	InvoiceAmounts map[string]decimal.Decimal `json:"invoice_amounts" swaggertype:"object,number"`
	TotalAmount    decimal.Decimal            `json:"total_amount" swaggertype:"number" example:"400"`
	StaffRFID      string                     `json:"staff_rfid" example:"S900"`
	Notes          string                     `json:"notes,omitempty" example:"paid at the front desk"`
}

type ProcessPaymentResponseDTO struct {
	Status    string  `json:"status" example:"success"`
	PaymentID string  `json:"payment_id" example:"ACC-PAY-2024-00001"`
	Amount    float64 `json:"amount" example:"400"`
	Currency  string  `json:"currency" example:"SRD"`
}

type AllocationDTO struct {
	InvoiceID string  `json:"invoice_id" example:"ACC-SINV-2024-00001"`
	Amount    float64 `json:"amount" example:"400"`
}

type PaymentDetailsDTO struct {
	PaymentID    string          `json:"payment_id" example:"ACC-PAY-2024-00001"`
	Customer     string          `json:"customer" example:"CUST-00042"`
	CustomerName string          `json:"customer_name" example:"Ana Lima"`
	Amount       float64         `json:"amount" example:"400"`
	Currency     string          `json:"currency" example:"SRD"`
	Date         string          `json:"date" example:"2024-05-20"`
	ReferenceNo  string          `json:"reference_no" example:"PMT-20240520-4F2A9C"`
	AuthorizedBy string          `json:"authorized_by" example:"coach@gym.sr"`
	Notes        string          `json:"notes,omitempty"`
	Submitted    bool            `json:"submitted" example:"true"`
	Allocations  []AllocationDTO `json:"allocations"`
}

type PaymentAttemptDTO struct {
	ID        int     `json:"id" example:"17"`
	SessionID string  `json:"session_id"`
	Payer     string  `json:"payer" example:"CUST-00042"`
	Amount    float64 `json:"amount" example:"400"`
	Currency  string  `json:"currency" example:"SRD"`
	StaffUser string  `json:"staff_user" example:"coach@gym.sr"`
	DraftName string  `json:"draft_name,omitempty" example:"ACC-PAY-2024-00001"`
	Status    string  `json:"status" example:"orphaned"`
	Error     string  `json:"error,omitempty"`
	CreatedAt string  `json:"created_at" example:"2024-05-20T10:00:00Z"`
	UpdatedAt string  `json:"updated_at" example:"2024-05-20T10:00:02Z"`
}
