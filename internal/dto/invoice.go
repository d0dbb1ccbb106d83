package dto

type OverviewInvoiceDTO struct {
	InvoiceID    string  `json:"invoice_id" example:"ACC-SINV-2024-00001"`
	Customer     string  `json:"customer" example:"CUST-00042"`
	CustomerName string  `json:"customer_name" example:"Ana Lima"`
	DueDate      string  `json:"due_date" example:"2024-05-15"`
	Total        float64 `json:"grand_total" example:"400"`
	Outstanding  float64 `json:"outstanding_amount" example:"400"`
	Status       string  `json:"status" example:"Overdue"`
	Description  string  `json:"description"`
	DaysOverdue  int     `json:"days_overdue,omitempty" example:"5"`
	DaysUntilDue int     `json:"days_until_due,omitempty" example:"3"`
}

type OverviewTotalsDTO struct {
	Overdue float64 `json:"overdue" example:"800"`
	Unpaid  float64 `json:"unpaid" example:"400"`
	Total   float64 `json:"total" example:"1200"`
}

type InvoiceOverviewResponseDTO struct {
	Overdue []OverviewInvoiceDTO `json:"overdue"`
	Unpaid  []OverviewInvoiceDTO `json:"unpaid"`
	Totals  OverviewTotalsDTO    `json:"totals"`
}
