package dto

type ConfirmHandoverRequestDTO struct {
	PaymentID     string `json:"payment_id" example:"ACC-PAY-2024-00001"`
	TreasurerRFID string `json:"treasurer_rfid" example:"S900"`
	Notes         string `json:"notes,omitempty" example:"counted twice"`
}

type ConfirmHandoverResponseDTO struct {
	Status     string `json:"status" example:"transferred"`
	HandoverID string `json:"handover_id" example:"PH-0001"`
	PaymentID  string `json:"payment_id" example:"ACC-PAY-2024-00001"`
	Message    string `json:"message" example:"Payment successfully transferred to Tess Reyes"`
}

type PaymentSummaryDTO struct {
	PaymentID       string   `json:"payment_id" example:"ACC-PAY-2024-00001"`
	Date            string   `json:"date" example:"2024-05-20"`
	CustomerName    string   `json:"customer_name" example:"Ana Lima"`
	Amount          float64  `json:"amount" example:"400"`
	Currency        string   `json:"currency,omitempty" example:"SRD"`
	ReceivedBy      string   `json:"received_by" example:"Cody Coach"`
	ReceivedByID    string   `json:"received_by_id" example:"coach@gym.sr"`
	ReceivedAt      string   `json:"received_at" example:"2024-05-20T10:00:00Z"`
	ReferenceNo     string   `json:"reference_no" example:"PMT-20240520-4F2A9C"`
	Invoices        []string `json:"invoices"`
	Status          string   `json:"status" example:"pending"`
	HandoverID      string   `json:"handover_id,omitempty" example:"PH-0001"`
	TransferredTo   string   `json:"transferred_to,omitempty" example:"Tess Reyes"`
	TransferredToID string   `json:"transferred_to_id,omitempty" example:"treasurer@gym.sr"`
	TransferredAt   string   `json:"transferred_at,omitempty" example:"2024-05-20T18:00:00Z"`
	HandoverNotes   string   `json:"handover_notes,omitempty"`
}
