package handoverrepo

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/internal/erp"
)

const (
	handoverDoctype   = "Payment Handover"
	statusTransferred = "Transferred"
)

var handoverFields = []string{
	"name", "payment_entry", "received_by", "received_at", "transferred_to",
	"transferred_at", "handover_notes", "status", "docstatus",
}

type handoverDoc struct {
	Name          string   `json:"name"`
	PaymentEntry  string   `json:"payment_entry"`
	ReceivedBy    string   `json:"received_by"`
	ReceivedAt    erp.Time `json:"received_at"`
	TransferredTo string   `json:"transferred_to"`
	TransferredAt erp.Time `json:"transferred_at"`
	HandoverNotes string   `json:"handover_notes"`
	Status        string   `json:"status"`
	Docstatus     int      `json:"docstatus"`
}

func (d handoverDoc) toDomain() domain.HandoverRecord {
	rec := domain.HandoverRecord{
		ID:            d.Name,
		PaymentID:     d.PaymentEntry,
		ReceivedBy:    d.ReceivedBy,
		ReceivedAt:    d.ReceivedAt.Time,
		TransferredTo: d.TransferredTo,
		TransferredAt: d.TransferredAt.Time,
		Notes:         d.HandoverNotes,
		Status:        domain.HandoverPending,
	}
	if d.Docstatus == 1 && d.Status == statusTransferred {
		rec.Status = domain.HandoverTransferred
	}
	return rec
}

type Repository struct {
	erp erp.Gateway
}

func New(gateway erp.Gateway) *Repository {
	return &Repository{
		erp: gateway,
	}
}

// ListSubmitted returns every submitted handover, newest transfer first.
func (r *Repository) ListSubmitted(ctx context.Context) ([]domain.HandoverRecord, error) {
	return r.list(ctx, []erp.Filter{erp.Eq("docstatus", 1)}, 0)
}

// FindByPayment returns the submitted handover of a payment, or nil when there is none.
func (r *Repository) FindByPayment(ctx context.Context, paymentID string) (*domain.HandoverRecord, error) {
	recs, err := r.list(ctx, []erp.Filter{
		erp.Eq("docstatus", 1),
		erp.Eq("payment_entry", paymentID),
	}, 1)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}
	return &recs[0], nil
}

func (r *Repository) list(ctx context.Context, filters []erp.Filter, limit int) ([]domain.HandoverRecord, error) {
	var docs []handoverDoc
	err := r.erp.List(ctx, handoverDoctype, erp.ListQuery{
		Fields:  handoverFields,
		Filters: filters,
		OrderBy: "transferred_at desc",
		Limit:   limit,
	}, &docs)
	if err != nil {
		zap.L().Error("failed to list payment handovers", zap.Error(err))
		return nil, err
	}

	recs := make([]domain.HandoverRecord, 0, len(docs))
	for _, d := range docs {
		recs = append(recs, d.toDomain())
	}
	return recs, nil
}

// CreateDraft inserts rec as a draft handover with status Transferred and returns its name.
func (r *Repository) CreateDraft(ctx context.Context, rec *domain.HandoverRecord) (string, error) {
	doc := map[string]any{
		"doctype":        handoverDoctype,
		"payment_entry":  rec.PaymentID,
		"received_by":    rec.ReceivedBy,
		"received_at":    erp.FormatDateTime(rec.ReceivedAt),
		"transferred_to": rec.TransferredTo,
		"transferred_at": erp.FormatDateTime(rec.TransferredAt),
		"handover_notes": rec.Notes,
		"status":         statusTransferred,
	}

	var created handoverDoc
	if err := r.erp.Insert(ctx, doc, &created); err != nil {
		zap.L().Error("failed to insert payment handover", zap.String("payment", rec.PaymentID), zap.Error(err))
		return "", err
	}
	if created.Name == "" {
		return "", errors.New("insert payment handover: no document name returned")
	}
	return created.Name, nil
}

func (r *Repository) SubmitDraft(ctx context.Context, name string) (*domain.HandoverRecord, error) {
	var submitted handoverDoc
	if err := r.erp.SubmitDoc(ctx, handoverDoctype, name, &submitted); err != nil {
		zap.L().Error("failed to submit payment handover", zap.String("handover", name), zap.Error(err))
		return nil, err
	}
	if submitted.Name == "" {
		submitted.Name = name
	}
	rec := submitted.toDomain()
	return &rec, nil
}

func (r *Repository) DeleteDraft(ctx context.Context, name string) error {
	err := r.erp.Delete(ctx, handoverDoctype, name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
