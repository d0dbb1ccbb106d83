package invoicerepo

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/internal/erp"
)

const salesInvoiceDoctype = "Sales Invoice"

var invoiceFields = []string{
	"name", "customer", "customer_name", "posting_date", "due_date",
	"grand_total", "outstanding_amount", "status", "subscription", "from_date", "to_date",
}

type invoiceDoc struct {
	Name              string     `json:"name"`
	Customer          string     `json:"customer"`
	CustomerName      string     `json:"customer_name"`
	PostingDate       erp.Time   `json:"posting_date"`
	DueDate           erp.Time   `json:"due_date"`
	GrandTotal        erp.Amount `json:"grand_total"`
	OutstandingAmount erp.Amount `json:"outstanding_amount"`
	Status            string     `json:"status"`
	Subscription      string     `json:"subscription"`
	FromDate          erp.Time   `json:"from_date"`
	ToDate            erp.Time   `json:"to_date"`
}

// toDomain keeps 0 <= Outstanding <= Total. An unreadable grand_total takes the
// outstanding amount, so the invoice stays payable up to what ERP says is owed.
func (d invoiceDoc) toDomain() domain.Invoice {
	total, outstanding := d.GrandTotal.Value, d.OutstandingAmount.Value
	if !d.OutstandingAmount.Valid {
		zap.L().Warn("invalid outstanding_amount treated as zero",
			zap.String("invoice", d.Name), zap.String("raw", d.OutstandingAmount.Raw))
	}
	if outstanding.IsNegative() {
		zap.L().Warn("negative outstanding_amount clamped to zero",
			zap.String("invoice", d.Name), zap.String("outstanding", outstanding.String()))
		outstanding = decimal.Zero
	}
	if !d.GrandTotal.Valid {
		zap.L().Warn("invalid grand_total replaced by outstanding_amount",
			zap.String("invoice", d.Name), zap.String("raw", d.GrandTotal.Raw))
		total = outstanding
	}
	if outstanding.GreaterThan(total) {
		zap.L().Warn("outstanding_amount above grand_total clamped",
			zap.String("invoice", d.Name),
			zap.String("outstanding", outstanding.String()), zap.String("total", total.String()))
		outstanding = total
	}

	return domain.Invoice{
		ID:           d.Name,
		Customer:     d.Customer,
		CustomerName: d.CustomerName,
		PostingDate:  d.PostingDate.Time,
		DueDate:      d.DueDate.Time,
		Total:        total,
		Outstanding:  outstanding,
		Status:       d.Status,
		Subscription: d.Subscription,
		PeriodFrom:   d.FromDate.Time,
		PeriodTo:     d.ToDate.Time,
	}
}

type Repository struct {
	erp erp.Gateway
}

func New(gateway erp.Gateway) *Repository {
	return &Repository{
		erp: gateway,
	}
}

// Outstanding lists submitted unpaid or overdue invoices ordered by due date. An empty
// customer lists them for every customer.
func (r *Repository) Outstanding(ctx context.Context, customer string) ([]domain.Invoice, error) {
	filters := []erp.Filter{
		erp.Eq("docstatus", 1),
		erp.Where("status", "in", []string{"Unpaid", "Overdue"}),
		erp.Where("outstanding_amount", ">", 0),
	}
	if customer != "" {
		filters = append(filters, erp.Eq("customer", customer))
	}

	var docs []invoiceDoc
	err := r.erp.List(ctx, salesInvoiceDoctype, erp.ListQuery{
		Fields:  invoiceFields,
		Filters: filters,
		OrderBy: "due_date asc",
	}, &docs)
	if err != nil {
		zap.L().Error("failed to list outstanding invoices", zap.String("customer", customer), zap.Error(err))
		return nil, err
	}

	invoices := make([]domain.Invoice, 0, len(docs))
	for _, d := range docs {
		invoices = append(invoices, d.toDomain())
	}
	return invoices, nil
}
