package invoiceservice

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/frontdesk/internal/domain"
)

//go:generate mockgen -source=invoiceservice.go -destination=mock_invoiceservice.go -package=invoiceservice
type Repo interface {
	Outstanding(ctx context.Context, customer string) ([]domain.Invoice, error)
}

type Service struct {
	repo Repo
	now  func() time.Time
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Outstanding returns the payable invoices of payerID ordered by due date. Invoices whose
// outstanding amount is not positive are dropped.
func (s *Service) Outstanding(ctx context.Context, payerID string) ([]domain.Invoice, error) {
	if payerID == "" {
		return nil, domain.ErrPayerNotFound
	}
	invoices, err := s.repo.Outstanding(ctx, payerID)
	if err != nil {
		return nil, err
	}
	return payable(invoices), nil
}

func payable(invoices []domain.Invoice) []domain.Invoice {
	out := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Outstanding.IsPositive() {
			out = append(out, inv)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].DueDate, out[j].DueDate
		if a.IsZero() != b.IsZero() {
			return b.IsZero()
		}
		return a.Before(b)
	})
	return out
}

// Overview splits every outstanding invoice into overdue and not yet due, relative to today.
func (s *Service) Overview(ctx context.Context) (*domain.InvoiceOverview, error) {
	invoices, err := s.repo.Outstanding(ctx, "")
	if err != nil {
		return nil, err
	}

	today := startOfDay(s.now())
	ov := &domain.InvoiceOverview{
		Overdue:      []domain.InvoiceOverviewItem{},
		Unpaid:       []domain.InvoiceOverviewItem{},
		OverdueTotal: decimal.Zero,
		UnpaidTotal:  decimal.Zero,
	}
	for _, inv := range payable(invoices) {
		item := domain.InvoiceOverviewItem{Invoice: inv}
		if !inv.DueDate.IsZero() && inv.DueDate.Before(today) {
			item.Overdue = true
			item.DaysOverdue = daysBetween(inv.DueDate, today)
			ov.Overdue = append(ov.Overdue, item)
			ov.OverdueTotal = ov.OverdueTotal.Add(inv.Outstanding)
			continue
		}
		if !inv.DueDate.IsZero() {
			item.DaysUntilDue = daysBetween(today, inv.DueDate)
		}
		ov.Unpaid = append(ov.Unpaid, item)
		ov.UnpaidTotal = ov.UnpaidTotal.Add(inv.Outstanding)
	}

	sort.SliceStable(ov.Overdue, func(i, j int) bool {
		return ov.Overdue[i].DaysOverdue > ov.Overdue[j].DaysOverdue
	})
	sort.SliceStable(ov.Unpaid, func(i, j int) bool {
		return ov.Unpaid[i].DaysUntilDue < ov.Unpaid[j].DaysUntilDue
	})
	ov.Total = ov.OverdueTotal.Add(ov.UnpaidTotal)
	return ov, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	return int(math.Round(startOfDay(to).Sub(startOfDay(from)).Hours() / 24))
}
