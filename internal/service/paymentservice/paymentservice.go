package paymentservice

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/pkg/metrics"
)

const (
	defaultAttemptsLimit = 50
	maxAttemptsLimit     = 500
)

// amountTolerance is the largest accepted gap between the declared total and the sum of
// the per-invoice amounts.
var amountTolerance = decimal.New(1, -2)

//go:generate mockgen -source=paymentservice.go -destination=mock_paymentservice.go -package=paymentservice
type Directory interface {
	ResolveBillingContext(ctx context.Context, tag string) (*domain.BillingContext, error)
}

type Invoices interface {
	Outstanding(ctx context.Context, payerID string) ([]domain.Invoice, error)
}

type Staff interface {
	AuthorizeMoneyHandling(ctx context.Context, rfid string) (*domain.Staff, error)
}

type Sessions interface {
	Create(s domain.PaymentSession) domain.PaymentSession
	Get(id string) (domain.PaymentSession, bool)
	Delete(id string)
	Lock(id string) func()
}

type PaymentRepo interface {
	CreateDraft(ctx context.Context, p *domain.Payment) (string, error)
	SubmitDraft(ctx context.Context, name string) (*domain.Payment, error)
	DeleteDraft(ctx context.Context, name string) error
	Get(ctx context.Context, name string) (*domain.Payment, error)
}

type Journal interface {
	Create(ctx context.Context, a *domain.PaymentAttempt) (int, error)
	UpdateStatus(ctx context.Context, id int, status, draftName, errMsg string) error
	FindByStatus(ctx context.Context, status string, limit int) ([]domain.PaymentAttempt, error)
}

type Service struct {
	directory Directory
	invoices  Invoices
	staff     Staff
	sessions  Sessions
	payments  PaymentRepo
	journal   Journal
	currency  string
	metrics   *metrics.Metrics
}

func New(directory Directory, invoices Invoices, staff Staff, sessions Sessions,
	payments PaymentRepo, journal Journal, currency string, m *metrics.Metrics) *Service {
	return &Service{
		directory: directory,
		invoices:  invoices,
		staff:     staff,
		sessions:  sessions,
		payments:  payments,
		journal:   journal,
		currency:  currency,
		metrics:   m,
	}
}

// Begin resolves a scanned card, loads the payer's outstanding invoices and opens a session.
func (s *Service) Begin(ctx context.Context, rfid string) (*domain.PaymentSession, error) {
	bc, err := s.directory.ResolveBillingContext(ctx, rfid)
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoices.Outstanding(ctx, bc.Payer.ID)
	if err != nil {
		return nil, err
	}

	sess := s.sessions.Create(domain.PaymentSession{
		Payer:         bc.Payer,
		ScannedMember: bc.Scanned,
		FamilyGroup:   bc.FamilyGroup,
		Invoices:      invoices,
	})
	zap.L().Info("payment session opened",
		zap.String("session", sess.ID), zap.String("payer", sess.Payer.ID),
		zap.String("customer_type", bc.CustomerType()), zap.Int("invoices", len(invoices)))
	return &sess, nil
}

func (s *Service) GetSession(_ context.Context, id string) (*domain.PaymentSession, error) {
	sess, ok := s.sessions.Get(id)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

// EndSession abandons a session. Ending an unknown session is not an error.
func (s *Service) EndSession(_ context.Context, id string) {
	s.sessions.Delete(id)
}

// AuthorizeStaff checks a staff card ahead of submission. Nothing is committed.
func (s *Service) AuthorizeStaff(ctx context.Context, rfid string) (*domain.Staff, error) {
	return s.staff.AuthorizeMoneyHandling(ctx, rfid)
}

// Submit records a cash payment against the invoices of a session. Validation happens
// locally before the ERP is touched; the staff card is re-verified; the Payment Entry is
// inserted as a draft and then submitted, and a draft that fails to submit is deleted.
// The session is consumed on success only.
func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.Payment, error) {
	unlock := s.sessions.Lock(req.SessionID)
	defer unlock()

	sess, ok := s.sessions.Get(req.SessionID)
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	allocs, total, err := buildAllocations(&sess, req)
	if err != nil {
		zap.L().Info("payment rejected", zap.String("session", sess.ID), zap.Error(err))
		s.metrics.PaymentFailed("rejected")
		return nil, err
	}

	staff, err := s.staff.AuthorizeMoneyHandling(ctx, req.StaffRFID)
	if err != nil {
		s.metrics.PaymentFailed("unauthorized")
		return nil, err
	}

	payment := &domain.Payment{
		Payer:            sess.Payer.ID,
		PayerName:        sess.Payer.Name,
		Total:            total,
		Currency:         s.currency,
		Allocations:      allocs,
		AuthorizedBy:     staff.UserID,
		AuthorizedByName: staff.FullName,
		Notes:            strings.TrimSpace(req.Notes),
	}
	if sess.ScannedMember.ID != sess.Payer.ID {
		payment.ScannedMember = sess.ScannedMember.Name
	}

	submitted, err := s.record(ctx, sess.ID, payment)
	if err != nil {
		s.metrics.PaymentFailed("failed")
		return nil, err
	}

	s.sessions.Delete(sess.ID)
	s.metrics.PaymentSubmitted(total)
	zap.L().Info("payment submitted",
		zap.String("payment", submitted.ID), zap.String("payer", submitted.Payer),
		zap.String("amount", total.StringFixed(2)), zap.String("staff", staff.UserID))
	return submitted, nil
}

// record writes the payment to the ERP and journals every step. Cleanup runs detached from
// the request context so an abandoned request still removes its draft.
func (s *Service) record(ctx context.Context, sessionID string, p *domain.Payment) (*domain.Payment, error) {
	attemptID := s.openAttempt(ctx, sessionID, p)

	draft, err := s.payments.CreateDraft(ctx, p)
	if err != nil {
		s.markAttempt(ctx, attemptID, domain.AttemptRolledBack, "", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}
	s.markAttempt(ctx, attemptID, domain.AttemptDraft, draft, nil)

	submitted, err := s.payments.SubmitDraft(ctx, draft)
	if err != nil {
		cleanup := context.WithoutCancel(ctx)
		status := domain.AttemptRolledBack
		if derr := s.payments.DeleteDraft(cleanup, draft); derr != nil {
			zap.L().Error("failed to delete unsubmitted payment draft",
				zap.String("draft", draft), zap.Error(derr))
			status = domain.AttemptOrphaned
		}
		s.markAttempt(cleanup, attemptID, status, draft, err)
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}
	s.markAttempt(ctx, attemptID, domain.AttemptSubmitted, submitted.ID, nil)

	if submitted.AuthorizedByName == "" {
		submitted.AuthorizedByName = p.AuthorizedByName
	}
	if submitted.Currency == "" {
		submitted.Currency = p.Currency
	}
	if len(submitted.Allocations) == 0 {
		submitted.Allocations = p.Allocations
	}
	return submitted, nil
}

func (s *Service) openAttempt(ctx context.Context, sessionID string, p *domain.Payment) int {
	id, err := s.journal.Create(ctx, &domain.PaymentAttempt{
		SessionID: sessionID,
		Payer:     p.Payer,
		Amount:    p.Total.InexactFloat64(),
		Currency:  p.Currency,
		StaffUser: p.AuthorizedBy,
		Status:    domain.AttemptPending,
	})
	if err != nil {
		zap.L().Warn("can't journal payment attempt", zap.String("session", sessionID), zap.Error(err))
		return 0
	}
	return id
}

func (s *Service) markAttempt(ctx context.Context, id int, status, draft string, cause error) {
	if id == 0 {
		return
	}
	var msg string
	if cause != nil {
		msg = cause.Error()
	}
	if err := s.journal.UpdateStatus(ctx, id, status, draft, msg); err != nil {
		zap.L().Warn("can't update payment attempt",
			zap.Int("attempt", id), zap.String("status", status), zap.Error(err))
	}
}

// buildAllocations turns a request into per-invoice allocations and checks them against the
// session. It never calls the ERP.
func buildAllocations(sess *domain.PaymentSession, req domain.SubmitRequest) ([]domain.Allocation, decimal.Decimal, error) {
	ids := req.InvoiceIDs
	if len(ids) == 0 {
		ids = make([]string, 0, len(req.Amounts))
		for id := range req.Amounts {
			ids = append(ids, id)
		}
		sort.Strings(ids)
	}

	seen := make(map[string]struct{}, len(ids))
	allocs := make([]domain.Allocation, 0, len(ids))
	sum := decimal.Zero
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		amount, ok := req.Amounts[id]
		if !ok {
			return nil, decimal.Zero, fmt.Errorf("%w: no amount for invoice %s", domain.ErrInvalidAllocation, id)
		}
		if amount.IsNegative() {
			return nil, decimal.Zero, fmt.Errorf("%w: negative amount for invoice %s", domain.ErrInvalidAllocation, id)
		}
		if amount.IsZero() {
			continue
		}
		allocs = append(allocs, domain.Allocation{InvoiceID: id, Amount: amount})
		sum = sum.Add(amount)
	}
	if len(allocs) == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: no invoice selected", domain.ErrInvalidAllocation)
	}
	if sum.Sub(req.Total).Abs().GreaterThan(amountTolerance) {
		return nil, decimal.Zero, fmt.Errorf("%w: %s != %s", domain.ErrAmountMismatch, sum.StringFixed(2), req.Total.StringFixed(2))
	}

	for _, a := range allocs {
		inv, ok := sess.Invoice(a.InvoiceID)
		if !ok || (inv.Customer != "" && inv.Customer != sess.Payer.ID) {
			return nil, decimal.Zero, fmt.Errorf("%w: %s", domain.ErrUnauthorizedInvoice, a.InvoiceID)
		}
		if a.Amount.GreaterThan(inv.Outstanding) {
			return nil, decimal.Zero, fmt.Errorf("%w: %s exceeds outstanding %s of %s",
				domain.ErrInvalidAllocation, a.Amount.StringFixed(2), inv.Outstanding.StringFixed(2), inv.ID)
		}
	}
	return allocs, sum, nil
}

// GetPayment loads a recorded payment.
func (s *Service) GetPayment(ctx context.Context, id string) (*domain.Payment, error) {
	p, err := s.payments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrPaymentNotFound
	}
	return p, nil
}

// Attempts lists journaled submissions, optionally filtered by status.
func (s *Service) Attempts(ctx context.Context, status string, limit int) ([]domain.PaymentAttempt, error) {
	if limit <= 0 {
		limit = defaultAttemptsLimit
	}
	if limit > maxAttemptsLimit {
		limit = maxAttemptsLimit
	}
	attempts, err := s.journal.FindByStatus(ctx, status, limit)
	if err != nil {
		return nil, err
	}
	if attempts == nil {
		attempts = []domain.PaymentAttempt{}
	}
	return attempts, nil
}
