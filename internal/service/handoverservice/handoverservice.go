package handoverservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/pkg/keymutex"
	"github.com/GlebRadaev/frontdesk/pkg/metrics"
)

const (
	DefaultHistoryDays = 30
	MaxHistoryDays     = 366

	enrichConcurrency = 8
	unknownName       = "Unknown"
)

var ErrInvalidDays = fmt.Errorf("days must be between 1 and %d", MaxHistoryDays)

//go:generate mockgen -source=handoverservice.go -destination=mock_handoverservice.go -package=handoverservice
type PaymentRepo interface {
	Get(ctx context.Context, name string) (*domain.Payment, error)
	ListReceived(ctx context.Context, f domain.PaymentFilter) ([]domain.Payment, error)
}

type HandoverRepo interface {
	ListSubmitted(ctx context.Context) ([]domain.HandoverRecord, error)
	FindByPayment(ctx context.Context, paymentID string) (*domain.HandoverRecord, error)
	CreateDraft(ctx context.Context, rec *domain.HandoverRecord) (string, error)
	SubmitDraft(ctx context.Context, name string) (*domain.HandoverRecord, error)
	DeleteDraft(ctx context.Context, name string) error
}

type Users interface {
	FullName(ctx context.Context, userID string) (string, error)
}

type Staff interface {
	AuthorizeCustody(ctx context.Context, rfid string) (*domain.Staff, error)
}

type Service struct {
	payments  PaymentRepo
	handovers HandoverRepo
	users     Users
	staff     Staff
	locks     *keymutex.KeyMutex
	metrics   *metrics.Metrics
	now       func() time.Time
}

func New(payments PaymentRepo, handovers HandoverRepo, users Users, staff Staff, m *metrics.Metrics) *Service {
	return &Service{
		payments:  payments,
		handovers: handovers,
		users:     users,
		staff:     staff,
		locks:     keymutex.New(),
		metrics:   m,
		now:       time.Now,
	}
}

// ListPending returns submitted cash receipts that no submitted handover covers yet, newest first.
func (s *Service) ListPending(ctx context.Context) ([]domain.PaymentView, error) {
	recs, err := s.handovers.ListSubmitted(ctx)
	if err != nil {
		return nil, err
	}
	handed := make(map[string]struct{}, len(recs))
	for _, rec := range recs {
		if rec.PaymentID != "" {
			handed[rec.PaymentID] = struct{}{}
		}
	}

	// Handed-over payments are filtered here: a "not in" filter over every handover would
	// grow the query string without bound.
	payments, err := s.payments.ListReceived(ctx, domain.PaymentFilter{})
	if err != nil {
		return nil, err
	}

	views := make([]domain.PaymentView, 0, len(payments))
	for _, p := range payments {
		if _, ok := handed[p.ID]; ok {
			continue
		}
		views = append(views, domain.PaymentView{Payment: p, Status: domain.HandoverPending})
	}
	s.enrich(ctx, views, true)
	return views, nil
}

// Confirm records that the cash of paymentID moved from its collector to the holder of
// treasurerRFID. A payment is handed over at most once.
func (s *Service) Confirm(ctx context.Context, paymentID, treasurerRFID, notes string) (*domain.HandoverRecord, error) {
	treasurer, err := s.staff.AuthorizeCustody(ctx, treasurerRFID)
	if err != nil {
		s.metrics.Handover("unauthorized")
		return nil, err
	}

	unlock := s.locks.Lock(paymentID)
	defer unlock()

	payment, err := s.payments.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil || !payment.Submitted {
		return nil, domain.ErrPaymentNotFound
	}

	existing, err := s.handovers.FindByPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.metrics.Handover("duplicate")
		zap.L().Info("payment already handed over",
			zap.String("payment", paymentID), zap.String("handover", existing.ID))
		return nil, domain.ErrAlreadyTransferred
	}

	rec := &domain.HandoverRecord{
		PaymentID:     paymentID,
		ReceivedBy:    payment.Collector(),
		ReceivedAt:    payment.CreatedAt,
		TransferredTo: treasurer.UserID,
		TransferredAt: s.now(),
		Notes:         strings.TrimSpace(notes),
		Status:        domain.HandoverTransferred,
	}

	name, err := s.handovers.CreateDraft(ctx, rec)
	if err != nil {
		s.metrics.Handover("failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}

	submitted, err := s.handovers.SubmitDraft(ctx, name)
	if err != nil {
		if derr := s.handovers.DeleteDraft(context.WithoutCancel(ctx), name); derr != nil {
			zap.L().Error("failed to delete unsubmitted handover draft", zap.String("draft", name), zap.Error(derr))
		}
		s.metrics.Handover("failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrSubmissionFailed, err)
	}

	rec.ID = submitted.ID
	rec.TransferredToName = treasurer.FullName
	if rec.TransferredToName == "" {
		rec.TransferredToName = treasurer.UserID
	}
	s.metrics.Handover("confirmed")
	zap.L().Info("payment handed over",
		zap.String("payment", paymentID), zap.String("handover", rec.ID),
		zap.String("from", rec.ReceivedBy), zap.String("to", rec.TransferredTo))
	return rec, nil
}

// History lists the receipts of the last days days with their handover state, followed by
// every handover whose receipt is older than the window.
func (s *Service) History(ctx context.Context, days int) ([]domain.PaymentView, error) {
	if days == 0 {
		days = DefaultHistoryDays
	}
	if days < 1 || days > MaxHistoryDays {
		return nil, ErrInvalidDays
	}

	recs, err := s.handovers.ListSubmitted(ctx)
	if err != nil {
		return nil, err
	}
	byPayment := make(map[string]domain.HandoverRecord, len(recs))
	for _, rec := range recs {
		if rec.PaymentID == "" {
			continue
		}
		if _, seen := byPayment[rec.PaymentID]; !seen {
			byPayment[rec.PaymentID] = rec
		}
	}

	since := s.now().AddDate(0, 0, -days)
	payments, err := s.payments.ListReceived(ctx, domain.PaymentFilter{Since: since})
	if err != nil {
		return nil, err
	}

	views := make([]domain.PaymentView, 0, len(payments)+len(byPayment))
	listed := make(map[string]struct{}, len(payments))
	for _, p := range payments {
		listed[p.ID] = struct{}{}
		v := domain.PaymentView{Payment: p, Status: domain.HandoverPending}
		if rec, ok := byPayment[p.ID]; ok {
			v.Handover = &rec
			v.Status = domain.HandoverTransferred
		}
		views = append(views, v)
	}
	s.enrich(ctx, views, true)

	extras, err := s.handedOverOutside(ctx, recs, listed)
	if err != nil {
		return nil, err
	}
	return append(views, extras...), nil
}

// handedOverOutside loads the receipts of handovers that the windowed listing missed.
func (s *Service) handedOverOutside(ctx context.Context, recs []domain.HandoverRecord, listed map[string]struct{}) ([]domain.PaymentView, error) {
	var missing []domain.HandoverRecord
	for _, rec := range recs {
		if _, ok := listed[rec.PaymentID]; ok || rec.PaymentID == "" {
			continue
		}
		listed[rec.PaymentID] = struct{}{}
		missing = append(missing, rec)
	}
	if len(missing) == 0 {
		return nil, nil
	}

	views := make([]domain.PaymentView, len(missing))
	loaded := make([]bool, len(missing))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i := range missing {
		g.Go(func() error {
			p, err := s.payments.Get(gctx, missing[i].PaymentID)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return err
				}
				zap.L().Warn("can't load handed over payment",
					zap.String("payment", missing[i].PaymentID), zap.Error(err))
				return nil
			}
			if p == nil {
				return nil
			}
			rec := missing[i]
			views[i] = domain.PaymentView{
				Payment:    *p,
				InvoiceIDs: invoiceIDs(p.Allocations),
				Handover:   &rec,
				Status:     domain.HandoverTransferred,
			}
			loaded[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := views[:0]
	for i := range views {
		if loaded[i] {
			out = append(out, views[i])
		}
	}
	s.enrich(ctx, out, false)
	return out, nil
}

// enrich fills invoice references and display names. A row whose lookups fail is kept with
// what is known.
func (s *Service) enrich(ctx context.Context, views []domain.PaymentView, withDetail bool) {
	names := newNameCache(s.users)
	var g errgroup.Group
	g.SetLimit(enrichConcurrency)
	for i := range views {
		v := &views[i]
		g.Go(func() error {
			if withDetail {
				full, err := s.payments.Get(ctx, v.Payment.ID)
				switch {
				case err != nil:
					zap.L().Warn("can't load payment details", zap.String("payment", v.Payment.ID), zap.Error(err))
				case full != nil:
					v.InvoiceIDs = invoiceIDs(full.Allocations)
				}
			}
			if v.InvoiceIDs == nil {
				v.InvoiceIDs = []string{}
			}

			collector := v.Payment.Collector()
			if v.Handover != nil && v.Handover.ReceivedBy != "" {
				collector = v.Handover.ReceivedBy
			}
			v.ReceivedByName = names.get(ctx, collector)
			if v.Handover != nil {
				v.TransferredToName = names.get(ctx, v.Handover.TransferredTo)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func invoiceIDs(allocs []domain.Allocation) []string {
	ids := make([]string, 0, len(allocs))
	for _, a := range allocs {
		ids = append(ids, a.InvoiceID)
	}
	return ids
}

// nameCache resolves user ids to display names once per listing.
type nameCache struct {
	users Users
	group singleflight.Group

	mu    sync.Mutex
	names map[string]string
}

func newNameCache(users Users) *nameCache {
	return &nameCache{
		users: users,
		names: make(map[string]string),
	}
}

func (c *nameCache) get(ctx context.Context, userID string) string {
	if userID == "" {
		return unknownName
	}
	c.mu.Lock()
	name, ok := c.names[userID]
	c.mu.Unlock()
	if ok {
		return name
	}

	v, _, _ := c.group.Do(userID, func() (any, error) {
		c.mu.Lock()
		cached, ok := c.names[userID]
		c.mu.Unlock()
		if ok {
			return cached, nil
		}

		name, err := c.users.FullName(ctx, userID)
		if err != nil {
			zap.L().Warn("can't resolve user name", zap.String("user", userID), zap.Error(err))
			name = unknownName
		}
		c.mu.Lock()
		c.names[userID] = name
		c.mu.Unlock()
		return name, nil
	})
	return v.(string)
}
