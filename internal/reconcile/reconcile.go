package reconcile

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/pkg/metrics"
)

const (
	batchLimit = 100
	poolSize   = 4
)

//go:generate mockgen -source=reconcile.go -destination=mock_reconcile.go -package=reconcile
type Journal interface {
	FindByStatus(ctx context.Context, status string, limit int) ([]domain.PaymentAttempt, error)
	Transition(ctx context.Context, id int, from, to string) (bool, error)
}

type Payments interface {
	Get(ctx context.Context, name string) (*domain.Payment, error)
	DeleteDraft(ctx context.Context, name string) error
}

// Service settles payment attempts whose draft could not be removed after a failed submit.
type Service struct {
	journal    Journal
	payments   Payments
	metrics    *metrics.Metrics
	workerPool WorkerPoolI
	interval   time.Duration
	inFlight   sync.Map
}

func New(journal Journal, payments Payments, interval time.Duration, m *metrics.Metrics) *Service {
	return &Service{
		journal:    journal,
		payments:   payments,
		metrics:    m,
		workerPool: NewWorkerPool(poolSize),
		interval:   interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("draft reconciler started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("draft reconciler stopped")
			return
		case <-ticker.C:
			s.reconcileOrphans(ctx)
		}
	}
}

func (s *Service) reconcileOrphans(ctx context.Context) {
	attempts, err := s.journal.FindByStatus(ctx, domain.AttemptOrphaned, batchLimit)
	if err != nil {
		zap.L().Error("can't fetch orphaned payment attempts", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, attempt := range attempts {
		if _, loaded := s.inFlight.LoadOrStore(attempt.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(attempt.ID)
				return s.settle(ctx, attempt)
			})
			if err != nil {
				s.inFlight.Delete(attempt.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("reconcile round aborted", zap.Error(err))
	}
}

// settle moves one orphaned attempt to its final state based on what the ERP holds.
func (s *Service) settle(ctx context.Context, attempt domain.PaymentAttempt) error {
	target := domain.AttemptReconciled
	result := "deleted"

	if attempt.DraftName == "" {
		result = "absent"
	} else {
		p, err := s.payments.Get(ctx, attempt.DraftName)
		switch {
		case err != nil:
			s.metrics.Reconciled("error")
			return fmt.Errorf("load draft %s: %w", attempt.DraftName, err)
		case p == nil:
			result = "absent"
		case p.Submitted:
			target = domain.AttemptSubmitted
			result = "submitted"
		default:
			if err := s.payments.DeleteDraft(ctx, attempt.DraftName); err != nil {
				s.metrics.Reconciled("error")
				return fmt.Errorf("delete draft %s: %w", attempt.DraftName, err)
			}
		}
	}

	moved, err := s.journal.Transition(ctx, attempt.ID, domain.AttemptOrphaned, target)
	if err != nil {
		s.metrics.Reconciled("error")
		return fmt.Errorf("transition attempt %d: %w", attempt.ID, err)
	}
	if !moved {
		return nil
	}

	s.metrics.Reconciled(result)
	zap.L().Info("payment attempt reconciled",
		zap.Int("attempt", attempt.ID), zap.String("draft", attempt.DraftName),
		zap.String("status", target), zap.String("result", result))
	return nil
}
