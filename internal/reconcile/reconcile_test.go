package reconcile

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/frontdesk/internal/domain"
)

// inlinePool runs each task on the caller's goroutine.
type inlinePool struct {
	mu     sync.Mutex
	errs   []error
	closed int
}

func (p *inlinePool) AddTask(_ context.Context, task Task) error {
	err := task()
	p.mu.Lock()
	p.errs = append(p.errs, err)
	p.mu.Unlock()
	return nil
}

func (p *inlinePool) Close() {
	p.mu.Lock()
	p.closed++
	p.mu.Unlock()
}

func (p *inlinePool) closeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func NewMock(t *testing.T) (*Service, *MockJournal, *MockPayments, *inlinePool) {
	ctrl := gomock.NewController(t)
	journal := NewMockJournal(ctrl)
	payments := NewMockPayments(ctrl)
	service := New(journal, payments, time.Minute, nil)
	pool := &inlinePool{}
	service.workerPool = pool
	return service, journal, payments, pool
}

func orphan(id int, draft string) domain.PaymentAttempt {
	return domain.PaymentAttempt{ID: id, DraftName: draft, Status: domain.AttemptOrphaned}
}

func TestService_settle(t *testing.T) {
	tests := []struct {
		name        string
		attempt     domain.PaymentAttempt
		prepareMock func(j *MockJournal, p *MockPayments)
		wantErr     bool
	}{
		{
			name:    "Draft was submitted after all",
			attempt: orphan(1, "ACC-PAY-2024-00007"),
			prepareMock: func(j *MockJournal, p *MockPayments) {
				p.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00007").Return(&domain.Payment{ID: "ACC-PAY-2024-00007", Submitted: true}, nil)
				j.EXPECT().Transition(gomock.Any(), 1, domain.AttemptOrphaned, domain.AttemptSubmitted).Return(true, nil)
			},
		},
		{
			name:    "Draft is gone",
			attempt: orphan(2, "ACC-PAY-2024-00008"),
			prepareMock: func(j *MockJournal, p *MockPayments) {
				p.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00008").Return(nil, nil)
				j.EXPECT().Transition(gomock.Any(), 2, domain.AttemptOrphaned, domain.AttemptReconciled).Return(true, nil)
			},
		},
		{
			name:    "Draft still present is deleted",
			attempt: orphan(3, "ACC-PAY-2024-00009"),
			prepareMock: func(j *MockJournal, p *MockPayments) {
				p.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00009").Return(&domain.Payment{ID: "ACC-PAY-2024-00009"}, nil)
				p.EXPECT().DeleteDraft(gomock.Any(), "ACC-PAY-2024-00009").Return(nil)
				j.EXPECT().Transition(gomock.Any(), 3, domain.AttemptOrphaned, domain.AttemptReconciled).Return(true, nil)
			},
		},
		{
			name:    "Attempt without draft",
			attempt: orphan(4, ""),
			prepareMock: func(j *MockJournal, _ *MockPayments) {
				j.EXPECT().Transition(gomock.Any(), 4, domain.AttemptOrphaned, domain.AttemptReconciled).Return(true, nil)
			},
		},
		{
			name:    "ERP unavailable keeps the attempt orphaned",
			attempt: orphan(5, "ACC-PAY-2024-00010"),
			prepareMock: func(_ *MockJournal, p *MockPayments) {
				p.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00010").Return(nil, domain.ErrUpstreamUnavailable)
			},
			wantErr: true,
		},
		{
			name:    "Delete fails",
			attempt: orphan(6, "ACC-PAY-2024-00011"),
			prepareMock: func(_ *MockJournal, p *MockPayments) {
				p.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00011").Return(&domain.Payment{ID: "ACC-PAY-2024-00011"}, nil)
				p.EXPECT().DeleteDraft(gomock.Any(), "ACC-PAY-2024-00011").Return(domain.ErrUpstreamTimeout)
			},
			wantErr: true,
		},
		{
			name:    "Another worker got there first",
			attempt: orphan(7, ""),
			prepareMock: func(j *MockJournal, _ *MockPayments) {
				j.EXPECT().Transition(gomock.Any(), 7, domain.AttemptOrphaned, domain.AttemptReconciled).Return(false, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, journal, payments, _ := NewMock(t)
			tt.prepareMock(journal, payments)

			err := service.settle(context.Background(), tt.attempt)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_reconcileOrphans(t *testing.T) {
	service, journal, payments, pool := NewMock(t)

	journal.EXPECT().FindByStatus(gomock.Any(), domain.AttemptOrphaned, batchLimit).
		Return([]domain.PaymentAttempt{orphan(1, ""), orphan(2, "ACC-PAY-2024-00002")}, nil)
	payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00002").Return(nil, nil)
	journal.EXPECT().Transition(gomock.Any(), 1, domain.AttemptOrphaned, domain.AttemptReconciled).Return(true, nil)
	journal.EXPECT().Transition(gomock.Any(), 2, domain.AttemptOrphaned, domain.AttemptReconciled).Return(true, nil)

	service.reconcileOrphans(context.Background())

	assert.Len(t, pool.errs, 2)
	for _, err := range pool.errs {
		assert.NoError(t, err)
	}
	_, busy := service.inFlight.Load(1)
	assert.False(t, busy)
}

func TestService_reconcileOrphans_SkipsInFlight(t *testing.T) {
	service, journal, _, pool := NewMock(t)
	service.inFlight.Store(1, struct{}{})

	journal.EXPECT().FindByStatus(gomock.Any(), domain.AttemptOrphaned, batchLimit).
		Return([]domain.PaymentAttempt{orphan(1, "")}, nil)

	service.reconcileOrphans(context.Background())
	assert.Empty(t, pool.errs)
}

func TestService_reconcileOrphans_FetchError(t *testing.T) {
	service, journal, _, pool := NewMock(t)
	journal.EXPECT().FindByStatus(gomock.Any(), domain.AttemptOrphaned, batchLimit).
		Return(nil, errors.New("connection refused"))

	service.reconcileOrphans(context.Background())
	assert.Empty(t, pool.errs)
}

func TestService_Start(t *testing.T) {
	service, _, _, pool := NewMock(t)

	ctx, cancel := context.WithCancel(context.Background())
	service.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()

	assert.Eventually(t, func() bool { return pool.closeCount() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, pool.closeCount())
}
