package paymentservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/frontdesk/internal/domain"
	"github.com/GlebRadaev/frontdesk/internal/session"
)

type mocks struct {
	directory *MockDirectory
	invoices  *MockInvoices
	staff     *MockStaff
	payments  *MockPaymentRepo
	journal   *MockJournal
	sessions  *session.Store
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		directory: NewMockDirectory(ctrl),
		invoices:  NewMockInvoices(ctrl),
		staff:     NewMockStaff(ctrl),
		payments:  NewMockPaymentRepo(ctrl),
		journal:   NewMockJournal(ctrl),
		sessions:  session.NewStore(time.Minute),
	}
	service := New(m.directory, m.invoices, m.staff, m.sessions, m.payments, m.journal, "SRD", nil)
	return service, m
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var (
	alice     = domain.Payer{ID: "CUST-A", Name: "Alice"}
	child     = domain.Payer{ID: "CUST-C", Name: "Child"}
	parent    = domain.Payer{ID: "CUST-P", Name: "Parent"}
	treasurer = &domain.Staff{UserID: "treasurer@gym.sr", FullName: "Tess Reyes", Enabled: true, Roles: []string{"Treasurer"}}
)

// openSession stores a session for alice with the given invoices, bypassing Begin.
func openSession(m *mocks, invoices ...domain.Invoice) string {
	sess := m.sessions.Create(domain.PaymentSession{Payer: alice, ScannedMember: alice, Invoices: invoices})
	return sess.ID
}

func aliceInvoice(id, outstanding string) domain.Invoice {
	return domain.Invoice{ID: id, Customer: "CUST-A", Outstanding: d(outstanding)}
}

// expectJournal accepts any journal traffic.
func expectJournal(m *mocks) {
	m.journal.EXPECT().Create(gomock.Any(), gomock.Any()).Return(1, nil).AnyTimes()
	m.journal.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestBegin(t *testing.T) {
	t.Run("Individual member", func(t *testing.T) {
		service, m := NewMock(t)
		m.directory.EXPECT().ResolveBillingContext(gomock.Any(), "A123").
			Return(&domain.BillingContext{Scanned: alice, Payer: alice}, nil)
		m.invoices.EXPECT().Outstanding(gomock.Any(), "CUST-A").
			Return([]domain.Invoice{aliceInvoice("INV-001", "400.00")}, nil)

		sess, err := service.Begin(context.Background(), "A123")
		require.NoError(t, err)
		assert.NotEmpty(t, sess.ID)
		assert.Equal(t, alice, sess.Payer)
		require.Len(t, sess.Invoices, 1)

		stored, err := service.GetSession(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, stored.ID)
	})

	t.Run("Dependent sees primary payer invoices", func(t *testing.T) {
		service, m := NewMock(t)
		group := &domain.FamilyGroup{ID: "FG-1", PrimaryPayer: "CUST-P", Members: []string{"CUST-C"}}
		m.directory.EXPECT().ResolveBillingContext(gomock.Any(), "B77").
			Return(&domain.BillingContext{Scanned: child, Payer: parent, FamilyGroup: group}, nil)
		m.invoices.EXPECT().Outstanding(gomock.Any(), "CUST-P").
			Return([]domain.Invoice{{ID: "INV-050", Customer: "CUST-P", Outstanding: d("200")}}, nil)

		sess, err := service.Begin(context.Background(), "B77")
		require.NoError(t, err)
		assert.Equal(t, parent, sess.Payer)
		assert.Equal(t, child, sess.ScannedMember)
		assert.Equal(t, "INV-050", sess.Invoices[0].ID)
	})

	t.Run("Unknown card opens no session", func(t *testing.T) {
		service, m := NewMock(t)
		m.directory.EXPECT().ResolveBillingContext(gomock.Any(), "ZZZ").Return(nil, domain.ErrPayerNotFound)

		_, err := service.Begin(context.Background(), "ZZZ")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Zero(t, m.sessions.Len())
	})

	t.Run("Invoice lookup fails", func(t *testing.T) {
		service, m := NewMock(t)
		m.directory.EXPECT().ResolveBillingContext(gomock.Any(), "A123").
			Return(&domain.BillingContext{Scanned: alice, Payer: alice}, nil)
		m.invoices.EXPECT().Outstanding(gomock.Any(), "CUST-A").Return(nil, domain.ErrUpstreamTimeout)

		_, err := service.Begin(context.Background(), "A123")
		assert.ErrorIs(t, err, domain.ErrUpstreamTimeout)
		assert.Zero(t, m.sessions.Len())
	})
}

func TestSessionLifecycle(t *testing.T) {
	service, m := NewMock(t)
	id := openSession(m, aliceInvoice("INV-001", "400"))

	service.EndSession(context.Background(), id)
	_, err := service.GetSession(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	service.EndSession(context.Background(), id)
}

func TestSubmit_Success(t *testing.T) {
	service, m := NewMock(t)
	id := openSession(m, aliceInvoice("INV-001", "400.00"))

	gomock.InOrder(
		m.staff.EXPECT().AuthorizeMoneyHandling(gomock.Any(), "S900").Return(treasurer, nil),
		m.journal.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, a *domain.PaymentAttempt) (int, error) {
				assert.Equal(t, id, a.SessionID)
				assert.Equal(t, 400.0, a.Amount)
				assert.Equal(t, domain.AttemptPending, a.Status)
				return 7, nil
			}),
		m.payments.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Payment) (string, error) {
				assert.Equal(t, "CUST-A", p.Payer)
				assert.Equal(t, "treasurer@gym.sr", p.AuthorizedBy)
				assert.Equal(t, "SRD", p.Currency)
				assert.Empty(t, p.ScannedMember)
				require.Len(t, p.Allocations, 1)
				assert.True(t, d("400").Equal(p.Allocations[0].Amount))
				return "ACC-PAY-2024-00001", nil
			}),
		m.journal.EXPECT().UpdateStatus(gomock.Any(), 7, domain.AttemptDraft, "ACC-PAY-2024-00001", "").Return(nil),
		m.payments.EXPECT().SubmitDraft(gomock.Any(), "ACC-PAY-2024-00001").
			Return(&domain.Payment{ID: "ACC-PAY-2024-00001", Payer: "CUST-A", Total: d("400"), Submitted: true}, nil),
		m.journal.EXPECT().UpdateStatus(gomock.Any(), 7, domain.AttemptSubmitted, "ACC-PAY-2024-00001", "").Return(nil),
	)

	payment, err := service.Submit(context.Background(), domain.SubmitRequest{
		SessionID:  id,
		StaffRFID:  "S900",
		InvoiceIDs: []string{"INV-001"},
		Amounts:    map[string]decimal.Decimal{"INV-001": d("400.00")},
		Total:      d("400.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ACC-PAY-2024-00001", payment.ID)
	assert.Equal(t, "SRD", payment.Currency)
	assert.Equal(t, "Tess Reyes", payment.AuthorizedByName)

	_, ok := m.sessions.Get(id)
	assert.False(t, ok)

	_, err = service.Submit(context.Background(), domain.SubmitRequest{
		SessionID: id,
		StaffRFID: "S900",
		Amounts:   map[string]decimal.Decimal{"INV-001": d("400.00")},
		Total:     d("400.00"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSubmit_DependentPaysFromPrimaryAccount(t *testing.T) {
	service, m := NewMock(t)
	sess := m.sessions.Create(domain.PaymentSession{
		Payer:         parent,
		ScannedMember: child,
		Invoices:      []domain.Invoice{{ID: "INV-050", Customer: "CUST-P", Outstanding: d("200")}},
	})
	expectJournal(m)

	m.staff.EXPECT().AuthorizeMoneyHandling(gomock.Any(), "S900").Return(treasurer, nil)
	m.payments.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Payment) (string, error) {
			assert.Equal(t, "CUST-P", p.Payer)
			assert.Equal(t, "Child", p.ScannedMember)
			return "ACC-PAY-2024-00050", nil
		})
	m.payments.EXPECT().SubmitDraft(gomock.Any(), "ACC-PAY-2024-00050").
		Return(&domain.Payment{ID: "ACC-PAY-2024-00050", Payer: "CUST-P", Submitted: true}, nil)

	payment, err := service.Submit(context.Background(), domain.SubmitRequest{
		SessionID: sess.ID,
		StaffRFID: "S900",
		Amounts:   map[string]decimal.Decimal{"INV-050": d("200")},
		Total:     d("200"),
	})
	require.NoError(t, err)
	assert.Equal(t, "CUST-P", payment.Payer)
}

func TestSubmit_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		invoices    []domain.Invoice
		req         domain.SubmitRequest
		expectedErr error
	}{
		{
			name:     "Sum differs from total",
			invoices: []domain.Invoice{aliceInvoice("INV-001", "150"), aliceInvoice("INV-002", "100")},
			req: domain.SubmitRequest{
				InvoiceIDs: []string{"INV-001", "INV-002"},
				Amounts:    map[string]decimal.Decimal{"INV-001": d("150"), "INV-002": d("100")},
				Total:      d("300"),
			},
			expectedErr: domain.ErrAmountMismatch,
		},
		{
			name:     "Invoice outside the session",
			invoices: []domain.Invoice{aliceInvoice("INV-001", "400")},
			req: domain.SubmitRequest{
				Amounts: map[string]decimal.Decimal{"INV-999": d("50")},
				Total:   d("50"),
			},
			expectedErr: domain.ErrUnauthorizedInvoice,
		},
		{
			name:     "Invoice of another customer",
			invoices: []domain.Invoice{{ID: "INV-777", Customer: "CUST-Z", Outstanding: d("50")}},
			req: domain.SubmitRequest{
				Amounts: map[string]decimal.Decimal{"INV-777": d("50")},
				Total:   d("50"),
			},
			expectedErr: domain.ErrUnauthorizedInvoice,
		},
		{
			name:     "Amount above outstanding",
			invoices: []domain.Invoice{aliceInvoice("INV-001", "400")},
			req: domain.SubmitRequest{
				Amounts: map[string]decimal.Decimal{"INV-001": d("400.50")},
				Total:   d("400.50"),
			},
			expectedErr: domain.ErrInvalidAllocation,
		},
		{
			name:     "Negative amount",
			invoices: []domain.Invoice{aliceInvoice("INV-001", "400")},
			req: domain.SubmitRequest{
				Amounts: map[string]decimal.Decimal{"INV-001": d("-10")},
				Total:   d("-10"),
			},
			expectedErr: domain.ErrInvalidAllocation,
		},
		{
			name:     "Only zero amounts",
			invoices: []domain.Invoice{aliceInvoice("INV-001", "400")},
			req: domain.SubmitRequest{
				Amounts: map[string]decimal.Decimal{"INV-001": decimal.Zero},
				Total:   decimal.Zero,
			},
			expectedErr: domain.ErrInvalidAllocation,
		},
		{
			name:     "Selected invoice without amount",
			invoices: []domain.Invoice{aliceInvoice("INV-001", "400")},
			req: domain.SubmitRequest{
				InvoiceIDs: []string{"INV-001"},
				Amounts:    map[string]decimal.Decimal{},
				Total:      d("400"),
			},
			expectedErr: domain.ErrInvalidAllocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.req.SessionID = openSession(m, tt.invoices...)
			tt.req.StaffRFID = "S900"

			_, err := service.Submit(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.expectedErr)

			_, ok := m.sessions.Get(tt.req.SessionID)
			assert.True(t, ok, "a rejected request keeps the session")
		})
	}
}

func TestSubmit_WithinTolerance(t *testing.T) {
	service, m := NewMock(t)
	id := openSession(m, aliceInvoice("INV-001", "150"), aliceInvoice("INV-002", "100"))
	expectJournal(m)

	m.staff.EXPECT().AuthorizeMoneyHandling(gomock.Any(), "S900").Return(treasurer, nil)
	m.payments.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.Payment) (string, error) {
			assert.True(t, d("250").Equal(p.Total))
			return "ACC-PAY-2024-00002", nil
		})
	m.payments.EXPECT().SubmitDraft(gomock.Any(), "ACC-PAY-2024-00002").
		Return(&domain.Payment{ID: "ACC-PAY-2024-00002", Submitted: true}, nil)

	_, err := service.Submit(context.Background(), domain.SubmitRequest{
		SessionID: id,
		StaffRFID: "S900",
		Amounts:   map[string]decimal.Decimal{"INV-001": d("150"), "INV-002": d("100"), "INV-003": decimal.Zero},
		Total:     d("250.01"),
	})
	assert.NoError(t, err)
}

func TestSubmit_StaffRefused(t *testing.T) {
	service, m := NewMock(t)
	id := openSession(m, aliceInvoice("INV-001", "400"))
	m.staff.EXPECT().AuthorizeMoneyHandling(gomock.Any(), "E1").Return(nil, domain.ErrMissingRole)

	_, err := service.Submit(context.Background(), domain.SubmitRequest{
		SessionID: id,
		StaffRFID: "E1",
		Amounts:   map[string]decimal.Decimal{"INV-001": d("400")},
		Total:     d("400"),
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestSubmit_SubmissionFailure(t *testing.T) {
	rejected := errors.New("erp rejected submit")

	tests := []struct {
		name          string
		deleteErr     error
		attemptStatus string
	}{
		{name: "Draft rolled back", deleteErr: nil, attemptStatus: domain.AttemptRolledBack},
		{name: "Draft orphaned", deleteErr: domain.ErrUpstreamUnavailable, attemptStatus: domain.AttemptOrphaned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			id := openSession(m, aliceInvoice("INV-001", "400"))

			m.staff.EXPECT().AuthorizeMoneyHandling(gomock.Any(), "S900").Return(treasurer, nil)
			m.journal.EXPECT().Create(gomock.Any(), gomock.Any()).Return(3, nil)
			m.payments.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).Return("ACC-PAY-2024-00003", nil)
			m.journal.EXPECT().UpdateStatus(gomock.Any(), 3, domain.AttemptDraft, "ACC-PAY-2024-00003", "").Return(nil)
			m.payments.EXPECT().SubmitDraft(gomock.Any(), "ACC-PAY-2024-00003").Return(nil, rejected)
			m.payments.EXPECT().DeleteDraft(gomock.Any(), "ACC-PAY-2024-00003").Return(tt.deleteErr)
			m.journal.EXPECT().UpdateStatus(gomock.Any(), 3, tt.attemptStatus, "ACC-PAY-2024-00003", rejected.Error()).Return(nil)

			_, err := service.Submit(context.Background(), domain.SubmitRequest{
				SessionID: id,
				StaffRFID: "S900",
				Amounts:   map[string]decimal.Decimal{"INV-001": d("400")},
				Total:     d("400"),
			})
			assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
			assert.ErrorIs(t, err, rejected)

			_, ok := m.sessions.Get(id)
			assert.True(t, ok, "a failed submission keeps the session for a retry")
		})
	}
}

func TestSubmit_InsertFailureAndJournalOutage(t *testing.T) {
	service, m := NewMock(t)
	id := openSession(m, aliceInvoice("INV-001", "400"))

	m.staff.EXPECT().AuthorizeMoneyHandling(gomock.Any(), "S900").Return(treasurer, nil)
	m.journal.EXPECT().Create(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))
	m.payments.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).Return("", domain.ErrUpstreamTimeout)

	_, err := service.Submit(context.Background(), domain.SubmitRequest{
		SessionID: id,
		StaffRFID: "S900",
		Amounts:   map[string]decimal.Decimal{"INV-001": d("400")},
		Total:     d("400"),
	})
	assert.ErrorIs(t, err, domain.ErrSubmissionFailed)
	assert.ErrorIs(t, err, domain.ErrUpstreamTimeout)
}

func TestSubmit_ConcurrentSubmitsRecordOnce(t *testing.T) {
	service, m := NewMock(t)
	id := openSession(m, aliceInvoice("INV-001", "400"))
	expectJournal(m)

	m.staff.EXPECT().AuthorizeMoneyHandling(gomock.Any(), "S900").Return(treasurer, nil).Times(1)
	m.payments.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).Return("ACC-PAY-2024-00004", nil).Times(1)
	m.payments.EXPECT().SubmitDraft(gomock.Any(), "ACC-PAY-2024-00004").
		Return(&domain.Payment{ID: "ACC-PAY-2024-00004", Submitted: true}, nil).Times(1)

	const workers = 5
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		notFound  int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Submit(context.Background(), domain.SubmitRequest{
				SessionID: id,
				StaffRFID: "S900",
				Amounts:   map[string]decimal.Decimal{"INV-001": d("400")},
				Total:     d("400"),
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrSessionNotFound):
				notFound++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, notFound)
}

func TestGetPayment(t *testing.T) {
	service, m := NewMock(t)

	m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00001").
		Return(&domain.Payment{ID: "ACC-PAY-2024-00001", Submitted: true}, nil)
	p, err := service.GetPayment(context.Background(), "ACC-PAY-2024-00001")
	require.NoError(t, err)
	assert.True(t, p.Submitted)

	m.payments.EXPECT().Get(gomock.Any(), "NOPE").Return(nil, nil)
	_, err = service.GetPayment(context.Background(), "NOPE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAttempts(t *testing.T) {
	service, m := NewMock(t)

	m.journal.EXPECT().FindByStatus(gomock.Any(), "", defaultAttemptsLimit).Return(nil, nil)
	got, err := service.Attempts(context.Background(), "", 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	m.journal.EXPECT().FindByStatus(gomock.Any(), domain.AttemptOrphaned, maxAttemptsLimit).
		Return([]domain.PaymentAttempt{{ID: 1, Status: domain.AttemptOrphaned}}, nil)
	got, err = service.Attempts(context.Background(), domain.AttemptOrphaned, 10000)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestAuthorizeStaff(t *testing.T) {
	service, m := NewMock(t)
	m.staff.EXPECT().AuthorizeMoneyHandling(gomock.Any(), "S900").Return(treasurer, nil)

	staff, err := service.AuthorizeStaff(context.Background(), "S900")
	require.NoError(t, err)
	assert.Equal(t, "Tess Reyes", staff.FullName)
}
