package handoverservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/frontdesk/internal/domain"
)

type mocks struct {
	payments  *MockPaymentRepo
	handovers *MockHandoverRepo
	users     *MockUsers
	staff     *MockStaff
}

var now = time.Date(2024, 5, 20, 18, 0, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		payments:  NewMockPaymentRepo(ctrl),
		handovers: NewMockHandoverRepo(ctrl),
		users:     NewMockUsers(ctrl),
		staff:     NewMockStaff(ctrl),
	}
	service := New(m.payments, m.handovers, m.users, m.staff, nil)
	service.now = func() time.Time { return now }
	return service, m
}

var (
	treasurer = &domain.Staff{UserID: "treasurer@gym.sr", FullName: "Tess Reyes", Enabled: true, Roles: []string{"Treasurer"}}
	received  = time.Date(2024, 5, 18, 10, 0, 0, 0, time.UTC)
)

func submittedPayment(id string) *domain.Payment {
	return &domain.Payment{
		ID:           id,
		Payer:        "CUST-A",
		Total:        decimal.NewFromInt(400),
		AuthorizedBy: "coach@gym.sr",
		Owner:        "api@gym.sr",
		Submitted:    true,
		CreatedAt:    received,
		Allocations:  []domain.Allocation{{InvoiceID: "INV-001", Amount: decimal.NewFromInt(400)}},
	}
}

func TestConfirm(t *testing.T) {
	upstream := errors.New("erp refused submit")

	tests := []struct {
		name        string
		rfid        string
		prepareMock func(m *mocks)
		expectedErr error
	}{
		{
			name: "Coach cannot confirm",
			rfid: "C5",
			prepareMock: func(m *mocks) {
				m.staff.EXPECT().AuthorizeCustody(gomock.Any(), "C5").Return(nil, domain.ErrMissingRole)
			},
			expectedErr: domain.ErrUnauthorized,
		},
		{
			name: "Unknown payment",
			rfid: "S900",
			prepareMock: func(m *mocks) {
				m.staff.EXPECT().AuthorizeCustody(gomock.Any(), "S900").Return(treasurer, nil)
				m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00001").Return(nil, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Draft payment",
			rfid: "S900",
			prepareMock: func(m *mocks) {
				p := submittedPayment("ACC-PAY-2024-00001")
				p.Submitted = false
				m.staff.EXPECT().AuthorizeCustody(gomock.Any(), "S900").Return(treasurer, nil)
				m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00001").Return(p, nil)
			},
			expectedErr: domain.ErrNotFound,
		},
		{
			name: "Already transferred",
			rfid: "S900",
			prepareMock: func(m *mocks) {
				m.staff.EXPECT().AuthorizeCustody(gomock.Any(), "S900").Return(treasurer, nil)
				m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00001").Return(submittedPayment("ACC-PAY-2024-00001"), nil)
				m.handovers.EXPECT().FindByPayment(gomock.Any(), "ACC-PAY-2024-00001").
					Return(&domain.HandoverRecord{ID: "PH-0001", PaymentID: "ACC-PAY-2024-00001"}, nil)
			},
			expectedErr: domain.ErrAlreadyTransferred,
		},
		{
			name: "Insert fails",
			rfid: "S900",
			prepareMock: func(m *mocks) {
				m.staff.EXPECT().AuthorizeCustody(gomock.Any(), "S900").Return(treasurer, nil)
				m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00001").Return(submittedPayment("ACC-PAY-2024-00001"), nil)
				m.handovers.EXPECT().FindByPayment(gomock.Any(), "ACC-PAY-2024-00001").Return(nil, nil)
				m.handovers.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).Return("", domain.ErrUpstreamUnavailable)
			},
			expectedErr: domain.ErrSubmissionFailed,
		},
		{
			name: "Submit fails and draft is removed",
			rfid: "S900",
			prepareMock: func(m *mocks) {
				m.staff.EXPECT().AuthorizeCustody(gomock.Any(), "S900").Return(treasurer, nil)
				m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00001").Return(submittedPayment("ACC-PAY-2024-00001"), nil)
				m.handovers.EXPECT().FindByPayment(gomock.Any(), "ACC-PAY-2024-00001").Return(nil, nil)
				m.handovers.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).Return("PH-0009", nil)
				m.handovers.EXPECT().SubmitDraft(gomock.Any(), "PH-0009").Return(nil, upstream)
				m.handovers.EXPECT().DeleteDraft(gomock.Any(), "PH-0009").Return(nil)
			},
			expectedErr: domain.ErrSubmissionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			rec, err := service.Confirm(context.Background(), "ACC-PAY-2024-00001", tt.rfid, "")
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, rec)
		})
	}
}

func TestConfirm_Success(t *testing.T) {
	service, m := NewMock(t)

	m.staff.EXPECT().AuthorizeCustody(gomock.Any(), "S900").Return(treasurer, nil)
	m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00001").Return(submittedPayment("ACC-PAY-2024-00001"), nil)
	m.handovers.EXPECT().FindByPayment(gomock.Any(), "ACC-PAY-2024-00001").Return(nil, nil)
	m.handovers.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, rec *domain.HandoverRecord) (string, error) {
			assert.Equal(t, "coach@gym.sr", rec.ReceivedBy)
			assert.Equal(t, received, rec.ReceivedAt)
			assert.Equal(t, "treasurer@gym.sr", rec.TransferredTo)
			assert.Equal(t, now, rec.TransferredAt)
			assert.Equal(t, "end of day", rec.Notes)
			return "PH-0010", nil
		})
	m.handovers.EXPECT().SubmitDraft(gomock.Any(), "PH-0010").
		Return(&domain.HandoverRecord{ID: "PH-0010", Status: domain.HandoverTransferred}, nil)

	rec, err := service.Confirm(context.Background(), "ACC-PAY-2024-00001", "S900", "  end of day ")
	require.NoError(t, err)
	assert.Equal(t, "PH-0010", rec.ID)
	assert.Equal(t, domain.HandoverTransferred, rec.Status)
	assert.Equal(t, "Tess Reyes", rec.TransferredToName)

	// the second confirmation sees the submitted handover
	m.staff.EXPECT().AuthorizeCustody(gomock.Any(), "S900").Return(treasurer, nil)
	m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00001").Return(submittedPayment("ACC-PAY-2024-00001"), nil)
	m.handovers.EXPECT().FindByPayment(gomock.Any(), "ACC-PAY-2024-00001").Return(&domain.HandoverRecord{ID: "PH-0010"}, nil)

	_, err = service.Confirm(context.Background(), "ACC-PAY-2024-00001", "S900", "")
	assert.ErrorIs(t, err, domain.ErrAlreadyTransferred)
}

func TestConfirm_SelfHandoverAllowed(t *testing.T) {
	service, m := NewMock(t)
	p := submittedPayment("ACC-PAY-2024-00002")
	p.AuthorizedBy = "treasurer@gym.sr"

	m.staff.EXPECT().AuthorizeCustody(gomock.Any(), "S900").Return(treasurer, nil)
	m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00002").Return(p, nil)
	m.handovers.EXPECT().FindByPayment(gomock.Any(), "ACC-PAY-2024-00002").Return(nil, nil)
	m.handovers.EXPECT().CreateDraft(gomock.Any(), gomock.Any()).Return("PH-0011", nil)
	m.handovers.EXPECT().SubmitDraft(gomock.Any(), "PH-0011").Return(&domain.HandoverRecord{ID: "PH-0011"}, nil)

	rec, err := service.Confirm(context.Background(), "ACC-PAY-2024-00002", "S900", "")
	require.NoError(t, err)
	assert.Equal(t, rec.ReceivedBy, rec.TransferredTo)
}

func TestListPending(t *testing.T) {
	service, m := NewMock(t)

	p2 := submittedPayment("ACC-PAY-2024-00002")
	p2.Allocations = nil
	p3 := submittedPayment("ACC-PAY-2024-00003")
	p3.AuthorizedBy = ""
	p3.Allocations = nil

	m.handovers.EXPECT().ListSubmitted(gomock.Any()).
		Return([]domain.HandoverRecord{{ID: "PH-0001", PaymentID: "ACC-PAY-2024-00001"}}, nil)
	p1 := submittedPayment("ACC-PAY-2024-00001")
	m.payments.EXPECT().ListReceived(gomock.Any(), domain.PaymentFilter{}).
		Return([]domain.Payment{*p1, *p2, *p3}, nil)
	m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00002").Return(submittedPayment("ACC-PAY-2024-00002"), nil)
	m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00003").Return(nil, domain.ErrUpstreamTimeout)
	m.users.EXPECT().FullName(gomock.Any(), "coach@gym.sr").Return("Cody Coach", nil).Times(1)
	m.users.EXPECT().FullName(gomock.Any(), "api@gym.sr").Return("", errors.New("boom")).Times(1)

	views, err := service.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, "ACC-PAY-2024-00002", views[0].Payment.ID)
	assert.Equal(t, domain.HandoverPending, views[0].Status)
	assert.Equal(t, []string{"INV-001"}, views[0].InvoiceIDs)
	assert.Equal(t, "Cody Coach", views[0].ReceivedByName)

	assert.Equal(t, []string{}, views[1].InvoiceIDs)
	assert.Equal(t, "Unknown", views[1].ReceivedByName)
}

func TestListPending_Error(t *testing.T) {
	service, m := NewMock(t)
	m.handovers.EXPECT().ListSubmitted(gomock.Any()).Return(nil, domain.ErrUpstreamUnavailable)

	_, err := service.ListPending(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestHistory(t *testing.T) {
	service, m := NewMock(t)

	inWindowHanded := submittedPayment("ACC-PAY-2024-00002")
	inWindowPending := submittedPayment("ACC-PAY-2024-00003")
	old := submittedPayment("ACC-PAY-2023-00001")

	m.handovers.EXPECT().ListSubmitted(gomock.Any()).Return([]domain.HandoverRecord{
		{ID: "PH-0002", PaymentID: "ACC-PAY-2024-00002", ReceivedBy: "coach@gym.sr", TransferredTo: "treasurer@gym.sr", Status: domain.HandoverTransferred},
		{ID: "PH-0001", PaymentID: "ACC-PAY-2023-00001", ReceivedBy: "coach@gym.sr", TransferredTo: "treasurer@gym.sr", Status: domain.HandoverTransferred},
	}, nil)
	m.payments.EXPECT().ListReceived(gomock.Any(), domain.PaymentFilter{Since: now.AddDate(0, 0, -30)}).
		Return([]domain.Payment{*inWindowHanded, *inWindowPending}, nil)
	m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00002").Return(inWindowHanded, nil)
	m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2024-00003").Return(inWindowPending, nil)
	m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2023-00001").Return(old, nil)
	m.users.EXPECT().FullName(gomock.Any(), "coach@gym.sr").Return("Cody Coach", nil).MinTimes(1)
	m.users.EXPECT().FullName(gomock.Any(), "treasurer@gym.sr").Return("Tess Reyes", nil).MinTimes(1)

	views, err := service.History(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, domain.HandoverTransferred, views[0].Status)
	assert.Equal(t, "PH-0002", views[0].Handover.ID)
	assert.Equal(t, "Tess Reyes", views[0].TransferredToName)

	assert.Equal(t, domain.HandoverPending, views[1].Status)
	assert.Nil(t, views[1].Handover)
	assert.Empty(t, views[1].TransferredToName)

	assert.Equal(t, "ACC-PAY-2023-00001", views[2].Payment.ID)
	assert.Equal(t, domain.HandoverTransferred, views[2].Status)
	assert.Equal(t, []string{"INV-001"}, views[2].InvoiceIDs)
	assert.Equal(t, "Cody Coach", views[2].ReceivedByName)
}

func TestHistory_InvalidDays(t *testing.T) {
	service, _ := NewMock(t)

	for _, days := range []int{-1, 367} {
		_, err := service.History(context.Background(), days)
		assert.ErrorIs(t, err, ErrInvalidDays)
	}
}

func TestHistory_MissingHandedOverPayment(t *testing.T) {
	service, m := NewMock(t)

	m.handovers.EXPECT().ListSubmitted(gomock.Any()).Return([]domain.HandoverRecord{
		{ID: "PH-0001", PaymentID: "ACC-PAY-2023-00001", TransferredTo: "treasurer@gym.sr"},
	}, nil)
	m.payments.EXPECT().ListReceived(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.payments.EXPECT().Get(gomock.Any(), "ACC-PAY-2023-00001").Return(nil, nil)

	views, err := service.History(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, views)
}
