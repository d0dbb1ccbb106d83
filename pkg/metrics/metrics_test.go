package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.PaymentSubmitted(decimal.RequireFromString("400.00"))
	m.PaymentSubmitted(decimal.RequireFromString("200.50"))
	m.PaymentFailed("rejected")
	m.Handover("confirmed")
	m.Reconciled("deleted")
	m.ObserveERP("get Customer", 200, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.payments.WithLabelValues("submitted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.payments.WithLabelValues("rejected")))
	assert.InDelta(t, 600.50, testutil.ToFloat64(m.paymentAmount), 0.001)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.handovers.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reconciledRuns.WithLabelValues("deleted")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.erpDuration))
}

func TestMetrics_Sessions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.RegisterSessions(reg, func() int { return 3 })

	families, err := reg.Gather()
	require.NoError(t, err)
	var found bool
	for _, f := range families {
		if f.GetName() == "frontdesk_payment_sessions" {
			found = true
			assert.Equal(t, 3.0, f.GetMetric()[0].GetGauge().GetValue())
		}
	}
	assert.True(t, found)
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.PaymentSubmitted(decimal.NewFromInt(1))
		m.PaymentFailed("rejected")
		m.Handover("confirmed")
		m.Reconciled("deleted")
		m.ObserveERP("get", 0, time.Second)
		m.RegisterSessions(prometheus.NewRegistry(), func() int { return 0 })
	})
}
