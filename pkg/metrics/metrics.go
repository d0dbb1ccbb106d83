// Package metrics holds the prometheus collectors of the service. A nil *Metrics is valid
// and records nothing.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const namespace = "frontdesk"

type Metrics struct {
	payments       *prometheus.CounterVec
	paymentAmount  prometheus.Counter
	handovers      *prometheus.CounterVec
	erpDuration    *prometheus.HistogramVec
	reconciledRuns *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		payments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_total",
			Help:      "Payment submissions by outcome.",
		}, []string{"outcome"}),
		paymentAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payment_amount_total",
			Help:      "Sum of successfully submitted payment amounts.",
		}),
		handovers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handovers_total",
			Help:      "Handover confirmations by outcome.",
		}, []string{"outcome"}),
		erpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "erp_request_duration_seconds",
			Help:      "Latency of ERP requests.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "status"}),
		reconciledRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconciled_attempts_total",
			Help:      "Orphaned payment attempts processed by the reconciler, by result.",
		}, []string{"result"}),
	}
	reg.MustRegister(m.payments, m.paymentAmount, m.handovers, m.erpDuration, m.reconciledRuns)
	return m
}

// RegisterSessions exposes the live session count through fn.
func (m *Metrics) RegisterSessions(reg prometheus.Registerer, fn func() int) {
	if m == nil {
		return
	}
	reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "payment_sessions",
		Help:      "Payment sessions currently held in memory.",
	}, func() float64 { return float64(fn()) }))
}

func (m *Metrics) PaymentSubmitted(amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues("submitted").Inc()
	m.paymentAmount.Add(amount.InexactFloat64())
}

func (m *Metrics) PaymentFailed(outcome string) {
	if m == nil {
		return
	}
	m.payments.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Handover(outcome string) {
	if m == nil {
		return
	}
	m.handovers.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Reconciled(result string) {
	if m == nil {
		return
	}
	m.reconciledRuns.WithLabelValues(result).Inc()
}

// ObserveERP matches erp.Observer.
func (m *Metrics) ObserveERP(op string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.erpDuration.WithLabelValues(op, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
