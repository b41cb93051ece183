package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for admin auth operations.
type Metrics struct {
	AdminsRegistered prometheus.Counter
	LoginAttempts    *prometheus.CounterVec
	TokensIssued     prometheus.Counter
	AuthFailures     prometheus.Counter
	LoginDurationMs  prometheus.Histogram
}

// Login outcome labels.
const (
	OutcomeSuccess            = "success"
	OutcomeAccountNotFound    = "account_not_found"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeAccountInactive    = "account_inactive"
	OutcomeError              = "error"
)

// New registers and returns admin auth metrics collectors.
func New() *Metrics {
	return &Metrics{
		AdminsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "admingate_admins_registered_total",
			Help: "Total number of admin accounts registered",
		}),
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "admingate_login_attempts_total",
			Help: "Total number of login attempts, labeled by outcome",
		}, []string{"outcome"}),
		TokensIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "admingate_tokens_issued_total",
			Help: "Total number of bearer tokens issued",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "admingate_auth_failures_total",
			Help: "Total number of rejected bearer tokens at the authorization filter",
		}),
		LoginDurationMs: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "admingate_login_duration_ms",
			Help:    "Duration of login operations in milliseconds",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000},
		}),
	}
}

// IncrementAdminsRegistered increments the registered admins counter by 1.
func (m *Metrics) IncrementAdminsRegistered() {
	if m == nil {
		return
	}
	m.AdminsRegistered.Inc()
}

// ObserveLogin records a login attempt outcome.
func (m *Metrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginAttempts.WithLabelValues(outcome).Inc()
}

// IncrementTokensIssued increments the issued tokens counter by 1.
func (m *Metrics) IncrementTokensIssued() {
	if m == nil {
		return
	}
	m.TokensIssued.Inc()
}

// IncrementAuthFailures increments the filter rejection counter by 1.
func (m *Metrics) IncrementAuthFailures() {
	if m == nil {
		return
	}
	m.AuthFailures.Inc()
}
