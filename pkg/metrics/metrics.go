package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pension_api", Name: "login_attempts_total", Help: "Number of login attempts by flow and outcome."},
		[]string{"flow", "outcome"},
	)
	TokenVerifications = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "pension_api", Name: "token_verifications_total", Help: "Number of token verifications by outcome."},
		[]string{"outcome"},
	)
	ContactSubmissions = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "pension_api", Name: "contact_submissions_total", Help: "Number of accepted contact form submissions."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(LoginAttempts)
	reg.MustRegister(TokenVerifications)
	reg.MustRegister(ContactSubmissions)
}
