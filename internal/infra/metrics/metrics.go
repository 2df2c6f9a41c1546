// Package metrics provides Prometheus metric collection for the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the usecase and middleware layers report through.
type Recorder interface {
	RecordRegistration(success bool)
	RecordSignIn(success bool)
	RecordTokenValidationFailure(kind string)
	RecordBookMutation(operation string)
}

// Collector implements Recorder backed by Prometheus counters.
type Collector struct {
	registrations *prometheus.CounterVec
	signIns       *prometheus.CounterVec
	tokenFailures *prometheus.CounterVec
	bookMutations *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with the given registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookstore_registrations_total",
			Help: "Registration attempts by outcome",
		}, []string{"outcome"}),
		signIns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookstore_signins_total",
			Help: "Sign-in attempts by outcome",
		}, []string{"outcome"}),
		tokenFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookstore_token_validation_failures_total",
			Help: "Token validation failures by kind",
		}, []string{"kind"}),
		bookMutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookstore_book_mutations_total",
			Help: "Book mutations by operation",
		}, []string{"operation"}),
	}

	reg.MustRegister(
		c.registrations,
		c.signIns,
		c.tokenFailures,
		c.bookMutations,
	)

	return c
}

// RecordRegistration records a registration attempt.
func (c *Collector) RecordRegistration(success bool) {
	c.registrations.WithLabelValues(outcome(success)).Inc()
}

// RecordSignIn records a sign-in attempt.
func (c *Collector) RecordSignIn(success bool) {
	c.signIns.WithLabelValues(outcome(success)).Inc()
}

// RecordTokenValidationFailure records a token validation failure by kind.
func (c *Collector) RecordTokenValidationFailure(kind string) {
	c.tokenFailures.WithLabelValues(kind).Inc()
}

// RecordBookMutation records a completed book mutation.
func (c *Collector) RecordBookMutation(operation string) {
	c.bookMutations.WithLabelValues(operation).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}

	return "failure"
}

// Handler returns the HTTP handler exposing the registry's metrics.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
