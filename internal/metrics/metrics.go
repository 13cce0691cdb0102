// Package metrics collects and exposes Prometheus metrics for the auth
// service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login and registration outcomes used as label values.
const (
	OutcomeSuccess            = "success"
	OutcomeNotFound           = "not_found"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeInvalidData        = "invalid_data"
	OutcomeConflict           = "conflict"
	OutcomeError              = "error"
)

// MetricsCollector is used by the service and transport layers.
type MetricsCollector interface {
	RecordLogin(outcome string, duration time.Duration)
	RecordRegistration(outcome string)
	RecordHTTPStatus(statusCode int)
	RecordRateLimited()
}

// Collector is the Prometheus-backed [MetricsCollector].
type Collector struct {
	loginAttempts *prometheus.CounterVec
	loginLatency  prometheus.Histogram
	registrations *prometheus.CounterVec
	httpStatus    *prometheus.CounterVec
	rateLimited   prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		loginAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notes_auth_login_attempts_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		loginLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "notes_auth_login_latency_seconds",
			Help:    "Time spent handling a login attempt.",
			Buckets: prometheus.DefBuckets,
		}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notes_auth_registrations_total",
			Help: "Registration attempts by outcome.",
		}, []string{"outcome"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notes_auth_http_status_total",
			Help: "HTTP responses by status code.",
		}, []string{"status_code"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notes_auth_rate_limited_total",
			Help: "Requests rejected by the rate limiter.",
		}),
	}

	reg.MustRegister(
		c.loginAttempts,
		c.loginLatency,
		c.registrations,
		c.httpStatus,
		c.rateLimited,
	)

	return c
}

// RecordLogin counts a login attempt and observes its latency.
func (c *Collector) RecordLogin(outcome string, duration time.Duration) {
	c.loginAttempts.WithLabelValues(outcome).Inc()
	c.loginLatency.Observe(duration.Seconds())
}

// RecordRegistration counts a registration attempt.
func (c *Collector) RecordRegistration(outcome string) {
	c.registrations.WithLabelValues(outcome).Inc()
}

// RecordHTTPStatus counts a response by status code.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRateLimited counts a request rejected with 429.
func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop is a [MetricsCollector] that records nothing.
type Nop struct{}

func (Nop) RecordLogin(string, time.Duration) {}
func (Nop) RecordRegistration(string)         {}
func (Nop) RecordHTTPStatus(int)              {}
func (Nop) RecordRateLimited()                {}
