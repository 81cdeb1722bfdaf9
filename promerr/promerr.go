// Package promerr counts observed openapierror instances with Prometheus.
package promerr

import (
	"strconv"

	openapierror "github.com/QuisEgoSum/openapi-error"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	// UnknownName is the error label for errors that are not instances.
	UnknownName = "unknown"
	// UnknownHTTPCode is the http_code label for errors that are not instances.
	UnknownHTTPCode = "500"
)

// Metrics records observed errors.
type Metrics struct {
	errors *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		errors: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "openapi_errors_total",
				Help: "Total number of observed errors by error type and HTTP status",
			},
			[]string{"error", "http_code"},
		),
	}
}

// Observe increments the counter for err. Nil errors are ignored.
func (m *Metrics) Observe(err error) {
	if err == nil {
		return
	}
	m.errors.WithLabelValues(Labels(err)).Inc()
}

// Labels returns the error and http_code label values for err.
func Labels(err error) (name, httpCode string) {
	e, ok := openapierror.As(err)
	if !ok {
		return UnknownName, UnknownHTTPCode
	}
	return e.Name(), strconv.Itoa(e.HTTPCode())
}

// Collector returns the underlying collector.
func (m *Metrics) Collector() prometheus.Collector {
	return m.errors
}
