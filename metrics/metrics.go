// Package metrics exposes Prometheus instrumentation for URL parsing and
// page fetches, plus a small HTTP server that serves it.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jongio/browser-core/urlutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
)

// Parse results used as the "result" label.
const (
	ParseAccepted = "accepted"
	ParseRejected = "rejected"
)

var (
	parseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlcore_parse_total",
			Help: "Total number of URLs parsed, by result",
		},
		[]string{"result"},
	)

	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "urlcore_fetch_duration_seconds",
			Help:    "Duration of page fetches in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"address"},
	)

	fetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlcore_fetch_total",
			Help: "Total number of page fetches, by HTTP status code",
		},
		[]string{"address", "status_code"},
	)

	fetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urlcore_fetch_errors_total",
			Help: "Total number of failed page fetches",
		},
		[]string{"address", "error_type"},
	)

	circuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "urlcore_circuit_breaker_state",
			Help: "Circuit breaker state per address (0=closed, 1=half-open, 2=open)",
		},
		[]string{"address"},
	)
)

// RecordParse counts a parse outcome.
func RecordParse(err error) {
	result := ParseAccepted
	if err != nil {
		result = ParseRejected
	}
	parseTotal.WithLabelValues(result).Inc()
}

// RecordFetch records the duration and outcome of a fetch. statusCode is
// ignored when err is non-nil.
func RecordFetch(address string, statusCode int, duration time.Duration, err error) {
	fetchDuration.WithLabelValues(address).Observe(duration.Seconds())

	if err != nil {
		fetchErrors.WithLabelValues(address, ErrorType(err)).Inc()
		return
	}
	fetchTotal.WithLabelValues(address, strconv.Itoa(statusCode)).Inc()
}

// RecordCircuitBreakerState records the breaker state for an address.
func RecordCircuitBreakerState(address string, state gobreaker.State) {
	var value float64
	switch state {
	case gobreaker.StateClosed:
		value = 0
	case gobreaker.StateHalfOpen:
		value = 1
	case gobreaker.StateOpen:
		value = 2
	}
	circuitBreakerState.WithLabelValues(address).Set(value)
}

// ErrorType buckets an error into a low-cardinality label value.
func ErrorType(err error) string {
	switch {
	case errors.Is(err, urlutil.ErrUnsupportedScheme):
		return "unsupported_scheme"
	case errors.Is(err, urlutil.ErrInvalidPort):
		return "invalid_port"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_breaker"
	}

	msg := err.Error()
	switch {
	case containsAny(msg, "circuit breaker"):
		return "circuit_breaker"
	case containsAny(msg, "timeout", "deadline", "timed out"):
		return "timeout"
	case containsAny(msg, "connection refused", "no route", "unreachable"):
		return "connection_refused"
	case containsAny(msg, "context canceled", "canceled"):
		return "canceled"
	case containsAny(msg, "no such host"):
		return "dns"
	case containsAny(msg, "malformed HTTP", "unexpected EOF"):
		return "protocol"
	default:
		return "unknown"
	}
}

func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// NewServeMux returns a mux serving /metrics and /health.
func NewServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

// CreateServer creates a configured HTTP server for the given handler.
// A nil handler serves NewServeMux().
func CreateServer(addr string, handler http.Handler) *http.Server {
	if handler == nil {
		handler = NewServeMux()
	}
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
