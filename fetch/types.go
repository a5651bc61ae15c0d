// Package fetch is the page-fetch layer that sits on top of urlutil. It turns
// a parsed URL into a raw HTTP/1.1 exchange: dial host:port, write the request
// line built from path and search part, read the response.
package fetch

import (
	"errors"
	"net/http"
	"time"

	"github.com/jongio/browser-core/urlutil"
)

const (
	// DefaultTimeout bounds a whole fetch, dial through body read.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxBodySize caps how much of a response body is kept.
	DefaultMaxBodySize = 1024 * 1024 // 1MB

	// DefaultUserAgent is sent when Options.UserAgent is empty.
	DefaultUserAgent = "urlcore/0.1"

	defaultBreakerFailures = 5
	defaultBreakerTimeout  = 30 * time.Second
)

var (
	// ErrCircuitOpen is returned while the breaker for an address is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrUnsafeRequest is returned when a host, path or searchpart holds a
	// space or control byte that would corrupt the request line or headers.
	ErrUnsafeRequest = errors.New("unsafe character in request")
)

// Options configures a Client.
type Options struct {
	Timeout                time.Duration
	UserAgent              string
	MaxBodySize            int64
	RateLimit              int // requests per second per address; 0 disables
	EnableCircuitBreaker   bool
	CircuitBreakerFailures int // requests before the breaker may trip; negative never trips
	CircuitBreakerTimeout  time.Duration
	EnableMetrics          bool
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{
		Timeout:                DefaultTimeout,
		UserAgent:              DefaultUserAgent,
		MaxBodySize:            DefaultMaxBodySize,
		EnableCircuitBreaker:   true,
		CircuitBreakerFailures: defaultBreakerFailures,
		CircuitBreakerTimeout:  defaultBreakerTimeout,
	}
}

// Response is the outcome of a fetch.
type Response struct {
	URL        urlutil.URL   `json:"url"`
	StatusCode int           `json:"statusCode"`
	Status     string        `json:"status"`
	Header     http.Header   `json:"header,omitempty"`
	Body       []byte        `json:"-"`
	Truncated  bool          `json:"truncated,omitempty"`
	Duration   time.Duration `json:"duration"`
}
