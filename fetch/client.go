package fetch

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jongio/browser-core/logutil"
	"github.com/jongio/browser-core/metrics"
	"github.com/jongio/browser-core/urlutil"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// errServerStatus marks 5xx responses as breaker failures. It never escapes Get.
var errServerStatus = errors.New("server error status")

// Client fetches pages over plain HTTP/1.1 with per-address rate limiting
// and circuit breaking. It is safe for concurrent use.
type Client struct {
	opts     Options
	dialer   *net.Dialer
	breakers map[string]*gobreaker.CircuitBreaker
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	log      *logutil.ComponentLogger
}

// NewClient creates a Client. Zero-valued options fall back to defaults.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = DefaultMaxBodySize
	}
	// One extra byte is read to detect truncation.
	if opts.MaxBodySize > math.MaxInt64-1 {
		opts.MaxBodySize = math.MaxInt64 - 1
	}
	if opts.CircuitBreakerFailures == 0 {
		opts.CircuitBreakerFailures = defaultBreakerFailures
	}
	if opts.CircuitBreakerTimeout <= 0 {
		opts.CircuitBreakerTimeout = defaultBreakerTimeout
	}

	return &Client{
		opts:     opts,
		dialer:   &net.Dialer{Timeout: opts.Timeout},
		breakers: make(map[string]*gobreaker.CircuitBreaker),
		limiters: make(map[string]*rate.Limiter),
		log:      logutil.NewLogger("fetch"),
	}
}

// getOrCreateCircuitBreaker returns the breaker for an address, or nil when
// breaking is disabled.
func (c *Client) getOrCreateCircuitBreaker(address string) *gobreaker.CircuitBreaker {
	if !c.opts.EnableCircuitBreaker {
		return nil
	}

	c.mu.RLock()
	breaker, exists := c.breakers[address]
	c.mu.RUnlock()
	if exists {
		return breaker
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if breaker, exists := c.breakers[address]; exists {
		return breaker
	}

	failures := c.opts.CircuitBreakerFailures
	settings := gobreaker.Settings{
		Name:        address,
		MaxRequests: 1,
		Interval:    c.opts.CircuitBreakerTimeout,
		Timeout:     c.opts.CircuitBreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if failures < 0 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= uint32(failures) && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("circuit breaker state change", "address", name, "from", from.String(), "to", to.String())
			if c.opts.EnableMetrics {
				metrics.RecordCircuitBreakerState(name, to)
			}
		},
	}

	breaker = gobreaker.NewCircuitBreaker(settings)
	c.breakers[address] = breaker
	return breaker
}

// getOrCreateRateLimiter returns the limiter for an address, or nil when
// rate limiting is disabled.
func (c *Client) getOrCreateRateLimiter(address string) *rate.Limiter {
	if c.opts.RateLimit <= 0 {
		return nil
	}

	c.mu.RLock()
	limiter, exists := c.limiters[address]
	c.mu.RUnlock()
	if exists {
		return limiter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if limiter, exists := c.limiters[address]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(c.opts.RateLimit), c.opts.RateLimit*2)
	c.limiters[address] = limiter
	return limiter
}

// Get parses raw and fetches it. Scheme rejections come back as
// urlutil.ErrUnsupportedScheme; a port that is not a number in 0-65535 is
// rejected with urlutil.ErrInvalidPort before dialing.
//
// A 5xx response is returned without error but counts as a failure for the
// address's circuit breaker.
func (c *Client) Get(ctx context.Context, raw string) (*Response, error) {
	u, err := urlutil.Parse(raw)
	if c.opts.EnableMetrics {
		metrics.RecordParse(err)
	}
	if err != nil {
		return nil, err
	}
	if _, err := u.PortNumber(); err != nil {
		return nil, fmt.Errorf("cannot dial %s: %w", u.Address(), err)
	}
	if err := checkRequestSafe(u); err != nil {
		return nil, err
	}

	address := u.Address()
	log := c.log.WithURL(raw)
	start := time.Now()

	resp, err := c.execute(ctx, u)

	duration := time.Since(start)
	if c.opts.EnableMetrics {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		metrics.RecordFetch(address, status, duration, err)
	}
	if err != nil {
		log.Debug("fetch failed", "address", address, "error", err)
		return nil, err
	}

	resp.Duration = duration
	log.Debug("fetch completed", "address", address, "status", resp.StatusCode, "bytes", len(resp.Body))
	return resp, nil
}

func (c *Client) execute(ctx context.Context, u urlutil.URL) (*Response, error) {
	address := u.Address()

	if limiter := c.getOrCreateRateLimiter(address); limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait for %s: %w", address, err)
		}
	}

	breaker := c.getOrCreateCircuitBreaker(address)
	if breaker == nil {
		return c.roundTrip(ctx, u)
	}

	output, err := breaker.Execute(func() (interface{}, error) {
		resp, err := c.roundTrip(ctx, u)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			return resp, errServerStatus
		}
		return resp, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w for %s: %w", ErrCircuitOpen, address, err)
	}
	if errors.Is(err, errServerStatus) {
		err = nil
	}
	if err != nil {
		return nil, err
	}

	resp, ok := output.(*Response)
	if !ok {
		return nil, fmt.Errorf("internal error: unexpected fetch result type %T", output)
	}
	return resp, nil
}

// roundTrip performs one request on a fresh connection.
func (c *Client) roundTrip(ctx context.Context, u urlutil.URL) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(ctx, "tcp", u.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", u.Address(), err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	if _, err := conn.Write(BuildRequest(u, c.opts.UserAgent)); err != nil {
		return nil, fmt.Errorf("failed to write request: %w", err)
	}

	httpResp, err := http.ReadResponse(bufio.NewReader(conn), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, c.opts.MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	resp := &Response{
		URL:        u,
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Header:     httpResp.Header,
		Body:       body,
	}
	if int64(len(body)) > c.opts.MaxBodySize {
		resp.Body = body[:c.opts.MaxBodySize]
		resp.Truncated = true
	}
	return resp, nil
}

// checkRequestSafe rejects components that cannot be written verbatim into
// a request line or Host header.
func checkRequestSafe(u urlutil.URL) error {
	for _, part := range []struct{ name, value string }{
		{"host", u.Host()},
		{"path", u.Path()},
		{"searchpart", u.Searchpart()},
	} {
		if i := strings.IndexFunc(part.value, isUnsafeRequestRune); i >= 0 {
			return fmt.Errorf("%s has %q at offset %d: %w", part.name, part.value[i], i, ErrUnsafeRequest)
		}
	}
	return nil
}

func isUnsafeRequestRune(r rune) bool {
	return r == ' ' || r < 0x20 || r == 0x7f
}

// BuildRequest renders the HTTP/1.1 GET request for u. The Host header
// omits the port when it is the default.
func BuildRequest(u urlutil.URL, userAgent string) []byte {
	host := u.Host()
	if u.Port() != urlutil.DefaultPort {
		host = u.Address()
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "GET %s HTTP/1.1\r\n", u.RequestTarget())
	fmt.Fprintf(&b, "Host: %s\r\n", host)
	fmt.Fprintf(&b, "User-Agent: %s\r\n", userAgent)
	b.WriteString("Accept: */*\r\n")
	b.WriteString("Connection: close\r\n")
	b.WriteString("\r\n")
	return b.Bytes()
}
