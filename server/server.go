// Package server exposes the URL parser over HTTP.
//
// Routes:
//
//	GET /parse?url=<raw>[&normalize=true]  decomposed URL as JSON
//	GET /metrics                           Prometheus metrics
//	GET /health                            liveness
package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jongio/browser-core/logutil"
	"github.com/jongio/browser-core/metrics"
	"github.com/jongio/browser-core/urlutil"
	"golang.org/x/time/rate"
)

// Options configures the handler.
type Options struct {
	// RateLimit caps /parse requests per second across all clients; 0 disables.
	RateLimit int
}

type errorResponse struct {
	Error string `json:"error"`
}

type handler struct {
	limiter *rate.Limiter
	log     *logutil.ComponentLogger
}

// NewHandler returns the routed handler.
func NewHandler(opts Options) http.Handler {
	h := &handler{log: logutil.NewLogger("server")}
	if opts.RateLimit > 0 {
		h.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), opts.RateLimit*2)
	}

	mux := metrics.NewServeMux()
	mux.HandleFunc("GET /parse", h.parse)
	return mux
}

func (h *handler) parse(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil && !h.limiter.Allow() {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "rate limit exceeded"})
		return
	}

	query := r.URL.Query()
	if !query.Has("url") {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing url parameter"})
		return
	}

	raw := query.Get("url")
	if normalize, _ := strconv.ParseBool(query.Get("normalize")); normalize {
		raw = urlutil.NormalizeScheme(raw)
	}

	u, err := urlutil.Parse(raw)
	metrics.RecordParse(err)
	if err != nil {
		h.log.Debug("rejected", "url", raw, "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, u)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
