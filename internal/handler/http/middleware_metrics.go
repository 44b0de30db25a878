package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that did not match any registered route,
// keeping the label cardinality bounded.
const unmatchedRoute = "unmatched"

// withMetrics records request count and latency per route pattern.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		h.metrics.RecordHTTPRequest(r.Method, route, mw.statusCode(), time.Since(start).Seconds())
	})
}
