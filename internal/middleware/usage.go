package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"massive-gateway/internal/model"
	"massive-gateway/internal/service"
)

// Usage records every data request (matched route pattern, status and
// latency) through the usage service. Disabled services make this a
// passthrough.
func Usage(usage *service.UsageService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if usage == nil || !usage.Enabled() {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			endpoint := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					endpoint = pattern
				}
			}

			usage.Record(model.UsageEntry{
				OccurredAt: started.UTC().Format(time.RFC3339Nano),
				Endpoint:   endpoint,
				Method:     r.Method,
				Status:     wrapped.status,
				DurationMS: time.Since(started).Milliseconds(),
				ClientIP:   extractClientIP(r),
				RequestID:  w.Header().Get(requestIDHeader),
			})
		})
	}
}
