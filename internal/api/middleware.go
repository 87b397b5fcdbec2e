package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/morlord/builders-service/internal/observability/metrics"
	"github.com/morlord/builders-service/internal/observability/tracing"
)

// observabilityMiddleware stamps every request with a trace id and records
// its duration against the route pattern.
func observabilityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		r = r.WithContext(tracing.InjectTraceID(r.Context()))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		path := chi.RouteContext(r.Context()).RoutePattern()
		if path == "" {
			path = r.URL.Path
		}
		metrics.RecordApiRequestDuration(time.Since(start), r.Method, path, ww.Status())
	})
}
