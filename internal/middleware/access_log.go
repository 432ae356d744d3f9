package middleware

import (
	"net/http"
	"time"

	"infant-growth/internal/platform/logger"
	"infant-growth/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// AccessLog registra una línea por request y alimenta las métricas HTTP.
// m puede ser nil.
func AccessLog(log logger.Logger, m *metrics.Metrics) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	log = logger.WithComponent(log, "http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			route := routePattern(r)

			m.ObserveHTTP(r.Method, route, status, elapsed)

			fields := map[string]any{
				logger.FieldRequestID: chimw.GetReqID(r.Context()),
				"method":              r.Method,
				"path":                r.URL.Path,
				"route":               route,
				"status":              status,
				"bytes":               ww.BytesWritten(),
				"duration_ms":         elapsed.Milliseconds(),
			}
			switch {
			case status >= 500:
				log.Error("request", fields)
			case status >= 400:
				log.Warn("request", fields)
			default:
				log.Info("request", fields)
			}
		})
	}
}

// routePattern usa el patrón de chi (/growth/{metric}) para no explotar
// la cardinalidad de las métricas con ids.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
