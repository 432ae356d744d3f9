package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"infant-growth/internal/platform/logger"
	"infant-growth/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/require"
)

func bufLogger(buf *bytes.Buffer) logger.Logger {
	return logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatText, Writer: buf})
}

func TestRecover_LogsAndReturns500(t *testing.T) {
	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(Recover(bufLogger(&buf)))
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaput") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, buf.String(), "panic recovered")
	require.Contains(t, buf.String(), "panic=kaput")
}

func TestRequestIDHeader_EchoesID(t *testing.T) {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestIDHeader)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(chimw.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, "abc-123", rec.Header().Get(chimw.RequestIDHeader))
}

func TestAccessLog_UsesRoutePattern(t *testing.T) {
	var buf bytes.Buffer
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(AccessLog(bufLogger(&buf), m))
	r.Get("/growth/{metric}", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid metric", http.StatusBadRequest)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/growth/bmi", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	line := strings.TrimSpace(buf.String())
	require.Contains(t, line, "level=warn")
	require.Contains(t, line, "component=http")
	require.Contains(t, line, "route=/growth/{metric}")
	require.Contains(t, line, "status=400")

	// la ruta en métricas también es el patrón
	mrec := httptest.NewRecorder()
	m.Handler().ServeHTTP(mrec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Contains(t, mrec.Body.String(), `route="/growth/{metric}"`)
}
