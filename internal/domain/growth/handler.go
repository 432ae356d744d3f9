package growth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	// Resumen para la pantalla de inicio (peso + talla + edad)
	r.Get("/growth/summary", summaryHandler(svc))

	r.Route("/growth/{metric}", func(gr chi.Router) {
		gr.Get("/", listRecordsHandler(svc))
		gr.Post("/", createRecordHandler(svc))
		gr.Get("/status", statusHandler(svc))

		gr.Get("/{recordID}", getRecordHandler(svc))
		gr.Put("/{recordID}", updateRecordHandler(svc))
		gr.Delete("/{recordID}", deleteRecordHandler(svc))
	})

	// Tabla de referencia (para superponer curvas en el gráfico)
	r.Get("/standards/{metric}", standardsHandler(svc))
}

// recordRequest es el cuerpo para crear o actualizar una medición.
type recordRequest struct {
	ID    string  `json:"id,omitempty"` // solo en create, opcional
	Date  string  `json:"date"`         // YYYY-MM-DD
	Value float64 `json:"value"`
}

// recordResponse representa una medición del historial.
type recordResponse struct {
	ID     string  `json:"id"`
	Metric Metric  `json:"metric"`
	Date   string  `json:"date"`
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
}

// statusResponse es el valor actual de una métrica con su banda de percentil.
type statusResponse struct {
	Metric     Metric   `json:"metric"`
	Value      float64  `json:"value"`
	Unit       string   `json:"unit"`
	Date       string   `json:"date"`
	AgeMonths  int      `json:"age_months"`
	Band       string   `json:"band" enums:"<P3,P3-15,P15-50,P50,P50-85,P85-97,>P97"`
	ShortLabel string   `json:"short_label" enums:"P3,P15,P50,P85,P97"`
	Severity   Severity `json:"severity" enums:"normal,caution,alert"`
	FromBirth  bool     `json:"from_birth"`
}

type summaryResponse struct {
	AgeMonths int            `json:"age_months"`
	Weight    statusResponse `json:"weight"`
	Height    statusResponse `json:"height"`
}

type standardsResponse struct {
	Metric Metric        `json:"metric"`
	Unit   string        `json:"unit"`
	Rows   []StandardRow `json:"rows"`
}

// listRecordsHandler godoc
// @Summary Listar historial de una métrica
// @Description Devuelve todas las mediciones de la métrica ordenadas por fecha ascendente (para el gráfico). Con `order=desc` se invierte (para la lista).
// @Tags growth
// @Produce json
// @Param metric path string true "weight | height"
// @Param order query string false "asc (default) | desc"
// @Success 200 {array} recordResponse
// @Failure 400 {string} string "invalid metric"
// @Router /growth/{metric} [get]
func listRecordsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := ParseMetric(chi.URLParam(r, "metric"))
		if err != nil {
			writeError(w, err)
			return
		}

		items, err := svc.List(r.Context(), m)
		if err != nil {
			writeError(w, err)
			return
		}

		desc := strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("order")), "desc")

		out := make([]recordResponse, 0, len(items))
		for i := range items {
			rec := items[i]
			if desc {
				rec = items[len(items)-1-i]
			}
			out = append(out, toRecordResponse(rec))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// createRecordHandler godoc
// @Summary Registrar una medición
// @Description Agrega una medición de peso (kg) o talla (cm). Si no se envía `id`, el servidor genera uno.
// @Tags growth
// @Accept json
// @Produce json
// @Param metric path string true "weight | height"
// @Param payload body recordRequest true "Fecha YYYY-MM-DD y valor positivo"
// @Success 201 {object} recordResponse
// @Failure 400 {string} string "invalid json / invalid date / invalid measurement value"
// @Failure 409 {string} string "duplicate record id"
// @Router /growth/{metric} [post]
func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := ParseMetric(chi.URLParam(r, "metric"))
		if err != nil {
			writeError(w, err)
			return
		}

		var req recordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), m, CreateInput{
			ID:    req.ID,
			Date:  req.Date,
			Value: req.Value,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toRecordResponse(rec))
	}
}

// getRecordHandler godoc
// @Summary Obtener una medición
// @Tags growth
// @Produce json
// @Param metric path string true "weight | height"
// @Param recordID path string true "ID de la medición"
// @Success 200 {object} recordResponse
// @Failure 404 {string} string "record not found"
// @Router /growth/{metric}/{recordID} [get]
func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := ParseMetric(chi.URLParam(r, "metric"))
		if err != nil {
			writeError(w, err)
			return
		}

		rec, err := svc.Get(r.Context(), m, chi.URLParam(r, "recordID"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// updateRecordHandler godoc
// @Summary Editar una medición
// @Description Reemplaza fecha y valor de la medición (el id se conserva). El historial se reordena por fecha.
// @Tags growth
// @Accept json
// @Produce json
// @Param metric path string true "weight | height"
// @Param recordID path string true "ID de la medición"
// @Param payload body recordRequest true "Fecha YYYY-MM-DD y valor positivo"
// @Success 200 {object} recordResponse
// @Failure 400 {string} string "invalid json / invalid date / invalid measurement value"
// @Failure 404 {string} string "record not found"
// @Router /growth/{metric}/{recordID} [put]
func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := ParseMetric(chi.URLParam(r, "metric"))
		if err != nil {
			writeError(w, err)
			return
		}

		var req recordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Update(r.Context(), m, chi.URLParam(r, "recordID"), UpdateInput{
			Date:  req.Date,
			Value: req.Value,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toRecordResponse(rec))
	}
}

// deleteRecordHandler godoc
// @Summary Eliminar una medición
// @Tags growth
// @Param metric path string true "weight | height"
// @Param recordID path string true "ID de la medición"
// @Success 204
// @Failure 404 {string} string "record not found"
// @Router /growth/{metric}/{recordID} [delete]
func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := ParseMetric(chi.URLParam(r, "metric"))
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Delete(r.Context(), m, chi.URLParam(r, "recordID")); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// statusHandler godoc
// @Summary Valor actual y percentil
// @Description Toma la última medición de la métrica (o el valor de nacimiento si no hay historial) y la clasifica contra la tabla OMS.
// @Tags growth
// @Produce json
// @Param metric path string true "weight | height"
// @Success 200 {object} statusResponse
// @Failure 400 {string} string "invalid metric"
// @Failure 404 {string} string "birth profile not set"
// @Router /growth/{metric}/status [get]
func statusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := ParseMetric(chi.URLParam(r, "metric"))
		if err != nil {
			writeError(w, err)
			return
		}

		st, err := svc.Status(r.Context(), m)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toStatusResponse(st))
	}
}

// summaryHandler godoc
// @Summary Resumen de salud
// @Description Estado actual de peso y talla más la edad del bebé en meses.
// @Tags growth
// @Produce json
// @Success 200 {object} summaryResponse
// @Failure 404 {string} string "birth profile not set"
// @Router /growth/summary [get]
func summaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sum, err := svc.Summary(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, summaryResponse{
			AgeMonths: sum.AgeMonths,
			Weight:    toStatusResponse(sum.Weight),
			Height:    toStatusResponse(sum.Height),
		})
	}
}

// standardsHandler godoc
// @Summary Tabla de referencia
// @Description Filas P3/P15/P50/P85/P97 por edad en meses para la métrica.
// @Tags standards
// @Produce json
// @Param metric path string true "weight | height"
// @Success 200 {object} standardsResponse
// @Failure 400 {string} string "invalid metric"
// @Router /standards/{metric} [get]
func standardsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := ParseMetric(chi.URLParam(r, "metric"))
		if err != nil {
			writeError(w, err)
			return
		}

		rows, err := svc.Standards(m)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, standardsResponse{Metric: m, Unit: m.Unit(), Rows: rows})
	}
}

func toRecordResponse(r Record) recordResponse {
	return recordResponse{
		ID:     r.ID,
		Metric: r.Metric,
		Date:   FormatDate(r.Date),
		Value:  r.Value,
		Unit:   r.Metric.Unit(),
	}
}

func toStatusResponse(s Status) statusResponse {
	return statusResponse{
		Metric:     s.Metric,
		Value:      s.Value,
		Unit:       s.Metric.Unit(),
		Date:       FormatDate(s.Date),
		AgeMonths:  s.AgeMonths,
		Band:       s.Band.String(),
		ShortLabel: s.ShortLabel,
		Severity:   s.Severity,
		FromBirth:  s.FromBirth,
	}
}

// writeError traduce los errores del dominio a status HTTP.
// NotFound/DuplicateID suelen indicar un id viejo del lado del cliente.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidMetric),
		errors.Is(err, ErrInvalidValue),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
	case errors.Is(err, ErrDuplicateID):
		http.Error(w, "duplicate record id", http.StatusConflict)
	case errors.Is(err, ErrNoProfile):
		http.Error(w, "birth profile not set", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
