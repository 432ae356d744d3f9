package profile

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"infant-growth/internal/domain/growth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/profile", func(pr chi.Router) {
		pr.Get("/", getProfileHandler(svc))
		pr.Put("/", replaceProfileHandler(svc))
		pr.Patch("/", patchProfileHandler(svc))
	})
}

type profileRequest struct {
	Name        string  `json:"name"`
	LastName    string  `json:"last_name"`
	DateOfBirth string  `json:"date_of_birth"` // YYYY-MM-DD
	BirthWeight float64 `json:"birth_weight"`  // kg
	BirthHeight float64 `json:"birth_height"`  // cm
	Avatar      string  `json:"avatar"`
}

type patchProfileRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name        *string  `json:"name"`
	LastName    *string  `json:"last_name"`
	DateOfBirth *string  `json:"date_of_birth"`
	BirthWeight *float64 `json:"birth_weight"`
	BirthHeight *float64 `json:"birth_height"`
	Avatar      *string  `json:"avatar"`
}

type profileResponse struct {
	Name        string    `json:"name"`
	LastName    string    `json:"last_name"`
	FullName    string    `json:"full_name"`
	DateOfBirth string    `json:"date_of_birth"`
	AgeMonths   int       `json:"age_months"`
	BirthWeight float64   `json:"birth_weight"`
	BirthHeight float64   `json:"birth_height"`
	Avatar      string    `json:"avatar,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// getProfileHandler godoc
// @Summary Obtener perfil del bebé
// @Tags profile
// @Produce json
// @Success 200 {object} profileResponse
// @Failure 404 {string} string "profile not found"
// @Router /profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(p, svc.now()))
	}
}

// replaceProfileHandler godoc
// @Summary Crear o reemplazar el perfil
// @Description Guarda el perfil completo. La fecha de nacimiento y las medidas al nacer alimentan la clasificación cuando no hay historial.
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body profileRequest true "Perfil completo"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /profile [put]
func replaceProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req profileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Replace(r.Context(), Input{
			Name:        req.Name,
			LastName:    req.LastName,
			DateOfBirth: req.DateOfBirth,
			BirthWeight: req.BirthWeight,
			BirthHeight: req.BirthHeight,
			Avatar:      req.Avatar,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p, svc.now()))
	}
}

// patchProfileHandler godoc
// @Summary Editar el perfil
// @Description Actualiza solo los campos enviados. Campos desconocidos se rechazan.
// @Tags profile
// @Accept json
// @Produce json
// @Param payload body patchProfileRequest true "Campos a modificar"
// @Success 200 {object} profileResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "profile not found"
// @Router /profile [patch]
func patchProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req patchProfileRequest
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Patch(r.Context(), PatchInput{
			Name:        req.Name,
			LastName:    req.LastName,
			DateOfBirth: req.DateOfBirth,
			BirthWeight: req.BirthWeight,
			BirthHeight: req.BirthHeight,
			Avatar:      req.Avatar,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toProfileResponse(p, svc.now()))
	}
}

func toProfileResponse(p Profile, now time.Time) profileResponse {
	return profileResponse{
		Name:        p.Name,
		LastName:    p.LastName,
		FullName:    p.FullName(),
		DateOfBirth: growth.FormatDate(p.DateOfBirth),
		AgeMonths:   growth.AgeInMonths(p.DateOfBirth, growth.DateOf(now)),
		BirthWeight: p.BirthWeight,
		BirthHeight: p.BirthHeight,
		Avatar:      p.Avatar,
		UpdatedAt:   p.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
