package growth

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout es el formato de fecha calendario usado en toda la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Record es una medición registrada para una métrica.
// Date siempre es medianoche UTC (sin componente horario).
type Record struct {
	ID     string
	Metric Metric
	Date   time.Time
	Value  float64
}

// BirthProfile es lo mínimo que el tracker necesita del perfil del bebé.
type BirthProfile struct {
	DateOfBirth time.Time
	BirthWeight float64
	BirthHeight float64
}

// BirthValue devuelve el valor al nacer para la métrica.
func (p BirthProfile) BirthValue(m Metric) (float64, error) {
	switch m {
	case MetricWeight:
		return p.BirthWeight, nil
	case MetricHeight:
		return p.BirthHeight, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMetric, m)
	}
}

// ParseDate parsea YYYY-MM-DD y lo normaliza a medianoche UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q must be YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t, nil
}

// DateOf descarta la hora y la zona: conserva el día calendario visto en t.Location().
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ValidateValue rechaza valores no finitos o no positivos.
func ValidateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidValue, v)
	}
	return nil
}

func (r Record) validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return fmt.Errorf("%w: record id required", ErrInvalidInput)
	}
	if !r.Metric.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMetric, r.Metric)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date required", ErrInvalidDate)
	}
	return ValidateValue(r.Value)
}
