package growth

import (
	"fmt"
	"strings"
)

// Metric identifica la magnitud física registrada.
// @Enum weight, height
type Metric string

const (
	MetricWeight Metric = "weight"
	MetricHeight Metric = "height"
)

// Metrics en orden fijo (se usa también como orden de locks).
var Metrics = []Metric{MetricWeight, MetricHeight}

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidMetric, s)
	}
	return m, nil
}

func (m Metric) Valid() bool {
	return m == MetricWeight || m == MetricHeight
}

// Unit devuelve la unidad con la que se muestran los valores.
func (m Metric) Unit() string {
	switch m {
	case MetricWeight:
		return "kg"
	case MetricHeight:
		return "cm"
	default:
		return ""
	}
}

// Severity indica la urgencia visual de una banda.
type Severity string

const (
	SeverityNormal  Severity = "normal"
	SeverityCaution Severity = "caution"
	SeverityAlert   Severity = "alert"
)
