package growth

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// StandardRow es una fila de referencia: edad en meses cumplidos y umbrales de percentil.
type StandardRow struct {
	AgeMonths int     `yaml:"age_months" json:"age_months"`
	P3        float64 `yaml:"p3" json:"p3"`
	P15       float64 `yaml:"p15" json:"p15"`
	P50       float64 `yaml:"p50" json:"p50"`
	P85       float64 `yaml:"p85" json:"p85"`
	P97       float64 `yaml:"p97" json:"p97"`
}

// StandardTable guarda las filas de referencia por métrica.
// Es inmutable después de construirse: se comparte sin locks.
type StandardTable struct {
	rows map[Metric][]StandardRow
}

type tableFile struct {
	Weight []StandardRow `yaml:"weight"`
	Height []StandardRow `yaml:"height"`
}

//go:embed standards/who_boys.yaml
var whoBoysYAML []byte

var (
	defaultOnce  sync.Once
	defaultTable *StandardTable
)

// DefaultTable devuelve la tabla OMS embebida (niños, 0-60 meses).
// Se parsea una sola vez por proceso.
func DefaultTable() *StandardTable {
	defaultOnce.Do(func() {
		t, err := ParseTable(whoBoysYAML)
		if err != nil {
			panic(fmt.Sprintf("growth: embedded standards are invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// LoadTable lee una tabla desde un archivo YAML con el mismo formato que la embebida.
func LoadTable(path string) (*StandardTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read standards file: %w", err)
	}
	return ParseTable(data)
}

// ParseTable parsea y valida una tabla YAML.
func ParseTable(data []byte) (*StandardTable, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse standards: %w", err)
	}
	return NewStandardTable(map[Metric][]StandardRow{
		MetricWeight: f.Weight,
		MetricHeight: f.Height,
	})
}

// NewStandardTable copia las filas y verifica los invariantes:
// edades no negativas, estrictamente crecientes, y p3 < p15 < p50 < p85 < p97 positivos.
func NewStandardTable(rows map[Metric][]StandardRow) (*StandardTable, error) {
	t := &StandardTable{rows: make(map[Metric][]StandardRow, len(Metrics))}
	for _, m := range Metrics {
		in := rows[m]
		if len(in) == 0 {
			return nil, fmt.Errorf("standards: no rows for %s", m)
		}
		for i, r := range in {
			if r.AgeMonths < 0 {
				return nil, fmt.Errorf("standards: %s row %d: negative age_months", m, i)
			}
			if i > 0 && r.AgeMonths <= in[i-1].AgeMonths {
				return nil, fmt.Errorf("standards: %s row %d: age_months %d not ascending", m, i, r.AgeMonths)
			}
			if !(r.P3 > 0 && r.P3 < r.P15 && r.P15 < r.P50 && r.P50 < r.P85 && r.P85 < r.P97) {
				return nil, fmt.Errorf("standards: %s month %d: percentiles must be positive and increasing", m, r.AgeMonths)
			}
		}
		t.rows[m] = append([]StandardRow(nil), in...)
	}
	return t, nil
}

// RowsFor devuelve una copia de las filas de la métrica, ordenadas por edad.
func (t *StandardTable) RowsFor(m Metric) ([]StandardRow, error) {
	rows, ok := t.rows[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMetric, m)
	}
	return append([]StandardRow(nil), rows...), nil
}

// NearestRow devuelve la fila con edad más cercana a ageMonths.
// No interpola. En empate gana la primera fila de la tabla (la de menor edad).
func (t *StandardTable) NearestRow(m Metric, ageMonths int) (StandardRow, error) {
	rows, ok := t.rows[m]
	if !ok {
		return StandardRow{}, fmt.Errorf("%w: %q", ErrInvalidMetric, m)
	}

	best := rows[0]
	bestDiff := absInt(best.AgeMonths - ageMonths)
	for _, r := range rows[1:] {
		if d := absInt(r.AgeMonths - ageMonths); d < bestDiff {
			best, bestDiff = r, d
		}
	}
	return best, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
