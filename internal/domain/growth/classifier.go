package growth

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Band es la banda de percentil de una medición.
// El orden de las constantes es el orden total de bandas (de menor a mayor).
type Band int

const (
	BandBelowP3 Band = iota
	BandP3to15
	BandP15to50
	BandP50
	BandP50to85
	BandP85to97
	BandAboveP97
)

var bandLabels = [...]string{
	BandBelowP3:  "<P3",
	BandP3to15:   "P3-15",
	BandP15to50:  "P15-50",
	BandP50:      "P50",
	BandP50to85:  "P50-85",
	BandP85to97:  "P85-97",
	BandAboveP97: ">P97",
}

// Bands lista todas las bandas en orden.
var Bands = []Band{BandBelowP3, BandP3to15, BandP15to50, BandP50, BandP50to85, BandP85to97, BandAboveP97}

func (b Band) Valid() bool {
	return b >= BandBelowP3 && b <= BandAboveP97
}

func (b Band) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Band(%d)", int(b))
	}
	return bandLabels[b]
}

func (b Band) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

// ParseBand es la inversa de String.
func ParseBand(s string) (Band, error) {
	for _, b := range Bands {
		if bandLabels[b] == s {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown band %q", s)
}

// ShortLabel devuelve la etiqueta corta para mostrar.
func (b Band) ShortLabel() string {
	return ShortLabel(b.String())
}

// ShortLabel deriva la etiqueta corta buscando subcadenas, en este orden:
// "50", "85", "97", "15", "3". Los clientes dependen de esta precedencia
// (por eso "<P3" termina en "P3" y "P3-15" también).
func ShortLabel(label string) string {
	switch {
	case strings.Contains(label, "50"):
		return "P50"
	case strings.Contains(label, "85"):
		return "P85"
	case strings.Contains(label, "97"):
		return "P97"
	case strings.Contains(label, "15"):
		return "P15"
	case strings.Contains(label, "3"):
		return "P3"
	default:
		return label
	}
}

func (b Band) Severity() Severity {
	switch b {
	case BandP15to50, BandP50, BandP50to85:
		return SeverityNormal
	case BandP3to15, BandP85to97:
		return SeverityCaution
	default:
		return SeverityAlert
	}
}

// AgeInMonths cuenta meses cumplidos entre birth y measured.
// Si el día del mes de la medición es anterior al de nacimiento, ese mes no cuenta.
// Nunca es negativo: una medición anterior al nacimiento da 0.
func AgeInMonths(birth, measured time.Time) int {
	by, bm, bd := birth.Date()
	my, mm, md := measured.Date()

	months := (my-by)*12 + int(mm-bm)
	if md < bd {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// BandFor ubica value dentro de una fila de referencia.
func BandFor(row StandardRow, value float64) Band {
	switch {
	case value < row.P3:
		return BandBelowP3
	case value < row.P15:
		return BandP3to15
	case value < row.P50:
		return BandP15to50
	case value == row.P50:
		return BandP50
	case value < row.P85:
		return BandP50to85
	case value < row.P97:
		return BandP85to97
	default:
		return BandAboveP97
	}
}

// Classification es el resultado completo de clasificar una medición.
type Classification struct {
	AgeMonths int
	Row       StandardRow
	Band      Band
}

// Classify calcula la edad en meses, toma la fila más cercana y devuelve la banda.
// No valida que measured >= birth (ver AgeInMonths).
func Classify(t *StandardTable, birth, measured time.Time, value float64, m Metric) (Classification, error) {
	age := AgeInMonths(birth, measured)
	row, err := t.NearestRow(m, age)
	if err != nil {
		return Classification{}, err
	}
	return Classification{
		AgeMonths: age,
		Row:       row,
		Band:      BandFor(row, value),
	}, nil
}
