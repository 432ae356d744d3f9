package growth

import (
	"context"
	"fmt"
	"time"
)

// ProfileReader es el colaborador que aporta fecha y medidas de nacimiento.
// Se define acá para no importar el paquete profile (evita ciclos).
type ProfileReader interface {
	BirthProfile(ctx context.Context) (BirthProfile, error)
}

// Status es el "valor actual" de una métrica con su clasificación.
type Status struct {
	Metric     Metric
	Value      float64
	Date       time.Time
	AgeMonths  int
	Band       Band
	ShortLabel string
	Severity   Severity

	// FromBirth indica que no hay historial y se usó el valor de nacimiento.
	FromBirth bool
}

// Facade compone tabla, clasificador e historial para las vistas de lectura.
// No muta nada; se puede llamar concurrentemente.
type Facade struct {
	table    *StandardTable
	store    *HistoryStore
	profiles ProfileReader
}

func NewFacade(table *StandardTable, store *HistoryStore, profiles ProfileReader) *Facade {
	return &Facade{
		table:    table,
		store:    store,
		profiles: profiles,
	}
}

// CurrentStatus toma el último registro de la métrica (o el de nacimiento si no hay)
// y lo clasifica usando la fecha de nacimiento del perfil.
func (f *Facade) CurrentStatus(ctx context.Context, m Metric) (Status, error) {
	if !m.Valid() {
		return Status{}, fmt.Errorf("%w: %q", ErrInvalidMetric, m)
	}

	if f.profiles == nil {
		return Status{}, ErrNoProfile
	}
	bp, err := f.profiles.BirthProfile(ctx)
	if err != nil {
		return Status{}, fmt.Errorf("read birth profile: %w", err)
	}

	latest, ok, err := f.store.Latest(m)
	if err != nil {
		return Status{}, err
	}

	st := Status{Metric: m}
	if ok {
		st.Value = latest.Value
		st.Date = latest.Date
	} else {
		v, err := bp.BirthValue(m)
		if err != nil {
			return Status{}, err
		}
		st.Value = v
		st.Date = DateOf(bp.DateOfBirth)
		st.FromBirth = true
	}

	c, err := Classify(f.table, bp.DateOfBirth, st.Date, st.Value, m)
	if err != nil {
		return Status{}, err
	}

	st.AgeMonths = c.AgeMonths
	st.Band = c.Band
	st.ShortLabel = c.Band.ShortLabel()
	st.Severity = c.Band.Severity()
	return st, nil
}
