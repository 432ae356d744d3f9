package growth

import (
	"fmt"
	"sort"
	"sync"
)

// entry es un registro guardado con su número de inserción.
// seq desempata fechas iguales igual que los repositorios (seq, rowid, BIGSERIAL).
type entry struct {
	seq int64
	rec Record
}

// series es la colección ordenada de una métrica con su propio lock.
type series struct {
	mu      sync.RWMutex
	next    int64
	entries []entry
}

// HistoryStore mantiene el historial de peso y talla.
// Invariantes (después de cada llamada): cada colección está ordenada por fecha
// ascendente (en empate manda el orden de inserción, que Update conserva) y los
// ids son únicos dentro de la métrica.
type HistoryStore struct {
	series map[Metric]*series
}

func NewHistoryStore() *HistoryStore {
	s := &HistoryStore{series: make(map[Metric]*series, len(Metrics))}
	for _, m := range Metrics {
		s.series[m] = &series{}
	}
	return s
}

func (s *HistoryStore) seriesFor(m Metric) (*series, error) {
	sr, ok := s.series[m]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMetric, m)
	}
	return sr, nil
}

// Add inserta el registro en su métrica y reordena.
func (s *HistoryStore) Add(r Record) error {
	sr, err := s.seriesFor(r.Metric)
	if err != nil {
		return err
	}
	if err := r.validate(); err != nil {
		return err
	}
	r.Date = DateOf(r.Date)

	sr.mu.Lock()
	defer sr.mu.Unlock()

	if indexOf(sr.entries, r.ID) >= 0 {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateID, r.Metric, r.ID)
	}
	sr.next++
	sr.entries = append(sr.entries, entry{seq: sr.next, rec: r})
	sortEntries(sr.entries)
	return nil
}

// Update reemplaza fecha y valor del registro con el mismo id y reordena.
// El registro conserva su lugar de inserción.
func (s *HistoryStore) Update(r Record) error {
	sr, err := s.seriesFor(r.Metric)
	if err != nil {
		return err
	}
	if err := r.validate(); err != nil {
		return err
	}
	r.Date = DateOf(r.Date)

	sr.mu.Lock()
	defer sr.mu.Unlock()

	i := indexOf(sr.entries, r.ID)
	if i < 0 {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, r.Metric, r.ID)
	}
	sr.entries[i].rec = r
	sortEntries(sr.entries)
	return nil
}

// Delete elimina el registro id de la métrica m.
func (s *HistoryStore) Delete(id string, m Metric) error {
	_, err := s.remove(m, id)
	return err
}

func (s *HistoryStore) remove(m Metric, id string) (entry, error) {
	sr, err := s.seriesFor(m)
	if err != nil {
		return entry{}, err
	}

	sr.mu.Lock()
	defer sr.mu.Unlock()

	i := indexOf(sr.entries, id)
	if i < 0 {
		return entry{}, fmt.Errorf("%w: %s/%s", ErrNotFound, m, id)
	}
	e := sr.entries[i]
	sr.entries = append(sr.entries[:i], sr.entries[i+1:]...)
	return e, nil
}

// putBack reinserta una entrada quitada con remove, con su seq original.
func (s *HistoryStore) putBack(e entry) error {
	sr, err := s.seriesFor(e.rec.Metric)
	if err != nil {
		return err
	}

	sr.mu.Lock()
	defer sr.mu.Unlock()

	if indexOf(sr.entries, e.rec.ID) >= 0 {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateID, e.rec.Metric, e.rec.ID)
	}
	sr.entries = append(sr.entries, e)
	sortEntries(sr.entries)
	return nil
}

// Get busca un registro por id.
func (s *HistoryStore) Get(m Metric, id string) (Record, error) {
	sr, err := s.seriesFor(m)
	if err != nil {
		return Record{}, err
	}

	sr.mu.RLock()
	defer sr.mu.RUnlock()

	i := indexOf(sr.entries, id)
	if i < 0 {
		return Record{}, fmt.Errorf("%w: %s/%s", ErrNotFound, m, id)
	}
	return sr.entries[i].rec, nil
}

// Latest devuelve el registro más reciente. ok=false si no hay historial
// (el llamador usa el valor de nacimiento).
func (s *HistoryStore) Latest(m Metric) (Record, bool, error) {
	sr, err := s.seriesFor(m)
	if err != nil {
		return Record{}, false, err
	}

	sr.mu.RLock()
	defer sr.mu.RUnlock()

	if len(sr.entries) == 0 {
		return Record{}, false, nil
	}
	return sr.entries[len(sr.entries)-1].rec, true, nil
}

// All devuelve una copia del historial, del más antiguo al más reciente.
func (s *HistoryStore) All(m Metric) ([]Record, error) {
	sr, err := s.seriesFor(m)
	if err != nil {
		return nil, err
	}

	sr.mu.RLock()
	defer sr.mu.RUnlock()

	return recordsOf(sr.entries), nil
}

// Len devuelve la cantidad de registros de la métrica (0 si no es válida).
func (s *HistoryStore) Len(m Metric) int {
	sr, err := s.seriesFor(m)
	if err != nil {
		return 0
	}
	sr.mu.RLock()
	defer sr.mu.RUnlock()
	return len(sr.entries)
}

// Snapshot serializa ambas colecciones a una lista plana: primero peso, luego talla,
// cada una en orden cronológico.
func (s *HistoryStore) Snapshot() []Record {
	s.lockAll(true)
	defer s.unlockAll(true)

	out := make([]Record, 0)
	for _, m := range Metrics {
		out = append(out, recordsOf(s.series[m].entries)...)
	}
	return out
}

// Restore reemplaza todo el contenido con recs. Es todo o nada: si algún
// registro es inválido o repite id, el store queda como estaba.
// recs se toma en orden de inserción (como lo devuelve Repository.ListAll).
func (s *HistoryStore) Restore(recs []Record) error {
	next := make(map[Metric][]entry, len(Metrics))
	seen := make(map[Metric]map[string]struct{}, len(Metrics))
	for _, m := range Metrics {
		next[m] = make([]entry, 0)
		seen[m] = make(map[string]struct{})
	}

	for _, r := range recs {
		if err := r.validate(); err != nil {
			return err
		}
		if _, dup := seen[r.Metric][r.ID]; dup {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateID, r.Metric, r.ID)
		}
		seen[r.Metric][r.ID] = struct{}{}
		r.Date = DateOf(r.Date)
		next[r.Metric] = append(next[r.Metric], entry{seq: int64(len(next[r.Metric]) + 1), rec: r})
	}

	s.lockAll(false)
	defer s.unlockAll(false)

	for _, m := range Metrics {
		sortEntries(next[m])
		s.series[m].entries = next[m]
		s.series[m].next = int64(len(next[m]))
	}
	return nil
}

// lockAll toma los locks en el orden de Metrics para evitar deadlocks.
func (s *HistoryStore) lockAll(read bool) {
	for _, m := range Metrics {
		if read {
			s.series[m].mu.RLock()
		} else {
			s.series[m].mu.Lock()
		}
	}
}

func (s *HistoryStore) unlockAll(read bool) {
	for i := len(Metrics) - 1; i >= 0; i-- {
		if read {
			s.series[Metrics[i]].mu.RUnlock()
		} else {
			s.series[Metrics[i]].mu.Unlock()
		}
	}
}

func indexOf(entries []entry, id string) int {
	for i := range entries {
		if entries[i].rec.ID == id {
			return i
		}
	}
	return -1
}

func recordsOf(entries []entry) []Record {
	out := make([]Record, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.rec)
	}
	return out
}

// sortEntries ordena por fecha y, en empate, por seq.
func sortEntries(entries []entry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].rec.Date.Equal(entries[j].rec.Date) {
			return entries[i].rec.Date.Before(entries[j].rec.Date)
		}
		return entries[i].seq < entries[j].seq
	})
}
