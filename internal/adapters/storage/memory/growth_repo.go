package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"infant-growth/internal/domain/growth"
)

type growthRow struct {
	seq int64 // orden de inserción, desempata fechas iguales
	rec growth.Record
}

type growthRepo struct {
	mu   sync.RWMutex
	seq  int64
	rows map[growth.Metric]map[string]growthRow
}

func NewGrowthRepo() growth.Repository {
	return &growthRepo{
		rows: make(map[growth.Metric]map[string]growthRow),
	}
}

func (r *growthRepo) Insert(ctx context.Context, rec growth.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return fmt.Errorf("%w: record id required", growth.ErrInvalidInput)
	}
	byID := r.rows[rec.Metric]
	if byID == nil {
		byID = make(map[string]growthRow)
		r.rows[rec.Metric] = byID
	}
	if _, exists := byID[rec.ID]; exists {
		return fmt.Errorf("%w: %s/%s", growth.ErrDuplicateID, rec.Metric, rec.ID)
	}

	r.seq++
	byID[rec.ID] = growthRow{seq: r.seq, rec: rec}
	return nil
}

func (r *growthRepo) Update(ctx context.Context, rec growth.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[rec.Metric][rec.ID]
	if !ok {
		return fmt.Errorf("%w: %s/%s", growth.ErrNotFound, rec.Metric, rec.ID)
	}
	row.rec = rec
	r.rows[rec.Metric][rec.ID] = row
	return nil
}

func (r *growthRepo) Delete(ctx context.Context, m growth.Metric, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[m][id]; !ok {
		return fmt.Errorf("%w: %s/%s", growth.ErrNotFound, m, id)
	}
	delete(r.rows[m], id)
	return nil
}

func (r *growthRepo) ListAll(ctx context.Context) ([]growth.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]growthRow, 0)
	for _, byID := range r.rows {
		for _, row := range byID {
			all = append(all, row)
		}
	}

	// fecha asc, luego orden de inserción
	sort.Slice(all, func(i, j int) bool {
		if !all[i].rec.Date.Equal(all[j].rec.Date) {
			return all[i].rec.Date.Before(all[j].rec.Date)
		}
		return all[i].seq < all[j].seq
	})

	out := make([]growth.Record, 0, len(all))
	for _, row := range all {
		out = append(out, row.rec)
	}
	return out, nil
}
