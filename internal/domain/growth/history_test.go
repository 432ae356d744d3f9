package growth

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func rec(t *testing.T, m Metric, id, d string, v float64) Record {
	t.Helper()
	return Record{ID: id, Metric: m, Date: date(t, d), Value: v}
}

func ids(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestHistoryStore_AddKeepsChronologicalOrder(t *testing.T) {
	s := NewHistoryStore()

	require.NoError(t, s.Add(rec(t, MetricWeight, "x", "2025-02-01", 8.0)))
	require.NoError(t, s.Add(rec(t, MetricWeight, "y", "2025-01-01", 7.9)))

	all, err := s.All(MetricWeight)
	require.NoError(t, err)
	require.Equal(t, []string{"y", "x"}, ids(all))
}

func TestHistoryStore_SameDateKeepsInsertionOrder(t *testing.T) {
	s := NewHistoryStore()

	require.NoError(t, s.Add(rec(t, MetricHeight, "a", "2025-01-01", 70)))
	require.NoError(t, s.Add(rec(t, MetricHeight, "b", "2025-01-01", 71)))
	require.NoError(t, s.Add(rec(t, MetricHeight, "c", "2024-12-01", 69)))

	all, err := s.All(MetricHeight)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a", "b"}, ids(all))

	latest, ok, err := s.Latest(MetricHeight)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "b", latest.ID)
}

func TestHistoryStore_DuplicateIDRejected(t *testing.T) {
	s := NewHistoryStore()
	require.NoError(t, s.Add(rec(t, MetricWeight, "x", "2025-02-01", 8.0)))

	err := s.Add(rec(t, MetricWeight, "x", "2025-03-01", 8.4))
	require.ErrorIs(t, err, ErrDuplicateID)
	require.Equal(t, 1, s.Len(MetricWeight))

	// el mismo id en otra métrica es válido
	require.NoError(t, s.Add(rec(t, MetricHeight, "x", "2025-02-01", 70)))
}

func TestHistoryStore_AddValidates(t *testing.T) {
	s := NewHistoryStore()

	require.ErrorIs(t, s.Add(rec(t, Metric("bmi"), "x", "2025-02-01", 8)), ErrInvalidMetric)
	require.ErrorIs(t, s.Add(rec(t, MetricWeight, "", "2025-02-01", 8)), ErrInvalidInput)
	require.ErrorIs(t, s.Add(rec(t, MetricWeight, "x", "2025-02-01", 0)), ErrInvalidValue)
	require.ErrorIs(t, s.Add(rec(t, MetricWeight, "x", "2025-02-01", -1)), ErrInvalidValue)
	require.ErrorIs(t, s.Add(Record{ID: "x", Metric: MetricWeight, Value: 8}), ErrInvalidDate)
	require.Zero(t, s.Len(MetricWeight))
}

func TestHistoryStore_UpdateMissingIsNotFound(t *testing.T) {
	s := NewHistoryStore()
	require.NoError(t, s.Add(rec(t, MetricWeight, "x", "2025-02-01", 8.0)))
	before, err := s.All(MetricWeight)
	require.NoError(t, err)

	err = s.Update(rec(t, MetricWeight, "nope", "2025-03-01", 9))
	require.ErrorIs(t, err, ErrNotFound)

	after, err := s.All(MetricWeight)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestHistoryStore_UpdateReorders(t *testing.T) {
	s := NewHistoryStore()
	require.NoError(t, s.Add(rec(t, MetricWeight, "a", "2025-01-01", 7.5)))
	require.NoError(t, s.Add(rec(t, MetricWeight, "b", "2025-02-01", 7.9)))

	require.NoError(t, s.Update(rec(t, MetricWeight, "a", "2025-03-01", 8.3)))

	all, err := s.All(MetricWeight)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "a"}, ids(all))
	require.Equal(t, 8.3, all[1].Value)
}

func TestHistoryStore_UpdateOntoSameDateKeepsInsertionOrder(t *testing.T) {
	s := NewHistoryStore()
	require.NoError(t, s.Add(rec(t, MetricWeight, "a", "2025-01-05", 7.5)))
	require.NoError(t, s.Add(rec(t, MetricWeight, "b", "2025-01-01", 7.4)))

	// a se insertó antes: al compartir fecha con b queda primero
	require.NoError(t, s.Update(rec(t, MetricWeight, "a", "2025-01-01", 7.6)))

	all, err := s.All(MetricWeight)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, ids(all))

	latest, ok, err := s.Latest(MetricWeight)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "b", latest.ID)
}

func TestHistoryStore_PutBackRestoresPosition(t *testing.T) {
	s := NewHistoryStore()
	require.NoError(t, s.Add(rec(t, MetricWeight, "a", "2025-01-01", 7.5)))
	require.NoError(t, s.Add(rec(t, MetricWeight, "b", "2025-01-01", 7.6)))

	e, err := s.remove(MetricWeight, "a")
	require.NoError(t, err)
	require.NoError(t, s.putBack(e))

	all, err := s.All(MetricWeight)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, ids(all))

	require.ErrorIs(t, s.putBack(e), ErrDuplicateID)
}

func TestHistoryStore_RestoreThenAddKeepsTieOrder(t *testing.T) {
	s := NewHistoryStore()
	require.NoError(t, s.Restore([]Record{
		rec(t, MetricWeight, "a", "2025-01-01", 7.5),
		rec(t, MetricWeight, "b", "2025-01-01", 7.6),
	}))
	require.NoError(t, s.Add(rec(t, MetricWeight, "c", "2025-01-01", 7.7)))
	require.NoError(t, s.Update(rec(t, MetricWeight, "a", "2025-01-01", 7.4)))

	all, err := s.All(MetricWeight)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, ids(all))
}

func TestHistoryStore_Delete(t *testing.T) {
	s := NewHistoryStore()
	require.NoError(t, s.Add(rec(t, MetricWeight, "a", "2025-01-01", 7.5)))

	require.ErrorIs(t, s.Delete("a", MetricHeight), ErrNotFound)
	require.NoError(t, s.Delete("a", MetricWeight))
	require.ErrorIs(t, s.Delete("a", MetricWeight), ErrNotFound)

	_, ok, err := s.Latest(MetricWeight)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHistoryStore_AllIsACopy(t *testing.T) {
	s := NewHistoryStore()
	require.NoError(t, s.Add(rec(t, MetricWeight, "a", "2025-01-01", 7.5)))

	all, err := s.All(MetricWeight)
	require.NoError(t, err)
	all[0].Value = 100

	got, err := s.Get(MetricWeight, "a")
	require.NoError(t, err)
	require.Equal(t, 7.5, got.Value)
}

func TestHistoryStore_SnapshotRestore(t *testing.T) {
	s := NewHistoryStore()
	require.NoError(t, s.Add(rec(t, MetricHeight, "h1", "2025-01-01", 70)))
	require.NoError(t, s.Add(rec(t, MetricWeight, "w2", "2025-02-01", 8.0)))
	require.NoError(t, s.Add(rec(t, MetricWeight, "w1", "2025-01-01", 7.8)))

	snap := s.Snapshot()
	require.Equal(t, []string{"w1", "w2", "h1"}, ids(snap))

	other := NewHistoryStore()
	require.NoError(t, other.Restore(snap))
	require.Equal(t, snap, other.Snapshot())
}

func TestHistoryStore_RestoreIsAllOrNothing(t *testing.T) {
	s := NewHistoryStore()
	require.NoError(t, s.Add(rec(t, MetricWeight, "keep", "2025-01-01", 7.8)))

	err := s.Restore([]Record{
		rec(t, MetricWeight, "a", "2025-01-01", 7.8),
		rec(t, MetricWeight, "a", "2025-02-01", 8.0),
	})
	require.ErrorIs(t, err, ErrDuplicateID)

	err = s.Restore([]Record{
		rec(t, MetricWeight, "a", "2025-01-01", 7.8),
		rec(t, MetricHeight, "b", "2025-01-01", -3),
	})
	require.ErrorIs(t, err, ErrInvalidValue)

	all, err := s.All(MetricWeight)
	require.NoError(t, err)
	require.Equal(t, []string{"keep"}, ids(all))
}

func TestHistoryStore_OrderingHoldsAfterMixedOps(t *testing.T) {
	s := NewHistoryStore()
	days := []string{"2025-03-01", "2024-11-15", "2025-01-20", "2024-12-31", "2025-02-10", "2024-10-01"}

	check := func() {
		all, err := s.All(MetricWeight)
		require.NoError(t, err)
		seen := map[string]bool{}
		for i := range all {
			require.False(t, seen[all[i].ID], "duplicate id %s", all[i].ID)
			seen[all[i].ID] = true
			if i > 0 {
				require.False(t, all[i].Date.Before(all[i-1].Date), "out of order at %d", i)
			}
		}
	}

	for i, d := range days {
		require.NoError(t, s.Add(rec(t, MetricWeight, fmt.Sprintf("r%d", i), d, 7+float64(i)/10)))
		check()
	}
	require.NoError(t, s.Update(rec(t, MetricWeight, "r0", "2024-09-01", 6.9)))
	check()
	require.NoError(t, s.Delete("r3", MetricWeight))
	check()
	require.NoError(t, s.Update(rec(t, MetricWeight, "r5", "2025-04-01", 9.1)))
	check()

	latest, ok, err := s.Latest(MetricWeight)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "r5", latest.ID)
}

func TestHistoryStore_ConcurrentAccess(t *testing.T) {
	s := NewHistoryStore()

	records := make([]Record, 50)
	for i := range records {
		d := fmt.Sprintf("2025-01-%02d", i%28+1)
		records[i] = rec(t, Metrics[i%len(Metrics)], fmt.Sprintf("id-%d", i), d, 5+float64(i))
	}

	var wg sync.WaitGroup
	for _, r := range records {
		wg.Add(2)
		go func(r Record) {
			defer wg.Done()
			_ = s.Add(r)
		}(r)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
			_, _, _ = s.Latest(MetricWeight)
		}()
	}
	wg.Wait()

	require.Equal(t, 25, s.Len(MetricWeight))
	require.Equal(t, 25, s.Len(MetricHeight))
	require.Len(t, s.Snapshot(), 50)
}
