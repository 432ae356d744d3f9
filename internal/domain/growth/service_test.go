package growth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	bp  BirthProfile
	err error
}

func (f fakeProfiles) BirthProfile(context.Context) (BirthProfile, error) {
	return f.bp, f.err
}

// fakeRepo guarda en memoria y puede fallar a demanda.
type fakeRepo struct {
	mu      sync.Mutex
	records []Record
	failOn  string // "insert" | "update" | "delete" | "list"
}

var errRepoDown = errors.New("repo down")

func (f *fakeRepo) Insert(_ context.Context, r Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "insert" {
		return errRepoDown
	}
	f.records = append(f.records, r)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, r Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "update" {
		return errRepoDown
	}
	for i := range f.records {
		if f.records[i].Metric == r.Metric && f.records[i].ID == r.ID {
			f.records[i] = r
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, m Metric, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "delete" {
		return errRepoDown
	}
	for i := range f.records {
		if f.records[i].Metric == m && f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) ListAll(context.Context) ([]Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn == "list" {
		return nil, errRepoDown
	}
	return append([]Record(nil), f.records...), nil
}

func leo(t *testing.T) fakeProfiles {
	return fakeProfiles{bp: BirthProfile{
		DateOfBirth: date(t, "2024-03-17"),
		BirthWeight: 3.5,
		BirthHeight: 50,
	}}
}

func newTestService(t *testing.T, repo *fakeRepo) *Service {
	t.Helper()
	svc := NewService(repo, Options{Profiles: leo(t)})
	svc.now = func() time.Time { return date(t, "2025-01-20") }
	return svc
}

func TestService_CreateGeneratesIDAndPersists(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	r, err := svc.Create(context.Background(), MetricWeight, CreateInput{Date: "2025-01-17", Value: 7.8})
	require.NoError(t, err)
	require.NotEmpty(t, r.ID)
	require.Equal(t, "2025-01-17", FormatDate(r.Date))

	require.Len(t, repo.records, 1)
	require.Equal(t, r.ID, repo.records[0].ID)
}

func TestService_CreateValidatesInput(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, Metric("bmi"), CreateInput{Date: "2025-01-17", Value: 7.8})
	require.ErrorIs(t, err, ErrInvalidMetric)

	_, err = svc.Create(ctx, MetricWeight, CreateInput{Date: "17/01/2025", Value: 7.8})
	require.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.Create(ctx, MetricWeight, CreateInput{Date: "2025-01-17", Value: 0})
	require.ErrorIs(t, err, ErrInvalidValue)

	_, err = svc.Create(ctx, MetricWeight, CreateInput{ID: "x", Date: "2025-01-17", Value: 7.8})
	require.NoError(t, err)
	_, err = svc.Create(ctx, MetricWeight, CreateInput{ID: "x", Date: "2025-01-18", Value: 7.9})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestService_CreateRollsBackWhenRepoFails(t *testing.T) {
	repo := &fakeRepo{failOn: "insert"}
	svc := newTestService(t, repo)

	_, err := svc.Create(context.Background(), MetricWeight, CreateInput{ID: "x", Date: "2025-01-17", Value: 7.8})
	require.ErrorIs(t, err, errRepoDown)

	items, err := svc.List(context.Background(), MetricWeight)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestService_UpdateRollsBackWhenRepoFails(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, MetricHeight, CreateInput{ID: "h", Date: "2025-01-17", Value: 70})
	require.NoError(t, err)

	repo.failOn = "update"
	_, err = svc.Update(ctx, MetricHeight, "h", UpdateInput{Date: "2025-01-18", Value: 72})
	require.ErrorIs(t, err, errRepoDown)

	got, err := svc.Get(ctx, MetricHeight, "h")
	require.NoError(t, err)
	require.Equal(t, 70.0, got.Value)
	require.Equal(t, "2025-01-17", FormatDate(got.Date))
}

func TestService_UpdateMissing(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	_, err := svc.Update(context.Background(), MetricWeight, "nope", UpdateInput{Date: "2025-01-18", Value: 8})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, MetricWeight, CreateInput{ID: "x", Date: "2025-01-17", Value: 7.8})
	require.NoError(t, err)

	repo.failOn = "delete"
	require.ErrorIs(t, svc.Delete(ctx, MetricWeight, "x"), errRepoDown)
	_, err = svc.Get(ctx, MetricWeight, "x")
	require.NoError(t, err, "failed delete must restore the record")

	repo.failOn = ""
	require.NoError(t, svc.Delete(ctx, MetricWeight, "x"))
	require.Empty(t, repo.records)
	require.ErrorIs(t, svc.Delete(ctx, MetricWeight, "x"), ErrNotFound)
}

func TestService_DeleteRollbackKeepsTieOrder(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	for _, id := range []string{"a", "b"} {
		_, err := svc.Create(ctx, MetricWeight, CreateInput{ID: id, Date: "2025-01-17", Value: 7.8})
		require.NoError(t, err)
	}

	repo.failOn = "delete"
	require.ErrorIs(t, svc.Delete(ctx, MetricWeight, "a"), errRepoDown)

	items, err := svc.List(ctx, MetricWeight)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, ids(items))
}

func TestService_CreateRejectsReservedID(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo)

	_, err := svc.Create(context.Background(), MetricWeight, CreateInput{ID: "status", Date: "2025-01-17", Value: 7.8})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Empty(t, repo.records)
	require.Zero(t, svc.store.Len(MetricWeight))
}

func TestService_LoadRestoresHistory(t *testing.T) {
	repo := &fakeRepo{records: []Record{
		rec(t, MetricWeight, "x", "2025-02-01", 8.0),
		rec(t, MetricWeight, "y", "2025-01-01", 7.9),
		rec(t, MetricHeight, "h", "2025-01-01", 72),
	}}
	svc := newTestService(t, repo)
	require.NoError(t, svc.Load(context.Background()))

	items, err := svc.List(context.Background(), MetricWeight)
	require.NoError(t, err)
	require.Equal(t, []string{"y", "x"}, ids(items))

	repo.failOn = "list"
	require.ErrorIs(t, svc.Load(context.Background()), errRepoDown)
}

func TestService_StatusFallsBackToBirth(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	st, err := svc.Status(context.Background(), MetricWeight)
	require.NoError(t, err)
	require.True(t, st.FromBirth)
	require.Equal(t, 3.5, st.Value)
	require.Equal(t, "2024-03-17", FormatDate(st.Date))
	require.Equal(t, 0, st.AgeMonths)
	// fila mes 0: 3.3 <= 3.5 < 3.9
	require.Equal(t, BandP50to85, st.Band)
	require.Equal(t, "P50", st.ShortLabel)
	require.Equal(t, SeverityNormal, st.Severity)
}

func TestService_StatusUsesLatestRecord(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, MetricWeight, CreateInput{ID: "old", Date: "2024-12-17", Value: 9.9})
	require.NoError(t, err)
	_, err = svc.Create(ctx, MetricWeight, CreateInput{ID: "new", Date: "2025-01-17", Value: 7.8})
	require.NoError(t, err)

	st, err := svc.Status(ctx, MetricWeight)
	require.NoError(t, err)
	require.False(t, st.FromBirth)
	require.Equal(t, 7.8, st.Value)
	require.Equal(t, 10, st.AgeMonths)
	require.Equal(t, BandP3to15, st.Band)
}

func TestService_StatusWithoutProfile(t *testing.T) {
	svc := NewService(&fakeRepo{}, Options{})
	_, err := svc.Status(context.Background(), MetricWeight)
	require.ErrorIs(t, err, ErrNoProfile)

	_, err = svc.Summary(context.Background())
	require.ErrorIs(t, err, ErrNoProfile)

	broken := NewService(&fakeRepo{}, Options{Profiles: fakeProfiles{err: ErrNoProfile}})
	_, err = broken.Status(context.Background(), MetricHeight)
	require.ErrorIs(t, err, ErrNoProfile)
}

func TestService_Summary(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})
	ctx := context.Background()

	_, err := svc.Create(ctx, MetricHeight, CreateInput{Date: "2025-01-17", Value: 65})
	require.NoError(t, err)

	sum, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, 10, sum.AgeMonths)
	require.True(t, sum.Weight.FromBirth)
	require.Equal(t, BandBelowP3, sum.Height.Band)
	require.Equal(t, SeverityAlert, sum.Height.Severity)
}

func TestService_Standards(t *testing.T) {
	svc := newTestService(t, &fakeRepo{})

	rows, err := svc.Standards(MetricHeight)
	require.NoError(t, err)
	require.Equal(t, 49.9, rows[0].P50)

	_, err = svc.Standards(Metric("bmi"))
	require.ErrorIs(t, err, ErrInvalidMetric)
}
