package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"infant-growth/internal/domain/growth"
	"infant-growth/internal/domain/profile"

	"github.com/stretchr/testify/require"
)

// testDSN requiere una base descartable: TEST_DB_DSN=postgres://... go test ./...
func testDSN(t *testing.T) string {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	return dsn
}

func TestPostgres_GrowthAndProfile(t *testing.T) {
	db, err := Open(testDSN(t))
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, EnsureSchema(ctx, db))
	require.NoError(t, EnsureSchema(ctx, db), "schema must be idempotent")

	_, err = db.ExecContext(ctx, `TRUNCATE growth_records, profile`)
	require.NoError(t, err)

	day := func(s string) time.Time {
		d, err := growth.ParseDate(s)
		require.NoError(t, err)
		return d
	}

	repo := NewGrowthRepo(db)
	require.NoError(t, repo.Insert(ctx, growth.Record{ID: "x", Metric: growth.MetricWeight, Date: day("2025-02-01"), Value: 8.0}))
	require.NoError(t, repo.Insert(ctx, growth.Record{ID: "y", Metric: growth.MetricWeight, Date: day("2025-01-01"), Value: 7.9}))
	require.ErrorIs(t, repo.Insert(ctx, growth.Record{ID: "y", Metric: growth.MetricWeight, Date: day("2025-01-01"), Value: 7.9}), growth.ErrDuplicateID)
	require.ErrorIs(t, repo.Delete(ctx, growth.MetricHeight, "y"), growth.ErrNotFound)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "y", all[0].ID)
	require.Equal(t, "2025-01-01", growth.FormatDate(all[0].Date))

	profiles := NewProfileRepo(db)
	_, err = profiles.Get(ctx)
	require.ErrorIs(t, err, profile.ErrNotFound)

	require.NoError(t, profiles.Save(ctx, profile.Profile{
		Name:        "Leo",
		DateOfBirth: day("2024-03-17"),
		BirthWeight: 3.5,
		BirthHeight: 50,
		UpdatedAt:   time.Now().UTC(),
	}))
	p, err := profiles.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "2024-03-17", growth.FormatDate(p.DateOfBirth))
}
