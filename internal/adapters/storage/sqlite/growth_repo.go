package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"infant-growth/internal/domain/growth"
)

type GrowthRepo struct {
	db *sql.DB
}

func NewGrowthRepo(db *sql.DB) *GrowthRepo {
	return &GrowthRepo{db: db}
}

func (r *GrowthRepo) Insert(ctx context.Context, rec growth.Record) error {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO growth_records (metric, id, date, value)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (metric, id) DO NOTHING
	`, string(rec.Metric), rec.ID, growth.FormatDate(rec.Date), rec.Value)
	if err != nil {
		return fmt.Errorf("insert growth record: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s/%s", growth.ErrDuplicateID, rec.Metric, rec.ID)
	}
	return nil
}

func (r *GrowthRepo) Update(ctx context.Context, rec growth.Record) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE growth_records
		SET date = ?, value = ?
		WHERE metric = ? AND id = ?
	`, growth.FormatDate(rec.Date), rec.Value, string(rec.Metric), rec.ID)
	if err != nil {
		return fmt.Errorf("update growth record: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s/%s", growth.ErrNotFound, rec.Metric, rec.ID)
	}
	return nil
}

func (r *GrowthRepo) Delete(ctx context.Context, m growth.Metric, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM growth_records WHERE metric = ? AND id = ?`, string(m), id)
	if err != nil {
		return fmt.Errorf("delete growth record: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s/%s", growth.ErrNotFound, m, id)
	}
	return nil
}

// ListAll ordena por fecha y después por rowid (orden de inserción).
func (r *GrowthRepo) ListAll(ctx context.Context) ([]growth.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT metric, id, date, value
		FROM growth_records
		ORDER BY date ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list growth records: %w", err)
	}
	defer rows.Close()

	out := make([]growth.Record, 0)
	for rows.Next() {
		var (
			metric, id, day string
			value           float64
		)
		if err := rows.Scan(&metric, &id, &day, &value); err != nil {
			return nil, fmt.Errorf("scan growth record: %w", err)
		}
		d, err := growth.ParseDate(day)
		if err != nil {
			return nil, err
		}
		out = append(out, growth.Record{ID: id, Metric: growth.Metric(metric), Date: d, Value: value})
	}
	return out, rows.Err()
}
