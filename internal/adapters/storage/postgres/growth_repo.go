package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

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
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (metric, id) DO NOTHING
	`, string(rec.Metric), rec.ID, rec.Date, rec.Value)
	if err != nil {
		return err
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
		SET date = $3, value = $4
		WHERE metric = $1 AND id = $2
	`, string(rec.Metric), rec.ID, rec.Date, rec.Value)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s/%s", growth.ErrNotFound, rec.Metric, rec.ID)
	}
	return nil
}

func (r *GrowthRepo) Delete(ctx context.Context, m growth.Metric, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM growth_records WHERE metric = $1 AND id = $2`, string(m), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%w: %s/%s", growth.ErrNotFound, m, id)
	}
	return nil
}

func (r *GrowthRepo) ListAll(ctx context.Context) ([]growth.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT metric, id, date, value
		FROM growth_records
		ORDER BY date ASC, seq ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]growth.Record, 0)
	for rows.Next() {
		var (
			metric, id string
			d          time.Time
			value      float64
		)
		if err := rows.Scan(&metric, &id, &d, &value); err != nil {
			return nil, err
		}
		// date es DATE: pgx lo mapea a medianoche UTC
		out = append(out, growth.Record{ID: id, Metric: growth.Metric(metric), Date: growth.DateOf(d), Value: value})
	}
	return out, rows.Err()
}
