package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// schema es idempotente; se aplica en cada arranque.
// seq desempata mediciones del mismo día por orden de inserción.
const schema = `
CREATE TABLE IF NOT EXISTS growth_records (
	seq    BIGSERIAL,
	metric TEXT NOT NULL CHECK (metric IN ('weight', 'height')),
	id     TEXT NOT NULL,
	date   DATE NOT NULL,
	value  DOUBLE PRECISION NOT NULL CHECK (value > 0),
	PRIMARY KEY (metric, id)
);

CREATE INDEX IF NOT EXISTS idx_growth_records_date ON growth_records (date, seq);

CREATE TABLE IF NOT EXISTS profile (
	id            SMALLINT PRIMARY KEY CHECK (id = 1),
	name          TEXT NOT NULL,
	last_name     TEXT NOT NULL DEFAULT '',
	date_of_birth DATE NOT NULL,
	birth_weight  DOUBLE PRECISION NOT NULL,
	birth_height  DOUBLE PRECISION NOT NULL,
	avatar        TEXT NOT NULL DEFAULT '',
	updated_at    TIMESTAMPTZ NOT NULL
);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
