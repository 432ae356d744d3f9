package postgres

import (
	"context"
	"database/sql"
	"errors"

	"infant-growth/internal/domain/growth"
	"infant-growth/internal/domain/profile"
)

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

func (r *ProfileRepo) Get(ctx context.Context) (profile.Profile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT name, last_name, date_of_birth, birth_weight, birth_height, avatar, updated_at
		FROM profile
		WHERE id = 1
	`)

	var p profile.Profile
	if err := row.Scan(
		&p.Name,
		&p.LastName,
		&p.DateOfBirth,
		&p.BirthWeight,
		&p.BirthHeight,
		&p.Avatar,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, err
	}
	p.DateOfBirth = growth.DateOf(p.DateOfBirth)
	return p, nil
}

func (r *ProfileRepo) Save(ctx context.Context, p profile.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profile (id, name, last_name, date_of_birth, birth_weight, birth_height, avatar, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			last_name = EXCLUDED.last_name,
			date_of_birth = EXCLUDED.date_of_birth,
			birth_weight = EXCLUDED.birth_weight,
			birth_height = EXCLUDED.birth_height,
			avatar = EXCLUDED.avatar,
			updated_at = EXCLUDED.updated_at
	`,
		p.Name,
		p.LastName,
		p.DateOfBirth,
		p.BirthWeight,
		p.BirthHeight,
		p.Avatar,
		p.UpdatedAt,
	)
	return err
}
