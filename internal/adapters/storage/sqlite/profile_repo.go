package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

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

	var (
		p              profile.Profile
		dob, updatedAt string
	)
	if err := row.Scan(&p.Name, &p.LastName, &dob, &p.BirthWeight, &p.BirthHeight, &p.Avatar, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return profile.Profile{}, profile.ErrNotFound
		}
		return profile.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	d, err := growth.ParseDate(dob)
	if err != nil {
		return profile.Profile{}, err
	}
	p.DateOfBirth = d

	if updatedAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, updatedAt); err == nil {
			p.UpdatedAt = t
		}
	}
	return p, nil
}

func (r *ProfileRepo) Save(ctx context.Context, p profile.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profile (id, name, last_name, date_of_birth, birth_weight, birth_height, avatar, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			name = excluded.name,
			last_name = excluded.last_name,
			date_of_birth = excluded.date_of_birth,
			birth_weight = excluded.birth_weight,
			birth_height = excluded.birth_height,
			avatar = excluded.avatar,
			updated_at = excluded.updated_at
	`,
		p.Name,
		p.LastName,
		growth.FormatDate(p.DateOfBirth),
		p.BirthWeight,
		p.BirthHeight,
		p.Avatar,
		p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}
