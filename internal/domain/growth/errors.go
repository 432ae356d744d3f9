package growth

import "errors"

var (
	ErrInvalidMetric = errors.New("invalid metric")
	ErrDuplicateID   = errors.New("duplicate record id")
	ErrNotFound      = errors.New("record not found")
	ErrInvalidValue  = errors.New("invalid measurement value")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidInput  = errors.New("invalid input")

	// ErrNoProfile: todavía no hay perfil con fecha de nacimiento.
	ErrNoProfile = errors.New("birth profile not set")
)
