package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"infant-growth/internal/domain/growth"
	"infant-growth/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("profile not found")
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		log:  logger.WithComponent(log, "profile"),
		now:  time.Now,
	}
}

// Input es el perfil completo tal como llega de afuera (PUT o seed).
type Input struct {
	Name        string
	LastName    string
	DateOfBirth string // YYYY-MM-DD
	BirthWeight float64
	BirthHeight float64
	Avatar      string
}

// PatchInput: nil = no tocar.
type PatchInput struct {
	Name        *string
	LastName    *string
	DateOfBirth *string
	BirthWeight *float64
	BirthHeight *float64
	Avatar      *string
}

func (s *Service) Get(ctx context.Context) (Profile, error) {
	return s.repo.Get(ctx)
}

// Replace crea o reemplaza el perfil completo.
func (s *Service) Replace(ctx context.Context, in Input) (Profile, error) {
	p, err := fromInput(in)
	if err != nil {
		return Profile{}, err
	}
	return s.save(ctx, p)
}

// Patch actualiza solo los campos enviados. Requiere que el perfil exista.
func (s *Service) Patch(ctx context.Context, in PatchInput) (Profile, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		return Profile{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.LastName != nil {
		p.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.DateOfBirth != nil {
		d, err := growth.ParseDate(*in.DateOfBirth)
		if err != nil {
			return Profile{}, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", ErrInvalidInput)
		}
		p.DateOfBirth = d
	}
	if in.BirthWeight != nil {
		p.BirthWeight = *in.BirthWeight
	}
	if in.BirthHeight != nil {
		p.BirthHeight = *in.BirthHeight
	}
	if in.Avatar != nil {
		p.Avatar = strings.TrimSpace(*in.Avatar)
	}

	if err := validate(p); err != nil {
		return Profile{}, err
	}
	return s.save(ctx, p)
}

// EnsureSeed guarda seed solo si todavía no hay perfil. Devuelve true si lo creó.
func (s *Service) EnsureSeed(ctx context.Context, seed Input) (bool, error) {
	_, err := s.repo.Get(ctx)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	p, err := s.Replace(ctx, seed)
	if err != nil {
		return false, fmt.Errorf("seed profile: %w", err)
	}
	s.log.Info("seed profile created", map[string]any{
		"name":          p.FullName(),
		"date_of_birth": growth.FormatDate(p.DateOfBirth),
	})
	return true, nil
}

// BirthProfile implementa growth.ProfileReader.
func (s *Service) BirthProfile(ctx context.Context) (growth.BirthProfile, error) {
	p, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return growth.BirthProfile{}, growth.ErrNoProfile
		}
		return growth.BirthProfile{}, err
	}
	return growth.BirthProfile{
		DateOfBirth: p.DateOfBirth,
		BirthWeight: p.BirthWeight,
		BirthHeight: p.BirthHeight,
	}, nil
}

func (s *Service) save(ctx context.Context, p Profile) (Profile, error) {
	p.UpdatedAt = s.now().UTC()
	if err := s.repo.Save(ctx, p); err != nil {
		return Profile{}, err
	}
	s.log.Info("profile saved", map[string]any{"name": p.FullName()})
	return p, nil
}

func fromInput(in Input) (Profile, error) {
	d, err := growth.ParseDate(in.DateOfBirth)
	if err != nil {
		return Profile{}, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", ErrInvalidInput)
	}
	p := Profile{
		Name:        strings.TrimSpace(in.Name),
		LastName:    strings.TrimSpace(in.LastName),
		DateOfBirth: d,
		BirthWeight: in.BirthWeight,
		BirthHeight: in.BirthHeight,
		Avatar:      strings.TrimSpace(in.Avatar),
	}
	if err := validate(p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func validate(p Profile) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name required", ErrInvalidInput)
	}
	if p.DateOfBirth.IsZero() {
		return fmt.Errorf("%w: date_of_birth required", ErrInvalidInput)
	}
	if growth.ValidateValue(p.BirthWeight) != nil {
		return fmt.Errorf("%w: birth_weight must be a positive number", ErrInvalidInput)
	}
	if growth.ValidateValue(p.BirthHeight) != nil {
		return fmt.Errorf("%w: birth_height must be a positive number", ErrInvalidInput)
	}
	return nil
}
