package memory

import (
	"context"
	"sync"

	"infant-growth/internal/domain/profile"
)

type profileRepo struct {
	mu sync.RWMutex
	p  *profile.Profile
}

func NewProfileRepo() profile.Repository {
	return &profileRepo{}
}

func (r *profileRepo) Get(ctx context.Context) (profile.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.p == nil {
		return profile.Profile{}, profile.ErrNotFound
	}
	return *r.p, nil
}

func (r *profileRepo) Save(ctx context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.p = &p
	return nil
}
