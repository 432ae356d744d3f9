package profile

import "context"

// Repository guarda el único perfil. Get devuelve ErrNotFound si todavía no existe.
type Repository interface {
	Get(ctx context.Context) (Profile, error)
	Save(ctx context.Context, p Profile) error
}
