package accounts

import "context"

type Repository interface {
	// Create devuelve ErrUsernameTaken si el username ya existe.
	Create(ctx context.Context, u User) error
	GetByUsername(ctx context.Context, username string) (User, error)
}
