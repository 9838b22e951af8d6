package toys

import "context"

type Repository interface {
	Create(ctx context.Context, t Toy) error
	Update(ctx context.Context, t Toy) error
	// Delete también elimina las asociaciones con gatos (nunca los gatos).
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Toy, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Toy, error)
}
