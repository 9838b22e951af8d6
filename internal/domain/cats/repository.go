package cats

import "context"

type Repository interface {
	Create(ctx context.Context, c Cat) error
	Update(ctx context.Context, c Cat) error
	// Delete elimina feedings, fotos y asociaciones con juguetes del gato.
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (Cat, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Cat, error)

	// AddToy y RemoveToy son idempotentes.
	AddToy(ctx context.Context, catID, toyID string) error
	RemoveToy(ctx context.Context, catID, toyID string) error
	ListToyIDs(ctx context.Context, catID string) ([]string, error)

	CreateFeeding(ctx context.Context, f Feeding) error
	// ListFeedings ordena por fecha descendente.
	ListFeedings(ctx context.Context, catID string) ([]Feeding, error)

	CreatePhoto(ctx context.Context, p Photo) error
	ListPhotos(ctx context.Context, catID string) ([]Photo, error)
}
