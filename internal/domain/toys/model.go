package toys

import "time"

const (
	MaxNameLen  = 50
	MaxColorLen = 20
)

// Toy pertenece a un usuario y puede asociarse a varios gatos del mismo dueño.
type Toy struct {
	ID          string
	OwnerUserID string

	Name  string
	Color string

	CreatedAt time.Time
	UpdatedAt time.Time
}
