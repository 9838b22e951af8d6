package cats

import (
	"time"

	"cat-collector/internal/domain/toys"
)

const (
	MaxNameLen        = 100
	MaxBreedLen       = 100
	MaxDescriptionLen = 250
)

// Cat: el dueño y el nombre no cambian después de crearse.
type Cat struct {
	ID          string
	OwnerUserID string

	Name        string
	Breed       string
	Description string
	Age         int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Meal define las comidas permitidas para un Feeding.
// @Enum breakfast, lunch, dinner
type Meal string

const (
	MealBreakfast Meal = "breakfast"
	MealLunch     Meal = "lunch"
	MealDinner    Meal = "dinner"
)

func (m Meal) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	default:
		return false
	}
}

// Feeding es append-only: se crea y nunca se edita.
type Feeding struct {
	ID    string
	CatID string

	Date time.Time // solo fecha (UTC medianoche)
	Meal Meal

	CreatedAt time.Time
}

// Photo apunta a bytes guardados en el object store externo.
type Photo struct {
	ID    string
	CatID string
	URL   string

	CreatedAt time.Time
}

// CatDetail agrupa el gato con todo lo que cuelga de él.
type CatDetail struct {
	Cat      Cat
	Feedings []Feeding
	Photos   []Photo
	Toys     []toys.Toy

	// Juguetes del usuario que el gato todavía no tiene.
	AvailableToys []toys.Toy
}
