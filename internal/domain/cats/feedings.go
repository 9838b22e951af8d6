package cats

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type FeedingInput struct {
	Date string // YYYY-MM-DD
	Meal string
}

// AddFeeding valida y agrega un feeding al gato. Un input inválido devuelve
// ErrInvalidInput y no escribe nada.
func (s *Service) AddFeeding(ctx context.Context, userID, catID string, in FeedingInput) (Feeding, error) {
	c, err := s.GetOwned(ctx, userID, catID)
	if err != nil {
		return Feeding{}, err
	}

	date, err := time.Parse(DateLayout, strings.TrimSpace(in.Date))
	if err != nil {
		return Feeding{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	meal := Meal(strings.ToLower(strings.TrimSpace(in.Meal)))
	if !meal.Valid() {
		return Feeding{}, fmt.Errorf("%w: meal must be one of breakfast, lunch, dinner", ErrInvalidInput)
	}

	f := Feeding{
		ID:        uuid.NewString(),
		CatID:     c.ID,
		Date:      date,
		Meal:      meal,
		CreatedAt: s.now(),
	}

	if err := s.repo.CreateFeeding(ctx, f); err != nil {
		return Feeding{}, err
	}
	return f, nil
}

func (s *Service) ListFeedings(ctx context.Context, userID, catID string) ([]Feeding, error) {
	c, err := s.GetOwned(ctx, userID, catID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListFeedings(ctx, c.ID)
}

// FedForToday: true si el gato tiene al menos un feeding por cada comida en la fecha dada.
// El día se evalúa en UTC, igual que Feeding.Date.
func FedForToday(feedings []Feeding, day time.Time) bool {
	y, m, d := day.UTC().Date()
	seen := map[Meal]struct{}{}
	for _, f := range feedings {
		fy, fm, fd := f.Date.Date()
		if fy == y && fm == m && fd == d {
			seen[f.Meal] = struct{}{}
		}
	}
	return len(seen) >= 3
}
