package toys

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("toy not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name  string
	Color string
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name  *string
	Color *string
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Toy, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Toy{}, ErrInvalidInput
	}

	name, err := validName(in.Name)
	if err != nil {
		return Toy{}, err
	}
	color, err := validColor(in.Color)
	if err != nil {
		return Toy{}, err
	}

	now := s.now()
	t := Toy{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        name,
		Color:       color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Toy{}, err
	}
	return t, nil
}

// Get devuelve el juguete solo a su dueño.
func (s *Service) Get(ctx context.Context, userID, toyID string) (Toy, error) {
	t, err := s.GetByID(ctx, toyID)
	if err != nil {
		return Toy{}, err
	}
	if t.OwnerUserID != strings.TrimSpace(userID) {
		return Toy{}, ErrForbidden
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, userID, toyID string, in UpdateInput) (Toy, error) {
	t, err := s.Get(ctx, userID, toyID)
	if err != nil {
		return Toy{}, err
	}

	if in.Name != nil {
		if t.Name, err = validName(*in.Name); err != nil {
			return Toy{}, err
		}
	}
	if in.Color != nil {
		if t.Color, err = validColor(*in.Color); err != nil {
			return Toy{}, err
		}
	}
	t.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, t); err != nil {
		return Toy{}, err
	}
	return t, nil
}

func (s *Service) Delete(ctx context.Context, userID, toyID string) error {
	t, err := s.Get(ctx, userID, toyID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, t.ID)
}

// GetByID no verifica dueño; es para lookups internos entre módulos.
func (s *Service) GetByID(ctx context.Context, id string) (Toy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Toy{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Toy, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []Toy{}, nil
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func validName(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(v) > MaxNameLen {
		return "", fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, MaxNameLen)
	}
	return v, nil
}

func validColor(v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("%w: color is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(v) > MaxColorLen {
		return "", fmt.Errorf("%w: color must be at most %d characters", ErrInvalidInput, MaxColorLen)
	}
	return v, nil
}
