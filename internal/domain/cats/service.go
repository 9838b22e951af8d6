package cats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"cat-collector/internal/domain/toys"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/ports/objectstore"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("cat not found")

	// ErrToyNotOwned: el juguete es de otro usuario que el dueño del gato.
	ErrToyNotOwned = fmt.Errorf("%w: toy belongs to another user", ErrForbidden)
)

// ToyDirectory evita depender del repo de toys (lo implementa *toys.Service).
type ToyDirectory interface {
	OwnerOf(ctx context.Context, toyID string) (string, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]toys.Toy, error)
}

// PhotoStorage configura dónde se suben las fotos.
type PhotoStorage struct {
	Store   objectstore.Store
	Bucket  string
	BaseURL string

	// Timeout del upload. 0 = solo el del request.
	Timeout time.Duration
}

type Service struct {
	repo   Repository
	toys   ToyDirectory
	photos PhotoStorage
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, toyDir ToyDirectory, photos PhotoStorage, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		toys:   toyDir,
		photos: photos,
		log:    log.With(map[string]any{"module": "cats"}),
		now:    time.Now,
	}
}

type CreateInput struct {
	Name        string
	Breed       string
	Description string
	Age         int
}

// UpdateInput no tiene Name: el nombre es inmutable. nil = no tocar.
type UpdateInput struct {
	Breed       *string
	Description *string
	Age         *int
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Cat, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Cat{}, ErrInvalidInput
	}

	name, err := validText("name", in.Name, MaxNameLen, true)
	if err != nil {
		return Cat{}, err
	}
	breed, err := validText("breed", in.Breed, MaxBreedLen, true)
	if err != nil {
		return Cat{}, err
	}
	desc, err := validText("description", in.Description, MaxDescriptionLen, false)
	if err != nil {
		return Cat{}, err
	}
	if err := validAge(in.Age); err != nil {
		return Cat{}, err
	}

	now := s.now()
	c := Cat{
		ID:          uuid.NewString(),
		OwnerUserID: ownerUserID,
		Name:        name,
		Breed:       breed,
		Description: desc,
		Age:         in.Age,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Cat{}, err
	}
	return c, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Cat, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []Cat{}, nil
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
}

// GetByID no verifica dueño; los handlers usan GetOwned o GetDetail.
func (s *Service) GetByID(ctx context.Context, id string) (Cat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Cat{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetOwned resuelve el gato y exige que userID sea el dueño.
// NotFound se chequea antes que Forbidden.
func (s *Service) GetOwned(ctx context.Context, userID, catID string) (Cat, error) {
	c, err := s.GetByID(ctx, catID)
	if err != nil {
		return Cat{}, err
	}
	if c.OwnerUserID != strings.TrimSpace(userID) {
		return Cat{}, ErrForbidden
	}
	return c, nil
}

func (s *Service) GetDetail(ctx context.Context, userID, catID string) (CatDetail, error) {
	c, err := s.GetOwned(ctx, userID, catID)
	if err != nil {
		return CatDetail{}, err
	}

	feedings, err := s.repo.ListFeedings(ctx, c.ID)
	if err != nil {
		return CatDetail{}, err
	}
	photos, err := s.repo.ListPhotos(ctx, c.ID)
	if err != nil {
		return CatDetail{}, err
	}
	linked, err := s.repo.ListToyIDs(ctx, c.ID)
	if err != nil {
		return CatDetail{}, err
	}
	owned, err := s.toys.ListByOwner(ctx, c.OwnerUserID)
	if err != nil {
		return CatDetail{}, err
	}

	has := make(map[string]struct{}, len(linked))
	for _, id := range linked {
		has[id] = struct{}{}
	}

	d := CatDetail{
		Cat:           c,
		Feedings:      feedings,
		Photos:        photos,
		Toys:          make([]toys.Toy, 0, len(linked)),
		AvailableToys: make([]toys.Toy, 0, len(owned)),
	}
	for _, t := range owned {
		if _, ok := has[t.ID]; ok {
			d.Toys = append(d.Toys, t)
		} else {
			d.AvailableToys = append(d.AvailableToys, t)
		}
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, userID, catID string, in UpdateInput) (Cat, error) {
	c, err := s.GetOwned(ctx, userID, catID)
	if err != nil {
		return Cat{}, err
	}

	if in.Breed != nil {
		if c.Breed, err = validText("breed", *in.Breed, MaxBreedLen, true); err != nil {
			return Cat{}, err
		}
	}
	if in.Description != nil {
		if c.Description, err = validText("description", *in.Description, MaxDescriptionLen, false); err != nil {
			return Cat{}, err
		}
	}
	if in.Age != nil {
		if err := validAge(*in.Age); err != nil {
			return Cat{}, err
		}
		c.Age = *in.Age
	}
	c.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, c); err != nil {
		return Cat{}, err
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, userID, catID string) error {
	c, err := s.GetOwned(ctx, userID, catID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, c.ID)
}

// AssociateToy exige dueño del gato y que el juguete sea del mismo dueño.
func (s *Service) AssociateToy(ctx context.Context, userID, catID, toyID string) error {
	c, err := s.GetOwned(ctx, userID, catID)
	if err != nil {
		return err
	}

	toyID = strings.TrimSpace(toyID)
	owner, err := s.toys.OwnerOf(ctx, toyID)
	if err != nil {
		return err
	}
	if owner != c.OwnerUserID {
		return ErrToyNotOwned
	}

	return s.repo.AddToy(ctx, c.ID, toyID)
}

// DissociateToy es idempotente: quitar un vínculo inexistente no es error.
func (s *Service) DissociateToy(ctx context.Context, userID, catID, toyID string) error {
	c, err := s.GetOwned(ctx, userID, catID)
	if err != nil {
		return err
	}
	toyID = strings.TrimSpace(toyID)
	if toyID == "" {
		return toys.ErrNotFound
	}
	return s.repo.RemoveToy(ctx, c.ID, toyID)
}

func validText(field, v string, max int, required bool) (string, error) {
	v = strings.TrimSpace(v)
	if required && v == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(v) > max {
		return "", fmt.Errorf("%w: %s must be at most %d characters", ErrInvalidInput, field, max)
	}
	return v, nil
}

func validAge(age int) error {
	if age < 0 {
		return fmt.Errorf("%w: age must be a non-negative integer", ErrInvalidInput)
	}
	return nil
}
