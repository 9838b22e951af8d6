package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/toys"
)

type toyRepo struct {
	s *Store
}

func NewToyRepo(s *Store) toys.Repository {
	return &toyRepo{s: s}
}

func (r *toyRepo) Create(ctx context.Context, t toys.Toy) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("toy id required")
	}
	if _, exists := r.s.toys[t.ID]; exists {
		return errors.New("toy already exists")
	}
	r.s.toys[t.ID] = t
	return nil
}

func (r *toyRepo) Update(ctx context.Context, t toys.Toy) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, exists := r.s.toys[t.ID]
	if !exists {
		return toys.ErrNotFound
	}
	t.OwnerUserID = cur.OwnerUserID
	t.CreatedAt = cur.CreatedAt
	r.s.toys[t.ID] = t
	return nil
}

// Delete quita el juguete de todos los gatos; los gatos quedan intactos.
func (r *toyRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.toys[id]; !exists {
		return toys.ErrNotFound
	}
	delete(r.s.toys, id)
	for catID, set := range r.s.catToys {
		delete(set, id)
		if len(set) == 0 {
			delete(r.s.catToys, catID)
		}
	}
	return nil
}

func (r *toyRepo) GetByID(ctx context.Context, id string) (toys.Toy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.toys[id]
	if !ok {
		return toys.Toy{}, toys.ErrNotFound
	}
	return t, nil
}

func (r *toyRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]toys.Toy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]toys.Toy, 0)
	for _, t := range r.s.toys {
		if t.OwnerUserID == ownerUserID {
			out = append(out, t)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
