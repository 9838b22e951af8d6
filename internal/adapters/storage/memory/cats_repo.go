package memory

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/toys"
)

type catRepo struct {
	s *Store
}

func NewCatRepo(s *Store) cats.Repository {
	return &catRepo{s: s}
}

func (r *catRepo) Create(ctx context.Context, c cats.Cat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("cat id required")
	}
	if _, exists := r.s.cats[c.ID]; exists {
		return errors.New("cat already exists")
	}
	r.s.cats[c.ID] = c
	return nil
}

func (r *catRepo) Update(ctx context.Context, c cats.Cat) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, exists := r.s.cats[c.ID]
	if !exists {
		return cats.ErrNotFound
	}
	// dueño y nombre son inmutables también a nivel de store
	c.OwnerUserID = cur.OwnerUserID
	c.Name = cur.Name
	c.CreatedAt = cur.CreatedAt
	r.s.cats[c.ID] = c
	return nil
}

func (r *catRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.cats[id]; !exists {
		return cats.ErrNotFound
	}
	delete(r.s.cats, id)
	delete(r.s.catToys, id)
	delete(r.s.feedings, id)
	delete(r.s.photos, id)
	return nil
}

func (r *catRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.cats[id]
	if !ok {
		return cats.Cat{}, cats.ErrNotFound
	}
	return c, nil
}

func (r *catRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.Cat, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]cats.Cat, 0)
	for _, c := range r.s.cats {
		if c.OwnerUserID == ownerUserID {
			out = append(out, c)
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

func (r *catRepo) AddToy(ctx context.Context, catID, toyID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cats[catID]; !ok {
		return cats.ErrNotFound
	}
	if _, ok := r.s.toys[toyID]; !ok {
		return toys.ErrNotFound
	}

	set, ok := r.s.catToys[catID]
	if !ok {
		set = make(map[string]struct{})
		r.s.catToys[catID] = set
	}
	set[toyID] = struct{}{}
	return nil
}

func (r *catRepo) RemoveToy(ctx context.Context, catID, toyID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cats[catID]; !ok {
		return cats.ErrNotFound
	}
	if set, ok := r.s.catToys[catID]; ok {
		delete(set, toyID)
		if len(set) == 0 {
			delete(r.s.catToys, catID)
		}
	}
	return nil
}

func (r *catRepo) ListToyIDs(ctx context.Context, catID string) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]string, 0, len(r.s.catToys[catID]))
	for id := range r.s.catToys[catID] {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

func (r *catRepo) CreateFeeding(ctx context.Context, f cats.Feeding) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cats[f.CatID]; !ok {
		return cats.ErrNotFound
	}
	r.s.feedings[f.CatID] = append(r.s.feedings[f.CatID], f)
	return nil
}

func (r *catRepo) ListFeedings(ctx context.Context, catID string) ([]cats.Feeding, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := append([]cats.Feeding{}, r.s.feedings[catID]...)

	// fecha desc; a igual fecha, el último registrado primero
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (r *catRepo) CreatePhoto(ctx context.Context, p cats.Photo) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.cats[p.CatID]; !ok {
		return cats.ErrNotFound
	}
	r.s.photos[p.CatID] = append(r.s.photos[p.CatID], p)
	return nil
}

func (r *catRepo) ListPhotos(ctx context.Context, catID string) ([]cats.Photo, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]cats.Photo{}, r.s.photos[catID]...), nil
}
