package memory

import (
	"context"
	"errors"
	"strings"

	"cat-collector/internal/domain/accounts"
)

type accountRepo struct {
	s *Store
}

func NewAccountRepo(s *Store) accounts.Repository {
	return &accountRepo{s: s}
}

func (r *accountRepo) Create(ctx context.Context, u accounts.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	key := strings.ToLower(u.Username)
	if _, exists := r.s.users[key]; exists {
		return accounts.ErrUsernameTaken
	}
	r.s.users[key] = u
	return nil
}

func (r *accountRepo) GetByUsername(ctx context.Context, username string) (accounts.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[strings.ToLower(username)]
	if !ok {
		return accounts.User{}, accounts.ErrNotFound
	}
	return u, nil
}
