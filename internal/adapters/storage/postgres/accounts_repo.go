package postgres

import (
	"context"
	"database/sql"
	"errors"

	"cat-collector/internal/domain/accounts"
)

type AccountsRepo struct {
	db *sql.DB
}

func NewAccountsRepo(db *sql.DB) *AccountsRepo {
	return &AccountsRepo{db: db}
}

func (r *AccountsRepo) Create(ctx context.Context, u accounts.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES ($1,$2,$3,$4)
	`, u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	if pgCode(err) == codeUniqueViolation {
		return accounts.ErrUsernameTaken
	}
	return err
}

func (r *AccountsRepo) GetByUsername(ctx context.Context, username string) (accounts.User, error) {
	var u accounts.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, created_at
		FROM users
		WHERE LOWER(username) = LOWER($1)
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.User{}, accounts.ErrNotFound
		}
		return accounts.User{}, err
	}
	return u, nil
}
