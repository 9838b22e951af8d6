package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cat-collector/internal/domain/toys"

	sq "github.com/Masterminds/squirrel"
)

var toyColumns = []string{"id", "owner_user_id", "name", "color", "created_at", "updated_at"}

type ToysRepo struct {
	db *sql.DB
}

func NewToysRepo(db *sql.DB) *ToysRepo {
	return &ToysRepo{db: db}
}

func (r *ToysRepo) Create(ctx context.Context, t toys.Toy) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO toys (id, owner_user_id, name, color, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		t.ID,
		t.OwnerUserID,
		t.Name,
		t.Color,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

func (r *ToysRepo) Update(ctx context.Context, t toys.Toy) error {
	query, args, err := psql.Update("toys").
		SetMap(map[string]any{
			"name":       t.Name,
			"color":      t.Color,
			"updated_at": t.UpdatedAt,
		}).
		Where(sq.Eq{"id": t.ID}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return toys.ErrNotFound
	}
	return nil
}

// Delete: las filas de cat_toys caen por ON DELETE CASCADE.
func (r *ToysRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM toys WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return toys.ErrNotFound
	}
	return nil
}

func (r *ToysRepo) GetByID(ctx context.Context, id string) (toys.Toy, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return toys.Toy{}, toys.ErrNotFound
	}

	query, args, err := psql.Select(toyColumns...).
		From("toys").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return toys.Toy{}, err
	}

	var t toys.Toy
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&t.ID, &t.OwnerUserID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return toys.Toy{}, toys.ErrNotFound
		}
		return toys.Toy{}, err
	}
	return t, nil
}

func (r *ToysRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]toys.Toy, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []toys.Toy{}, nil
	}

	query, args, err := psql.Select(toyColumns...).
		From("toys").
		Where(sq.Eq{"owner_user_id": ownerUserID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]toys.Toy, 0)
	for rows.Next() {
		var t toys.Toy
		if err := rows.Scan(&t.ID, &t.OwnerUserID, &t.Name, &t.Color, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
