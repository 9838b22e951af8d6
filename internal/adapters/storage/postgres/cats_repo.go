package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cat-collector/internal/domain/cats"
	"cat-collector/internal/domain/toys"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
)

var catColumns = []string{
	"id", "owner_user_id",
	"name", "breed", "description", "age",
	"created_at", "updated_at",
}

type CatsRepo struct {
	db *sql.DB
}

func NewCatsRepo(db *sql.DB) *CatsRepo {
	return &CatsRepo{db: db}
}

func (r *CatsRepo) Create(ctx context.Context, c cats.Cat) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cats (
			id, owner_user_id,
			name, breed, description, age,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.OwnerUserID,
		c.Name,
		c.Breed,
		c.Description,
		c.Age,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

// Update nunca toca owner_user_id ni name.
func (r *CatsRepo) Update(ctx context.Context, c cats.Cat) error {
	query, args, err := psql.Update("cats").
		SetMap(map[string]any{
			"breed":       c.Breed,
			"description": c.Description,
			"age":         c.Age,
			"updated_at":  c.UpdatedAt,
		}).
		Where(sq.Eq{"id": c.ID}).
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
		return cats.ErrNotFound
	}
	return nil
}

// Delete: feedings, photos y cat_toys caen por ON DELETE CASCADE.
func (r *CatsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cats WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return cats.ErrNotFound
	}
	return nil
}

func (r *CatsRepo) GetByID(ctx context.Context, id string) (cats.Cat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return cats.Cat{}, cats.ErrNotFound
	}

	query, args, err := psql.Select(catColumns...).
		From("cats").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return cats.Cat{}, err
	}

	c, err := scanCat(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cats.Cat{}, cats.ErrNotFound
		}
		return cats.Cat{}, err
	}
	return c, nil
}

func (r *CatsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]cats.Cat, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []cats.Cat{}, nil
	}

	query, args, err := psql.Select(catColumns...).
		From("cats").
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

	out := make([]cats.Cat, 0)
	for rows.Next() {
		c, err := scanCat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// AddToy es idempotente (ON CONFLICT DO NOTHING).
func (r *CatsRepo) AddToy(ctx context.Context, catID, toyID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cat_toys (cat_id, toy_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, catID, toyID)
	if err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && strings.Contains(pgErr.ConstraintName, "toy_id") {
				return toys.ErrNotFound
			}
			return cats.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *CatsRepo) RemoveToy(ctx context.Context, catID, toyID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cat_toys WHERE cat_id = $1 AND toy_id = $2`, catID, toyID)
	return err
}

func (r *CatsRepo) ListToyIDs(ctx context.Context, catID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT toy_id FROM cat_toys WHERE cat_id = $1 ORDER BY toy_id`, catID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *CatsRepo) CreateFeeding(ctx context.Context, f cats.Feeding) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feedings (id, cat_id, date, meal, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		f.ID,
		f.CatID,
		f.Date,
		string(f.Meal),
		f.CreatedAt,
	)
	if pgCode(err) == codeForeignKeyViolation {
		return cats.ErrNotFound
	}
	return err
}

func (r *CatsRepo) ListFeedings(ctx context.Context, catID string) ([]cats.Feeding, error) {
	query, args, err := psql.Select("id", "cat_id", "date", "meal", "created_at").
		From("feedings").
		Where(sq.Eq{"cat_id": catID}).
		OrderBy("date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cats.Feeding, 0)
	for rows.Next() {
		var f cats.Feeding
		var meal string
		if err := rows.Scan(&f.ID, &f.CatID, &f.Date, &meal, &f.CreatedAt); err != nil {
			return nil, err
		}
		f.Meal = cats.Meal(meal)
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *CatsRepo) CreatePhoto(ctx context.Context, p cats.Photo) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO photos (id, cat_id, url, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		p.ID,
		p.CatID,
		p.URL,
		p.CreatedAt,
	)
	if pgCode(err) == codeForeignKeyViolation {
		return cats.ErrNotFound
	}
	return err
}

func (r *CatsRepo) ListPhotos(ctx context.Context, catID string) ([]cats.Photo, error) {
	query, args, err := psql.Select("id", "cat_id", "url", "created_at").
		From("photos").
		Where(sq.Eq{"cat_id": catID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]cats.Photo, 0)
	for rows.Next() {
		var p cats.Photo
		if err := rows.Scan(&p.ID, &p.CatID, &p.URL, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCat(row rowScanner) (cats.Cat, error) {
	var c cats.Cat
	err := row.Scan(
		&c.ID,
		&c.OwnerUserID,
		&c.Name,
		&c.Breed,
		&c.Description,
		&c.Age,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	return c, err
}
