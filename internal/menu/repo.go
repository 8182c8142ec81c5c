// Package menu provides the repository interface and PostgreSQL
// implementation for the catalog of menu items.
package menu

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context) ([]MenuItem, error)
	GetByID(ctx context.Context, id int64) (*MenuItem, error)
	Create(ctx context.Context, m *MenuItem) error
	Update(ctx context.Context, id int64, patch UpdateItemRequest) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) List(ctx context.Context) ([]MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, price::text, inventory
		FROM menu_items
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MenuItem
	for rows.Next() {
		var m MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Price, &m.Inventory); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*MenuItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var m MenuItem
	err := r.db.QueryRow(ctx, `
		SELECT id, name, price::text, inventory
		FROM menu_items WHERE id=$1
	`, id).Scan(&m.ID, &m.Name, &m.Price, &m.Inventory)
	if err != nil {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *PGRepo) Create(ctx context.Context, m *MenuItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO menu_items (name, price, inventory)
		VALUES ($1,$2,$3)
		RETURNING id
	`, m.Name, m.Price, m.Inventory).Scan(&m.ID)
}

// Update applies only the provided fields. The row update takes the same
// row lock that order placement holds while decrementing, so an edit can
// never interleave with an in-flight decrement on the same item.
func (r *PGRepo) Update(ctx context.Context, id int64, patch UpdateItemRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET name      = COALESCE($2, name),
		    price     = COALESCE($3::numeric, price),
		    inventory = COALESCE($4, inventory)
		WHERE id = $1
	`, id, patch.Name, patch.Price, patch.Inventory)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id int64) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}
