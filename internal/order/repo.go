// Package order implements order placement and listing. Placement is the
// one correctness-critical path in the system: the inventory check, the
// decrement and the order insert must commit or roll back as a unit.
package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// Place validates o.Items against live inventory, computes o.Total,
	// decrements stock and persists the order atomically. On success it
	// fills o.ID, o.Total and o.CreatedAt.
	Place(ctx context.Context, o *Order) error
	List(ctx context.Context) ([]Order, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Place(ctx context.Context, o *Order) error {
	if len(o.Items) == 0 {
		return ErrEmptyOrder
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Aggregate requested units per item, keeping first-seen order.
	qty := make(map[int64]int, len(o.Items))
	ids := make([]int64, 0, len(o.Items))
	for _, id := range o.Items {
		if qty[id] == 0 {
			ids = append(ids, id)
		}
		qty[id]++
	}

	// Row locks serialize concurrent placements and menu edits touching
	// the same items: two orders racing for the last unit cannot both
	// pass the check below.
	rows, err := tx.Query(ctx, `
		SELECT id, name, price::text, inventory
		FROM menu_items
		WHERE id = ANY($1)
		FOR UPDATE
	`, ids)
	if err != nil {
		return err
	}
	type lockedItem struct {
		name      string
		price     string
		inventory int
	}
	locked := make(map[int64]lockedItem, len(ids))
	for rows.Next() {
		var (
			id int64
			it lockedItem
		)
		if err := rows.Scan(&id, &it.name, &it.price, &it.inventory); err != nil {
			rows.Close()
			return err
		}
		locked[id] = it
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range ids {
		it, ok := locked[id]
		if !ok {
			return &NotFoundError{ItemID: id}
		}
		if qty[id] > it.inventory {
			return &InsufficientInventoryError{
				ItemID:    id,
				Name:      it.name,
				Requested: qty[id],
				Available: it.inventory,
			}
		}
	}

	// Prices are locked at order time: the total is computed from the
	// rows read under lock and frozen on the order row.
	total := decimal.Zero
	for _, id := range ids {
		price, err := decimal.NewFromString(locked[id].price)
		if err != nil {
			return err
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(qty[id]))))
	}

	for _, id := range ids {
		tag, err := tx.Exec(ctx, `
			UPDATE menu_items
			SET inventory = inventory - $2
			WHERE id = $1 AND inventory >= $2
		`, id, qty[id])
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			it := locked[id]
			return &InsufficientInventoryError{
				ItemID:    id,
				Name:      it.name,
				Requested: qty[id],
				Available: it.inventory,
			}
		}
	}

	o.Total = total.StringFixed(2)
	if err := tx.QueryRow(ctx, `
		INSERT INTO orders (customer_name, total)
		VALUES ($1,$2)
		RETURNING id, created_at
	`, o.CustomerName, o.Total).Scan(&o.ID, &o.CreatedAt); err != nil {
		return err
	}

	for _, id := range ids {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, menu_item_id, quantity, price)
			VALUES ($1,$2,$3,$4)
		`, o.ID, id, qty[id], locked[id].price); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PGRepo) List(ctx context.Context) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, customer_name, total::text, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	var orderIDs []int64
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
		orderIDs = append(orderIDs, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	lineRows, err := r.db.Query(ctx, `
		SELECT order_id, menu_item_id, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id
	`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	// Expand stored lines back to the flat one-id-per-unit sequence.
	itemsByOrder := make(map[int64][]int64, len(out))
	for lineRows.Next() {
		var orderID, itemID int64
		var quantity int
		if err := lineRows.Scan(&orderID, &itemID, &quantity); err != nil {
			return nil, err
		}
		for i := 0; i < quantity; i++ {
			itemsByOrder[orderID] = append(itemsByOrder[orderID], itemID)
		}
	}
	if err := lineRows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		out[i].Items = itemsByOrder[out[i].ID]
		if out[i].Items == nil {
			out[i].Items = []int64{}
		}
	}
	return out, nil
}
