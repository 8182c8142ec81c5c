package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrations are embedded so the binary can set up a fresh database
// regardless of the current working directory.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded migrations in lexical order. Every statement
// is written to be re-runnable, so calling this on every start is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

// SeedMenu inserts the default menu when the catalog is empty.
func SeedMenu(ctx context.Context, pool *pgxpool.Pool) error {
	var n int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n); err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	if n > 0 {
		return nil
	}

	seed := []struct {
		name      string
		price     string
		inventory int
	}{
		{"Espresso", "2.50", 20},
		{"Latte", "3.50", 15},
		{"Cappuccino", "3.00", 15},
		{"Tea", "2.00", 25},
	}
	for _, s := range seed {
		if _, err := pool.Exec(ctx, `
			INSERT INTO menu_items (name, price, inventory) VALUES ($1,$2,$3)
		`, s.name, s.price, s.inventory); err != nil {
			return fmt.Errorf("seed %s: %w", s.name, err)
		}
	}
	return nil
}
