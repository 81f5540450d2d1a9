package repository

import (
	"context"
	"fmt"

	"showcase/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema creates the catalogue tables. position keeps catalogue order so
// ties between products resolve the same way as in memory.
const Schema = `
	CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		position INT NOT NULL,
		name TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_products_position ON products(position);

	CREATE TABLE IF NOT EXISTS rated_items (
		position INT PRIMARY KEY,
		title TEXT NOT NULL,
		rating DOUBLE PRECISION NOT NULL
	);
`

// PostgresRepository implements CatalogueRepository using PostgreSQL.
type PostgresRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresRepository creates a new PostgreSQL-backed catalogue repository.
func NewPostgresRepository(pool *pgxpool.Pool, logger zerolog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalogue").Logger(),
	}
}

// EnsureSchema creates the catalogue tables if they do not exist.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, Schema); err != nil {
		r.logger.Error().Err(err).Msg("failed to create catalogue schema")
		return fmt.Errorf("failed to create catalogue schema: %w", err)
	}
	return nil
}

// Replace swaps the stored catalogue for c in a single transaction.
// Products without an ID are given a random one.
func (r *PostgresRepository) Replace(ctx context.Context, c model.Catalogue) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
		return fmt.Errorf("failed to clear products: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM rated_items`); err != nil {
		return fmt.Errorf("failed to clear rated items: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"products"},
		[]string{"id", "position", "name", "price", "category"},
		pgx.CopyFromSlice(len(c.Products), func(i int) ([]any, error) {
			p := c.Products[i]
			id := p.ID
			if id == "" {
				id = uuid.NewString()
			}
			return []any{id, i, p.Name, p.Price, p.Category}, nil
		}),
	)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(c.Products)).Msg("failed to insert products")
		return fmt.Errorf("failed to insert products: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"rated_items"},
		[]string{"position", "title", "rating"},
		pgx.CopyFromSlice(len(c.Items), func(i int) ([]any, error) {
			return []any{i, c.Items[i].Title, c.Items[i].Rating}, nil
		}),
	)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(c.Items)).Msg("failed to insert rated items")
		return fmt.Errorf("failed to insert rated items: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit catalogue: %w", err)
	}

	r.logger.Info().
		Int("products", len(c.Products)).
		Int("items", len(c.Items)).
		Msg("catalogue replaced")

	return nil
}

// Products retrieves every product in catalogue order.
func (r *PostgresRepository) Products(ctx context.Context) ([]model.Product, error) {
	query := `
		SELECT id, name, price, category, created_at
		FROM products
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Items retrieves every rated item in catalogue order.
func (r *PostgresRepository) Items(ctx context.Context) ([]model.RatedItem, error) {
	query := `
		SELECT title, rating
		FROM rated_items
		ORDER BY position
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query rated items")
		return nil, fmt.Errorf("failed to query rated items: %w", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.RatedItem, error) {
		var item model.RatedItem
		err := row.Scan(&item.Title, &item.Rating)
		return item, err
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan rated item rows")
		return nil, fmt.Errorf("failed to scan rated items: %w", err)
	}

	return items, nil
}
