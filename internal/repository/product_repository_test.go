package repository

import (
	"context"
	"testing"
	"time"

	"showcase/internal/catalog"
	"showcase/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("Skipping PostgreSQL container test in short mode")
	}

	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	// Cleanup function
	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

func TestPostgresRepository(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewPostgresRepository(pool, zerolog.Nop())
	require.NoError(t, repo.EnsureSchema(ctx))
	// Idempotent.
	require.NoError(t, repo.EnsureSchema(ctx))

	t.Run("Empty catalogue", func(t *testing.T) {
		products, err := repo.Products(ctx)
		require.NoError(t, err)
		assert.Empty(t, products)

		items, err := repo.Items(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("Replace and read back in order", func(t *testing.T) {
		c := model.Catalogue{
			Products: []model.Product{
				{ID: "P010", Name: "Pen", Price: 10, Category: "Stationery"},
				{ID: "P001", Name: "Lamp", Price: 40},
				{Name: "Chair", Price: 40},
			},
			Items: []model.RatedItem{
				{Title: "Book Z", Rating: 4.5},
				{Title: "Book A", Rating: 3.2},
			},
		}
		require.NoError(t, repo.Replace(ctx, c))

		products, err := repo.Products(ctx)
		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, "Pen", products[0].Name)
		assert.Equal(t, "Stationery", products[0].Category)
		assert.Equal(t, "Lamp", products[1].Name)
		assert.Equal(t, "Chair", products[2].Name)
		assert.NotEmpty(t, products[2].ID)
		assert.False(t, products[0].CreatedAt.IsZero())

		// Catalogue order survives the round trip, so the tie resolves
		// to the earlier product.
		best, ok := catalog.MostExpensive(products)
		require.True(t, ok)
		assert.Equal(t, "Lamp", best.Name)

		items, err := repo.Items(ctx)
		require.NoError(t, err)
		assert.Equal(t, c.Items, items)
	})

	t.Run("Replace discards previous catalogue", func(t *testing.T) {
		require.NoError(t, repo.Replace(ctx, model.DefaultCatalogue()))

		products, err := repo.Products(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 3)
		assert.Equal(t, "Bag", products[2].Name)

		items, err := repo.Items(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultCatalogue().Items, items)
	})

	t.Run("Duplicate IDs roll back", func(t *testing.T) {
		err := repo.Replace(ctx, model.Catalogue{
			Products: []model.Product{
				{ID: "DUP", Name: "One", Price: 1},
				{ID: "DUP", Name: "Two", Price: 2},
			},
		})
		require.Error(t, err)

		products, err := repo.Products(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 3, "previous catalogue should survive a failed replace")
	})
}
