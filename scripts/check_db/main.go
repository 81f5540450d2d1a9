package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"showcase/internal/config"
	"showcase/internal/database"

	"github.com/jackc/pgx/v5"
)

// Checks the DB_* settings: connects, lists the databases on the server and
// counts the catalogue rows.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Database.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid database configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger := config.NewLogger(cfg.Logger)
	pool, err := database.NewPool(ctx, cfg.Database, database.PurposeCheck, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully connected to database: %s\n", dbName)

	rows, err := pool.Query(ctx, "SELECT datname FROM pg_database WHERE datistemplate = false ORDER BY datname")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
		os.Exit(1)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Scan failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nAvailable databases:")
	for _, name := range names {
		fmt.Printf("  - %s\n", name)
	}

	fmt.Println("\nCatalogue tables:")
	for _, table := range []string{"products", "rated_items"} {
		var count int
		err := pool.QueryRow(ctx, "SELECT count(*) FROM "+pgx.Identifier{table}.Sanitize()).Scan(&count)
		if err != nil {
			fmt.Printf("  - %s: not available (run `showcase seed`)\n", table)
			continue
		}
		fmt.Printf("  - %s: %d rows\n", table, count)
	}
}
