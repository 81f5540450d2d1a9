package cli

import (
	"context"
	"fmt"

	"showcase/internal/config"
	"showcase/internal/database"
	"showcase/internal/model"
	"showcase/internal/repository"
	"showcase/internal/seed"

	"github.com/rs/zerolog"
)

// openCatalogue builds the repository selected by CATALOG_SOURCE. The
// returned close function is never nil.
func openCatalogue(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (repository.CatalogueRepository, func(), error) {
	noop := func() {}

	switch cfg.Catalog.Source {
	case config.SourceMemory:
		logger.Info().Msg("using built-in sample catalogue")
		return repository.NewMemoryRepository(model.DefaultCatalogue()), noop, nil

	case config.SourceFile:
		c, err := seed.LoadAll(ctx, seed.NewFileLoader(logger), splitList(cfg.Catalog.File)...)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to load catalogue files: %w", err)
		}
		return repository.NewMemoryRepository(*c), noop, nil

	case config.SourceS3:
		loader, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			return nil, noop, err
		}
		c, err := seed.LoadAll(ctx, loader, splitList(cfg.S3.Key)...)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to load catalogue from S3: %w", err)
		}
		return repository.NewMemoryRepository(*c), noop, nil

	case config.SourcePostgres:
		pool, err := database.NewPool(ctx, cfg.Database, database.PurposeCatalogue, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to initialize database: %w", err)
		}

		repo := repository.NewPostgresRepository(pool, logger)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return repo, pool.Close, nil

	default:
		return nil, noop, fmt.Errorf("invalid catalogue source: %s", cfg.Catalog.Source)
	}
}
