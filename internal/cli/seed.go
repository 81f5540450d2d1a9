package cli

import (
	"fmt"

	"showcase/internal/config"
	"showcase/internal/database"
	"showcase/internal/repository"
	"showcase/internal/seed"

	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var fromS3 bool

	c := &cobra.Command{
		Use:   "seed [file...]",
		Short: "Replace the Postgres catalogue with the given YAML documents",
		Long: "Loads one or more catalogue documents (YAML, optionally gzipped) and " +
			"replaces the products and rated items stored in Postgres. With --s3 the " +
			"arguments are object keys in S3_BUCKET; without arguments S3_KEY is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := cfg.Database.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			logger := config.NewLogger(cfg.Logger)
			ctx := cmd.Context()

			var loader seed.Loader
			names := args
			if fromS3 {
				if cfg.S3.Bucket == "" {
					return fmt.Errorf("S3_BUCKET is required with --s3")
				}
				if loader, err = seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger); err != nil {
					return err
				}
				if len(names) == 0 {
					names = splitList(cfg.S3.Key)
				}
			} else {
				loader = seed.NewFileLoader(logger)
			}

			if len(names) == 0 {
				return fmt.Errorf("at least one catalogue document is required")
			}

			catalogue, err := seed.LoadAll(ctx, loader, names...)
			if err != nil {
				return err
			}

			pool, err := database.NewPool(ctx, cfg.Database, database.PurposeSeed, logger)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer pool.Close()

			repo := repository.NewPostgresRepository(pool, logger)
			if err := repo.EnsureSchema(ctx); err != nil {
				return err
			}
			if err := repo.Replace(ctx, *catalogue); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d products and %d rated items\n", len(catalogue.Products), len(catalogue.Items))
			return nil
		},
	}

	c.Flags().BoolVar(&fromS3, "s3", false, "Read documents from S3_BUCKET instead of the local file system")
	return c
}
