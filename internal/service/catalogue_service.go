package service

import (
	"context"
	"fmt"

	"showcase/internal/catalog"
	"showcase/internal/model"
	"showcase/internal/repository"

	"github.com/rs/zerolog"
)

// catalogueService implements CatalogueService.
type catalogueService struct {
	repo   repository.CatalogueRepository
	logger zerolog.Logger
}

// NewCatalogueService creates a new catalogue service.
func NewCatalogueService(repo repository.CatalogueRepository, logger zerolog.Logger) CatalogueService {
	return &catalogueService{
		repo:   repo,
		logger: logger.With().Str("service", "catalogue").Logger(),
	}
}

// TopRated retrieves the catalogue items rated 4 or higher.
func (s *catalogueService) TopRated(ctx context.Context) ([]model.RatedItem, error) {
	items, err := s.repo.Items(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get rated items")
		return nil, fmt.Errorf("failed to get rated items: %w", err)
	}

	top := catalog.FilterByRating(items)

	s.logger.Debug().
		Int("total", len(items)).
		Int("kept", len(top)).
		Msg("filtered rated items")

	return top, nil
}

// MostExpensive retrieves the highest priced product.
func (s *catalogueService) MostExpensive(ctx context.Context) (*model.Product, error) {
	products, err := s.repo.Products(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	best, ok := catalog.MostExpensive(products)
	if !ok {
		s.logger.Debug().Msg("catalogue has no products")
		return nil, model.ErrEmptyCatalogue
	}

	return &best, nil
}
