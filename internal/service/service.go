package service

import (
	"context"

	"showcase/internal/model"
)

// CatalogueService defines queries over the configured catalogue.
type CatalogueService interface {
	// TopRated retrieves the catalogue items rated 4 or higher.
	TopRated(ctx context.Context) ([]model.RatedItem, error)

	// MostExpensive retrieves the highest priced product. It returns
	// model.ErrEmptyCatalogue when there are no products.
	MostExpensive(ctx context.Context) (*model.Product, error)
}

// SquareService defines delayed square computations.
type SquareService interface {
	// Square waits for the delayed square of n. Negative input fails with
	// model.ErrNegativeNumber.
	Square(ctx context.Context, n float64) (float64, error)
}
