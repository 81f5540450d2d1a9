package repository

import (
	"context"

	"showcase/internal/model"
)

// CatalogueRepository defines read access to the product and rated item
// catalogue. Both methods return entries in catalogue order.
type CatalogueRepository interface {
	// Products retrieves every product.
	Products(ctx context.Context) ([]model.Product, error)

	// Items retrieves every rated item.
	Items(ctx context.Context) ([]model.RatedItem, error)
}
