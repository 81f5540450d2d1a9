package repository

import (
	"context"
	"slices"

	"showcase/internal/model"
)

// memoryRepository serves a fixed catalogue held in memory.
type memoryRepository struct {
	catalogue model.Catalogue
}

// NewMemoryRepository creates a repository over a copy of c.
func NewMemoryRepository(c model.Catalogue) CatalogueRepository {
	return &memoryRepository{
		catalogue: model.Catalogue{
			Products: slices.Clone(c.Products),
			Items:    slices.Clone(c.Items),
		},
	}
}

// Products returns a copy of the stored products.
func (r *memoryRepository) Products(ctx context.Context) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.Product{}, r.catalogue.Products...), nil
}

// Items returns a copy of the stored rated items.
func (r *memoryRepository) Items(ctx context.Context) ([]model.RatedItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]model.RatedItem{}, r.catalogue.Items...), nil
}
