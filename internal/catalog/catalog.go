// Package catalog filters and summarises catalogue entries.
package catalog

import (
	"showcase/internal/collection"
	"showcase/internal/model"
)

// MinRating is the inclusive lower bound kept by FilterByRating.
const MinRating = 4

// FilterByRating returns the items rated MinRating or higher, in input order.
func FilterByRating(items []model.RatedItem) []model.RatedItem {
	return collection.Filter(items, func(item model.RatedItem) bool {
		return item.Rating >= MinRating
	})
}

// MostExpensive returns the product with the highest price. The earliest
// product wins a tie. ok is false when products is empty.
func MostExpensive(products []model.Product) (product model.Product, ok bool) {
	if len(products) == 0 {
		return model.Product{}, false
	}

	best := collection.Reduce(products[1:], products[0], func(best, current model.Product) model.Product {
		if current.Price > best.Price {
			return current
		}
		return best
	})
	return best, true
}
