package configurator

import (
	"sort"

	"github.com/krystian2077/smartpc-builder/models"
)

// Sort tags. Anything else (including "default") preserves input order.
const (
	SortDefault   = "default"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// Sort orders products by price according to tag. The input slice is never
// mutated; sorting works on a copy so the cached catalog list stays intact.
// Both orderings are stable, so equal-priced products keep their catalog
// order.
func Sort(tag string, products []models.Product) []models.Product {
	switch tag {
	case SortPriceAsc, SortPriceDesc:
	default:
		return products
	}

	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	if tag == SortPriceAsc {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	} else {
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	}
	return sorted
}
