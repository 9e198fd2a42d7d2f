package configurator

import "github.com/krystian2077/smartpc-builder/models"

// AssemblyPrice is the flat fee for the optional assembly service, in PLN.
const AssemblyPrice = 300

// Catalog holds the fetched product lists per category. Lookups for pricing
// go against the full, unfiltered lists.
type Catalog map[models.ComponentType][]models.Product

// Resolve finds a product by id across all categories. A selection that no
// longer resolves (stale id, failed fetch) returns ok=false and must be
// treated as "selected but unresolved" by callers, never as an error.
func (c Catalog) Resolve(productID string) (models.Product, bool) {
	if productID == "" {
		return models.Product{}, false
	}
	for _, products := range c {
		for _, p := range products {
			if p.ID == productID {
				return p, true
			}
		}
	}
	return models.Product{}, false
}

// Total sums the prices of every resolved selected product plus the assembly
// fee when the service is active. Unresolved selections contribute 0. The
// result is a plain sum, independent of selection order.
func Total(selection Selection, catalog Catalog, assembly bool) float64 {
	var total float64
	for _, productID := range selection {
		if p, ok := catalog.Resolve(productID); ok {
			total += p.Price
		}
	}
	if assembly {
		total += AssemblyPrice
	}
	return total
}
