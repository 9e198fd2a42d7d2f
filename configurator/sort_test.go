package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krystian2077/smartpc-builder/models"
)

func priced(id string, price float64) models.Product {
	return models.Product{ID: id, Name: id, Price: price}
}

func TestSortPriceAsc(t *testing.T) {
	products := []models.Product{priced("a", 300), priced("b", 100), priced("c", 200)}

	sorted := Sort(SortPriceAsc, products)

	assert.Equal(t, []string{"b", "c", "a"}, ids(sorted))
	for i := 1; i < len(sorted); i++ {
		assert.LessOrEqual(t, sorted[i-1].Price, sorted[i].Price)
	}
}

func TestSortPriceDesc(t *testing.T) {
	products := []models.Product{priced("a", 300), priced("b", 100), priced("c", 200)}

	sorted := Sort(SortPriceDesc, products)

	assert.Equal(t, []string{"a", "c", "b"}, ids(sorted))
	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1].Price, sorted[i].Price)
	}
}

func TestSortIsStable(t *testing.T) {
	products := []models.Product{
		priced("first", 100),
		priced("second", 100),
		priced("third", 100),
	}

	assert.Equal(t, []string{"first", "second", "third"}, ids(Sort(SortPriceAsc, products)))
	assert.Equal(t, []string{"first", "second", "third"}, ids(Sort(SortPriceDesc, products)))
}

func TestSortDefaultPreservesOrder(t *testing.T) {
	products := []models.Product{priced("a", 300), priced("b", 100)}

	assert.Equal(t, products, Sort(SortDefault, products))
	assert.Equal(t, products, Sort("anything-else", products))
	assert.Equal(t, products, Sort("", products))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	products := []models.Product{priced("a", 300), priced("b", 100), priced("c", 200)}

	_ = Sort(SortPriceAsc, products)

	assert.Equal(t, []string{"a", "b", "c"}, ids(products))
}
