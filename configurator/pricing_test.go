package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krystian2077/smartpc-builder/models"
)

func testCatalog() Catalog {
	return Catalog{
		models.ComponentCPU: {priced("c1", 500)},
		models.ComponentGPU: {priced("g1", 3200), priced("g2", 1800)},
		models.ComponentRAM: {priced("r1", 499)},
	}
}

func TestTotalEmptySelection(t *testing.T) {
	assert.Equal(t, 0.0, Total(NewSelection(), testCatalog(), false))
}

func TestTotalPartialSelection(t *testing.T) {
	selection := NewSelection()
	selection.Select(models.ComponentCPU, "c1")
	selection.Select(models.ComponentGPU, "g1")

	assert.Equal(t, 3700.0, Total(selection, testCatalog(), false))
	assert.Len(t, selection.Missing(), 6)
}

func TestTotalWithAssemblyFee(t *testing.T) {
	catalog := Catalog{}
	selection := NewSelection()
	for _, category := range models.ComponentOrder {
		id := "p-" + string(category)
		catalog[category] = []models.Product{priced(id, 1000)}
		selection.Select(category, id)
	}

	assert.Empty(t, selection.Missing())
	assert.Equal(t, 8000.0, Total(selection, catalog, false))
	assert.Equal(t, 8300.0, Total(selection, catalog, true))
}

func TestTotalAssemblyAloneIsFeeOnly(t *testing.T) {
	assert.Equal(t, float64(AssemblyPrice), Total(NewSelection(), testCatalog(), true))
}

func TestTotalUnresolvedSelectionContributesZero(t *testing.T) {
	selection := NewSelection()
	selection.Select(models.ComponentCPU, "c1")
	selection.Select(models.ComponentStorage, "gone") // stale id, not in catalog

	assert.Equal(t, 500.0, Total(selection, testCatalog(), false))
}

func TestTotalOrderIndependent(t *testing.T) {
	forward := NewSelection()
	forward.Select(models.ComponentCPU, "c1")
	forward.Select(models.ComponentGPU, "g1")
	forward.Select(models.ComponentRAM, "r1")

	backward := NewSelection()
	backward.Select(models.ComponentRAM, "r1")
	backward.Select(models.ComponentGPU, "g1")
	backward.Select(models.ComponentCPU, "c1")

	assert.Equal(t, Total(forward, testCatalog(), false), Total(backward, testCatalog(), false))
}

func TestCatalogResolve(t *testing.T) {
	catalog := testCatalog()

	p, ok := catalog.Resolve("g2")
	assert.True(t, ok)
	assert.Equal(t, 1800.0, p.Price)

	_, ok = catalog.Resolve("missing")
	assert.False(t, ok)

	_, ok = catalog.Resolve("")
	assert.False(t, ok)
}
