package catalog_cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krystian2077/smartpc-builder/models"
)

func TestProductCacheMissUntilSet(t *testing.T) {
	Reset()

	_, ok := GetProducts(models.ComponentCPU)
	assert.False(t, ok)

	products := []models.Product{{ID: "c1", Name: "AMD Ryzen 5", Price: 899}}
	SetProducts(models.ComponentCPU, products)

	got, ok := GetProducts(models.ComponentCPU)
	require.True(t, ok)
	assert.Equal(t, products, got)

	// Other categories stay independent.
	_, ok = GetProducts(models.ComponentGPU)
	assert.False(t, ok)
}

func TestPresetCaches(t *testing.T) {
	Reset()

	_, ok := GetPresets()
	assert.False(t, ok)

	SetPresets([]models.Preset{{ID: "p1", Name: "SmartPC Start"}})
	presets, ok := GetPresets()
	require.True(t, ok)
	assert.Len(t, presets, 1)

	_, ok = GetPresetDetails("p1")
	assert.False(t, ok)

	SetPresetDetails("p1", &models.PresetDetails{Preset: models.Preset{ID: "p1"}})
	details, ok := GetPresetDetails("p1")
	require.True(t, ok)
	assert.Equal(t, "p1", details.ID)
}

func TestResetClearsEverything(t *testing.T) {
	SetProducts(models.ComponentRAM, []models.Product{{ID: "r1"}})
	SetPresets([]models.Preset{{ID: "p1"}})
	SetPresetDetails("p1", &models.PresetDetails{})

	Reset()

	_, ok := GetProducts(models.ComponentRAM)
	assert.False(t, ok)
	_, ok = GetPresets()
	assert.False(t, ok)
	_, ok = GetPresetDetails("p1")
	assert.False(t, ok)
}
