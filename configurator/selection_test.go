package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krystian2077/smartpc-builder/models"
)

func TestSelectionSelectReplacesPriorChoice(t *testing.T) {
	selection := NewSelection()

	selection.Select(models.ComponentCPU, "cpu-1")
	selection.Select(models.ComponentCPU, "cpu-2")

	assert.Equal(t, "cpu-2", selection.Get(models.ComponentCPU))
}

func TestSelectionSelectThenRemoveRoundTrip(t *testing.T) {
	selection := NewSelection()
	selection.Select(models.ComponentGPU, "gpu-1")

	before := selection.Get(models.ComponentCPU)
	selection.Select(models.ComponentCPU, "cpu-1")
	selection.Remove(models.ComponentCPU)

	assert.Equal(t, before, selection.Get(models.ComponentCPU))
	assert.Equal(t, "gpu-1", selection.Get(models.ComponentGPU), "other categories untouched")
}

func TestSelectionMissingEmptySelection(t *testing.T) {
	selection := NewSelection()

	assert.Equal(t, models.ComponentOrder, selection.Missing())
	assert.False(t, selection.Complete())
}

func TestSelectionMissingCanonicalOrder(t *testing.T) {
	selection := NewSelection()
	selection.Select(models.ComponentCPU, "c1")
	selection.Select(models.ComponentGPU, "g1")

	// The six unselected categories, in the fixed canonical order.
	assert.Equal(t, []models.ComponentType{
		models.ComponentMotherboard,
		models.ComponentRAM,
		models.ComponentStorage,
		models.ComponentPSU,
		models.ComponentCase,
		models.ComponentCooler,
	}, selection.Missing())
}

func TestSelectionComplete(t *testing.T) {
	selection := NewSelection()
	for i, category := range models.ComponentOrder {
		assert.False(t, selection.Complete(), "incomplete after %d selections", i)
		selection.Select(category, "p-"+string(category))
	}

	assert.True(t, selection.Complete())
	assert.Empty(t, selection.Missing())

	// Complete is not terminal; removing drops back to partial.
	selection.Remove(models.ComponentCooler)
	assert.False(t, selection.Complete())
	assert.Equal(t, []models.ComponentType{models.ComponentCooler}, selection.Missing())
}
