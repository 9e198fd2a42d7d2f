package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseComponentType(t *testing.T) {
	for _, category := range ComponentOrder {
		parsed, ok := ParseComponentType(string(category))
		assert.True(t, ok)
		assert.Equal(t, category, parsed)
	}

	_, ok := ParseComponentType("keyboard")
	assert.False(t, ok)
	_, ok = ParseComponentType("")
	assert.False(t, ok)
	_, ok = ParseComponentType("CPU")
	assert.False(t, ok, "categories are lowercase only")
}

func TestSearchTextIncludesSpecifications(t *testing.T) {
	product := Product{
		Name: "Kingston Fury Beast",
		Specifications: map[string]any{
			"capacity": "2x16GB",
			"speed":    6000,
		},
	}

	text := product.SearchText()
	assert.Contains(t, text, "Kingston Fury Beast")
	assert.Contains(t, text, "2x16GB")
	assert.Contains(t, text, "6000")
}

func TestSearchTextWithoutSpecifications(t *testing.T) {
	product := Product{Name: "AMD Ryzen 5 8400F"}
	assert.Contains(t, product.SearchText(), "AMD Ryzen 5 8400F")
}

func TestSeriesNameThresholds(t *testing.T) {
	assert.Equal(t, "START & GAMER", SeriesName(3499))
	assert.Equal(t, "START & GAMER", SeriesName(4999))
	assert.Equal(t, "ELITE & MASTER", SeriesName(5000))
	assert.Equal(t, "ELITE & MASTER", SeriesName(7999))
	assert.Equal(t, "ULTRA & LEGEND", SeriesName(8000))
	assert.Equal(t, "ULTRA & LEGEND", SeriesName(15000))
}
