// Package configurator holds the selection, filtering, sorting and pricing
// rules of the PC configurator. All of it operates on in-memory product
// lists fetched from the catalog API; nothing here talks to the network.
package configurator

import (
	"strings"

	"github.com/krystian2077/smartpc-builder/models"
)

// FilterAll is the tag that leaves a category unfiltered.
const FilterAll = "all"

// FilterRule matches a product's combined name+specifications text.
// Matching is case-insensitive. With Normalize set, all whitespace is
// stripped first so "16 GB", "16GB" and "16gb" are equivalent.
type FilterRule struct {
	AnyOf     []string // match if the text contains any of these
	NoneOf    []string // match only if the text contains none of these
	Excludes  []string // reject matches containing any of these
	Normalize bool
}

func (r FilterRule) matches(text string) bool {
	text = strings.ToLower(text)
	if r.Normalize {
		text = strings.Join(strings.Fields(text), "")
	}
	for _, sub := range r.Excludes {
		if strings.Contains(text, sub) {
			return false
		}
	}
	for _, sub := range r.NoneOf {
		if strings.Contains(text, sub) {
			return false
		}
	}
	if len(r.AnyOf) == 0 {
		return true
	}
	for _, sub := range r.AnyOf {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}

// aioKeywords mark liquid coolers; anything without them counts as air
// cooling. "wodne" and the Navis/Kraken product lines appear in the catalog
// without an explicit AIO marker.
var aioKeywords = []string{"aio", "liquid", "wodne", "navis", "kraken"}

// filterRules is the per-category predicate table. The substrings are tuned
// to the current catalog's free-text naming conventions (e.g. "1tb" must not
// catch "10tb") and are meant to be kept literal, not generalized.
var filterRules = map[models.ComponentType]map[string]FilterRule{
	models.ComponentCPU: {
		"amd":   {AnyOf: []string{"amd", "ryzen"}},
		"intel": {AnyOf: []string{"intel", "core"}},
	},
	models.ComponentMotherboard: {
		"msi":      {AnyOf: []string{"msi"}},
		"gigabyte": {AnyOf: []string{"gigabyte"}},
		"asus":     {AnyOf: []string{"asus"}},
		"am5":      {AnyOf: []string{"am5"}},
		"lga1851":  {AnyOf: []string{"lga1851", "lga 1851"}},
		"lga1700":  {AnyOf: []string{"lga1700", "lga 1700"}},
	},
	models.ComponentGPU: {
		"nvidia": {AnyOf: []string{"nvidia", "geforce", "rtx", "gtx"}},
		"amd":    {AnyOf: []string{"amd", "radeon", "xt"}},
		"8gb":    {AnyOf: []string{"8 gb", "8gb"}},
		"12gb":   {AnyOf: []string{"12 gb", "12gb"}},
		"16gb":   {AnyOf: []string{"16 gb", "16gb"}},
	},
	models.ComponentRAM: {
		"16gb":  {AnyOf: []string{"16gb", "2x8gb"}, Normalize: true},
		"32gb":  {AnyOf: []string{"32gb", "2x16gb"}, Normalize: true},
		"64gb":  {AnyOf: []string{"64gb", "2x32gb"}, Normalize: true},
		"128gb": {AnyOf: []string{"128gb", "4x32gb"}, Normalize: true},
	},
	models.ComponentStorage: {
		"512gb": {AnyOf: []string{"512gb", "500gb"}, Normalize: true},
		"1tb":   {AnyOf: []string{"1tb"}, Excludes: []string{"10tb"}, Normalize: true},
		"2tb":   {AnyOf: []string{"2tb"}, Normalize: true},
		"4tb":   {AnyOf: []string{"4tb"}, Normalize: true},
	},
	models.ComponentPSU: {
		"550w":  {AnyOf: []string{"550w"}, Normalize: true},
		"650w":  {AnyOf: []string{"650w"}, Normalize: true},
		"750w":  {AnyOf: []string{"750w"}, Normalize: true},
		"850w":  {AnyOf: []string{"850w"}, Normalize: true},
		"1000w": {AnyOf: []string{"1000w", "1kw"}, Normalize: true},
		"1200w": {AnyOf: []string{"1200w", "1.2kw"}, Normalize: true},
	},
	models.ComponentCase: {
		"endorfy":   {AnyOf: []string{"endorfy"}},
		"modecom":   {AnyOf: []string{"modecom"}},
		"krux":      {AnyOf: []string{"krux"}},
		"deepcool":  {AnyOf: []string{"deepcool"}},
		"nzxt":      {AnyOf: []string{"nzxt"}},
		"be quiet!": {AnyOf: []string{"be quiet!"}},
		"fractal":   {AnyOf: []string{"fractal"}},
		"smx":       {AnyOf: []string{"smx"}},
		"cougar":    {AnyOf: []string{"cougar"}},
		"fury":      {AnyOf: []string{"fury"}},
		"msi":       {AnyOf: []string{"msi"}},
	},
	models.ComponentCooler: {
		"aio": {AnyOf: aioKeywords},
		"air": {NoneOf: aioKeywords},
	},
}

// Filter narrows products to those matching the category's rule for tag.
// The "all" tag, an unknown tag, or a category without filter options all
// return the input list unchanged, order preserved.
func Filter(category models.ComponentType, tag string, products []models.Product) []models.Product {
	if tag == "" || tag == FilterAll {
		return products
	}
	rules, ok := filterRules[category]
	if !ok {
		return products
	}
	rule, ok := rules[tag]
	if !ok {
		return products
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if rule.matches(p.SearchText()) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
