package configurator

import "github.com/krystian2077/smartpc-builder/models"

// FilterOption is a single filter or sort chip shown in the storefront.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// filterOptions lists the chips per category, in display order. The values
// must stay in sync with the filterRules table keys.
var filterOptions = map[models.ComponentType][]FilterOption{
	models.ComponentCPU: {
		{Label: "Wszystkie", Value: "all"},
		{Label: "AMD", Value: "amd"},
		{Label: "Intel", Value: "intel"},
	},
	models.ComponentMotherboard: {
		{Label: "Wszystkie", Value: "all"},
		{Label: "MSI", Value: "msi"},
		{Label: "Gigabyte", Value: "gigabyte"},
		{Label: "Asus", Value: "asus"},
		{Label: "AM5", Value: "am5"},
		{Label: "LGA1851", Value: "lga1851"},
		{Label: "LGA1700", Value: "lga1700"},
	},
	models.ComponentGPU: {
		{Label: "Wszystkie", Value: "all"},
		{Label: "NVIDIA", Value: "nvidia"},
		{Label: "AMD", Value: "amd"},
		{Label: "8GB VRAM", Value: "8gb"},
		{Label: "12GB VRAM", Value: "12gb"},
		{Label: "16GB VRAM", Value: "16gb"},
	},
	models.ComponentRAM: {
		{Label: "Wszystkie", Value: "all"},
		{Label: "16GB", Value: "16gb"},
		{Label: "32GB", Value: "32gb"},
		{Label: "64GB", Value: "64gb"},
		{Label: "128GB", Value: "128gb"},
	},
	models.ComponentStorage: {
		{Label: "Wszystkie", Value: "all"},
		{Label: "512GB", Value: "512gb"},
		{Label: "1TB", Value: "1tb"},
		{Label: "2TB", Value: "2tb"},
		{Label: "4TB", Value: "4tb"},
	},
	models.ComponentPSU: {
		{Label: "Wszystkie", Value: "all"},
		{Label: "550W", Value: "550w"},
		{Label: "650W", Value: "650w"},
		{Label: "750W", Value: "750w"},
		{Label: "850W", Value: "850w"},
		{Label: "1000W", Value: "1000w"},
		{Label: "1200W", Value: "1200w"},
	},
	models.ComponentCase: {
		{Label: "Wszystkie", Value: "all"},
		{Label: "ENDORFY", Value: "endorfy"},
		{Label: "MODECOM", Value: "modecom"},
		{Label: "KRUX", Value: "krux"},
		{Label: "Deepcool", Value: "deepcool"},
		{Label: "NZXT", Value: "nzxt"},
		{Label: "be quiet!", Value: "be quiet!"},
		{Label: "Fractal Design", Value: "fractal"},
		{Label: "Silver Monkey X", Value: "smx"},
		{Label: "Cougar", Value: "cougar"},
		{Label: "Fury", Value: "fury"},
		{Label: "MSI", Value: "msi"},
	},
	models.ComponentCooler: {
		{Label: "Wszystkie", Value: "all"},
		{Label: "Powietrzne", Value: "air"},
		{Label: "Wodne AIO", Value: "aio"},
	},
}

var sortOptions = []FilterOption{
	{Label: "Domyślnie", Value: SortDefault},
	{Label: "Cena: od najniższej", Value: SortPriceAsc},
	{Label: "Cena: od najwyższej", Value: SortPriceDesc},
}

// FilterOptions returns the filter chips for a category.
func FilterOptions(category models.ComponentType) []FilterOption {
	return filterOptions[category]
}

// SortOptions returns the sort chips, shared by all categories.
func SortOptions() []FilterOption {
	return sortOptions
}
