package main

import "github.com/krystian2077/smartpc-builder/models"

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

// sampleCatalog mirrors the naming conventions of the production catalog:
// free-text specifications with inconsistent spacing, Polish field values,
// brand names embedded in product names.
var sampleCatalog = map[models.ComponentType][]models.Product{
	models.ComponentCPU: {
		{ID: "cpu-1", Name: "AMD Ryzen 5 7600", Type: "cpu", Price: 899,
			Specifications: map[string]any{"socket": "AM5", "frequency": "3.8 GHz", "type": "6 rdzeni"}},
		{ID: "cpu-2", Name: "AMD Ryzen 7 7800X3D", Type: "cpu", Price: 1799,
			Specifications: map[string]any{"socket": "AM5", "frequency": "4.2 GHz", "type": "8 rdzeni"}},
		{ID: "cpu-3", Name: "Intel Core i5-14600K", Type: "cpu", Price: 1299,
			Specifications: map[string]any{"socket": "LGA1700", "frequency": "3.5 GHz", "type": "14 rdzeni"}},
		{ID: "cpu-4", Name: "Intel Core Ultra 7 265K", Type: "cpu", Price: 1899,
			Specifications: map[string]any{"socket": "LGA1851", "frequency": "3.9 GHz", "type": "20 rdzeni"}},
	},
	models.ComponentMotherboard: {
		{ID: "mb-1", Name: "MSI B650 Gaming Plus WiFi", Type: "motherboard", Price: 749,
			Specifications: map[string]any{"socket": "AM5", "chipset": "B650", "form_factor": "ATX", "ram_type": "DDR5"}},
		{ID: "mb-2", Name: "Gigabyte B760 Aorus Elite", Type: "motherboard", Price: 699,
			Specifications: map[string]any{"socket": "LGA 1700", "chipset": "B760", "form_factor": "ATX", "ram_type": "DDR5"}},
		{ID: "mb-3", Name: "Asus Z890 Prime", Type: "motherboard", Price: 1299,
			Specifications: map[string]any{"socket": "LGA 1851", "chipset": "Z890", "form_factor": "ATX", "ram_type": "DDR5"}},
	},
	models.ComponentGPU: {
		{ID: "gpu-1", Name: "NVIDIA GeForce RTX 4070 12GB", Type: "gpu", Price: 3200,
			Specifications: map[string]any{"interface": "PCIe 4.0", "capacity": "12 GB GDDR6X"}},
		{ID: "gpu-2", Name: "AMD Radeon RX 7600 8GB", Type: "gpu", Price: 1800,
			Specifications: map[string]any{"interface": "PCIe 4.0", "capacity": "8 GB GDDR6"}},
		{ID: "gpu-3", Name: "NVIDIA GeForce RTX 4080 Super 16GB", Type: "gpu", Price: 5400,
			Specifications: map[string]any{"interface": "PCIe 4.0", "capacity": "16 GB GDDR6X"}},
	},
	models.ComponentRAM: {
		{ID: "ram-1", Name: "Kingston Fury Beast 32GB (2x16GB) DDR5 6000", Type: "ram", Price: 499,
			Specifications: map[string]any{"configuration": "2x16GB", "frequency": "6000 MHz", "latency": "CL36"}},
		{ID: "ram-2", Name: "G.Skill Trident Z5 64 GB (2x32GB) DDR5 6400", Type: "ram", Price: 1099,
			Specifications: map[string]any{"configuration": "2x32GB", "frequency": "6400 MHz", "latency": "CL32"}},
		{ID: "ram-3", Name: "Goodram IRDM 16GB (2x8GB) DDR5 5600", Type: "ram", Price: 279,
			Specifications: map[string]any{"configuration": "2x8GB", "frequency": "5600 MHz", "latency": "CL40"}},
	},
	models.ComponentStorage: {
		{ID: "st-1", Name: "Samsung 990 Pro 1TB NVMe", Type: "storage", Price: 479,
			Specifications: map[string]any{"capacity": "1 TB", "format": "M.2", "read_speed": "7450 MB/s"}},
		{ID: "st-2", Name: "Lexar NM790 2TB NVMe", Type: "storage", Price: 599,
			Specifications: map[string]any{"capacity": "2 TB", "format": "M.2", "read_speed": "7400 MB/s"}},
		{ID: "st-3", Name: "Crucial P3 Plus 500GB", Type: "storage", Price: 189,
			Specifications: map[string]any{"capacity": "500 GB", "format": "M.2", "read_speed": "4700 MB/s"}},
	},
	models.ComponentPSU: {
		{ID: "psu-1", Name: "be quiet! Pure Power 12 M 750W", Type: "psu", Price: 499,
			Specifications: map[string]any{"power": "750 W", "certificate": "80 Plus Gold", "modular": "Tak"}},
		{ID: "psu-2", Name: "Endorfy Supremo FM5 1000W", Type: "psu", Price: 649,
			Specifications: map[string]any{"power": "1000 W", "certificate": "80 Plus Gold", "modular": "Tak"}},
	},
	models.ComponentCase: {
		{ID: "case-1", Name: "ENDORFY Arx 500 Air", Type: "case", Price: 349,
			Specifications: map[string]any{"case_type": "Midi Tower", "standard": "ATX"}},
		{ID: "case-2", Name: "NZXT H5 Flow", Type: "case", Price: 429,
			Specifications: map[string]any{"case_type": "Midi Tower", "standard": "ATX"}},
		{ID: "case-3", Name: "Fractal Design North", Type: "case", Price: 649,
			Specifications: map[string]any{"case_type": "Midi Tower", "standard": "ATX"}},
	},
	models.ComponentCooler: {
		{ID: "cool-1", Name: "ENDORFY Navis F280 AIO", Type: "cooler", Price: 399,
			Specifications: map[string]any{"type": "Chłodzenie wodne", "radiator_size": "280 mm"}},
		{ID: "cool-2", Name: "ENDORFY Fera 5 Dual Fan", Type: "cooler", Price: 169,
			Specifications: map[string]any{"type": "Chłodzenie powietrzne", "max_tdp": "220 W"}},
		{ID: "cool-3", Name: "NZXT Kraken 240", Type: "cooler", Price: 599,
			Specifications: map[string]any{"type": "Chłodzenie wodne", "radiator_size": "240 mm"}},
	},
}

var samplePresets = []models.Preset{
	{ID: "preset-1", Name: "SmartPC Start", Description: strPtr("Komputer do domu i nauki"),
		TotalPrice: 3499, PerformanceScore: floatPtr(42), Priority: 1, DeviceType: "pc", Segment: "home"},
	{ID: "preset-2", Name: "SmartPC Gamer", Description: strPtr("Płynna rozgrywka w 1440p"),
		TotalPrice: 6499, PerformanceScore: floatPtr(68), Priority: 2, DeviceType: "pc", Segment: "gaming"},
	{ID: "preset-3", Name: "SmartPC Legend", Description: strPtr("Maksymalna wydajność bez kompromisów"),
		TotalPrice: 11999, PerformanceScore: floatPtr(95), Priority: 3, DeviceType: "pc", Segment: "gaming"},
}
