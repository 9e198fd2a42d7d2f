package models

import "encoding/json"

// ComponentType is one of the eight fixed PC component categories.
type ComponentType string

const (
	ComponentCPU         ComponentType = "cpu"
	ComponentMotherboard ComponentType = "motherboard"
	ComponentGPU         ComponentType = "gpu"
	ComponentRAM         ComponentType = "ram"
	ComponentStorage     ComponentType = "storage"
	ComponentPSU         ComponentType = "psu"
	ComponentCase        ComponentType = "case"
	ComponentCooler      ComponentType = "cooler"
)

// ComponentOrder is the canonical category order used everywhere a stable
// ordering matters (missing-component reports, summaries, handoff).
var ComponentOrder = []ComponentType{
	ComponentCPU,
	ComponentMotherboard,
	ComponentGPU,
	ComponentRAM,
	ComponentStorage,
	ComponentPSU,
	ComponentCase,
	ComponentCooler,
}

// ComponentLabels maps categories to their Polish storefront labels.
var ComponentLabels = map[ComponentType]string{
	ComponentCPU:         "Procesor (CPU)",
	ComponentMotherboard: "Płyta główna",
	ComponentGPU:         "Karta graficzna (GPU)",
	ComponentRAM:         "Pamięć RAM",
	ComponentStorage:     "Dysk",
	ComponentPSU:         "Zasilacz (PSU)",
	ComponentCase:        "Obudowa",
	ComponentCooler:      "Chłodzenie",
}

// ParseComponentType validates a category string from a query parameter.
func ParseComponentType(s string) (ComponentType, bool) {
	t := ComponentType(s)
	for _, known := range ComponentOrder {
		if t == known {
			return t, true
		}
	}
	return "", false
}

// Product is a catalog item as returned by the upstream catalog API.
// Products are immutable once fetched; Specifications is a free-text,
// non-normalized blob and must be treated as such.
type Product struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Type           string         `json:"type"`
	Price          float64        `json:"price"`
	Specifications map[string]any `json:"specifications"`
	ImageURL       string         `json:"image_url,omitempty"`
	Description    string         `json:"description,omitempty"`
}

// SearchText returns the name plus the serialized specifications, the
// combined blob the filter predicates match against.
func (p Product) SearchText() string {
	specs, err := json.Marshal(p.Specifications)
	if err != nil {
		return p.Name
	}
	return p.Name + " " + string(specs)
}
