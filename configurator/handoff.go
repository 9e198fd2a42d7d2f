package configurator

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/krystian2077/smartpc-builder/models"
)

// ComponentSnapshot is the per-category slice of a quote draft: just enough
// of the product to price and name it in the inquiry.
type ComponentSnapshot struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// QuoteDraft is the read-only snapshot built at submission time and handed
// to the inquiry step. It has no lifecycle of its own; it is computed once
// from the selection and the catalog.
type QuoteDraft struct {
	Components      map[models.ComponentType]ComponentSnapshot
	TotalPrice      float64
	AssemblyService bool
	Segment         string
	Budget          int
}

// BuildQuoteDraft resolves the selection against the full catalog and
// freezes the result. Selections that fail to resolve are skipped rather
// than failing the draft.
func BuildQuoteDraft(selection Selection, catalog Catalog, assembly bool, segment string, budget int) QuoteDraft {
	draft := QuoteDraft{
		Components:      make(map[models.ComponentType]ComponentSnapshot, len(selection)),
		TotalPrice:      Total(selection, catalog, assembly),
		AssemblyService: assembly,
		Segment:         segment,
		Budget:          budget,
	}
	for category, productID := range selection {
		if p, ok := catalog.Resolve(productID); ok {
			draft.Components[category] = ComponentSnapshot{ID: p.ID, Name: p.Name, Price: p.Price}
		}
	}
	return draft
}

// Encode serializes the draft as flat page-to-page parameters: one JSON
// blob per category plus the aggregate fields, booleans as strings.
func (d QuoteDraft) Encode() url.Values {
	params := url.Values{}
	for category, snapshot := range d.Components {
		blob, err := json.Marshal(snapshot)
		if err != nil {
			continue
		}
		params.Set(string(category), string(blob))
	}
	params.Set("totalPrice", strconv.FormatFloat(d.TotalPrice, 'f', -1, 64))
	params.Set("assemblyService", strconv.FormatBool(d.AssemblyService))
	params.Set("segment", d.Segment)
	params.Set("budget", strconv.Itoa(d.Budget))
	return params
}

// DecodeHandoff parses encoded draft parameters into the configuration_data
// payload for an inquiry. Each category's snapshot is parsed independently;
// a malformed one degrades to its raw string instead of aborting the whole
// submission.
func DecodeHandoff(params url.Values) map[string]any {
	data := make(map[string]any)
	for _, category := range models.ComponentOrder {
		raw := params.Get(string(category))
		if raw == "" {
			continue
		}
		var snapshot ComponentSnapshot
		if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
			data[string(category)] = raw
			continue
		}
		data[string(category)] = snapshot
	}
	for _, key := range []string{"totalPrice", "assemblyService", "segment", "budget"} {
		if v := params.Get(key); v != "" {
			data[key] = v
		}
	}
	return data
}
