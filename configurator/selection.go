package configurator

import "github.com/krystian2077/smartpc-builder/models"

// Selection maps each category to the chosen product id. A missing key means
// nothing is selected for that category. At most one id per category;
// selecting replaces any prior choice. Ids are not validated against the
// catalog here — a stale id simply fails to resolve at pricing time.
type Selection map[models.ComponentType]string

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return make(Selection, len(models.ComponentOrder))
}

// Select records productID as the choice for category, replacing any prior
// selection.
func (s Selection) Select(category models.ComponentType, productID string) {
	s[category] = productID
}

// Remove clears the selection for category.
func (s Selection) Remove(category models.ComponentType) {
	delete(s, category)
}

// Get returns the selected product id for category, or "" when none.
func (s Selection) Get(category models.ComponentType) string {
	return s[category]
}

// Missing lists every category without a selection, in canonical order.
// An empty result means the configuration is complete.
func (s Selection) Missing() []models.ComponentType {
	missing := []models.ComponentType{}
	for _, category := range models.ComponentOrder {
		if s[category] == "" {
			missing = append(missing, category)
		}
	}
	return missing
}

// Complete reports whether all eight categories have a selection.
func (s Selection) Complete() bool {
	return len(s.Missing()) == 0
}
