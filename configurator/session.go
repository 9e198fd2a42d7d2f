package configurator

import (
	"time"

	"github.com/krystian2077/smartpc-builder/models"
)

// Session is one shopper's configurator state. It lives for the duration of
// a browsing session and is discarded afterwards; nothing is persisted
// beyond the session store's TTL.
type Session struct {
	ID              string                          `json:"id"`
	DeviceType      string                          `json:"device_type"`
	Segment         string                          `json:"segment"`
	Budget          int                             `json:"budget"`
	Selection       Selection                       `json:"selection"`
	AssemblyService bool                            `json:"assembly_service"`
	Filters         map[models.ComponentType]string `json:"filters"`
	Sorting         map[models.ComponentType]string `json:"sorting"`
	CreatedAt       time.Time                       `json:"created_at"`
	UpdatedAt       time.Time                       `json:"updated_at"`
}

// Defaults applied when the entry parameters are absent, matching the
// configurator's landing defaults.
const (
	DefaultDeviceType = "pc"
	DefaultSegment    = "home"
	DefaultBudget     = 5000
)

// NewSession creates an empty session with every filter on "all" and every
// sort on "default".
func NewSession(id, deviceType, segment string, budget int) *Session {
	if deviceType == "" {
		deviceType = DefaultDeviceType
	}
	if segment == "" {
		segment = DefaultSegment
	}
	if budget <= 0 {
		budget = DefaultBudget
	}

	filters := make(map[models.ComponentType]string, len(models.ComponentOrder))
	sorting := make(map[models.ComponentType]string, len(models.ComponentOrder))
	for _, category := range models.ComponentOrder {
		filters[category] = FilterAll
		sorting[category] = SortDefault
	}

	now := time.Now()
	return &Session{
		ID:         id,
		DeviceType: deviceType,
		Segment:    segment,
		Budget:     budget,
		Selection:  NewSelection(),
		Filters:    filters,
		Sorting:    sorting,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Touch bumps the modification timestamp.
func (s *Session) Touch() {
	s.UpdatedAt = time.Now()
}

// FilterFor returns the active filter tag for a category, defaulting to
// "all" for sessions created before a category existed.
func (s *Session) FilterFor(category models.ComponentType) string {
	if tag, ok := s.Filters[category]; ok {
		return tag
	}
	return FilterAll
}

// SortFor returns the active sort tag for a category.
func (s *Session) SortFor(category models.ComponentType) string {
	if tag, ok := s.Sorting[category]; ok {
		return tag
	}
	return SortDefault
}
