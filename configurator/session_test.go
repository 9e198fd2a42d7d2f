package configurator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krystian2077/smartpc-builder/models"
)

func TestNewSessionDefaults(t *testing.T) {
	session := NewSession("s1", "", "", 0)

	assert.Equal(t, DefaultDeviceType, session.DeviceType)
	assert.Equal(t, DefaultSegment, session.Segment)
	assert.Equal(t, DefaultBudget, session.Budget)
	assert.False(t, session.AssemblyService)
	assert.Empty(t, session.Selection)

	for _, category := range models.ComponentOrder {
		assert.Equal(t, FilterAll, session.FilterFor(category))
		assert.Equal(t, SortDefault, session.SortFor(category))
	}
}

func TestNewSessionEntryParameters(t *testing.T) {
	session := NewSession("s1", "pc", "gaming", 8000)

	assert.Equal(t, "gaming", session.Segment)
	assert.Equal(t, 8000, session.Budget)
}

func TestSessionJSONRoundTrip(t *testing.T) {
	session := NewSession("s1", "pc", "gaming", 8000)
	session.Selection.Select(models.ComponentCPU, "c1")
	session.Filters[models.ComponentGPU] = "nvidia"
	session.Sorting[models.ComponentGPU] = SortPriceAsc

	blob, err := json.Marshal(session)
	require.NoError(t, err)

	var decoded Session
	require.NoError(t, json.Unmarshal(blob, &decoded))

	assert.Equal(t, session.ID, decoded.ID)
	assert.Equal(t, "c1", decoded.Selection.Get(models.ComponentCPU))
	assert.Equal(t, "nvidia", decoded.FilterFor(models.ComponentGPU))
	assert.Equal(t, SortPriceAsc, decoded.SortFor(models.ComponentGPU))
}
