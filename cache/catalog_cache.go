package catalog_cache

import (
	"sync"
	"time"

	"github.com/krystian2077/smartpc-builder/models"
)

const TTL = 5 * time.Minute

// ── Per-category product list cache ──────────────────────────────────────────
// Each category's list is independent: written at most once per fetch and
// never mutated afterwards. Filtering and sorting always work on copies.

type productEntry struct {
	products  []models.Product
	fetchedAt time.Time
}

var (
	productMu    sync.RWMutex
	productCache = map[models.ComponentType]*productEntry{}
)

func GetProducts(category models.ComponentType) ([]models.Product, bool) {
	productMu.RLock()
	defer productMu.RUnlock()
	if entry, ok := productCache[category]; ok && time.Since(entry.fetchedAt) < TTL {
		return entry.products, true
	}
	return nil, false
}

func SetProducts(category models.ComponentType, products []models.Product) {
	productMu.Lock()
	defer productMu.Unlock()
	productCache[category] = &productEntry{
		products:  products,
		fetchedAt: time.Now(),
	}
}

// ── Preset caches ────────────────────────────────────────────────────────────

type presetListEntry struct {
	presets   []models.Preset
	fetchedAt time.Time
}

type presetDetailsEntry struct {
	details   *models.PresetDetails
	fetchedAt time.Time
}

var (
	presetMu           sync.RWMutex
	presetListCache    *presetListEntry
	presetDetailsCache = map[string]*presetDetailsEntry{}
)

func GetPresets() ([]models.Preset, bool) {
	presetMu.RLock()
	defer presetMu.RUnlock()
	if presetListCache != nil && time.Since(presetListCache.fetchedAt) < TTL {
		return presetListCache.presets, true
	}
	return nil, false
}

func SetPresets(presets []models.Preset) {
	presetMu.Lock()
	defer presetMu.Unlock()
	presetListCache = &presetListEntry{
		presets:   presets,
		fetchedAt: time.Now(),
	}
}

func GetPresetDetails(presetID string) (*models.PresetDetails, bool) {
	presetMu.RLock()
	defer presetMu.RUnlock()
	if entry, ok := presetDetailsCache[presetID]; ok && time.Since(entry.fetchedAt) < TTL {
		return entry.details, true
	}
	return nil, false
}

func SetPresetDetails(presetID string, details *models.PresetDetails) {
	presetMu.Lock()
	defer presetMu.Unlock()
	presetDetailsCache[presetID] = &presetDetailsEntry{
		details:   details,
		fetchedAt: time.Now(),
	}
}

// Reset clears every cache entry. Used by tests and on demand when the
// upstream catalog changes.
func Reset() {
	productMu.Lock()
	productCache = map[models.ComponentType]*productEntry{}
	productMu.Unlock()

	presetMu.Lock()
	presetListCache = nil
	presetDetailsCache = map[string]*presetDetailsEntry{}
	presetMu.Unlock()
}
