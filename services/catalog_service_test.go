package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krystian2077/smartpc-builder/cache"
	"github.com/krystian2077/smartpc-builder/models"
)

func newCatalogService(handler http.HandlerFunc) (*CatalogService, *httptest.Server) {
	server := httptest.NewServer(handler)
	return NewCatalogService(NewCatalogClient(server.URL)), server
}

func TestProductsCachesFetches(t *testing.T) {
	catalog_cache.Reset()
	t.Cleanup(catalog_cache.Reset)

	var calls atomic.Int32
	service, server := newCatalogService(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode([]models.Product{{ID: "c1", Name: "AMD Ryzen 5", Price: 899}})
	})
	defer server.Close()

	first := service.Products(context.Background(), models.ComponentCPU)
	second := service.Products(context.Background(), models.ComponentCPU)

	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, calls.Load(), "second call must hit the cache")
}

func TestProductsFailureDegradesToEmpty(t *testing.T) {
	catalog_cache.Reset()
	t.Cleanup(catalog_cache.Reset)

	var calls atomic.Int32
	service, server := newCatalogService(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})
	defer server.Close()

	products := service.Products(context.Background(), models.ComponentGPU)
	assert.Empty(t, products)

	// Failures are not cached, so the next request retries upstream.
	service.Products(context.Background(), models.ComponentGPU)
	assert.EqualValues(t, 2, calls.Load())
}

func TestFullCatalogFetchesEveryCategory(t *testing.T) {
	catalog_cache.Reset()
	t.Cleanup(catalog_cache.Reset)

	service, server := newCatalogService(func(w http.ResponseWriter, r *http.Request) {
		componentType := r.URL.Query().Get("type")
		if componentType == "psu" {
			// One failing category must not affect the others.
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]models.Product{{ID: componentType + "-1", Type: componentType, Price: 100}})
	})
	defer server.Close()

	catalog := service.FullCatalog(context.Background())

	require.Len(t, catalog, len(models.ComponentOrder))
	assert.Empty(t, catalog[models.ComponentPSU])
	for _, category := range models.ComponentOrder {
		if category == models.ComponentPSU {
			continue
		}
		require.Len(t, catalog[category], 1, "category %s", category)
		assert.Equal(t, string(category)+"-1", catalog[category][0].ID)
	}
}

func TestPresetsCached(t *testing.T) {
	catalog_cache.Reset()
	t.Cleanup(catalog_cache.Reset)

	var calls atomic.Int32
	service, server := newCatalogService(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		json.NewEncoder(w).Encode([]models.Preset{{ID: "p1", Name: "SmartPC Start"}})
	})
	defer server.Close()

	_, err := service.Presets(context.Background(), 0)
	require.NoError(t, err)
	_, err = service.Presets(context.Background(), 0)
	require.NoError(t, err)

	assert.EqualValues(t, 1, calls.Load())
}

func TestPresetsErrorSurfaces(t *testing.T) {
	catalog_cache.Reset()
	t.Cleanup(catalog_cache.Reset)

	service, server := newCatalogService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer server.Close()

	_, err := service.Presets(context.Background(), 0)
	assert.Error(t, err, "preset list failures are not silently degraded")
}
