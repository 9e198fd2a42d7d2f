package services

import (
	"context"
	"log"
	"sync"

	"github.com/krystian2077/smartpc-builder/cache"
	"github.com/krystian2077/smartpc-builder/configurator"
	"github.com/krystian2077/smartpc-builder/models"
)

// CatalogService layers the TTL cache over the catalog client. A failed
// fetch degrades the category to an empty list: no selection is possible
// there, but nothing crashes and nothing is cached, so the next request
// tries again.
type CatalogService struct {
	client *CatalogClient
}

func NewCatalogService(client *CatalogClient) *CatalogService {
	return &CatalogService{client: client}
}

// Products returns the cached product list for a category, fetching it on a
// cache miss. The returned slice must not be mutated by callers.
func (s *CatalogService) Products(ctx context.Context, category models.ComponentType) []models.Product {
	if products, ok := catalog_cache.GetProducts(category); ok {
		return products
	}

	products, err := s.client.GetProducts(ctx, category)
	if err != nil {
		log.Printf("[catalog] %s fetch failed, treating category as empty: %v", category, err)
		return []models.Product{}
	}
	if products == nil {
		products = []models.Product{}
	}

	catalog_cache.SetProducts(category, products)
	return products
}

// FullCatalog resolves all eight categories concurrently, one independent
// fetch per category. Failed categories come back empty; there is no
// ordering dependency between them.
func (s *CatalogService) FullCatalog(ctx context.Context) configurator.Catalog {
	var wg sync.WaitGroup
	var mu sync.Mutex

	catalog := make(configurator.Catalog, len(models.ComponentOrder))
	for _, category := range models.ComponentOrder {
		wg.Add(1)
		go func(category models.ComponentType) {
			defer wg.Done()
			products := s.Products(ctx, category)
			mu.Lock()
			catalog[category] = products
			mu.Unlock()
		}(category)
	}
	wg.Wait()

	return catalog
}

// Presets returns the cached preset summaries, fetching on a miss. Limit
// only applies to the upstream request; a cached list is returned as-is.
func (s *CatalogService) Presets(ctx context.Context, limit int) ([]models.Preset, error) {
	if presets, ok := catalog_cache.GetPresets(); ok {
		return presets, nil
	}

	presets, err := s.client.GetPresets(ctx, limit)
	if err != nil {
		return nil, err
	}
	if presets == nil {
		presets = []models.Preset{}
	}

	catalog_cache.SetPresets(presets)
	return presets, nil
}

// PresetDetails returns one preset with its nested products.
func (s *CatalogService) PresetDetails(ctx context.Context, presetID string) (*models.PresetDetails, error) {
	if details, ok := catalog_cache.GetPresetDetails(presetID); ok {
		return details, nil
	}

	details, err := s.client.GetPresetDetails(ctx, presetID)
	if err != nil {
		return nil, err
	}

	catalog_cache.SetPresetDetails(presetID, details)
	return details, nil
}

// SubmitInquiry forwards an inquiry upstream. No automatic retry: the write
// is not idempotent and resubmission is a user decision.
func (s *CatalogService) SubmitInquiry(ctx context.Context, inquiry models.InquiryRequest) (*models.InquiryResponse, error) {
	return s.client.CreateInquiry(ctx, inquiry)
}
