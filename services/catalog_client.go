package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/models"
)

// CatalogClient talks to the external catalog REST API. It is a plain JSON
// client with a fixed timeout and a single attempt per request; retry policy
// is left to the caller (for catalog reads there is none).
type CatalogClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewCatalogClient creates a client for the given API base URL, e.g.
// "http://localhost:8000/api/v1".
func NewCatalogClient(baseURL string) *CatalogClient {
	return &CatalogClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: config.CatalogTimeout},
	}
}

// GetProducts fetches the product list for one component category.
func (c *CatalogClient) GetProducts(ctx context.Context, componentType models.ComponentType) ([]models.Product, error) {
	url := fmt.Sprintf("%s/products?type=%s", c.baseURL, componentType)

	var products []models.Product
	if err := c.getJSON(ctx, url, &products); err != nil {
		return nil, fmt.Errorf("fetch products for %s: %w", componentType, err)
	}
	return products, nil
}

// GetPresets fetches the preset summaries, optionally capped at limit.
func (c *CatalogClient) GetPresets(ctx context.Context, limit int) ([]models.Preset, error) {
	url := c.baseURL + "/presets"
	if limit > 0 {
		url += "?limit=" + strconv.Itoa(limit)
	}

	var presets []models.Preset
	if err := c.getJSON(ctx, url, &presets); err != nil {
		return nil, fmt.Errorf("fetch presets: %w", err)
	}
	return presets, nil
}

// GetPresetDetails fetches one preset with its nested product list.
func (c *CatalogClient) GetPresetDetails(ctx context.Context, presetID string) (*models.PresetDetails, error) {
	url := fmt.Sprintf("%s/presets/%s/details", c.baseURL, presetID)

	var details models.PresetDetails
	if err := c.getJSON(ctx, url, &details); err != nil {
		return nil, fmt.Errorf("fetch preset %s: %w", presetID, err)
	}
	return &details, nil
}

// CreateInquiry forwards a sales inquiry upstream. This is the one
// non-idempotent write in the system; callers must not retry automatically.
func (c *CatalogClient) CreateInquiry(ctx context.Context, inquiry models.InquiryRequest) (*models.InquiryResponse, error) {
	payload, err := json.Marshal(inquiry)
	if err != nil {
		return nil, fmt.Errorf("marshal inquiry: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/inquiries", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("create inquiry request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[catalog] inquiry request failed: %v", err)
		return nil, fmt.Errorf("send inquiry: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[catalog] inquiry rejected with status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("inquiry rejected with status %d", resp.StatusCode)
	}

	var result models.InquiryResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode inquiry response: %w", err)
	}
	return &result, nil
}

func (c *CatalogClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[catalog] request failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[catalog] unexpected status %d from %s: %s", resp.StatusCode, url, string(body))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
