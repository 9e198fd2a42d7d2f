package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krystian2077/smartpc-builder/models"
)

func TestGetProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "gpu", r.URL.Query().Get("type"))
		json.NewEncoder(w).Encode([]models.Product{
			{ID: "g1", Name: "RTX 4070 12GB", Price: 3200},
			{ID: "g2", Name: "RX 7600 8GB", Price: 1800},
		})
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	products, err := client.GetProducts(context.Background(), models.ComponentGPU)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "g1", products[0].ID)
}

func TestGetProductsEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	products, err := client.GetProducts(context.Background(), models.ComponentCooler)

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGetProductsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	_, err := client.GetProducts(context.Background(), models.ComponentCPU)

	assert.Error(t, err)
}

func TestGetProductsConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := NewCatalogClient(server.URL)
	_, err := client.GetProducts(context.Background(), models.ComponentCPU)

	assert.Error(t, err)
}

func TestGetPresetsWithLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/presets", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode([]models.Preset{{ID: "p1", Name: "SmartPC Start", TotalPrice: 3499}})
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	presets, err := client.GetPresets(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, presets, 1)
	assert.Equal(t, "SmartPC Start", presets[0].Name)
}

func TestGetPresetDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/presets/p1/details", r.URL.Path)
		json.NewEncoder(w).Encode(models.PresetDetails{
			Preset:   models.Preset{ID: "p1", Name: "SmartPC Start"},
			Products: []models.Product{{ID: "c1", Name: "AMD Ryzen 5"}},
		})
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	details, err := client.GetPresetDetails(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, "p1", details.ID)
	require.Len(t, details.Products, 1)
}

func TestCreateInquiry(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/inquiries", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Jan", body["first_name"])
		assert.Contains(t, body, "company", "upstream expects the field even when null")
		assert.Nil(t, body["company"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.InquiryResponse{ReferenceNumber: "INQ-20260829-ABCD1234"})
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	result, err := client.CreateInquiry(context.Background(), models.InquiryRequest{
		FirstName:   "Jan",
		LastName:    "Kowalski",
		Email:       "jan@example.com",
		ConsentRodo: true,
		InquiryType: models.InquiryQuoteRequest,
		Source:      "configurator",
	})

	require.NoError(t, err)
	assert.Equal(t, "INQ-20260829-ABCD1234", result.ReferenceNumber)
}

func TestCreateInquiryRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":"consent_rodo is required"}`))
	}))
	defer server.Close()

	client := NewCatalogClient(server.URL)
	_, err := client.CreateInquiry(context.Background(), models.InquiryRequest{})

	assert.ErrorContains(t, err, "422")
}
