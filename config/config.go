package config

import (
	"context"
	"log"
	"os"
	"time"
)

// CatalogTimeout bounds every upstream catalog request. The storefront
// treats anything slower than a few seconds as a failed fetch.
const CatalogTimeout = 5 * time.Second

// CatalogBaseURL returns the base URL of the external catalog API.
func CatalogBaseURL() string {
	url := os.Getenv("CATALOG_API_BASE_URL")
	if url == "" {
		url = "http://localhost:8000/api/v1"
		log.Println("⚠️ CATALOG_API_BASE_URL not set, using local default:", url)
	}
	return url
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Port returns the HTTP listen port for the service.
func Port() string {
	return getEnv("PORT", "8081")
}

// WithTimeout returns a context bounded by the catalog timeout, used for
// every outbound request and session store call.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), CatalogTimeout)
}
