package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/krystian2077/smartpc-builder/models"
)

// main runs a stand-in for the external catalog API so the storefront
// backend can be developed without the production service.
// Usage: go run cmd/mockapi/main.go
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SmartPC Builder - Mock Catalog API")
	fmt.Println("════════════════════════════════════════════════════════════")

	router := gin.Default()
	api := router.Group("/api/v1")

	api.GET("/products", getProducts)
	api.GET("/presets", getPresets)
	api.GET("/presets/:id/details", getPresetDetails)
	api.POST("/inquiries", createInquiry)

	port := os.Getenv("MOCK_API_PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("🚀 Mock catalog API listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Mock API failed: %v", err)
	}
}

func getProducts(c *gin.Context) {
	componentType := c.Query("type")
	products, ok := sampleCatalog[models.ComponentType(componentType)]
	if !ok {
		c.JSON(http.StatusOK, []models.Product{})
		return
	}
	c.JSON(http.StatusOK, products)
}

func getPresets(c *gin.Context) {
	presets := samplePresets
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit < len(presets) {
		presets = presets[:limit]
	}
	c.JSON(http.StatusOK, presets)
}

func getPresetDetails(c *gin.Context) {
	for _, preset := range samplePresets {
		if preset.ID == c.Param("id") {
			products := []models.Product{}
			for _, category := range models.ComponentOrder {
				if list := sampleCatalog[category]; len(list) > 0 {
					products = append(products, list[0])
				}
			}
			c.JSON(http.StatusOK, models.PresetDetails{Preset: preset, Products: products})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"detail": "Preset not found"})
}

func createInquiry(c *gin.Context) {
	var inquiry models.InquiryRequest
	if err := c.ShouldBindJSON(&inquiry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if !inquiry.ConsentRodo {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "consent_rodo is required"})
		return
	}

	reference := fmt.Sprintf("INQ-%s-%s",
		time.Now().Format("20060102"),
		strings.ToUpper(uuid.NewString()[:8]),
	)
	log.Printf("[mockapi] inquiry %s from %s %s (%s)", reference, inquiry.FirstName, inquiry.LastName, inquiry.InquiryType)

	c.JSON(http.StatusCreated, models.InquiryResponse{ReferenceNumber: reference})
}
