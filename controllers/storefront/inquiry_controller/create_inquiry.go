package inquiry_controller

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/configurator"
	"github.com/krystian2077/smartpc-builder/models"
)

type createInquiryRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Message        string `json:"message"`
	ConsentContact bool   `json:"consent_contact"`
	ConsentRodo    bool   `json:"consent_rodo"`
	InquiryType    string `json:"inquiry_type"`
	Source         string `json:"source"`

	// Configuration carries the raw per-category handoff parameters from the
	// configurator step. Each entry is parsed independently; malformed ones
	// pass through as opaque strings.
	Configuration map[string]string `json:"configuration,omitempty"`

	// ConfigurationData is an already-structured payload, e.g. the preset
	// reference sent by the preset detail page.
	ConfigurationData any `json:"configuration_data,omitempty"`
}

// CreateInquiry godoc
// @Summary Submit a sales inquiry
// @Description Validate consent and forward the inquiry to the catalog API. The RODO consent is mandatory; upstream failures are non-fatal and the caller may resubmit.
// @Tags Storefront - Inquiries
// @Accept json
// @Produce json
// @Param inquiry body createInquiryRequest true "Inquiry details"
// @Success 201 {object} models.ApiResponse{data=models.InquiryResponse} "Inquiry submitted"
// @Failure 400 {object} models.ApiResponse "Invalid request or missing consent"
// @Failure 502 {object} models.ApiResponse "Upstream submission failed"
// @Router /inquiries [post]
func CreateInquiry(c *gin.Context) {
	var req createInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	if !req.ConsentRodo {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Zgoda na przetwarzanie danych (RODO) jest wymagana."))
		return
	}

	inquiryType := req.InquiryType
	if inquiryType == "" {
		inquiryType = models.InquiryGeneralContact
	}
	source := req.Source
	if source == "" {
		source = "contact_page"
	}

	configurationData := req.ConfigurationData
	if len(req.Configuration) > 0 {
		params := url.Values{}
		for key, value := range req.Configuration {
			params.Set(key, value)
		}
		configurationData = configurator.DecodeHandoff(params)
	}

	inquiry := models.InquiryRequest{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             nullable(req.Phone),
		Message:           nullable(req.Message),
		Company:           nil, // upstream expects the field, storefront no longer collects it
		ConsentContact:    req.ConsentContact,
		ConsentRodo:       req.ConsentRodo,
		InquiryType:       inquiryType,
		Source:            source,
		ConfigurationData: configurationData,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := catalogService.SubmitInquiry(ctx, inquiry)
	if err != nil {
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Wystąpił błąd podczas wysyłania wiadomości. Spróbuj ponownie później."))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Inquiry submitted", result))
}

// nullable trims a form value and returns nil for an empty one, matching the
// upstream API's null-over-empty-string convention.
func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
