package configurator_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/configurator"
	"github.com/krystian2077/smartpc-builder/models"
)

type submitInquiryRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	Message        string `json:"message"`
	ConsentContact bool   `json:"consent_contact"`
	ConsentRodo    bool   `json:"consent_rodo"`
}

type missingComponentsData struct {
	Missing []models.ComponentType `json:"missing"`
	Labels  []string               `json:"labels"`
}

// SubmitInquiry godoc
// @Summary Submit the configuration as a quote inquiry
// @Description Run the completeness check, freeze the quote draft and forward it upstream as a quote_request inquiry. Blocks when categories are missing, when the RODO consent is absent, or when a submission is already in flight for this session.
// @Tags Configurator
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param inquiry body submitInquiryRequest true "Contact details"
// @Success 201 {object} models.ApiResponse{data=models.InquiryResponse} "Inquiry submitted"
// @Failure 400 {object} models.ApiResponse "Missing components or consent"
// @Failure 404 {object} models.ApiResponse "Session not found"
// @Failure 409 {object} models.ApiResponse "Submission already in flight"
// @Failure 502 {object} models.ApiResponse "Upstream submission failed"
// @Router /configurator/sessions/{id}/submit [post]
func SubmitInquiry(c *gin.Context) {
	var req submitInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	if !req.ConsentRodo {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Zgoda na przetwarzanie danych (RODO) jest wymagana."))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	session, ok := loadSession(c, ctx)
	if !ok {
		return
	}

	// Completeness check: submission is only permitted from a complete
	// configuration. Report the gaps in canonical order.
	if missing := session.Selection.Missing(); len(missing) > 0 {
		labels := make([]string, 0, len(missing))
		for _, category := range missing {
			labels = append(labels, models.ComponentLabels[category])
		}
		response := models.ErrorResponse(c, "Nie wybrano wszystkich komponentów!")
		response.Data = missingComponentsData{Missing: missing, Labels: labels}
		c.JSON(http.StatusBadRequest, response)
		return
	}

	// At most one in-flight submission per session; repeated clicks must not
	// create duplicate orders.
	acquired, err := sessionStore.AcquireSubmitLock(ctx, session.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start submission"))
		return
	}
	if !acquired {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Submission already in progress"))
		return
	}

	catalog := catalogService.FullCatalog(ctx)
	draft := configurator.BuildQuoteDraft(
		session.Selection,
		catalog,
		session.AssemblyService,
		session.Segment,
		session.Budget,
	)

	inquiry := models.InquiryRequest{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Phone:             nullable(req.Phone),
		Message:           nullable(req.Message),
		Company:           nil,
		ConsentContact:    req.ConsentContact,
		ConsentRodo:       req.ConsentRodo,
		InquiryType:       models.InquiryQuoteRequest,
		Source:            "configurator",
		ConfigurationData: configurator.DecodeHandoff(draft.Encode()),
	}

	result, err := catalogService.SubmitInquiry(ctx, inquiry)
	if err != nil {
		// Release the lock so the user can resubmit manually after the error.
		sessionStore.ReleaseSubmitLock(ctx, session.ID)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Wystąpił błąd podczas wysyłania zapytania. Spróbuj ponownie później."))
		return
	}

	// The configuration is done; the session is browsing state only. A
	// failed delete is harmless, the TTL will reap it.
	sessionStore.ReleaseSubmitLock(ctx, session.ID)
	_ = sessionStore.Delete(ctx, session.ID)

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
