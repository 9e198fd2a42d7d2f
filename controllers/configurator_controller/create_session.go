package configurator_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/krystian2077/smartpc-builder/config"
	"github.com/krystian2077/smartpc-builder/configurator"
	"github.com/krystian2077/smartpc-builder/models"
)

type createSessionRequest struct {
	DeviceType string `json:"device_type"`
	Segment    string `json:"segment"`
	Budget     int    `json:"budget"`
}

// CreateSession godoc
// @Summary Start a configurator session
// @Description Create an empty configuration session. Device type, segment and budget default to pc / home / 5000 when omitted.
// @Tags Configurator
// @Accept json
// @Produce json
// @Param session body createSessionRequest false "Entry parameters"
// @Success 201 {object} models.ApiResponse{data=configurator.Session} "Session created"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Router /configurator/sessions [post]
func CreateSession(c *gin.Context) {
	var req createSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
			return
		}
	}

	session := configurator.NewSession(
		uuid.Must(uuid.NewV7()).String(),
		req.DeviceType,
		req.Segment,
		req.Budget,
	)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if !saveSession(c, ctx, session) {
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Session created", session))
}
