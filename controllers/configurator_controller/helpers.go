package configurator_controller

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krystian2077/smartpc-builder/configurator"
	"github.com/krystian2077/smartpc-builder/models"
	"github.com/krystian2077/smartpc-builder/services"
)

// loadSession fetches the session named in the :id path parameter and writes
// the error response itself when the session is gone.
func loadSession(c *gin.Context, ctx context.Context) (*configurator.Session, bool) {
	session, err := sessionStore.Get(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Configurator session not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load session"))
		}
		return nil, false
	}
	return session, true
}

// pathComponentType parses the :type path parameter, writing the error
// response on an unknown category.
func pathComponentType(c *gin.Context) (models.ComponentType, bool) {
	category, ok := models.ParseComponentType(c.Param("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown component category"))
		return "", false
	}
	return category, true
}

// saveSession persists the session, writing the error response on failure.
func saveSession(c *gin.Context, ctx context.Context, session *configurator.Session) bool {
	if err := sessionStore.Save(ctx, session); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save session"))
		return false
	}
	return true
}
