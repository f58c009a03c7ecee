package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Path id parsing

	"github.com/gin-gonic/gin"    // Gin web framework
	"github.com/go-faster/errors" // Error kind matching
	"github.com/sirupsen/logrus"  // Logging library

	"ecommerce/internal/domain"     // Error kinds
	"ecommerce/internal/middleware" // Request id lookup
)

// respondError maps an error kind to its status. NotFound and BadRequest
// answer with an empty body; anything else is logged and answered with 500
// carrying the error message.
func respondError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.AbortWithStatus(http.StatusNotFound) // Unknown user, item or cart
	case errors.Is(err, domain.ErrBadRequest):
		c.AbortWithStatus(http.StatusBadRequest) // Request failed validation
	default:
		logrus.WithFields(logrus.Fields{
			"op":         op,                      // Failing operation
			"error":      err.Error(),             // Error message
			"request_id": middleware.RequestID(c), // Correlation id
		}).Error("Request failed")
		c.Abort()                                             // Stop the chain
		c.String(http.StatusInternalServerError, err.Error()) // Message as body
	}
}

// idParam parses a positive numeric path parameter
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64) // Parse the id
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest) // Non-numeric id
		return 0, false
	}
	return uint(id), true
}
