package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"storefront/internal/domain"
	customersvc "storefront/internal/service/customer"
	"storefront/internal/service/token"
	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto status codes. Client faults keep
// their message; storage faults are logged and surfaced opaquely.
func respondError(c *gin.Context, logger *log.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, customersvc.ErrDuplicateUsername),
		errors.Is(err, domain.ErrQuantityLimit),
		errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, customersvc.ErrInvalidCredentials),
		errors.Is(err, token.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
