package httpserver

import (
	"errors"
	"net/http"

	"cafecart/internal/domain"
	"github.com/gin-gonic/gin"
)

// respondError maps engine failure kinds onto HTTP statuses. Everything is a
// structured {"message": ...} body, never a bare 500 page.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "sign in to use the cart"})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": domain.ErrProductNotFound.Error()})
	case errors.Is(err, domain.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": domain.ErrItemNotFound.Error()})
	case errors.Is(err, domain.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "cart temporarily unavailable"})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	}
}
