package httpserver

import (
	"errors"
	"net/http"

	"canvas-store/internal/domain"
	"canvas-store/internal/service/account"
	"github.com/gin-gonic/gin"
)

// respond writes the uniform success envelope merged with extra keys.
func respond(c *gin.Context, status int, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// fail writes the uniform failure envelope.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondError maps service errors to client status codes. Anything not
// recognized becomes a generic 500 carrying the underlying message for
// diagnostics.
func respondError(c *gin.Context, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		fail(c, http.StatusBadRequest, ve.Reason)
	case errors.Is(err, domain.ErrEmptyCart):
		fail(c, http.StatusBadRequest, "Cart is empty. Cannot proceed with checkout.")
	case errors.Is(err, domain.ErrForbidden):
		fail(c, http.StatusForbidden, "this resource does not belong to you")
	case errors.Is(err, domain.ErrNotFound):
		fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		fail(c, http.StatusConflict, "already exists")
	case errors.Is(err, account.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, account.ErrInvalidToken):
		fail(c, http.StatusUnauthorized, "invalid or expired token")
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "internal server error",
			"error":   err.Error(),
		})
	}
}
