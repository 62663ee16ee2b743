package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kinblog/internal/service"
)

const msgInternalError = "internal server error"

// respondData writes the success envelope around a payload.
func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// respondMessage writes a success envelope with only a message.
func respondMessage(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"success": true, "message": msg})
}

// respondFail writes the failure envelope.
func respondFail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"success": false, "message": msg})
}

// respondError is the centralized mapping from service errors to HTTP
// status codes. resource names the entity for 404/403 messages. Anything
// outside the taxonomy is logged and flattened to a generic 500.
func (h *Handler) respondError(c *gin.Context, err error, resource, logKey string) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		respondFail(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondFail(c, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, service.ErrInvalidToken):
		respondFail(c, http.StatusUnauthorized, "invalid or expired token")
	case errors.Is(err, service.ErrForbidden):
		respondFail(c, http.StatusForbidden, "not authorized to modify this "+resource)
	case errors.Is(err, service.ErrNotFound):
		respondFail(c, http.StatusNotFound, resource+" not found")
	default:
		if h.log != nil {
			h.log.Errorw(logKey, "err", err)
		}
		respondFail(c, http.StatusInternalServerError, msgInternalError)
	}
}
