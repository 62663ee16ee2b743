package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kinblog/internal/models"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// sessionPayload is the auth response body: the user identity plus the
// freshly issued token.
type sessionPayload struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
	Token          string `json:"token"`
}

func newSessionPayload(u *models.User, token string) sessionPayload {
	return sessionPayload{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		Token:          token,
	}
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a
// 400 on failure. Returns false if the request was already handled.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		respondFail(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) register(c *gin.Context) {
	var input registerRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, token, err := h.services.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_register_failed", "email", input.Email, "err", err)
		}
		h.respondError(c, err, "user", "auth_register_error")
		return
	}

	respondData(c, http.StatusCreated, newSessionPayload(u, token))
}

func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	u, token, err := h.services.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if h.log != nil {
			h.log.Infow("auth_login_failed", "email", input.Email, "err", err)
		}
		h.respondError(c, err, "user", "auth_login_error")
		return
	}

	respondData(c, http.StatusOK, newSessionPayload(u, token))
}
