package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// uploadFieldName is the fixed multipart field carrying the avatar image.
const uploadFieldName = "image"

func (h *Handler) uploadProfilePicture(c *gin.Context) {
	fileHeader, err := c.FormFile(uploadFieldName)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "no file uploaded")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, err, "user", "upload_open_failed")
		return
	}
	defer src.Close()

	u, err := h.services.Profile.SaveAvatar(c.Request.Context(), requesterID(c), fileHeader.Filename, src)
	if err != nil {
		h.respondError(c, err, "user", "upload_save_failed")
		return
	}

	respondData(c, http.StatusOK, u)
}
