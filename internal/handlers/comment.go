package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *Handler) addComment(c *gin.Context) {
	var input commentRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	comment, err := h.services.Comments.Add(c.Request.Context(), c.Param("id"), requesterID(c), input.Content)
	if err != nil {
		h.respondError(c, err, "comment", "comment_add_failed")
		return
	}

	respondData(c, http.StatusCreated, comment)
}

func (h *Handler) listComments(c *gin.Context) {
	comments, err := h.services.Comments.ListByPost(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "comment", "comment_list_failed")
		return
	}

	respondData(c, http.StatusOK, comments)
}

func (h *Handler) updateComment(c *gin.Context) {
	var input commentRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	comment, err := h.services.Comments.Update(c.Request.Context(), c.Param("id"), requesterID(c), input.Content)
	if err != nil {
		h.respondError(c, err, "comment", "comment_update_failed")
		return
	}

	respondData(c, http.StatusOK, comment)
}

func (h *Handler) deleteComment(c *gin.Context) {
	if err := h.services.Comments.Delete(c.Request.Context(), c.Param("id"), requesterID(c)); err != nil {
		h.respondError(c, err, "comment", "comment_delete_failed")
		return
	}

	respondMessage(c, http.StatusOK, "comment removed")
}
