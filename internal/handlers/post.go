package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kinblog/internal/service"
)

type createPostRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category"`
}

// updatePostRequest uses pointers so absent fields stay untouched.
type updatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

func (h *Handler) createPost(c *gin.Context) {
	var input createPostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	post, err := h.services.Posts.Create(c.Request.Context(), requesterID(c), service.PostInput{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
	})
	if err != nil {
		h.respondError(c, err, "post", "post_create_failed")
		return
	}

	respondData(c, http.StatusCreated, post)
}

// queryInt parses a positive integer query parameter, returning 0 when
// absent or malformed so the service applies its defaults.
func queryInt(c *gin.Context, name string) int {
	n, err := strconv.Atoi(c.Query(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (h *Handler) listPosts(c *gin.Context) {
	page, err := h.services.Posts.List(c.Request.Context(), service.ListQuery{
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
		Search: c.Query("search"),
	})
	if err != nil {
		h.respondError(c, err, "post", "post_list_failed")
		return
	}

	respondData(c, http.StatusOK, page)
}

func (h *Handler) getPost(c *gin.Context) {
	post, err := h.services.Posts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err, "post", "post_get_failed")
		return
	}

	respondData(c, http.StatusOK, post)
}

func (h *Handler) updatePost(c *gin.Context) {
	var input updatePostRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	post, err := h.services.Posts.Update(c.Request.Context(), c.Param("id"), requesterID(c), service.PostPatch{
		Title:    input.Title,
		Content:  input.Content,
		Category: input.Category,
	})
	if err != nil {
		h.respondError(c, err, "post", "post_update_failed")
		return
	}

	respondData(c, http.StatusOK, post)
}

func (h *Handler) deletePost(c *gin.Context) {
	if err := h.services.Posts.Delete(c.Request.Context(), c.Param("id"), requesterID(c)); err != nil {
		h.respondError(c, err, "post", "post_delete_failed")
		return
	}

	respondMessage(c, http.StatusOK, "post removed")
}
