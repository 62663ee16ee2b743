package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kinblog/internal/logger"
	"kinblog/internal/service"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services  *service.Service
	log       *logger.Logger
	uploadDir string
}

// NewHandler constructs a new HTTP handler with dependencies. uploadDir is
// the on-disk directory served back under /uploads.
func NewHandler(services *service.Service, log *logger.Logger, uploadDir string) *Handler {
	return &Handler{services: services, log: log, uploadDir: uploadDir}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/", h.welcome)
	router.GET("/health", h.health)

	// Uploaded avatars are served back as static files
	router.Static("/uploads", h.uploadDir)

	h.registerAuthRoutes(router)
	h.registerPostRoutes(router)
	h.registerCommentRoutes(router)
	h.registerUserRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

// Reads are public; mutations require a verified Bearer token.
func (h *Handler) registerPostRoutes(r *gin.Engine) {
	posts := r.Group("/posts")
	{
		posts.GET("", h.listPosts)
		posts.GET("/:id", h.getPost)
		posts.POST("", h.userIdMiddleware, h.createPost)
		posts.PUT("/:id", h.userIdMiddleware, h.updatePost)
		posts.DELETE("/:id", h.userIdMiddleware, h.deletePost)

		posts.GET("/:id/comments", h.listComments)
		posts.POST("/:id/comments", h.userIdMiddleware, h.addComment)
	}
}

func (h *Handler) registerCommentRoutes(r *gin.Engine) {
	comments := r.Group("/comments", h.userIdMiddleware)
	{
		comments.PUT("/:id", h.updateComment)
		comments.DELETE("/:id", h.deleteComment)
	}
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	users := r.Group("/users", h.userIdMiddleware)
	{
		users.POST("/profile/upload", h.uploadProfilePicture)
	}
}

func (h *Handler) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to KinBlog API"})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
