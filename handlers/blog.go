package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	postRepo "artigadental/database/repository/post"
	"artigadental/services/blog"
	"artigadental/utils"
)

// BlogHandler serves the public blog pages.
type BlogHandler struct {
	Service blog.Service
}

func NewBlogHandler(svc blog.Service) *BlogHandler {
	return &BlogHandler{Service: svc}
}

// ListPosts handles GET /api/posts (published posts only).
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts, err := h.Service.ListPublished(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPost handles GET /api/posts/:slug.
func (h *BlogHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")
	post, err := h.Service.GetPublished(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, postRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		utils.GetLogger().Error("failed to fetch post", zap.String("slug", slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, post)
}
