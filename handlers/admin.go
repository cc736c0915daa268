package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"artigadental/config"
	postRepo "artigadental/database/repository/post"
	reservationRepo "artigadental/database/repository/reservation"
	"artigadental/models"
	"artigadental/services/blog"
	"artigadental/utils"
)

// AdminHandler serves the dashboard: login, blog CRUD and the agenda view.
type AdminHandler struct {
	Blog         blog.Service
	Reservations reservationRepo.Repository
}

func NewAdminHandler(blogSvc blog.Service, resRepo reservationRepo.Repository) *AdminHandler {
	return &AdminHandler{Blog: blogSvc, Reservations: resRepo}
}

// Login handles POST /api/admin/login against the configured credentials.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	cfg := config.AppConfig
	if cfg.AdminPasswordHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin access not configured"})
		return
	}
	if input.Email != cfg.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(cfg.AdminPasswordHash), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := utils.GenerateToken("admin", input.Email, 12*time.Hour)
	if err != nil {
		utils.GetLogger().Error("failed to sign admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// ListAllPosts handles GET /api/admin/posts, drafts included.
func (h *AdminHandler) ListAllPosts(c *gin.Context) {
	posts, err := h.Blog.ListAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

type postInput struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
	IsPublished bool   `json:"is_published"`
}

// CreatePost handles POST /api/admin/posts.
func (h *AdminHandler) CreatePost(c *gin.Context) {
	var input postInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	post, err := h.Blog.Create(c.Request.Context(), models.Post{
		Title:       input.Title,
		Slug:        input.Slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		IsPublished: input.IsPublished,
	})
	if err != nil {
		h.postError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// UpdatePost handles PUT /api/admin/posts/:id.
func (h *AdminHandler) UpdatePost(c *gin.Context) {
	var input postInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	post, err := h.Blog.Update(c.Request.Context(), models.Post{
		ID:          c.Param("id"),
		Title:       input.Title,
		Slug:        input.Slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		IsPublished: input.IsPublished,
	})
	if err != nil {
		h.postError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// DeletePost handles DELETE /api/admin/posts/:id.
func (h *AdminHandler) DeletePost(c *gin.Context) {
	if err := h.Blog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.postError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) postError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, postRepo.ErrSlugTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
	case errors.Is(err, postRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	default:
		utils.GetLogger().Error("post operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

// ListAppointments handles GET /api/admin/appointments?from&to for the desk.
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		to = &t
	}

	reservations, err := h.Reservations.List(c.Request.Context(), from, to)
	if err != nil {
		utils.GetLogger().Error("failed to list appointments", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": reservations})
}
