package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell-server/internal/logger"
	"github.com/inkwell-app/inkwell-server/internal/model"
)

// BlogService defines the blog lifecycle operations.
type BlogService interface {
	SaveDraft(ctx context.Context, params model.SaveBlogParams, callerID model.ID) (model.Blog, bool, error)
	Publish(ctx context.Context, params model.SaveBlogParams, callerID model.ID) (model.Blog, bool, error)
	GetAll(ctx context.Context) ([]model.Blog, error)
	GetByID(ctx context.Context, rawID string) (model.Blog, error)
	Delete(ctx context.Context, rawID string, callerID model.ID) error
}

// Blog handles HTTP endpoints for the blog lifecycle.
type Blog struct {
	blogService    BlogService
	contextManager model.ContextManager
	logger         *logger.Logger
	devMode        bool
}

// NewBlog creates a new Blog handler.
func NewBlog(blogService BlogService, contextManager model.ContextManager, logger *logger.Logger, devMode bool) *Blog {
	return &Blog{
		blogService:    blogService,
		contextManager: contextManager,
		logger:         logger,
		devMode:        devMode,
	}
}

// List returns every blog ordered by last update, newest first.
func (h *Blog) List(c *gin.Context) {
	blogs, err := h.blogService.GetAll(c.Request.Context())
	if err != nil {
		h.logger.Error("Blog handler: list failed", "error", err)
		handleError(c, h.logger, h.devMode, err)
		return
	}

	respondList(c, http.StatusOK, len(blogs), newBlogPayloads(blogs))
}

// Get returns a single blog by identifier.
func (h *Blog) Get(c *gin.Context) {
	blog, err := h.blogService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, h.logger, h.devMode, err)
		return
	}

	respondData(c, http.StatusOK, newBlogPayload(blog))
}

type saveBlogRequest struct {
	ID      string     `json:"id"`
	Title   string     `json:"title" binding:"required"`
	Content string     `json:"content" binding:"required"`
	Tags    model.Tags `json:"tags"`
}

// SaveDraft creates or updates a draft. Returns 201 for a newly
// created blog and 200 for an update.
func (h *Blog) SaveDraft(c *gin.Context) {
	h.saveBlog(c, h.blogService.SaveDraft)
}

// Publish creates or updates a blog with status forced to published.
func (h *Blog) Publish(c *gin.Context) {
	h.saveBlog(c, h.blogService.Publish)
}

func (h *Blog) saveBlog(c *gin.Context, save func(context.Context, model.SaveBlogParams, model.ID) (model.Blog, bool, error)) {
	var req saveBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Blog handler: invalid save input", "error", err)
		respondError(c, http.StatusBadRequest, "title and content are required")
		return
	}

	callerID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	params := model.SaveBlogParams{
		RawID:   req.ID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}

	blog, created, err := save(c.Request.Context(), params, callerID)
	if err != nil {
		h.logger.Warn("Blog handler: save failed", "blog_id", req.ID, "error", err)
		handleError(c, h.logger, h.devMode, err)
		return
	}

	code := http.StatusOK
	if created {
		code = http.StatusCreated
	}
	respondData(c, code, newBlogPayload(blog))
}

// Delete permanently removes a blog owned by the caller.
func (h *Blog) Delete(c *gin.Context) {
	callerID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.blogService.Delete(c.Request.Context(), c.Param("id"), callerID); err != nil {
		h.logger.Warn("Blog handler: delete failed", "blog_id", c.Param("id"), "error", err)
		handleError(c, h.logger, h.devMode, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{})
}
