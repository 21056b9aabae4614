package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell-server/internal/logger"
	"github.com/inkwell-app/inkwell-server/internal/model"
)

// AuthService defines registration, login and profile operations.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (model.User, string, error)
	Login(ctx context.Context, email, password string) (model.User, string, error)
	GetUser(ctx context.Context, id model.ID) (model.User, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
	devMode        bool
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger, devMode bool) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
		devMode:        devMode,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register creates an account and returns a session token with the
// profile.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Auth handler: invalid register input", "error", err)
		respondError(c, http.StatusBadRequest, "username, a valid email and a password of 6 or more characters are required")
		return
	}

	user, tokenString, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed", "email", req.Email, "error", err)
		handleError(c, h.logger, h.devMode, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   tokenString,
		"user":    newUserPayload(user),
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and returns a session token with the
// profile.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Auth handler: invalid login input", "error", err)
		respondError(c, http.StatusBadRequest, "a valid email and password are required")
		return
	}

	user, tokenString, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Warn("Auth handler: login failed", "email", req.Email, "error", err)
		handleError(c, h.logger, h.devMode, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   tokenString,
		"user":    newUserPayload(user),
	})
}

// Me returns the profile behind the presented token.
func (h *Auth) Me(c *gin.Context) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		respondError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Warn("Auth handler: user lookup failed", "user_id", userID, "error", err)
		handleError(c, h.logger, h.devMode, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    newUserPayload(user),
	})
}
