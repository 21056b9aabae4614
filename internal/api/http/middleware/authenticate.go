package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell-server/internal/logger"
	"github.com/inkwell-app/inkwell-server/internal/model"
)

// TokenVerifier resolves user IDs from bearer tokens.
type TokenVerifier interface {
	Parse(token string) (model.ID, error)
}

// Authenticate validates bearer tokens and injects the user ID into
// the request context. Routes behind it always see a caller identity.
type Authenticate struct {
	tokens         TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle is the gin middleware entry point.
func (m *Authenticate) Handle(c *gin.Context) {
	tokenString, err := extractBearerToken(c.GetHeader("Authorization"))
	if err != nil {
		m.logger.Warn("Authenticate middleware: missing or malformed authorization header", "error", err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
		return
	}

	userID, err := m.tokens.Parse(tokenString)
	if err != nil {
		m.logger.Warn("Authenticate middleware: token rejected", "error", err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid or expired token"})
		return
	}

	ctx := m.contextManager.SetUserIDToContext(c.Request.Context(), userID)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

func extractBearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingAuthHeader
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errMalformedAuthHeader
	}
	return parts[1], nil
}
