package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell-server/internal/logger"
)

// Logging logs every HTTP request with method, path, status and
// duration.
type Logging struct {
	logger *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger}
}

// Handle is the gin middleware entry point.
func (l *Logging) Handle(c *gin.Context) {
	start := time.Now()

	c.Next()

	duration := time.Since(start)
	status := c.Writer.Status()

	l.logger.Info("http request completed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"duration_ms", duration.Milliseconds())

	if status >= 500 {
		l.logger.Error("http request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"errors", c.Errors.String())
	}
}
