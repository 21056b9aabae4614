package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkwell-app/inkwell-server/internal/api/http/handler"
	"github.com/inkwell-app/inkwell-server/internal/api/http/middleware"
	"github.com/inkwell-app/inkwell-server/internal/logger"
	"github.com/inkwell-app/inkwell-server/internal/model"
	"github.com/inkwell-app/inkwell-server/internal/service"
)

// Router wires services, middleware and handlers into a gin engine.
type Router struct {
	authService    *service.Auth
	blogService    *service.Blog
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
	devMode        bool
}

// New creates a new Router instance.
func New(
	authService *service.Auth,
	blogService *service.Blog,
	tokenManager model.TokenManager,
	contextManager model.ContextManager,
	logger *logger.Logger,
	devMode bool,
) *Router {
	return &Router{
		authService:    authService,
		blogService:    blogService,
		tokenManager:   tokenManager,
		contextManager: contextManager,
		logger:         logger,
		devMode:        devMode,
	}
}

// Register builds the HTTP engine with all routes and middleware.
// Draft, publish and delete require authentication; listing and
// reading single blogs are public.
func (r *Router) Register() *gin.Engine {
	if !r.devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenManager, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger, r.devMode)
	blogHandler := handler.NewBlog(r.blogService, r.contextManager, r.logger, r.devMode)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle)

	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Blog API is running"})
	})

	auth := engine.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authenticate.Handle, authHandler.Me)
	}

	blogs := engine.Group("/blogs")
	{
		blogs.GET("", blogHandler.List)
		blogs.GET("/:id", blogHandler.Get)
		blogs.POST("/draft", authenticate.Handle, blogHandler.SaveDraft)
		blogs.POST("/publish", authenticate.Handle, blogHandler.Publish)
		blogs.DELETE("/:id", authenticate.Handle, blogHandler.Delete)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Route not found"})
	})

	return engine
}
