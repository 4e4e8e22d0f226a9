package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"leadmend/internal/config"
	"leadmend/internal/handler"
	"leadmend/internal/middleware"
	"leadmend/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	authSvc service.AuthService,
	authH *handler.AuthHandler,
	sessionH *handler.SessionHandler,
	jobH *handler.JobHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// Import session routes
	sessions := protected.Group("/sessions")
	sessions.POST("", sessionH.Create)
	sessions.GET("/:id", sessionH.Get)
	sessions.POST("/:id/file", sessionH.UploadFile)
	sessions.PUT("/:id/options", sessionH.SetOption)
	sessions.PUT("/:id/answers", sessionH.SetAnswer)
	sessions.POST("/:id/submit", sessionH.Submit)
	sessions.GET("/:id/download", sessionH.Download)
	sessions.POST("/:id/reset", sessionH.Reset)
	sessions.DELETE("/:id", sessionH.Delete)

	// Enrichment history
	jobs := protected.Group("/jobs")
	jobs.GET("", jobH.List)
	jobs.GET("/:id", jobH.GetByID)
	jobs.DELETE("/:id", jobH.Delete)

	return r
}
