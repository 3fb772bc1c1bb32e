package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/edumetry/staffdesk-backend/internal/config"
	"github.com/edumetry/staffdesk-backend/internal/handler"
	"github.com/edumetry/staffdesk-backend/internal/middleware"
	"github.com/edumetry/staffdesk-backend/internal/model"
	"github.com/edumetry/staffdesk-backend/internal/response"
	"github.com/edumetry/staffdesk-backend/internal/session"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth   *handler.AuthHandler
	Portal *handler.PortalHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	manager *session.Manager,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the login route.
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute, time.Minute)

	// ─── 1. Auth Group ─────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), handlers.Auth.Login)

		// Authenticated session routes
		auth.POST("/logout", middleware.RequireSession(manager), handlers.Auth.Logout)
		auth.GET("/me", middleware.RequireSession(manager), handlers.Auth.Me)
	}

	// ─── 2. Portal Group (Session + RBAC) ──────────────────────────────
	portal := router.Group("/api/v1/portal")
	portal.Use(middleware.RequireSession(manager))
	{
		portal.GET("/navigation", handlers.Portal.Navigation)
		portal.GET("/authz", handlers.Portal.Authorize)
		portal.GET("/permissions",
			middleware.RequireAnyCapability(model.CapabilityManageFaculty, model.CapabilityReports),
			handlers.Portal.Permissions,
		)
	}

	return router
}
