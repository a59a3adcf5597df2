package handlers

import (
	"github.com/WeeklyLogs/weekly_log_app/cmd/docs"
	"github.com/WeeklyLogs/weekly_log_app/internal/core/domain"
	portssvc "github.com/WeeklyLogs/weekly_log_app/internal/core/ports/services"
	"github.com/WeeklyLogs/weekly_log_app/internal/middleware"
	"github.com/WeeklyLogs/weekly_log_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidations()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes for both contexts
	registerAuthRoutes(r, services)

	// Public verification route used from supervisor mails
	registerVerifyRoutes(r, services.Log)

	// Authenticated API routes
	setupAPIV1Routes(r, services)

	// Swagger routes (disabled in production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Log routes accept either session context; the service scopes per
	// principal.
	shared := v1.Group("", middleware.SessionAuthAnyMiddleware(services.Session, domain.ContextStudent, domain.ContextAdmin))
	registerLogRoutes(shared, services.Log)

	// Provisioning routes require an admin session.
	adminOnly := v1.Group("", middleware.SessionAuthMiddleware(services.Session, domain.ContextAdmin))
	registerAdminRoutes(adminOnly, services.Provisioning)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
