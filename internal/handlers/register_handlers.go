package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/hotel_management_app/cmd/docs"
	portssvc "github.com/SscSPs/hotel_management_app/internal/core/ports/services"
	"github.com/SscSPs/hotel_management_app/internal/middleware"
	"github.com/SscSPs/hotel_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with global middleware and every route registered.
func NewRouter(cfg *config.Config, logger *slog.Logger, services *portssvc.ServiceContainer) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	limiterInstance, err := middleware.NewIPRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limit)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.RateLimit(limiterInstance),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	RegisterRoutes(r, cfg, services)
	return r, nil
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	rooms := v1.Group("/rooms")
	registerRoomRoutes(rooms, services.Rooms)
	registerCheckoutRoutes(rooms, services.Rooms, cfg.DefaultTaxPercent, cfg.DefaultDiscountPercent)
	registerLedgerRoutes(v1, services, cfg.DataFile)
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
