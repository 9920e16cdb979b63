package http

import (
	"log/slog"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/jsamuelsen/quotation-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotation-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotation-service/internal/platform/config"
	"github.com/jsamuelsen/quotation-service/internal/platform/telemetry"
)

// DefaultRequestTimeout applies when RouterConfig.Timeout is unset.
const DefaultRequestTimeout = 10 * time.Second

// RouterConfig contains the dependencies for the API routes.
type RouterConfig struct {
	Logger      *slog.Logger
	ServiceName string

	// CORS enables cross-origin access for browser clients when non-nil and enabled.
	CORS *config.CORSConfig

	// Swagger mounts /swagger/*any when true.
	Swagger bool

	HealthHandler    *handlers.HealthHandler
	QuotationHandler *handlers.QuotationHandler

	// Timeout bounds every /quotations request.
	Timeout time.Duration
}

// UseStandardMiddleware installs the chain shared by the API and the console:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. Tracing
//  5. Metrics and X-Trace-ID
//  6. Access logging
func UseStandardMiddleware(engine *gin.Engine, logger *slog.Logger, serviceName string) {
	engine.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Tracing(serviceName),
		telemetry.Middleware(),
		middleware.Logging(logger),
	)
}

// SetupRouter registers the API middleware and routes:
//   - /-/ operational endpoints, no timeout
//   - /swagger/*any when enabled
//   - /quotations CRUD with the request timeout
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	UseStandardMiddleware(engine, cfg.Logger, cfg.ServiceName)

	if cfg.CORS != nil && cfg.CORS.Enabled {
		engine.Use(cors.New(corsConfig(cfg.CORS)))
	}

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	if cfg.Swagger {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	api := engine.Group("")
	api.Use(middleware.Timeout(timeout))

	if cfg.QuotationHandler != nil {
		cfg.QuotationHandler.RegisterQuotationRoutes(api)
	}
}

func corsConfig(cfg *config.CORSConfig) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			middleware.HeaderRequestID, middleware.HeaderCorrelationID,
		},
		ExposeHeaders: []string{middleware.HeaderRequestID, telemetry.HeaderTraceID},
		MaxAge:        cfg.MaxAge,
	}

	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}

	return c
}
