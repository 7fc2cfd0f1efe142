package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/salesreport-api/internal/config"
	"github.com/sangkips/salesreport-api/internal/presentation/http/dto/response"
	"github.com/sangkips/salesreport-api/internal/presentation/http/handler"
	"github.com/sangkips/salesreport-api/internal/presentation/http/middleware"
	"github.com/sangkips/salesreport-api/pkg/apperror"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Report *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes. The returned
// limiter owns a background cleanup goroutine; callers stop it on shutdown.
func Setup(h *Handlers, deps *Deps) (*gin.Engine, *middleware.ClientRateLimiter) {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	limiterCfg := middleware.DefaultRateLimiterConfig()
	limiterCfg.RequestsPerSecond = float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration)
	limiterCfg.BurstSize = deps.Cfg.RateLimit.Requests
	rateLimiter := middleware.NewClientRateLimiter(limiterCfg)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":       "ok",
			"service":      deps.Cfg.App.Name,
			"data_source":  deps.Cfg.App.DataSource,
			"rate_limiter": rateLimiter.Stats(),
		})
	})

	router.NoRoute(func(c *gin.Context) {
		response.Error(c, apperror.ErrNotFound)
	})

	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		registerReportRoutes(v1, h)
	}

	return router, rateLimiter
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/sales", h.Report.ListSales)
		reports.GET("/chart", h.Report.GetChart)
		reports.POST("/chart", h.Report.GetChart)
		reports.GET("/trend", h.Report.GetTrend)
		reports.GET("/options", h.Report.GetOptions)
	}
}
