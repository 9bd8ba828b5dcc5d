package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Eronmosele95/electrical-dashboard/internal/api/handlers"
	"github.com/Eronmosele95/electrical-dashboard/internal/api/middleware"
	"github.com/Eronmosele95/electrical-dashboard/internal/config"
	"github.com/Eronmosele95/electrical-dashboard/internal/history"
	"github.com/Eronmosele95/electrical-dashboard/internal/metrics"
	"github.com/Eronmosele95/electrical-dashboard/internal/rates"
	"github.com/Eronmosele95/electrical-dashboard/internal/theme"
)

// Deps holds everything the router needs. Construction stays in main so
// tests can swap in in-memory stores.
type Deps struct {
	Logger  *zap.Logger
	Config  *config.Config
	History *history.Store
	Theme   *theme.Manager
	Catalog *rates.Catalog
}

// NewRouter builds the gin engine with all middleware and routes attached.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	// Apply middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(d.Logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(d.Config.Server.AllowedOrigins))
	router.Use(middleware.Recovery(d.Logger))

	defaults := d.Config.Defaults.ToModelDefaults()
	limits := d.Config.Limits.ToRules()

	// Initialize handlers
	calculateHandler := handlers.NewCalculateHandler(defaults, limits)
	rulesHandler := handlers.NewRulesHandler(defaults, limits)
	historyHandler := handlers.NewHistoryHandler(d.History, defaults, limits, d.Logger)
	themeHandler := handlers.NewThemeHandler(d.Theme, d.Logger)
	ratesHandler := handlers.NewRatesHandler(d.Catalog, defaults, limits)
	liveHandler := handlers.NewLiveHandler(defaults, limits, d.Logger)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/calculate", calculateHandler.Calculate)
		api.POST("/calculate/compare", calculateHandler.Compare)
		api.POST("/validate", calculateHandler.Validate)

		api.GET("/rules", rulesHandler.ListRules)

		api.GET("/history", historyHandler.List)
		api.POST("/history", historyHandler.Save)
		api.GET("/history/:id", historyHandler.GetItem)
		api.DELETE("/history/:id", historyHandler.Delete)
		api.DELETE("/history", historyHandler.Clear)

		api.GET("/theme", themeHandler.GetTheme)
		api.PUT("/theme", themeHandler.SetTheme)
		api.POST("/theme/toggle", themeHandler.Toggle)

		api.GET("/rates", ratesHandler.ListRates)
		api.GET("/rates/rank", ratesHandler.RankRates)

		api.GET("/live", liveHandler.Live)
	}

	return router
}
