package routes

import (
	"net/http"
	"slices"
	"time"

	"flightbridge/handlers"
	"flightbridge/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterSearchRoutes registers the flight search endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/search-flights", hb.SearchFlightsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.Metrics == nil {
		return
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(hb.Metrics.Registry(), promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})))
}

// CORSConfig allows every origin when origins is empty or contains "*".
func CORSConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Accept", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.Metrics != nil {
		r.Use(middleware.Metrics(hb.Metrics))
	}
	r.Use(cors.New(CORSConfig(hb.AllowedOrigins)))

	RegisterSearchRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r, hb)
}
