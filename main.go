// File: flightbridge/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightbridge/config"
	"flightbridge/handlers"
	"flightbridge/metrics"
	"flightbridge/middleware"
	"flightbridge/routes"
	"flightbridge/services/amadeus"
	"flightbridge/services/flights"
	"flightbridge/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "flightbridge"

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if err := config.AppConfig.Validate(); err != nil {
		logger.Fatal("main: invalid configuration", zap.Error(err))
	}

	if err := utils.InitTracing(context.Background(), serviceName, config.AppConfig.OTelExporterEndpoint); err != nil {
		logger.Fatal("main: failed to initialize tracing", zap.Error(err))
	}
	defer utils.ShutdownTracing()

	// One client for the whole process; it caches the OAuth token.
	amadeusClient, err := amadeus.NewClient(amadeus.Config{
		ClientID:     config.AppConfig.AmadeusAPIKey,
		ClientSecret: config.AppConfig.AmadeusAPISecret,
		BaseURL:      config.AppConfig.AmadeusBaseURL,
		TokenTimeout: config.AppConfig.UpstreamTimeout,
	})
	if err != nil {
		logger.Fatal("main: failed to initialize amadeus client", zap.Error(err))
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))

	appMetrics := metrics.New()

	// services.
	searchService := &flights.DefaultSearchService{
		Upstream:    amadeusClient,
		Timeout:     config.AppConfig.UpstreamTimeout,
		ResultShape: config.AppConfig.ResultShape,
		Metrics:     appMetrics,
	}
	searchHandler := handlers.NewSearchHandler(searchService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Metrics:              appMetrics,
		AllowedOrigins:       config.AppConfig.AllowedOrigins(),
		SearchFlightsHandler: searchHandler.SearchFlightsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + config.AppConfig.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s (result shape %s, upstream %s)...",
		srv.Addr, config.AppConfig.ResultShape, config.AppConfig.AmadeusBaseURL)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
