// File: flightbridge/handlers/bundle.go
package handlers

import (
	"flightbridge/metrics"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers and the shared pieces the
// router needs.
type HandlerBundle struct {
	Metrics *metrics.Metrics

	// Origins allowed by CORS; empty allows all.
	AllowedOrigins []string

	// Search endpoints
	SearchFlightsHandler gin.HandlerFunc
}
