package handlers

import (
	"errors"
	"net/http"

	"flightbridge/models"
	"flightbridge/services/flights"
	"flightbridge/utils"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("flightbridge/handlers")

type SearchHandler struct {
	Service flights.SearchService
}

func NewSearchHandler(svc flights.SearchService) *SearchHandler {
	return &SearchHandler{Service: svc}
}

// SearchFlightsHandler handles GET /api/search-flights.
func (h *SearchHandler) SearchFlightsHandler(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "SearchFlightsHandler")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)
	logger := utils.WithTrace(ctx, getLogger(c))

	var req models.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Debug("invalid search query", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "invalid query string", err.Error())
		return
	}

	query, err := flights.NewQuery(req)
	if err != nil {
		respondSearchError(c, logger, err)
		return
	}

	logger = logger.With(
		zap.String("mode", string(query.Mode())),
		zap.String("origin", req.Origin),
		zap.String("destination", req.Destination),
		zap.String("departure_date", req.DepartureDate),
	)
	logger.Debug("searching flights")

	result, err := h.Service.SearchFlights(ctx, query)
	if err != nil {
		span.RecordError(err)
		respondSearchError(c, logger, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", result.Data)
}

func respondSearchError(c *gin.Context, logger *zap.Logger, err error) {
	var searchErr *flights.Error
	if !errors.As(err, &searchErr) {
		logger.Error("search failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to search flights", "")
		return
	}

	fields := []zap.Field{
		zap.String("kind", string(searchErr.Kind)),
		zap.Int("status", searchErr.Status),
		zap.Error(err),
	}
	switch searchErr.Kind {
	case flights.KindValidation:
		logger.Debug("rejected search", fields...)
	case flights.KindUpstream:
		logger.Warn("flight provider returned an error", append(fields, zap.String("details", searchErr.Details))...)
	default:
		logger.Error("flight provider unavailable", fields...)
	}

	utils.JSONError(c, searchErr.Status, searchErr.Message, searchErr.Details)
}
