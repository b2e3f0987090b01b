// Package flights turns inbound search requests into Amadeus calls and shapes
// what comes back.
package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"flightbridge/config"
	"flightbridge/metrics"
	"flightbridge/services/amadeus"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const DefaultTimeout = 10 * time.Second

var tracer = otel.Tracer("flightbridge/services/flights")

// Upstream is the part of the Amadeus client the service needs.
type Upstream interface {
	SearchOffers(ctx context.Context, params amadeus.OfferSearchParams) (*amadeus.Response, error)
	SearchDestinations(ctx context.Context, params amadeus.DestinationSearchParams) (*amadeus.Response, error)
}

type SearchService interface {
	SearchFlights(ctx context.Context, q Query) (*Result, error)
}

// Result is the client-facing payload of a successful search.
type Result struct {
	Mode Mode
	Data json.RawMessage
}

// DefaultSearchService is safe for concurrent use as long as its fields are
// not modified after the first call.
type DefaultSearchService struct {
	Upstream Upstream
	Timeout  time.Duration
	// ResultShape is config.ResultShapeFull (default) or config.ResultShapeLegacy.
	ResultShape string
	Metrics     *metrics.Metrics
	Now         func() time.Time
}

func (s *DefaultSearchService) SearchFlights(ctx context.Context, q Query) (*Result, error) {
	if q == nil {
		return nil, newValidationError("origin is required")
	}
	mode := q.Mode()

	ctx, span := tracer.Start(ctx, "SearchFlights", trace.WithAttributes(
		attribute.String("search.mode", string(mode)),
	))
	defer span.End()

	callCtx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	start := time.Now()
	var (
		resp *amadeus.Response
		err  error
	)
	switch q := q.(type) {
	case RouteQuery:
		resp, err = s.Upstream.SearchOffers(callCtx, q.Params(s.now()))
	case ExplorationQuery:
		resp, err = s.Upstream.SearchDestinations(callCtx, q.Params())
	default:
		return nil, fmt.Errorf("flights: unsupported query type %T", q)
	}
	elapsed := time.Since(start).Seconds()

	if err != nil {
		searchErr := classify(err)
		s.Metrics.ObserveUpstream(string(mode), string(searchErr.Kind), elapsed)
		span.RecordError(err)
		span.SetStatus(codes.Error, searchErr.Message)
		return nil, searchErr
	}

	data := resp.Data
	if mode == ModeRoute && s.ResultShape == config.ResultShapeLegacy {
		if data, err = summarizeOffers(resp.Data); err != nil {
			searchErr := classify(fmt.Errorf("%w: %v", amadeus.ErrMalformedResponse, err))
			s.Metrics.ObserveUpstream(string(mode), string(searchErr.Kind), elapsed)
			span.RecordError(err)
			span.SetStatus(codes.Error, searchErr.Message)
			return nil, searchErr
		}
	}

	s.Metrics.ObserveUpstream(string(mode), "success", elapsed)
	return &Result{Mode: mode, Data: data}, nil
}

func (s *DefaultSearchService) timeout() time.Duration {
	if s.Timeout <= 0 {
		return DefaultTimeout
	}
	return s.Timeout
}

func (s *DefaultSearchService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
