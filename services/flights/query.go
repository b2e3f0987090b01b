package flights

import (
	"strings"
	"time"

	"flightbridge/models"
	"flightbridge/services/amadeus"
)

// Fixed upstream parameters.
const (
	DefaultAdults   = 1
	DefaultCurrency = "BRL"
	MaxOffers       = 20
	MaxPrice        = 5000

	dateLayout  = "2006-01-02"
	monthLength = len("2006-01")
)

type Mode string

const (
	ModeRoute       Mode = "route"
	ModeExploration Mode = "exploration"
)

// Query is either a RouteQuery or an ExplorationQuery.
type Query interface {
	Mode() Mode
	isQuery()
}

// RouteQuery asks for fare offers between two airports.
type RouteQuery struct {
	Origin        string
	Destination   string
	DepartureDate *string
	ReturnDate    *string
}

func (RouteQuery) Mode() Mode { return ModeRoute }
func (RouteQuery) isQuery()   {}

// Params builds the offer search; a missing departure date becomes today.
func (q RouteQuery) Params(today time.Time) amadeus.OfferSearchParams {
	departure := today.Format(dateLayout)
	if q.DepartureDate != nil {
		departure = *q.DepartureDate
	}
	return amadeus.OfferSearchParams{
		OriginLocationCode:      q.Origin,
		DestinationLocationCode: q.Destination,
		DepartureDate:           departure,
		ReturnDate:              q.ReturnDate,
		Adults:                  DefaultAdults,
		NonStop:                 false,
		CurrencyCode:            DefaultCurrency,
		Max:                     MaxOffers,
	}
}

// ExplorationQuery asks for destinations reachable from Origin under MaxPrice.
type ExplorationQuery struct {
	Origin        string
	DepartureDate *string
}

func (ExplorationQuery) Mode() Mode { return ModeExploration }
func (ExplorationQuery) isQuery()   {}

// Params builds the destination search. The endpoint only accepts month
// granularity, so a full date is cut down to YYYY-MM.
func (q ExplorationQuery) Params() amadeus.DestinationSearchParams {
	params := amadeus.DestinationSearchParams{
		Origin:   q.Origin,
		MaxPrice: MaxPrice,
	}
	if q.DepartureDate != nil {
		month := *q.DepartureDate
		if len(month) > monthLength {
			month = month[:monthLength]
		}
		params.DepartureDate = &month
	}
	return params
}

// NewQuery validates req and picks the query mode: a destination selects
// route mode, its absence exploration mode.
func NewQuery(req models.SearchRequest) (Query, error) {
	origin := strings.TrimSpace(req.Origin)
	if origin == "" {
		return nil, newValidationError("origin is required")
	}

	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		return ExplorationQuery{
			Origin:        origin,
			DepartureDate: optional(req.DepartureDate),
		}, nil
	}

	return RouteQuery{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: optional(req.DepartureDate),
		ReturnDate:    optional(req.ReturnDate),
	}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
