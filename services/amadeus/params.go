package amadeus

import (
	"net/url"
	"strconv"
)

// OfferSearchParams are the query parameters of GET /v2/shopping/flight-offers.
// Pointer fields are sent only when set.
type OfferSearchParams struct {
	OriginLocationCode      string  `json:"originLocationCode"`
	DestinationLocationCode string  `json:"destinationLocationCode"`
	DepartureDate           string  `json:"departureDate"`
	ReturnDate              *string `json:"returnDate,omitempty"`
	Adults                  int     `json:"adults"`
	NonStop                 bool    `json:"nonStop"`
	CurrencyCode            string  `json:"currencyCode"`
	Max                     int     `json:"max"`
}

func (p OfferSearchParams) Values() url.Values {
	v := url.Values{}
	v.Set("originLocationCode", p.OriginLocationCode)
	v.Set("destinationLocationCode", p.DestinationLocationCode)
	v.Set("departureDate", p.DepartureDate)
	if p.ReturnDate != nil {
		v.Set("returnDate", *p.ReturnDate)
	}
	v.Set("adults", strconv.Itoa(p.Adults))
	v.Set("nonStop", strconv.FormatBool(p.NonStop))
	v.Set("currencyCode", p.CurrencyCode)
	v.Set("max", strconv.Itoa(p.Max))
	return v
}

// DestinationSearchParams are the query parameters of
// GET /v1/shopping/flight-destinations. DepartureDate is month or day granular.
type DestinationSearchParams struct {
	Origin        string  `json:"origin"`
	MaxPrice      int     `json:"maxPrice"`
	DepartureDate *string `json:"departureDate,omitempty"`
}

func (p DestinationSearchParams) Values() url.Values {
	v := url.Values{}
	v.Set("origin", p.Origin)
	v.Set("maxPrice", strconv.Itoa(p.MaxPrice))
	if p.DepartureDate != nil {
		v.Set("departureDate", *p.DepartureDate)
	}
	return v
}
