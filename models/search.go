// models/search.go
package models

// SearchRequest is the query string accepted by GET /api/search-flights.
type SearchRequest struct {
	Origin        string `form:"origin" json:"origin"`
	Destination   string `form:"destination" json:"destination,omitempty"`
	DepartureDate string `form:"departureDate" json:"departureDate,omitempty"`
	ReturnDate    string `form:"returnDate" json:"returnDate,omitempty"`
}

// OfferSummary is the trimmed offer shape returned when RESULT_SHAPE=legacy.
// Deprecated: clients should consume the full upstream offer records.
type OfferSummary struct {
	ID      string `json:"id"`
	Price   string `json:"price"`
	Airline string `json:"airline"`
}

// ErrorEnvelope is the body of every non-2xx response.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
