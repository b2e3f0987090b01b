package flights

import (
	"encoding/json"

	"flightbridge/models"
)

type offerRecord struct {
	ID    string `json:"id"`
	Price struct {
		Total string `json:"total"`
	} `json:"price"`
	ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
}

// summarizeOffers reduces offers to {id, price, airline}. Kept for clients of
// the first API revision.
func summarizeOffers(data json.RawMessage) (json.RawMessage, error) {
	var offers []offerRecord
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, err
	}

	summaries := make([]models.OfferSummary, 0, len(offers))
	for _, o := range offers {
		s := models.OfferSummary{ID: o.ID, Price: o.Price.Total}
		if len(o.ValidatingAirlineCodes) > 0 {
			s.Airline = o.ValidatingAirlineCodes[0]
		}
		summaries = append(summaries, s)
	}
	return json.Marshal(summaries)
}
