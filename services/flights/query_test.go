package flights

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"flightbridge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewQuery_OriginRequired(t *testing.T) {
	for _, origin := range []string{"", "   "} {
		q, err := NewQuery(models.SearchRequest{Origin: origin, Destination: "JFK"})
		assert.Nil(t, q)
		require.Error(t, err)
		assert.True(t, IsKind(err, KindValidation))

		var searchErr *Error
		require.ErrorAs(t, err, &searchErr)
		assert.Equal(t, http.StatusBadRequest, searchErr.Status)
	}
}

func TestNewQuery_ModeSelection(t *testing.T) {
	tests := []struct {
		name string
		req  models.SearchRequest
		want Query
	}{
		{
			name: "destination selects route mode",
			req:  models.SearchRequest{Origin: "GRU", Destination: "JFK", DepartureDate: "2025-06-01", ReturnDate: "2025-06-15"},
			want: RouteQuery{Origin: "GRU", Destination: "JFK", DepartureDate: strPtr("2025-06-01"), ReturnDate: strPtr("2025-06-15")},
		},
		{
			name: "route mode without dates",
			req:  models.SearchRequest{Origin: "GRU", Destination: "JFK"},
			want: RouteQuery{Origin: "GRU", Destination: "JFK"},
		},
		{
			name: "no destination selects exploration",
			req:  models.SearchRequest{Origin: "GRU", DepartureDate: "2025-03-15"},
			want: ExplorationQuery{Origin: "GRU", DepartureDate: strPtr("2025-03-15")},
		},
		{
			name: "exploration ignores return date",
			req:  models.SearchRequest{Origin: "GRU", ReturnDate: "2025-03-20"},
			want: ExplorationQuery{Origin: "GRU"},
		},
		{
			name: "blank destination counts as absent",
			req:  models.SearchRequest{Origin: " GRU ", Destination: "  "},
			want: ExplorationQuery{Origin: "GRU"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuery(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q)
			assert.Equal(t, tt.want.Mode(), q.Mode())
		})
	}
}

func TestRouteQuery_Params(t *testing.T) {
	today := time.Date(2026, time.October, 18, 15, 4, 5, 0, time.UTC)

	t.Run("supplied departure date", func(t *testing.T) {
		params := RouteQuery{Origin: "GRU", Destination: "JFK", DepartureDate: strPtr("2025-06-01")}.Params(today)

		b, err := json.Marshal(params)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"originLocationCode": "GRU",
			"destinationLocationCode": "JFK",
			"departureDate": "2025-06-01",
			"adults": 1,
			"nonStop": false,
			"currencyCode": "BRL",
			"max": 20
		}`, string(b))
		assert.NotContains(t, params.Values(), "returnDate")
	})

	t.Run("defaults to today", func(t *testing.T) {
		params := RouteQuery{Origin: "GRU", Destination: "JFK"}.Params(today)
		assert.Equal(t, "2026-10-18", params.DepartureDate)
	})

	t.Run("return date passed verbatim", func(t *testing.T) {
		params := RouteQuery{Origin: "GRU", Destination: "JFK", ReturnDate: strPtr("15/06/2025")}.Params(today)
		require.NotNil(t, params.ReturnDate)
		assert.Equal(t, "15/06/2025", *params.ReturnDate)
		assert.Equal(t, "15/06/2025", params.Values().Get("returnDate"))
	})
}

func TestExplorationQuery_Params(t *testing.T) {
	t.Run("origin only", func(t *testing.T) {
		params := ExplorationQuery{Origin: "GRU"}.Params()

		b, err := json.Marshal(params)
		require.NoError(t, err)
		assert.JSONEq(t, `{"origin":"GRU","maxPrice":5000}`, string(b))
	})

	tests := map[string]string{
		"2025-03-15": "2025-03",
		"2025-03":    "2025-03",
		"2025":       "2025",
	}
	for in, want := range tests {
		t.Run("departure "+in, func(t *testing.T) {
			params := ExplorationQuery{Origin: "GRU", DepartureDate: strPtr(in)}.Params()
			require.NotNil(t, params.DepartureDate)
			assert.Equal(t, want, *params.DepartureDate)
		})
	}
}

func modelsRequest(origin, destination, departure, ret string) models.SearchRequest {
	return models.SearchRequest{Origin: origin, Destination: destination, DepartureDate: departure, ReturnDate: ret}
}
