package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"flightbridge/handlers"
	"flightbridge/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(origins []string) *gin.Engine {
	r := gin.New()
	RegisterRoutes(r, &handlers.HandlerBundle{
		Metrics:        metrics.New(),
		AllowedOrigins: origins,
		SearchFlightsHandler: func(c *gin.Context) {
			c.JSON(http.StatusOK, []string{})
		},
	})
	return r
}

func request(r http.Handler, method, path, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	if method == http.MethodOptions {
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_PermissiveByDefault(t *testing.T) {
	r := newEngine(nil)

	w := request(r, http.MethodGet, "/api/search-flights?origin=GRU", "https://anything.example")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_AllowList(t *testing.T) {
	r := newEngine([]string{"https://app.example.com"})

	allowed := request(r, http.MethodGet, "/api/search-flights?origin=GRU", "https://app.example.com")
	assert.Equal(t, http.StatusOK, allowed.Code)
	assert.Equal(t, "https://app.example.com", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := request(r, http.MethodGet, "/api/search-flights?origin=GRU", "https://evil.example")
	assert.Equal(t, http.StatusForbidden, denied.Code)
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))

	preflight := request(r, http.MethodOptions, "/api/search-flights", "https://app.example.com")
	assert.Less(t, preflight.Code, 300)
	assert.Equal(t, "https://app.example.com", preflight.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSConfig_Wildcard(t *testing.T) {
	cfg := CORSConfig([]string{"https://a.example", "*"})
	assert.True(t, cfg.AllowAllOrigins)
	assert.Empty(t, cfg.AllowOrigins)
	require.NoError(t, cfg.Validate())
}

func TestHealthAndMetrics(t *testing.T) {
	r := newEngine(nil)

	health := request(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status":"ok"}`, health.Body.String())

	request(r, http.MethodGet, "/api/search-flights?origin=GRU", "")
	m := request(r, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, m.Code)
	assert.Contains(t, m.Body.String(), `flightbridge_http_requests_total{method="GET",route="/api/search-flights",status="200"} 1`)
}
