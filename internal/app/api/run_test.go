package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, vars map[string]string) http.Handler {
	t.Helper()
	base := map[string]string{"GIN_MODE": "test", "OTEL_TRACES_EXPORTER": "none"}
	for k, v := range vars {
		base[k] = v
	}
	cfg, err := parseFrom(base)
	require.NoError(t, err)
	handler, err := NewHandler(context.Background(), cfg, nil)
	require.NoError(t, err)
	return handler
}

func serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestNewHandler_ServesEverySurface(t *testing.T) {
	handler := newTestHandler(t, map[string]string{"VERSION": "v2.0.0"})

	for path, contains := range map[string]string{
		"/health":                   `"status":"healthy"`,
		"/version":                  `"version":"v2.0.0"`,
		"/pets":                     `"available_pets"`,
		"/pets/dog/names?count=2":   `"count":2`,
		"/pets/cat/random":          `"pet_type":"cat"`,
		"/pets/bird/facts":          `"total_facts":5`,
		"/pets/fish/facts/random":   `"pet_type":"fish"`,
		"/facts":                    `"total_facts":25`,
		"/facts/random":             `"fact"`,
		"/":                         "<html",
		"/static/styles.css":        "--accent",
	} {
		rec := serve(handler, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), contains, path)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"), path)
	}

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pet_name_generator_http_requests_total")
}

func TestNewHandler_MetricsCanBeDisabled(t *testing.T) {
	handler := newTestHandler(t, map[string]string{"METRICS_ENABLED": "false"})

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewHandler_CORS(t *testing.T) {
	handler := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/pets", nil)
	req.Header.Set("Origin", "https://frontend.example")
	rec := serve(handler, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	restricted := newTestHandler(t, map[string]string{"CORS_ALLOWED_ORIGINS": "https://only.example"})
	req = httptest.NewRequest(http.MethodGet, "/pets", nil)
	req.Header.Set("Origin", "https://elsewhere.example")
	rec = serve(restricted, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_SeededDrawsAreReproducible(t *testing.T) {
	draw := func() []string {
		handler := newTestHandler(t, map[string]string{"RANDOM_SEED": "1234"})
		rec := serve(handler, httptest.NewRequest(http.MethodGet, "/pets/dog/names?count=5", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Names []string `json:"names"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		return body.Names
	}

	assert.Equal(t, draw(), draw())
}

func TestNewHandler_UnreachableDatabaseFallsBack(t *testing.T) {
	handler := newTestHandler(t, map[string]string{
		"POSTGRES_DSN": "host=127.0.0.1 port=1 user=pets dbname=pets sslmode=disable connect_timeout=1",
	})

	rec := serve(handler, httptest.NewRequest(http.MethodGet, "/pets/dog/names?count=3&random_selection=false", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `["Buddy","Max","Charlie"]`)
}
