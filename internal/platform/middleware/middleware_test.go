package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(logs *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), AccessLog(slog.New(slog.NewJSONHandler(logs, nil))))
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFrom(c.Request.Context()))
	})
	return router
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	logs := &bytes.Buffer{}
	rec := httptest.NewRecorder()
	newRouter(logs).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	header := rec.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, header, rec.Body.String())
	assert.Contains(t, logs.String(), header)
}

func TestRequestID_ReusesInboundHeader(t *testing.T) {
	logs := &bytes.Buffer{}
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()
	newRouter(logs).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
	assert.Equal(t, "abc-123", rec.Body.String())
}

func TestAccessLog_WarnsOnClientErrors(t *testing.T) {
	logs := &bytes.Buffer{}
	rec := httptest.NewRecorder()
	newRouter(logs).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"status":404`)
}
