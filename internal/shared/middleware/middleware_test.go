package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allowed, s.err
}

func newEngine(middlewares ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middlewares...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id"), "ip": c.GetString("client_ip")})
	})
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		limiter    *stubLimiter
		wantStatus int
	}{
		{"allowed", &stubLimiter{allowed: true}, http.StatusOK},
		{"denied", &stubLimiter{allowed: false}, http.StatusTooManyRequests},
		{"limiter failure lets requests through", &stubLimiter{err: errors.New("redis down")}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newEngine(ClientIPMiddleware(), RateLimit(tt.limiter))

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
			w := serve(router, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, []string{"203.0.113.7"}, tt.limiter.keys)
		})
	}
}

func TestRateLimit_DeniedEnvelope(t *testing.T) {
	router := newEngine(RateLimit(&stubLimiter{allowed: false}))

	w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many requests, please slow down","code":429}`, w.Body.String())
}

func TestRequestID_Generated(t *testing.T) {
	router := newEngine(RequestID())

	w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, id, body["request_id"])
}

func TestRequestID_Propagated(t *testing.T) {
	router := newEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := serve(router, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	router := newEngine(Recovery(), RequestID(), Logger())

	w := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error","code":500}`, w.Body.String())
}

func TestMetricsAndLogger_PassThrough(t *testing.T) {
	router := newEngine(ClientIPMiddleware(), Logger(), Metrics())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.0.2.10:51234"
	w := serve(router, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "192.0.2.10", body["ip"])

	assert.Equal(t, http.StatusNotFound, serve(router, httptest.NewRequest(http.MethodGet, "/missing", nil)).Code)
}
