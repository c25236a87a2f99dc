package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generates request ID when missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		requestID := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, requestID)
		assert.Len(t, requestID, 36)
		assert.Equal(t, requestID, w.Body.String())
	})

	t.Run("preserves client request ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "test-request-id-123")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, "test-request-id-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "test-request-id-123", w.Body.String())
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))
}

func TestNewRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(NewRateLimitMiddleware(3, time.Minute))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 3; i++ {
		w := send("192.0.2.10:1234")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}

	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.10:1234").Code)

	// A different client has its own budget
	assert.Equal(t, http.StatusOK, send("192.0.2.11:1234").Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	router := gin.New()
	router.Use(RequestID(), RequestLogger(logger, "/health"))
	router.GET("/hello/:name", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	router.POST("/hello", func(c *gin.Context) {
		c.Status(http.StatusBadRequest)
	})
	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("logs successful request at info", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/hello/Ozge", nil)
		req.Header.Set(RequestIDHeader, "req-1")
		router.ServeHTTP(httptest.NewRecorder(), req)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "request", entry["msg"])
		assert.Equal(t, "GET", entry["method"])
		assert.Equal(t, "/hello/Ozge", entry["path"])
		assert.Equal(t, float64(http.StatusOK), entry["status"])
		assert.Equal(t, "req-1", entry["request_id"])
	})

	t.Run("logs client errors at warn", func(t *testing.T) {
		buf.Reset()
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/hello", nil))

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, float64(http.StatusBadRequest), entry["status"])
	})

	t.Run("skips configured paths", func(t *testing.T) {
		buf.Reset()
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Empty(t, buf.String())
	})
}
