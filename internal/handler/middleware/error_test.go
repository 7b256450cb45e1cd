//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/config"
	"staybook/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	logger := middleware.NewLogger(config.NewTestConfig().Log)
	engine.Use(middleware.CustomRecovery(), logger.LoggingMiddleware(), middleware.ErrorHandler())
	return engine
}

func TestErrorHandler(t *testing.T) {
	t.Run("unknown routes get the JSON envelope", func(t *testing.T) {
		engine := newTestEngine()

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/nope", nil, "")

		body := httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Not Found")
		assert.NotEmpty(t, body.RequestID)
		assert.Equal(t, body.RequestID, rec.Header().Get("X-Request-ID"))
	})

	t.Run("handler that writes nothing becomes a 500", func(t *testing.T) {
		engine := newTestEngine()
		engine.GET("/silent", func(*gin.Context) {})

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/silent", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "")
	})

	t.Run("status-only success replies are flushed", func(t *testing.T) {
		engine := newTestEngine()
		engine.DELETE("/thing", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		rec := httptest.PerformRequest(t, engine, http.MethodDelete, "/thing", nil, "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Zero(t, rec.Body.Len())
	})

	t.Run("panics are recovered", func(t *testing.T) {
		engine := newTestEngine()
		engine.GET("/boom", func(*gin.Context) { panic("boom") })

		rec := httptest.PerformRequest(t, engine, http.MethodGet, "/boom", nil, "")

		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})

	t.Run("caller request id is echoed", func(t *testing.T) {
		engine := newTestEngine()
		engine.GET("/ok", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"id": middleware.GetRequestID(c)}) })

		rec := httptest.PerformRequestWithHeaders(t, engine, http.MethodGet, "/ok", nil, map[string]string{"X-Request-ID": "req-123"})

		assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
		assert.JSONEq(t, `{"id":"req-123"}`, rec.Body.String())
	})
}

func TestCORSMiddleware(t *testing.T) {
	preflight := func(engine *gin.Engine, origin string) map[string]string {
		rec := httptest.PerformRequestWithHeaders(t, engine, http.MethodOptions, "/api/bookings", nil, map[string]string{
			"Origin":                         origin,
			"Access-Control-Request-Method":  http.MethodPost,
			"Access-Control-Request-Headers": "Idempotency-Key",
		})
		return map[string]string{
			"origin":      rec.Header().Get("Access-Control-Allow-Origin"),
			"headers":     rec.Header().Get("Access-Control-Allow-Headers"),
			"credentials": rec.Header().Get("Access-Control-Allow-Credentials"),
		}
	}

	t.Run("idempotency header is always allowed", func(t *testing.T) {
		cfg := config.CORSConfig{
			AllowOrigins:     []string{"https://book.example.com"},
			AllowMethods:     []string{http.MethodGet, http.MethodPost},
			AllowHeaders:     []string{"Content-Type"},
			AllowCredentials: true,
		}
		engine := gin.New()
		engine.Use(middleware.NewCORSMiddleware(cfg))

		got := preflight(engine, "https://book.example.com")

		assert.Equal(t, "https://book.example.com", got["origin"])
		assert.Contains(t, got["headers"], "Idempotency-Key")
		assert.Equal(t, "true", got["credentials"])
	})

	t.Run("wildcard origin drops credentials", func(t *testing.T) {
		cfg := config.CORSConfig{
			AllowOrigins:     []string{"*"},
			AllowMethods:     []string{http.MethodPost},
			AllowCredentials: true,
		}
		engine := gin.New()
		engine.Use(middleware.NewCORSMiddleware(cfg))

		got := preflight(engine, "https://anywhere.example")

		assert.Equal(t, "*", got["origin"])
		assert.Empty(t, got["credentials"])
	})
}
