package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"resource-manager-backend/internal/api/middleware"
	"resource-manager-backend/internal/config"
	"resource-manager-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(handlers...)
	return router
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRequestID(t *testing.T) {
	router := newRouter(middleware.RequestID())
	var seen string
	router.GET("/", func(c *gin.Context) {
		seen, _ = c.Request.Context().Value(logger.RequestIDKey).(string)
		c.Status(http.StatusNoContent)
	})

	t.Run("Generated", func(t *testing.T) {
		recorder := serve(router, httptest.NewRequest(http.MethodGet, "/", nil))

		id := recorder.Header().Get(middleware.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, seen)
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")

		recorder := serve(router, req)

		assert.Equal(t, "abc-123", recorder.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "abc-123", seen)
	})
}

func TestRecovery(t *testing.T) {
	router := newRouter(middleware.Recovery())
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, recorder.Body.String())
}

func TestLoggerPassesThrough(t *testing.T) {
	router := newRouter(middleware.RequestID(), middleware.Logger())
	router.GET("/missing", func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "nope"}) })

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := newRouter(middleware.CORS(cfg))
	router.GET("/api/data", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("AllowedOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/data", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)

		recorder := serve(router, req)

		require.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("ForeignOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
		req.Header.Set("Origin", "http://evil.example")

		recorder := serve(router, req)

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	router := newRouter(middleware.Metrics())
	router.GET("/api/projects/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/api/projects/7", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = serve(router, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
