package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"listing-marketplace/internal/logger"
	"listing-marketplace/internal/middleware"
)

func newRequestIDRouter(capture func(c *gin.Context)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/api/v1/listings", func(c *gin.Context) {
		capture(c)
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"generates id when absent", "", false},
		{"reuses client id", "client-provided-id-12345", true},
		{"replaces oversized client id", strings.Repeat("x", 200), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromGin, fromCtx string
			router := newRequestIDRouter(func(c *gin.Context) {
				fromGin = middleware.GetRequestID(c)
				fromCtx = logger.RequestIDFromContext(c.Request.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/listings", nil)
			if tt.header != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			got := w.Header().Get(middleware.RequestIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.Len(t, got, 36)
			}
			assert.Equal(t, got, fromGin)
			assert.Equal(t, got, fromCtx)
		})
	}
}

func TestRequestID_DifferentPerRequest(t *testing.T) {
	var ids []string
	router := newRequestIDRouter(func(c *gin.Context) {
		ids = append(ids, middleware.GetRequestID(c))
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/listings", nil))
	}

	require.Len(t, ids, 3)
	assert.NotEqual(t, ids[0], ids[1])
	assert.NotEqual(t, ids[1], ids[2])
}

func TestGetRequestID_Unset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, middleware.GetRequestID(c))

	c.Set(middleware.RequestIDKey, 12345)
	assert.Empty(t, middleware.GetRequestID(c))
}
