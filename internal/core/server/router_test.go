package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func init() { gin.SetMode(gin.TestMode) }

func TestNewRouter_AccessLogCarriesRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := NewRouter(zap.New(core), Options{SkipLogPaths: []string{"/health"}})
	r.GET("/x", func(c *gin.Context) {
		c.Set(KeyRequestID, "rid-42")
		c.Status(http.StatusNoContent)
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "rid-42", entries[0].ContextMap()["rid"])
}

func TestNewRouter_CORS(t *testing.T) {
	r := NewRouter(zap.NewNop(), Options{CORSOrigins: []string{"https://app.example.com"}})
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://app.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, strings.ToLower(w.Header().Get("Access-Control-Expose-Headers")), strings.ToLower(KeyRequestID))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddr(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8000", Addr("0.0.0.0", 8000))
}
