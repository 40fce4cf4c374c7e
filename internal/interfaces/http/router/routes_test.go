package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interbanking/backend/internal/interfaces/http/handler"
)

func TestInterbankingRoutes(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)
	r.Register(CompanyRoutes(&handler.CompanyHandler{})).
		Register(TransferRoutes(&handler.TransferHandler{})).
		Register(SystemRoutes(handler.NewSystemHandler("interbanking-api", "test"))).
		Setup()

	registered := make(map[string]bool)
	for _, route := range engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /api/v1/companies",
		"GET /api/v1/companies/transfers",
		"GET /api/v1/companies/adhesions",
		"GET /api/v1/companies/:id",
		"POST /api/v1/companies",
		"DELETE /api/v1/companies/:id",
		"GET /api/v1/transfers",
		"GET /api/v1/transfers/:id",
		"POST /api/v1/transfers",
		"DELETE /api/v1/transfers/:id",
		"GET /api/v1/system/info",
		"GET /api/v1/system/ping",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s not registered", route)
	}
	assert.Len(t, engine.Routes(), len(expected))
}

func TestSystemRoutesServe(t *testing.T) {
	engine := gin.New()
	NewRouter(engine).
		Register(SystemRoutes(handler.NewSystemHandler("interbanking-api", "test"))).
		Setup()

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/ping", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}
