package router

import (
	"github.com/interbanking/backend/internal/interfaces/http/handler"
)

// CompanyRoutes maps the company endpoints. Static segments are registered
// next to /:id; gin resolves them before the parameter.
func CompanyRoutes(h *handler.CompanyHandler) *DomainGroup {
	g := NewDomainGroup("companies", "/companies")
	g.GET("", h.List).
		GET("/transfers", h.ListWithTransfers).
		GET("/adhesions", h.ListRecentAdhesions).
		GET("/:id", h.GetByID).
		POST("", h.Create).
		DELETE("/:id", h.Delete)
	return g
}

// TransferRoutes maps the transfer endpoints
func TransferRoutes(h *handler.TransferHandler) *DomainGroup {
	g := NewDomainGroup("transfers", "/transfers")
	g.GET("", h.List).
		GET("/:id", h.GetByID).
		POST("", h.Create).
		DELETE("/:id", h.Delete)
	return g
}

// SystemRoutes maps the service information endpoints
func SystemRoutes(h *handler.SystemHandler) *DomainGroup {
	g := NewDomainGroup("system", "/system")
	g.GET("/info", h.GetSystemInfo).
		GET("/ping", h.Ping)
	return g
}
