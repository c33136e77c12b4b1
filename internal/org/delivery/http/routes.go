package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	units := rg.Group("/org-units")
	{
		units.POST("", h.CreateUnit)
		units.GET("", h.ListUnits)
		units.GET("/:id", h.DetailUnit)
		units.PUT("/:id", h.UpdateUnit)
		units.DELETE("/:id", h.DeactivateUnit)
		units.POST("/:id/authorities", h.CreateAuthority)
		units.GET("/:id/authorities", h.ListAuthorities)
	}
}
