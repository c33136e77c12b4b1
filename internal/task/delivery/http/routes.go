package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/assignments", h.AddAssignment)
		tasks.POST("/:id/comments", h.AddComment)
		tasks.GET("/:id/comments", h.ListComments)
		tasks.GET("/:id/summary", h.Summary)
		tasks.GET("/:id/authority-suggestions", h.AuthoritySuggestions)
		tasks.GET("/:id/risk", h.Risk)
		tasks.GET("/:id/quality-check", h.QualityCheck)
	}
}
