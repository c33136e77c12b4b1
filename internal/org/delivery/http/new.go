package http

import (
	"github.com/gin-gonic/gin"

	"missionmind/internal/org"
	"missionmind/pkg/log"
)

// Handler is the public interface for the org HTTP delivery layer.
type Handler interface {
	CreateUnit(c *gin.Context)
	ListUnits(c *gin.Context)
	DetailUnit(c *gin.Context)
	UpdateUnit(c *gin.Context)
	DeactivateUnit(c *gin.Context)
	CreateAuthority(c *gin.Context)
	ListAuthorities(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc org.UseCase
}

// New creates a new HTTP handler for the org domain.
func New(l log.Logger, uc org.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
