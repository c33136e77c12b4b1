package http

import (
	"github.com/gin-gonic/gin"

	"missionmind/internal/task"
	"missionmind/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	AddAssignment(c *gin.Context)
	AddComment(c *gin.Context)
	ListComments(c *gin.Context)
	Summary(c *gin.Context)
	AuthoritySuggestions(c *gin.Context)
	Risk(c *gin.Context)
	QualityCheck(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
