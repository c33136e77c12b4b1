package usecase

import (
	"missionmind/internal/engine"
	"missionmind/internal/task/repository"
	"missionmind/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo repository.Repository
	eng  *engine.Engine
	l    log.Logger
}

// New creates a new task UseCase implementation. All derived fields (priority
// score, generated assignment, insight reads) go through eng.
func New(repo repository.Repository, eng *engine.Engine, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		eng:  eng,
		l:    l,
	}
}
