package usecase

import (
	"missionmind/internal/org/repository"
	"missionmind/pkg/log"
)

// implUseCase is the private implementation of org.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new org UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
