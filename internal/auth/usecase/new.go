package usecase

import (
	"samaritans-api/internal/auth/repository"
	"samaritans-api/pkg/log"
	"samaritans-api/pkg/scope"
)

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo    repository.Repository
	session scope.Manager
	l       log.Logger
}

// New creates a new auth UseCase implementation.
func New(repo repository.Repository, session scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		session: session,
		l:       l,
	}
}
