package service

import (
	"sync"

	"github.com/emzola/libraryportal/config"
	"github.com/emzola/libraryportal/internal/jsonlog"
	"github.com/emzola/libraryportal/repository"
)

type Service interface {
	books
	borrowers
	catalog
}

// service defines the app's service layer.
type service struct {
	config config.Config
	wg     *sync.WaitGroup
	logger *jsonlog.Logger
	repo   repository.Repository
}

// New creates a new instance of Service. Background tasks are tracked on wg so
// the caller can wait for them during shutdown.
func New(cfg config.Config, wg *sync.WaitGroup, logger *jsonlog.Logger, repo repository.Repository) *service {
	return &service{
		config: cfg,
		wg:     wg,
		logger: logger,
		repo:   repo,
	}
}
