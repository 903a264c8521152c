package handler

import (
	"sync"

	"github.com/emzola/libraryportal/config"
	"github.com/emzola/libraryportal/data"
	"github.com/emzola/libraryportal/internal/jsonlog"
	"github.com/emzola/libraryportal/service"
	"github.com/jellydator/ttlcache/v3"
)

// Handler defines Handler layer.
type Handler struct {
	config     config.Config
	logger     *jsonlog.Logger
	cache      *ttlcache.Cache[string, bool]
	credential *data.Credential
	service    service.Service
	done       chan struct{}
	closeOnce  sync.Once
}

// New creates a new instance of Handler. The cache remembers successful basic
// auth verifications so that bcrypt runs once per credential and TTL.
func New(cfg config.Config, logger *jsonlog.Logger, cache *ttlcache.Cache[string, bool], credential *data.Credential, service service.Service) *Handler {
	return &Handler{
		config:     cfg,
		logger:     logger,
		cache:      cache,
		credential: credential,
		service:    service,
		done:       make(chan struct{}),
	}
}

// Close stops the background work started by Routes. It is safe to call more
// than once.
func (h *Handler) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}
