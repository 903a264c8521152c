package main

import (
	"os"
	"sync"
	"time"

	"github.com/emzola/libraryportal/config"
	"github.com/emzola/libraryportal/data"
	"github.com/emzola/libraryportal/handler"
	"github.com/emzola/libraryportal/internal/jsonlog"
	"github.com/emzola/libraryportal/repository"
	"github.com/emzola/libraryportal/repository/postgres"
	"github.com/emzola/libraryportal/repository/sqlite"
	"github.com/emzola/libraryportal/service"
	"github.com/jellydator/ttlcache/v3"
	"github.com/jmoiron/sqlx"
)

// app defines the application's layers and shared resources.
type app struct {
	config  config.Config
	logger  *jsonlog.Logger
	db      *sqlx.DB
	wg      *sync.WaitGroup
	repo    repository.Repository
	service service.Service
}

// newApp loads the configuration, opens the database and builds the repository
// and service layers. The caller closes the returned app.
func newApp(configPath string) (*app, error) {
	cfg, err := config.Decode(configPath)
	if err != nil {
		return nil, err
	}
	level, err := jsonlog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := jsonlog.New(os.Stdout, level)

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}
	logger.PrintInfo("database connection pool established", map[string]string{
		"driver": cfg.Database.Driver,
	})
	repo, err := repository.New(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	var wg sync.WaitGroup
	return &app{
		config:  cfg,
		logger:  logger,
		db:      db,
		wg:      &wg,
		repo:    repo,
		service: service.New(cfg, &wg, logger, repo),
	}, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	if cfg.Database.Driver == "sqlite3" {
		return sqlite.OpenDBConn(cfg)
	}
	return postgres.OpenDBConn(cfg)
}

func (a *app) close() {
	a.wg.Wait()
	a.db.Close()
}

func runServe(configPath string) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()
	if a.config.Database.AutoMigrate {
		err = a.repo.Migrate()
		if err != nil {
			return err
		}
		a.logger.PrintInfo("database schema migrated", nil)
	}
	credential, err := data.NewCredential(a.config.BasicAuth.Username, a.config.BasicAuth.Password)
	if err != nil {
		return err
	}
	cache := ttlcache.New(ttlcache.WithTTL[string, bool](30 * time.Minute))
	go cache.Start()
	defer cache.Stop()
	h := handler.New(a.config, a.logger, cache, credential, a.service)
	defer h.Close()
	return a.serve(h)
}

func runMigrate(configPath string) error {
	a, err := newApp(configPath)
	if err != nil {
		return err
	}
	defer a.close()
	err = a.repo.Migrate()
	if err != nil {
		return err
	}
	a.logger.PrintInfo("database schema migrated", nil)
	return nil
}

func runExport(configPath string) (string, error) {
	a, err := newApp(configPath)
	if err != nil {
		return "", err
	}
	defer a.close()
	return a.service.ExportCatalog()
}
