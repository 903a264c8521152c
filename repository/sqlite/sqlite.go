// Package sqlite opens the embedded SQLite store used for local runs and tests.
package sqlite

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/emzola/libraryportal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// OpenDBConn opens the SQLite database named by the configured DSN.
func OpenDBConn(cfg config.Config) (*sqlx.DB, error) {
	return Open(cfg.Database.DSN)
}

// Open opens (or creates) a SQLite database. A plain file path gets busy
// timeout and foreign keys enabled; a "file:" DSN is used as given.
func Open(path string) (*sqlx.DB, error) {
	dsn := path
	if !strings.HasPrefix(path, "file:") && path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			err := os.MkdirAll(dir, 0o755)
			if err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		dsn = fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", path)
	}
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err = db.PingContext(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
