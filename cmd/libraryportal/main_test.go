package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/emzola/libraryportal/repository"
	"github.com/emzola/libraryportal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dbPath string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	contents := "log:\n  level: \"off\"\ndatabase:\n  driver: sqlite3\n  dsn: " + dbPath + "\nbasic_auth:\n  password: s3cret-pass\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	path := writeConfig(t, filepath.Join(t.TempDir(), "library.db"))
	out, err := execute(t, "config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "driver: sqlite3")
	assert.NotContains(t, out, "s3cret-pass")
}

func TestMigrateCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "library.db")
	path := writeConfig(t, dbPath)
	_, err := execute(t, "migrate", "--config", path)
	require.NoError(t, err)

	db, err := sqlite.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()
	repo, err := repository.New(db)
	require.NoError(t, err)
	books, err := repo.GetAllBooks()
	require.NoError(t, err)
	assert.Empty(t, books)
}

func TestExportRequiresStorage(t *testing.T) {
	path := writeConfig(t, filepath.Join(t.TempDir(), "library.db"))
	_, err := execute(t, "export", "--config", path)
	assert.ErrorContains(t, err, "object storage is not configured")
}
