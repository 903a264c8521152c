package repository

import (
	"context"
	"embed"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/jmoiron/sqlx"
)

const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite3"

	queryTimeout = 3 * time.Second
	txTimeout    = 10 * time.Second
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type Repository interface {
	books
	borrowers
	// WithTx runs fn against a repository bound to a single transaction. The
	// transaction is committed when fn returns nil and rolled back otherwise.
	WithTx(fn func(repo Repository) error) error
	// Migrate creates the schema if it does not exist yet.
	Migrate() error
}

// dbtx is satisfied by both *sqlx.DB and *sqlx.Tx.
type dbtx interface {
	sqlx.ExtContext
}

// repository defines the app's repository layer.
type repository struct {
	db      dbtx
	dialect string
}

// New creates a new instance of Repository. The SQL dialect follows the driver
// the connection pool was opened with.
func New(db *sqlx.DB) (*repository, error) {
	var dialect string
	switch db.DriverName() {
	case "postgres", "pgx":
		dialect = dialectPostgres
	case "sqlite3":
		dialect = dialectSQLite
	default:
		return nil, fmt.Errorf("repository: unsupported driver %q", db.DriverName())
	}
	return &repository{db: db, dialect: dialect}, nil
}

func (r *repository) builder() goqu.DialectWrapper {
	return goqu.Dialect(r.dialect)
}

// WithTx starts a transaction unless the repository is already bound to one, in
// which case fn joins it.
func (r *repository) WithTx(fn func(repo Repository) error) error {
	db, ok := r.db.(*sqlx.DB)
	if !ok {
		return fn(r)
	}
	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
	defer cancel()
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	err = fn(&repository{db: tx, dialect: r.dialect})
	if err != nil {
		return err
	}
	return tx.Commit()
}

// Migrate executes the embedded schema for the repository's dialect.
func (r *repository) Migrate() error {
	schema, err := migrationsFS.ReadFile("migrations/" + r.dialect + ".sql")
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
	defer cancel()
	for _, stmt := range strings.Split(string(schema), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		_, err = r.db.ExecContext(ctx, stmt)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// insert executes an insert statement and returns the generated id. Postgres
// drivers don't report LastInsertId so the id is read back with RETURNING.
func (r *repository) insert(ds *goqu.InsertDataset) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	if r.dialect == dialectPostgres {
		query, args, err := ds.Returning("id").ToSQL()
		if err != nil {
			return 0, err
		}
		var id int64
		err = sqlx.GetContext(ctx, r.db, &id, query, args...)
		if err != nil {
			return 0, normalizeError(err)
		}
		return id, nil
	}
	query, args, err := ds.ToSQL()
	if err != nil {
		return 0, err
	}
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, normalizeError(err)
	}
	return result.LastInsertId()
}

// exec executes a statement and returns the number of affected rows.
func (r *repository) exec(query string, args []interface{}) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, normalizeError(err)
	}
	return result.RowsAffected()
}
