// Package repomanager wires the server's save data backends: it vends
// PostgreSQL repositories, runs their goose migrations, and opens whichever
// backend the configuration selects.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/savebank/internal/dbx"
	"github.com/dmitrijs2005/savebank/internal/server/migrations"
	"github.com/dmitrijs2005/savebank/internal/server/repositories/savedata"
	"github.com/dmitrijs2005/savebank/internal/store"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and exposes
// a schema migration hook.
type PostgresRepositoryManager struct{}

// SaveData returns a store bound to the provided DBTX.
func (m *PostgresRepositoryManager) SaveData(db dbx.DBTX) store.Store {
	return savedata.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
