package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/savebank/internal/dbx"
	"github.com/dmitrijs2005/savebank/internal/store"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	SaveData(db dbx.DBTX) store.Store
}
