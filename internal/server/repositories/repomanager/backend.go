package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/savebank/internal/server/config"
	"github.com/dmitrijs2005/savebank/internal/server/repositories/savedata"
	"github.com/dmitrijs2005/savebank/internal/store"
	"github.com/dmitrijs2005/savebank/internal/store/memory"
)

var openDB = func(driver, dsn string) (*sql.DB, error) {
	return sql.Open(driver, dsn)
}

var newS3Client = func(ctx context.Context, opts savedata.S3Options) (savedata.S3API, error) {
	return savedata.NewS3Client(ctx, opts)
}

// Backend is an opened store together with the function releasing it.
type Backend struct {
	Store store.Store
	Close func() error
}

func nopClose() error { return nil }

// Open builds the store selected by cfg.Backend. PostgreSQL connections are
// verified and migrated before use.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return &Backend{Store: memory.New(), Close: nopClose}, nil

	case config.BackendS3:
		client, err := newS3Client(ctx, savedata.S3Options{
			Region:       cfg.S3Region,
			AccessKey:    cfg.S3RootUser,
			SecretKey:    cfg.S3RootPassword,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
		return &Backend{Store: savedata.NewS3Repository(client, cfg.S3Bucket), Close: nopClose}, nil

	case config.BackendPostgres:
		db, err := openDB("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db open error: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db ping error: %w", err)
		}
		m := NewPostgresRepositoryManager()
		if err := m.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrations error: %w", err)
		}
		return &Backend{Store: m.SaveData(db), Close: db.Close}, nil

	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}
