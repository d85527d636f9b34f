// Package savedata provides the client-side embedded store: save data kept
// in a local SQLite database through a dbx.DBTX (either *sql.DB or *sql.Tx).
//
// Children are rows of the savedata table keyed by path and key, with the
// field map stored as JSON text. The table is created by the goose
// migrations in internal/client/migrations (see client.InitDatabase).
//
// Typical Usage
//
//	db, _ := client.InitDatabase(ctx, "savebank.db")
//	repo := savedata.NewSQLiteRepository(db)
//	key, _ := repo.Push(ctx, "savedata", fields)
//	snap, _ := repo.Get(ctx, store.NewQuery("savedata").OrderByChild("timestamp"))
package savedata

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/savebank/internal/dbx"
	"github.com/dmitrijs2005/savebank/internal/store"
)

var _ store.Store = (*SQLiteRepository)(nil)

// SQLiteRepository implements store.Store using a DBTX.
type SQLiteRepository struct {
	db     dbx.DBTX
	newKey func() (string, error)
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, newKey: store.NewKey}
}

// Push inserts fields under path with a fresh key.
func (r *SQLiteRepository) Push(ctx context.Context, path string, fields store.Fields) (string, error) {
	if err := store.ValidatePath(path); err != nil {
		return "", err
	}
	if err := store.ValidateFields(fields); err != nil {
		return "", err
	}

	b, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("encode fields: %w", err)
	}

	key, err := r.newKey()
	if err != nil {
		return "", fmt.Errorf("key generation: %w", err)
	}

	query := `INSERT INTO savedata (key, path, fields) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, key, strings.Trim(path, "/"), string(b)); err != nil {
		return "", fmt.Errorf("failed to insert savedata: %w", err)
	}
	return key, nil
}

// Get returns all children under q.Path ordered by q.OrderBy.
func (r *SQLiteRepository) Get(ctx context.Context, q store.Query) (*store.Snapshot, error) {
	if err := store.ValidatePath(q.Path); err != nil {
		return nil, err
	}

	query := `SELECT key, fields FROM savedata WHERE path = ? ORDER BY key`
	rows, err := r.db.QueryContext(ctx, query, strings.Trim(q.Path, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to select savedata: %w", err)
	}
	defer rows.Close()

	var children []store.Child
	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, err
		}
		var fields store.Fields
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return nil, fmt.Errorf("child %s: decode fields: %w", key, err)
		}
		children = append(children, store.Child{Key: key, Value: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return store.NewSnapshot(q, children), nil
}
