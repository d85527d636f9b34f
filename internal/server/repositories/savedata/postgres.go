package savedata

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/savebank/internal/dbx"
	"github.com/dmitrijs2005/savebank/internal/store"
)

// PostgresRepository stores children in the savedata table over a dbx.DBTX
// (*sql.DB or *sql.Tx). Fields are kept as JSONB.
type PostgresRepository struct {
	db     dbx.DBTX
	newKey func() (string, error)
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db, newKey: store.NewKey}
}

// Push inserts a new row with a freshly generated key and returns the key.
func (r *PostgresRepository) Push(ctx context.Context, path string, fields store.Fields) (string, error) {
	if err := store.ValidatePath(path); err != nil {
		return "", err
	}
	if err := store.ValidateFields(fields); err != nil {
		return "", err
	}

	b, err := encodeFields(fields)
	if err != nil {
		return "", err
	}

	key, err := r.newKey()
	if err != nil {
		return "", fmt.Errorf("key generation: %w", err)
	}

	query := `INSERT INTO savedata (key, path, fields) VALUES ($1, $2, $3)`
	res, err := r.db.ExecContext(ctx, query, key, strings.Trim(path, "/"), string(b))
	if err != nil {
		return "", fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return "", fmt.Errorf("unexpected rows affected: %d", n)
	}
	return key, nil
}

// Get selects every child under q.Path. Rows come back in key order and are
// then sorted by q.OrderBy with the store ordering rules, which SQL cannot
// express across mixed JSON types.
func (r *PostgresRepository) Get(ctx context.Context, q store.Query) (*store.Snapshot, error) {
	if err := store.ValidatePath(q.Path); err != nil {
		return nil, err
	}

	query := `SELECT key, fields FROM savedata WHERE path = $1 ORDER BY key`
	rows, err := r.db.QueryContext(ctx, query, strings.Trim(q.Path, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to select savedata: %w", err)
	}
	defer rows.Close()

	var children []store.Child
	for rows.Next() {
		var (
			key string
			raw []byte
		)
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, err
		}
		fields, err := decodeFields(raw)
		if err != nil {
			return nil, fmt.Errorf("child %s: %w", key, err)
		}
		children = append(children, store.Child{Key: key, Value: fields})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return store.NewSnapshot(q, children), nil
}
