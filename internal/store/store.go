// Package store describes the append-only keyed store that holds save
// records, independent of the backend serving it.
//
// A store keeps children under slash-separated paths. Each child has a
// store-generated key and a field map. Children are never updated or
// removed once pushed.
//
// Implementations:
//
//   - memory.Store: process-local, used by tests and -store memory
//   - savedata.SQLiteRepository (client): embedded sqlite database
//   - savedata.PostgresRepository (server): PostgreSQL via pgx
//   - savedata.S3Repository (server): one JSON object per child
//   - client.GRPCClient: remote store server
package store

import (
	"context"
	"strings"
)

// Fields is the stored field map of a single child.
type Fields map[string]any

// Child is one entry of a snapshot: the generated key and the stored fields.
type Child struct {
	Key   string
	Value Fields
}

// Store is the collaborator the save and retrieve services talk to.
type Store interface {
	// Push appends fields under path and returns the generated key.
	Push(ctx context.Context, path string, fields Fields) (string, error)

	// Get reads every child matched by q.
	Get(ctx context.Context, q Query) (*Snapshot, error)
}

// Query selects all children under Path, ordered ascending by the OrderBy
// child field. An empty OrderBy orders by key.
type Query struct {
	Path    string
	OrderBy string
}

// NewQuery returns a key-ordered query over path.
func NewQuery(path string) Query {
	return Query{Path: strings.Trim(path, "/")}
}

// OrderByChild returns a copy of q ordered by the named child field.
func (q Query) OrderByChild(field string) Query {
	q.OrderBy = field
	return q
}

// Snapshot is a point-in-time read result.
type Snapshot struct {
	children []Child
}

// NewSnapshot sorts children according to q and wraps them.
func NewSnapshot(q Query, children []Child) *Snapshot {
	SortByChild(children, q.OrderBy)
	return &Snapshot{children: children}
}

// Exists reports whether the snapshot holds at least one child.
func (s *Snapshot) Exists() bool {
	return s != nil && len(s.children) > 0
}

// Len returns the number of children.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.children)
}

// ForEach calls fn for each child in query order. Iteration stops early
// when fn returns true.
func (s *Snapshot) ForEach(fn func(c Child) (stop bool)) {
	if s == nil {
		return
	}
	for _, c := range s.children {
		if fn(c) {
			return
		}
	}
}
