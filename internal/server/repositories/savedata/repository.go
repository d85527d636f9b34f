// Package savedata provides the server-side persistence backends for save
// data: PostgreSQL and S3-compatible object storage. Both implement
// store.Store and are append-only.
package savedata

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/savebank/internal/store"
)

var (
	_ store.Store = (*PostgresRepository)(nil)
	_ store.Store = (*S3Repository)(nil)
)

func encodeFields(fields store.Fields) ([]byte, error) {
	b, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	return b, nil
}

func decodeFields(b []byte) (store.Fields, error) {
	var f store.Fields
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return f, nil
}
