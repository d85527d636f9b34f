package store

import "github.com/google/uuid"

// NewKey returns a new child key. Keys are UUIDv7 strings, so keys generated
// later sort after earlier ones.
func NewKey() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
