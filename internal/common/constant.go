// Package common contains shared constants and sentinel errors used across
// SaveBank components.
package common

const (
	// DefaultCollectionPath is the store path holding every save record.
	DefaultCollectionPath = "savedata"

	// FieldSaveString and FieldTimestamp are the keys of a stored record's field map.
	FieldSaveString = "saveString"
	FieldTimestamp  = "timestamp"
)
