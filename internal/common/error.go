// Package common defines shared constants and sentinel errors used across
// client and server layers of SaveBank. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Validation errors. Local, never reach the store.
	ErrEmptySaveString = errors.New("save file string is empty")
	ErrInvalidPath     = errors.New("invalid path")
	ErrInvalidValue    = errors.New("invalid value")

	// Store errors, surfaced to the user with the underlying message.
	ErrStoreWrite = errors.New("store write failed")
	ErrStoreRead  = errors.New("store read failed")

	// ErrClipboard is isolated to the activation that triggered it.
	ErrClipboard = errors.New("clipboard write failed")
)
