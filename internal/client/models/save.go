// Package models defines the client-side save data types and the status
// events shown to the user.
package models

import "context"

// SaveRecord is one stored save file string.
type SaveRecord struct {
	ID         string
	SaveString string
	// Timestamp is milliseconds since the epoch, taken from the writing
	// client's clock.
	Timestamp int64
}

// StatusKind classifies a StatusEvent.
type StatusKind int

const (
	StatusValidationFailed StatusKind = iota + 1
	StatusInProgress
	StatusSuccess
	StatusFailure
	StatusEmpty
	StatusDone
)

func (k StatusKind) String() string {
	switch k {
	case StatusValidationFailed:
		return "validation_failed"
	case StatusInProgress:
		return "in_progress"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusEmpty:
		return "empty"
	case StatusDone:
		return "done"
	default:
		return "unknown"
	}
}

// StatusEvent is a message for the status line.
type StatusEvent struct {
	Kind    StatusKind
	Message string
}

// Item is one rendered save: a label and the action run on activation.
type Item struct {
	Label    string
	Activate func(ctx context.Context) error
}
