// Package services contains the client application services: saving a new
// save file string, retrieving stored saves newest-first, and rendering them
// as copyable items.
//
// The services talk to a store.Store and report to the UI through the small
// sink interfaces below, so any front end (the CLI, tests) can drive them.
package services

import (
	"context"

	"github.com/dmitrijs2005/savebank/internal/client/models"
)

// StatusSink shows status messages.
type StatusSink interface {
	SetStatus(ev models.StatusEvent)
}

// ContainerSink holds the rendered items.
type ContainerSink interface {
	Clear()
	Append(item models.Item)
}

// InputField is the text field a save file string is typed into.
type InputField interface {
	Value() string
	Clear()
}

// Clipboard is the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Notifier shows a blocking alert.
type Notifier interface {
	Alert(msg string)
}
