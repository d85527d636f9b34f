package client

import (
	"context"

	"github.com/dmitrijs2005/savebank/internal/store"
)

// Client is a remote store: the store operations plus connection
// management and a reachability probe.
type Client interface {
	store.Store
	Ping(ctx context.Context) error
	Close() error
}
