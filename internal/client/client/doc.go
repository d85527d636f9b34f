// Package client contains client-side building blocks for SaveBank.
//
// # Overview
//
// The package provides:
//  1. The Client interface: a store.Store reached over the network, with
//     Ping and Close.
//  2. A concrete gRPC implementation (see GRPCClient) that talks to the
//     savebank.store.StoreService and maps gRPC status codes to sentinel
//     errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Unreachable servers surface as ErrUnavailable; rejected paths or values as
// common.ErrInvalidPath. Match with errors.Is.
//
// See Also
//
//   - Interface:  Client
//   - gRPC impl:  GRPCClient
//   - DB helpers: InitDatabase, RunMigrations
package client
