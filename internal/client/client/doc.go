// Package client contains the CLI's view of the backend and the local
// database bootstrap.
//
// # Overview
//
//  1. Client is the transport-agnostic auth contract (Login, Register,
//     Logout, Close).
//  2. MockClient implements it with a simulated delay and a local password
//     policy; there is no remote endpoint yet.
//  3. InitDatabase and RunMigrations open the SQLite file and apply the
//     embedded goose migrations.
//
// # Error Handling
//
// Policy failures are sentinel errors matched with errors.Is:
// ErrInvalidCredentials (login), ErrWeakPassword (register) and
// ErrInvalidEmail. Context cancellation during the simulated delay returns
// the context error.
package client
