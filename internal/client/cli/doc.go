// Package cli provides the interactive CobraGPT command-line client.
//
// It wires configuration, the local database, the session manager and the
// preference and chat services, then runs a REPL. Typical flow: restore the
// previous session from local storage, then execute user commands.
//
// Key features:
//   - Register / Login / Logout / Whoami
//   - Settings: show, set <key> <value>, reset
//   - Plans: list pricing tiers
//   - Chat with the (simulated) assistant, show history
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
