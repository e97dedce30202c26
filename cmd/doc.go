// Package cmd implements the command-line interface for lockey. It provides a
// hierarchical command structure to drive an in-process lock manager.
//
// The package is organized into several subpackages:
//
//   - session: Runs lock commands (acquire, release, ...) from stdin or a script
//   - bench: Concurrent load test of a lock manager
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// All flags can also be set via environment variables in the format
// LOCKEY_<FLAG> (e.g. LOCKEY_LOG_LEVEL=debug), .env and .env.local files
// are loaded on startup.
//
// See lockey -help for a list of all commands.
package cmd
