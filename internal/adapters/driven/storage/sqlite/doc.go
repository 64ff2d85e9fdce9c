// Package sqlite provides SQLite-backed implementations of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. One database file serves two roles:
//
//   - RunStore: clean run history with per-column statistics
//   - SnapshotWriter/SnapshotReader: cleaned rosters written as row snapshots
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, run history is stored at ~/.roster/data/history.db. Snapshots are
// written to whatever .db or .sqlite path the clean command is given.
package sqlite
