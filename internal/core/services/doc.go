// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Cleaner reads a roster, drops excluded columns, runs the column
// pipeline and writes the result, recording each run in history.
package services
