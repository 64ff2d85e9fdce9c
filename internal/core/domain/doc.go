// Package domain defines the core entities for roster.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Value: A single cell, either text or missing
//   - Table: An in-memory roster (ordered headers plus rows of values)
//   - CleanSettings: Everything the pipeline driver needs for one run
//   - Run: The recorded outcome of a clean
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
