// Package csv reads and writes roster files in comma-separated form.
//
// Every cell is read as text. Cells matching the configured missing markers
// become missing values; on write, missing values render as empty cells.
package csv
