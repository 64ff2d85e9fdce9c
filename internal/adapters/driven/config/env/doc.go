// Package env overlays environment variables on another config store.
//
// Recognised variables:
//   - ROSTER_INPUT_PATH: input.path
//   - ROSTER_OUTPUT_PATH: output.path
//   - ROSTER_OUTPUT_INDEX: output.index
//   - ROSTER_CLEAN_STRICT: clean.strict
//   - ROSTER_CLEAN_DROP_COLUMNS: clean.drop_columns (comma separated)
package env
