// Package normalisers provides implementations of the FieldNormaliser
// interface, one package per semantic field type. Each normaliser is a pure
// function over a column: missing values become "", everything else is
// rewritten into its canonical form.
//
// Normalisers are registered with the pipeline registry at startup.
package normalisers
