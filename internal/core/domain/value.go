package domain

// Value is a single roster cell.
// A Value is either text (Valid is true) or missing. Missing covers empty
// cells and the configured not-available markers; normalisers always render
// it as the empty string.
type Value struct {
	String string
	Valid  bool
}

// Text returns a present value.
func Text(s string) Value {
	return Value{String: s, Valid: true}
}

// Missing returns an absent value.
func Missing() Value {
	return Value{}
}

// Or returns the text of v, or fallback when v is missing.
func (v Value) Or(fallback string) string {
	if !v.Valid {
		return fallback
	}
	return v.String
}

// Texts wraps plain strings as present values.
func Texts(ss ...string) []Value {
	out := make([]Value, len(ss))
	for i, s := range ss {
		out[i] = Text(s)
	}
	return out
}
