package text

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alao-ohio/roster/internal/core/domain"
)

func TestColumn(t *testing.T) {
	values := []domain.Value{domain.Text("a"), domain.Missing(), domain.Text("")}

	out := Column(values, func(s string) string { return s + "!" })

	assert.Equal(t, []string{"a!", "", "!"}, out)
}

func TestColumn_Empty(t *testing.T) {
	out := Column(nil, func(s string) string { return s })
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lower words", "new york", "New York"},
		{"upper words", "NEW YORK", "New York"},
		{"mixed case", "mcDONALD", "Mcdonald"},
		{"hyphen and slash", "osu-newark/cotc", "Osu-Newark/Cotc"},
		{"apostrophe", "o'brien", "O'Brien"},
		{"digits start words", "1st street", "1St Street"},
		{"preposition", "board of directors", "Board Of Directors"},
		{"multiple spaces kept", "a  b", "A  B"},
		{"accented", "école", "École"},
		{"empty", "", ""},
		{"only punctuation", "--", "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TitleCase(tt.input))
		})
	}
}

func TestTitleCase_Idempotent(t *testing.T) {
	for _, s := range []string{"osu-newark/cotc", "O'BRIEN", "1st street", "école"} {
		once := TitleCase(s)
		assert.Equal(t, once, TitleCase(once), s)
	}
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "oh", Prefix("ohio", 2))
	assert.Equal(t, "o", Prefix("o", 2))
	assert.Equal(t, "", Prefix("", 2))
	assert.Equal(t, "", Prefix("ohio", 0))
	assert.Equal(t, "qu", Prefix("québec", 2))
	assert.Equal(t, "éc", Prefix("école", 2))
	assert.Equal(t, "43215", Prefix("43215-1234", 5))
}

func TestRuneLen(t *testing.T) {
	assert.Equal(t, 5, RuneLen("école"))
	assert.Equal(t, 0, RuneLen(""))
}
