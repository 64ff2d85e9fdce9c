package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alao-ohio/roster/internal/core/domain"
)

func TestName(t *testing.T) {
	assert.Equal(t, "state", New().Name())
}

func TestNormalise(t *testing.T) {
	values := []domain.Value{domain.Text("ohio"), domain.Text("oh"), domain.Missing()}

	got := New().Normalise(values)

	assert.Equal(t, []string{"OH", "OH", ""}, got)
}

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"full name", "Michigan", "MI"},
		{"already a code", "PA", "PA"},
		{"single character stays short", "o", "O"},
		{"empty stays empty", "", ""},
		{"leading space is kept", " oh", " O"},
		{"multi-byte", "québec", "QU"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, Clean(got))
		})
	}
}
