package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable([]string{"First name", "Password", "Work City", "Notes"})
	require.NoError(t, err)
	require.NoError(t, table.AppendRow([]Value{Text("ada"), Text("hunter2"), Text("COLUMBUS"), Missing()}))
	require.NoError(t, table.AppendRow([]Value{Text("grace"), Missing(), Missing(), Text("n/a")}))
	return table
}

func TestValue(t *testing.T) {
	assert.True(t, Text("").Valid)
	assert.False(t, Missing().Valid)
	assert.Equal(t, "x", Text("x").Or("fallback"))
	assert.Equal(t, "fallback", Missing().Or("fallback"))
	assert.Equal(t, []Value{Text("a"), Text("b")}, Texts("a", "b"))
}

func TestNewTable_DuplicateColumn(t *testing.T) {
	_, err := NewTable([]string{"Notes", "Notes"})
	assert.ErrorIs(t, err, ErrDuplicateColumn)
}

func TestTable_AppendRow(t *testing.T) {
	table, err := NewTable([]string{"a", "b"})
	require.NoError(t, err)

	t.Run("pads short rows with missing", func(t *testing.T) {
		require.NoError(t, table.AppendRow([]Value{Text("1")}))
		assert.Equal(t, []Value{Text("1"), Missing()}, table.Rows[0])
	})

	t.Run("rejects long rows", func(t *testing.T) {
		err := table.AppendRow(Texts("1", "2", "3"))
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 1, table.Len())
	})
}

func TestTable_Column(t *testing.T) {
	table := newTestTable(t)

	values, err := table.Column("Work City")
	require.NoError(t, err)
	assert.Equal(t, []Value{Text("COLUMBUS"), Missing()}, values)

	_, err = table.Column("Home City")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestTable_SetColumn(t *testing.T) {
	table := newTestTable(t)

	require.NoError(t, table.SetColumn("Work City", []string{"Columbus", ""}))
	values, err := table.Column("Work City")
	require.NoError(t, err)
	assert.Equal(t, Texts("Columbus", ""), values)

	err = table.SetColumn("Work City", []string{"only one"})
	assert.ErrorIs(t, err, ErrColumnLength)

	err = table.SetColumn("Home City", []string{"a", "b"})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestTable_Drop(t *testing.T) {
	t.Run("removes columns and keeps order", func(t *testing.T) {
		table := newTestTable(t)

		dropped, err := table.Drop([]string{"Notes", "Password", "Notes"}, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"Notes", "Password"}, dropped)
		assert.Equal(t, []string{"First name", "Work City"}, table.Columns)
		assert.Equal(t, []Value{Text("ada"), Text("COLUMBUS")}, table.Rows[0])
		assert.Equal(t, []Value{Text("grace"), Missing()}, table.Rows[1])
	})

	t.Run("strict fails on absent column and leaves table untouched", func(t *testing.T) {
		table := newTestTable(t)

		_, err := table.Drop([]string{"Password", "Balance"}, true)
		assert.ErrorIs(t, err, ErrColumnNotFound)
		assert.Len(t, table.Columns, 4)
	})

	t.Run("lenient skips absent column", func(t *testing.T) {
		table := newTestTable(t)

		dropped, err := table.Drop([]string{"Password", "Balance"}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"Password"}, dropped)
		assert.False(t, table.Has("Password"))
	})
}
