package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("this is not valid TOML {{{[["), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("input.path", "roster.csv"))

	val, ok := store.Get("input.path")
	assert.True(t, ok)
	assert.Equal(t, "roster.csv", val)
	assert.True(t, store.Has("input.path"))
	assert.False(t, store.Has("output.path"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("s", "text"))
	require.NoError(t, store.Set("i", 42))
	require.NoError(t, store.Set("b", true))
	require.NoError(t, store.Set("l", []string{"Password", "Notes"}))

	assert.Equal(t, "text", store.GetString("s"))
	assert.Equal(t, 42, store.GetInt("i"))
	assert.True(t, store.GetBool("b"))
	assert.Equal(t, []string{"Password", "Notes"}, store.GetStringSlice("l"))

	// Wrong types fall back to zero values
	assert.Equal(t, "", store.GetString("i"))
	assert.Equal(t, 0, store.GetInt("s"))
	assert.False(t, store.GetBool("s"))
	assert.Nil(t, store.GetStringSlice("s"))
	assert.Equal(t, "", store.GetString("absent"))
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("clean.strict", false))
	require.NoError(t, store1.Set("clean.drop_columns", []string{"Password"}))
	require.NoError(t, store1.Set("columns.Work City", "city"))
	require.NoError(t, store1.Set("output.index", true))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.True(t, store2.Has("clean.strict"))
	assert.False(t, store2.GetBool("clean.strict"))
	assert.Equal(t, []string{"Password"}, store2.GetStringSlice("clean.drop_columns"))
	assert.Equal(t, "city", store2.GetString("columns.Work City"))
	assert.True(t, store2.GetBool("output.index"))
}

func TestConfigStore_NestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[input]
path = "exports/members.csv"

[columns]
"Work City" = "city"
"Work Province/State" = "state"

[organization.aliases]
"Osu Marion" = "OSU Marion"
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "exports/members.csv", store.GetString("input.path"))
	assert.Equal(t, map[string]string{
		"Work City":           "city",
		"Work Province/State": "state",
	}, store.GetStringMap("columns"))
	assert.Equal(t, map[string]string{"Osu Marion": "OSU Marion"}, store.GetStringMap("organization.aliases"))
}

func TestConfigStore_GetStringMap(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("columns.Home City", "city"))
	require.NoError(t, store.Set("columns.Bad", 7))
	require.NoError(t, store.Set("columnsX.Other", "phone"))

	m := store.GetStringMap("columns")
	assert.Equal(t, map[string]string{"Home City": "city"}, m)

	assert.Empty(t, store.GetStringMap("nothing"))
	assert.NotNil(t, store.GetStringMap("nothing"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte{}, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	val, ok := store.Get("any_key")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("test", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_Save_WriteFileError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("test", "value"))

	// Replace the file with a directory to cause write error
	require.NoError(t, os.Remove(store.Path()))
	require.NoError(t, os.Mkdir(store.Path(), 0700))

	assert.Error(t, store.Set("another", "value"))
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("valid", "data"))

	require.NoError(t, os.WriteFile(store.Path(), []byte("invalid toml syntax ][}{"), 0600))

	assert.Error(t, store.Load())
}

func TestConfigStore_SetWithUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	// Channels cannot be marshaled to TOML
	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(id int) {
			key := "columns.key" + string(rune('0'+id))
			_ = store.Set(key, "phone")
			_ = store.GetString(key)
			_ = store.GetStringMap("columns")
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestFlattenMap(t *testing.T) {
	in := map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"e": true,
	}

	out := flattenMap(in, "")

	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": "x", "e": true}, out)
}

func TestConfigStore_SetLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("output.path", "clean.csv"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ConfigFileName, entries[0].Name())
}
