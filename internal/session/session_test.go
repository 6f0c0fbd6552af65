package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStoreAt(filepath.Join(t.TempDir(), "session.json"))
}

func TestStore_SaveAndLoad(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Save(State{Token: "abc123", Email: "user@example.com"}))

	state, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "abc123", state.Token)
	assert.Equal(t, "user@example.com", state.Email)
	assert.False(t, state.SavedAt.IsZero())
}

func TestStore_LoadMissingFileIsEmpty(t *testing.T) {
	store := testStore(t)

	state, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, state.Token)
}

func TestStore_Token(t *testing.T) {
	store := testStore(t)
	assert.Empty(t, store.Token())

	require.NoError(t, store.Save(State{Token: "tok"}))
	assert.Equal(t, "tok", store.Token())
}

func TestStore_Clear(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Save(State{Token: "tok"}))
	require.NoError(t, store.Clear())
	assert.Empty(t, store.Token())

	// Clearing again is fine
	require.NoError(t, store.Clear())
}

func TestStore_SaveCreatesDirectoryAndRestrictsPerms(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreAt(filepath.Join(dir, "nested", "session.json"))

	require.NoError(t, store.Save(State{Token: "tok"}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStore_SaveOverwrites(t *testing.T) {
	store := testStore(t)

	require.NoError(t, store.Save(State{Token: "old"}))
	require.NoError(t, store.Save(State{Token: "new"}))

	assert.Equal(t, "new", store.Token())
}
