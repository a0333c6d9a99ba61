package client

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notemaster/internal/domain/note"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreEmpty(t *testing.T) {
	store := testStore(t)

	notes, err := store.LoadNotes()
	require.NoError(t, err)
	assert.Empty(t, notes)

	state, err := store.LoadState()
	require.NoError(t, err)
	assert.Equal(t, DefaultAppState(), state)
}

func TestSQLiteStoreNotesRoundTrip(t *testing.T) {
	store := testStore(t)

	n, err := note.New("Groceries", "milk, eggs")
	require.NoError(t, err)
	n.AddTag("home")
	synced := n.UpdatedAt.Add(time.Minute)
	n.LastSyncedAt = &synced
	n.RemoteID = "doc-1"

	require.NoError(t, store.SaveNotes(note.Collection{n.ID: n}))

	loaded, err := store.LoadNotes()
	require.NoError(t, err)
	require.Contains(t, loaded, n.ID)

	got := loaded[n.ID]
	assert.Equal(t, n.Title, got.Title)
	assert.Equal(t, n.Tags, got.Tags)
	assert.Equal(t, "doc-1", got.RemoteID)
	require.NotNil(t, got.LastSyncedAt)
	assert.True(t, got.LastSyncedAt.Equal(synced))
	assert.True(t, got.UpdatedAt.Equal(n.UpdatedAt))
}

func TestSQLiteStoreSaveOverwrites(t *testing.T) {
	store := testStore(t)

	a, err := note.New("a", "")
	require.NoError(t, err)
	b, err := note.New("b", "")
	require.NoError(t, err)

	require.NoError(t, store.SaveNotes(note.Collection{a.ID: a, b.ID: b}))
	require.NoError(t, store.SaveNotes(note.Collection{a.ID: a}))

	loaded, err := store.LoadNotes()
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
	assert.Contains(t, loaded, a.ID)
}

func TestSQLiteStoreStateRoundTrip(t *testing.T) {
	store := testStore(t)

	state := AppState{
		CurrentNoteID:    "n1",
		SearchQuery:      "milk",
		SelectedTag:      "home",
		SidebarCollapsed: true,
		SyncStatus:       StatusSynced,
	}
	require.NoError(t, store.SaveState(state))

	loaded, err := store.LoadState()
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)

	n, err := note.New("keep me", "")
	require.NoError(t, err)
	require.NoError(t, store.SaveNotes(note.Collection{n.ID: n}))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	loaded, err := reopened.LoadNotes()
	require.NoError(t, err)
	assert.Contains(t, loaded, n.ID)
}
