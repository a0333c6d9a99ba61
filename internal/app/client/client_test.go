package client

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notemaster/internal/app/client/config"
	"notemaster/internal/domain/note"
)

func testApp(t *testing.T) (*App, *MemoryStore, *fakeRemote) {
	t.Helper()
	cfg := &config.Config{
		ServerAddress: "localhost:8080",
		SyncInterval:  30,
	}
	store := NewMemoryStore()
	remote := newFakeRemote()
	return newApp(cfg, store, remote, slog.Default()), store, remote
}

func TestAppCreateNote(t *testing.T) {
	app, store, _ := testApp(t)

	n, err := app.CreateNote("Groceries", "milk")
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "Groceries", n.Title)
	assert.True(t, n.Dirty())
	assert.Contains(t, store.Notes, n.ID)
}

func TestAppCreateNoteDefaultTitle(t *testing.T) {
	app, _, _ := testApp(t)

	n, err := app.CreateNote("", "")
	require.NoError(t, err)
	assert.Equal(t, note.DefaultTitle, n.Title)
}

func TestAppUpdateNoteBumpsTimestamp(t *testing.T) {
	app, _, _ := testApp(t)

	n, err := app.CreateNote("before", "")
	require.NoError(t, err)

	updated, err := app.UpdateNote(n.ID, "after", "new body")
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Title)
	assert.Equal(t, "new body", updated.Content)
	assert.True(t, updated.UpdatedAt.After(n.UpdatedAt))
}

func TestAppMutateUnknownNote(t *testing.T) {
	app, _, _ := testApp(t)

	_, err := app.UpdateNote("missing", "x", "y")
	assert.ErrorIs(t, err, note.ErrNotFound)
}

func TestAppTagOperations(t *testing.T) {
	app, _, _ := testApp(t)

	n, err := app.CreateNote("tagged", "")
	require.NoError(t, err)

	n, err = app.AddTag(n.ID, "work")
	require.NoError(t, err)
	n, err = app.AddTag(n.ID, "work")
	require.NoError(t, err)
	assert.Equal(t, []string{"work"}, n.Tags)

	n, err = app.RemoveTag(n.ID, "work")
	require.NoError(t, err)
	assert.Empty(t, n.Tags)
}

func TestAppTrashFlow(t *testing.T) {
	app, _, _ := testApp(t)

	n, err := app.CreateNote("doomed", "")
	require.NoError(t, err)

	deleted, err := app.DeleteNote(n.ID)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)

	all, err := app.ListNotes(note.ViewAll)
	require.NoError(t, err)
	assert.Empty(t, all)

	trash, err := app.ListNotes(note.ViewTrash)
	require.NoError(t, err)
	require.Len(t, trash, 1)

	restored, err := app.RestoreNote(n.ID)
	require.NoError(t, err)
	assert.False(t, restored.Deleted)
}

func TestAppProjections(t *testing.T) {
	app, _, _ := testApp(t)

	a, err := app.CreateNote("shopping list", "milk and eggs")
	require.NoError(t, err)
	_, err = app.AddTag(a.ID, "home")
	require.NoError(t, err)

	b, err := app.CreateNote("standup", "notes from meeting")
	require.NoError(t, err)
	_, err = app.SetFavorite(b.ID, true)
	require.NoError(t, err)

	favorites, err := app.ListNotes(note.ViewFavorites)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, b.ID, favorites[0].ID)

	found, err := app.SearchNotes("milk")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, a.ID, found[0].ID)

	byTag, err := app.NotesByTag("home")
	require.NoError(t, err)
	require.Len(t, byTag, 1)

	counts, err := app.TagCounts()
	require.NoError(t, err)
	require.Len(t, counts, 1)
	assert.Equal(t, "home", counts[0].Tag)
	assert.Equal(t, 1, counts[0].Count)
}

func TestAppStateRoundTrip(t *testing.T) {
	app, _, _ := testApp(t)

	state, err := app.State()
	require.NoError(t, err)
	assert.Equal(t, StatusOffline, state.SyncStatus)

	state.CurrentNoteID = "n1"
	state.SidebarCollapsed = true
	require.NoError(t, app.SaveState(state))

	loaded, err := app.State()
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestAppSyncPersistsStatus(t *testing.T) {
	app, store, _ := testApp(t)

	_, err := app.CreateNote("to sync", "")
	require.NoError(t, err)

	ok := app.SyncNow(context.Background())
	assert.True(t, ok)
	assert.Equal(t, StatusSynced, app.SyncStatus())
	assert.Equal(t, StatusSynced, store.State.SyncStatus)
}

func TestAppCreatedNoteReachesRemote(t *testing.T) {
	app, store, remote := testApp(t)

	n, err := app.CreateNote("travels", "pack bags")
	require.NoError(t, err)

	app.SyncNow(context.Background())

	remote.mu.Lock()
	_, onRemote := remote.notes[n.ID]
	remote.mu.Unlock()
	assert.True(t, onRemote)
	assert.False(t, store.Notes[n.ID].Dirty())
	assert.NotEmpty(t, store.Notes[n.ID].RemoteID)
}

func TestAppAutoSyncLifecycle(t *testing.T) {
	cfg := &config.Config{
		ServerAddress: "localhost:8080",
		SyncInterval:  30,
	}
	store := NewMemoryStore()
	remote := newFakeRemote()
	app := newApp(cfg, store, remote, slog.Default())

	app.StartAutoSync(context.Background())
	require.Eventually(t, func() bool {
		remote.mu.Lock()
		defer remote.mu.Unlock()
		return remote.fetchCalls >= 1
	}, time.Second, time.Millisecond)
	app.StopAutoSync()
}

func TestAppWithSQLiteStore(t *testing.T) {
	cfg := &config.Config{
		ServerAddress: "localhost:8080",
		SyncInterval:  30,
	}
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)

	app := newApp(cfg, store, newFakeRemote(), slog.Default())
	defer app.Close()

	n, err := app.CreateNote("persisted", "on disk")
	require.NoError(t, err)

	got, err := app.GetNote(n.ID)
	require.NoError(t, err)
	assert.Equal(t, "persisted", got.Title)
}
