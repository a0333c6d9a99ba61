package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"notemaster/internal/domain/note"
)

// fakeRemote is a controllable Remote for engine tests.
type fakeRemote struct {
	mu        sync.Mutex
	available bool
	notes     note.Collection

	fetchCalls  int
	createCalls int
	updateCalls int

	createErr error
	updateErr error
	fetchErr  error

	blockFetch chan struct{}

	nextID int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		available: true,
		notes:     note.Collection{},
	}
}

func (f *fakeRemote) IsAvailable(_ context.Context) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.available
}

func (f *fakeRemote) FetchAll(_ context.Context) (note.Collection, error) {
	f.mu.Lock()
	f.fetchCalls++
	block := f.blockFetch
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.notes.Clone(), nil
}

func (f *fakeRemote) Create(_ context.Context, n note.Note) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	remoteID := "doc-" + string(rune('0'+f.nextID))
	n.RemoteID = remoteID
	f.notes[n.ID] = n
	return remoteID, nil
}

func (f *fakeRemote) Update(_ context.Context, n note.Note) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.notes[n.ID] = n
	return nil
}

func (f *fakeRemote) Delete(_ context.Context, remoteID string) error {
	return nil
}

func testEngine(t *testing.T) (*Engine, *MemoryStore, *fakeRemote) {
	t.Helper()
	store := NewMemoryStore()
	remote := newFakeRemote()
	return NewEngine(store, remote, slog.Default()), store, remote
}

func syncedNote(id, title string, updated time.Time, remoteID string) note.Note {
	synced := updated
	return note.Note{
		ID:           id,
		Title:        title,
		CreatedAt:    updated.Add(-time.Hour),
		UpdatedAt:    updated,
		RemoteID:     remoteID,
		LastSyncedAt: &synced,
	}
}

func TestEngineOfflineAbort(t *testing.T) {
	engine, store, remote := testEngine(t)
	remote.available = false

	var statuses []Status
	engine.Subscribe(func(s Status) { statuses = append(statuses, s) })

	ok := engine.Sync(context.Background())

	assert.False(t, ok)
	assert.Equal(t, StatusOffline, engine.Status())
	assert.Zero(t, remote.fetchCalls)
	assert.Zero(t, store.SaveNotesCalls)
	// Status was already offline, no transition fires.
	assert.Empty(t, statuses)
}

func TestEnginePushesNewNote(t *testing.T) {
	engine, store, _ := testEngine(t)

	n, err := note.New("First", "body")
	require.NoError(t, err)
	store.Notes[n.ID] = n

	ok := engine.Sync(context.Background())

	assert.True(t, ok)
	assert.Equal(t, StatusSynced, engine.Status())

	got := store.Notes[n.ID]
	assert.NotEmpty(t, got.RemoteID)
	assert.False(t, got.Dirty())
}

func TestEngineUpdatesBoundNote(t *testing.T) {
	engine, store, remote := testEngine(t)

	base := time.Now().UTC().Add(-time.Hour)
	n := syncedNote("n1", "Old", base, "doc-1")
	n.Title = "Edited"
	n.Touch(time.Now().UTC())
	store.Notes["n1"] = n
	remote.notes["n1"] = syncedNote("n1", "Old", base, "doc-1")

	engine.Sync(context.Background())

	assert.Equal(t, 1, remote.updateCalls)
	assert.Zero(t, remote.createCalls)
	assert.Equal(t, "Edited", remote.notes["n1"].Title)
	assert.False(t, store.Notes["n1"].Dirty())
}

func TestEngineRemoteWinsOnNewerTimestamp(t *testing.T) {
	engine, store, remote := testEngine(t)

	base := time.Now().UTC().Add(-time.Hour)
	store.Notes["n1"] = syncedNote("n1", "local", base, "doc-1")
	remote.notes["n1"] = syncedNote("n1", "remote", base.Add(time.Minute), "doc-1")

	engine.Sync(context.Background())

	assert.Equal(t, "remote", store.Notes["n1"].Title)
	// Remote winner is already in sync, nothing to push.
	assert.Zero(t, remote.updateCalls)
	assert.Zero(t, remote.createCalls)
}

func TestEngineTieKeepsLocal(t *testing.T) {
	engine, store, remote := testEngine(t)

	base := time.Now().UTC().Add(-time.Hour)
	store.Notes["n1"] = syncedNote("n1", "local", base, "doc-1")
	remote.notes["n1"] = syncedNote("n1", "remote", base, "doc-1")

	engine.Sync(context.Background())

	assert.Equal(t, "local", store.Notes["n1"].Title)
}

func TestEngineFetchErrorSetsErrorStatus(t *testing.T) {
	engine, store, remote := testEngine(t)
	remote.fetchErr = errors.New("boom")

	ok := engine.Sync(context.Background())

	assert.False(t, ok)
	assert.Equal(t, StatusError, engine.Status())
	assert.Zero(t, store.SaveNotesCalls)
}

func TestEnginePushErrorKeepsMergedNotes(t *testing.T) {
	engine, store, remote := testEngine(t)
	remote.createErr = errors.New("boom")

	base := time.Now().UTC().Add(-time.Hour)
	remote.notes["r1"] = syncedNote("r1", "from remote", base, "doc-9")

	n, err := note.New("local only", "body")
	require.NoError(t, err)
	store.Notes[n.ID] = n

	ok := engine.Sync(context.Background())

	assert.False(t, ok)
	assert.Equal(t, StatusError, engine.Status())
	// The merge result survived the failed push.
	assert.Contains(t, store.Notes, "r1")
	assert.True(t, store.Notes[n.ID].Dirty())
}

func TestEngineStatusSequence(t *testing.T) {
	engine, store, _ := testEngine(t)

	n, err := note.New("note", "body")
	require.NoError(t, err)
	store.Notes[n.ID] = n

	var statuses []Status
	engine.Subscribe(func(s Status) { statuses = append(statuses, s) })

	engine.Sync(context.Background())

	assert.Equal(t, []Status{StatusSyncing, StatusSynced}, statuses)
}

func TestEngineDropsConcurrentTrigger(t *testing.T) {
	engine, _, remote := testEngine(t)
	remote.blockFetch = make(chan struct{})

	first := make(chan bool)
	go func() {
		first <- engine.Sync(context.Background())
	}()

	// Wait until the first cycle is inside FetchAll.
	require.Eventually(t, func() bool {
		remote.mu.Lock()
		defer remote.mu.Unlock()
		return remote.fetchCalls == 1
	}, time.Second, time.Millisecond)

	ok := engine.Sync(context.Background())
	assert.False(t, ok)

	close(remote.blockFetch)
	assert.True(t, <-first)
	assert.Equal(t, 1, remote.fetchCalls)
}

func TestEngineCycleIsIdempotentWhenClean(t *testing.T) {
	engine, store, remote := testEngine(t)

	base := time.Now().UTC().Add(-time.Hour)
	store.Notes["n1"] = syncedNote("n1", "note", base, "doc-1")
	remote.notes["n1"] = syncedNote("n1", "note", base, "doc-1")

	engine.Sync(context.Background())
	engine.Sync(context.Background())

	assert.Zero(t, remote.createCalls)
	assert.Zero(t, remote.updateCalls)
	assert.Equal(t, StatusSynced, engine.Status())
}

func TestEngineDeletedNoteStillSyncs(t *testing.T) {
	engine, store, remote := testEngine(t)

	base := time.Now().UTC().Add(-time.Hour)
	n := syncedNote("n1", "note", base, "doc-1")
	n.Deleted = true
	n.Touch(time.Now().UTC())
	store.Notes["n1"] = n

	engine.Sync(context.Background())

	assert.True(t, remote.notes["n1"].Deleted)
	assert.False(t, store.Notes["n1"].Dirty())
}
