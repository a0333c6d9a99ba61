package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"notemaster/internal/app/client/config"
	"notemaster/internal/domain/note"
)

// App owns the local collection and the sync machinery. All note
// mutations go through it so the whole collection is persisted after
// each change.
type App struct {
	config    *config.Config
	log       *slog.Logger
	store     LocalStore
	engine    *Engine
	scheduler *Scheduler

	mu  sync.Mutex
	now func() time.Time
}

func NewApp(cfg *config.Config, log *slog.Logger) (*App, error) {
	store, err := NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	identity, err := LoadOrCreateDevice(cfg.DevicePath)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("load device identity: %w", err)
	}

	remote := NewHTTPRemote(cfg, identity, log)
	return newApp(cfg, store, remote, log), nil
}

// newApp wires the app from its parts. Tests inject fakes here.
func newApp(cfg *config.Config, store LocalStore, remote Remote, log *slog.Logger) *App {
	engine := NewEngine(store, remote, log)
	interval := time.Duration(cfg.SyncInterval) * time.Second

	app := &App{
		config:    cfg,
		log:       log,
		store:     store,
		engine:    engine,
		scheduler: NewScheduler(engine, interval, log),
		now:       time.Now,
	}

	engine.Subscribe(app.persistStatus)
	return app
}

func (a *App) persistStatus(status Status) {
	a.mu.Lock()
	defer a.mu.Unlock()

	state, err := a.store.LoadState()
	if err != nil {
		a.log.Warn("failed to load app state", "error", err)
		return
	}
	state.SyncStatus = status
	if err := a.store.SaveState(state); err != nil {
		a.log.Warn("failed to persist sync status", "error", err)
	}
}

// Note operations.

func (a *App) CreateNote(title, content string) (note.Note, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	notes, err := a.store.LoadNotes()
	if err != nil {
		return note.Note{}, err
	}

	n, err := note.New(title, content)
	if err != nil {
		return note.Note{}, err
	}
	notes[n.ID] = n

	if err := a.store.SaveNotes(notes); err != nil {
		return note.Note{}, err
	}
	a.log.Debug("note created", "id", n.ID)
	return n, nil
}

func (a *App) UpdateNote(id, title, content string) (note.Note, error) {
	return a.mutate(id, func(n *note.Note) {
		n.Title = title
		n.Content = content
	})
}

func (a *App) AddTag(id, tag string) (note.Note, error) {
	return a.mutate(id, func(n *note.Note) {
		n.AddTag(tag)
	})
}

func (a *App) RemoveTag(id, tag string) (note.Note, error) {
	return a.mutate(id, func(n *note.Note) {
		n.RemoveTag(tag)
	})
}

func (a *App) SetFavorite(id string, favorite bool) (note.Note, error) {
	return a.mutate(id, func(n *note.Note) {
		n.Favorite = favorite
	})
}

func (a *App) SetArchived(id string, archived bool) (note.Note, error) {
	return a.mutate(id, func(n *note.Note) {
		n.Archived = archived
	})
}

// DeleteNote moves the note to trash. The tombstone is kept so the
// deletion reaches other replicas on the next sync.
func (a *App) DeleteNote(id string) (note.Note, error) {
	return a.mutate(id, func(n *note.Note) {
		n.Deleted = true
	})
}

func (a *App) RestoreNote(id string) (note.Note, error) {
	return a.mutate(id, func(n *note.Note) {
		n.Deleted = false
	})
}

// mutate applies fn to the note, bumps its update time and persists the
// collection.
func (a *App) mutate(id string, fn func(*note.Note)) (note.Note, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	notes, err := a.store.LoadNotes()
	if err != nil {
		return note.Note{}, err
	}

	n, ok := notes[id]
	if !ok {
		return note.Note{}, note.ErrNotFound
	}

	fn(&n)
	n.Touch(a.now().UTC())
	notes[id] = n

	if err := a.store.SaveNotes(notes); err != nil {
		return note.Note{}, err
	}
	return n, nil
}

func (a *App) GetNote(id string) (note.Note, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	notes, err := a.store.LoadNotes()
	if err != nil {
		return note.Note{}, err
	}
	n, ok := notes[id]
	if !ok {
		return note.Note{}, note.ErrNotFound
	}
	return n, nil
}

// Notes returns the whole collection, trash included.
func (a *App) Notes() (note.Collection, error) {
	return a.loadNotes()
}

// Projections.

func (a *App) ListNotes(view note.View) ([]note.Note, error) {
	notes, err := a.loadNotes()
	if err != nil {
		return nil, err
	}
	return note.Filter(notes, view), nil
}

func (a *App) SearchNotes(query string) ([]note.Note, error) {
	notes, err := a.loadNotes()
	if err != nil {
		return nil, err
	}
	return note.Search(notes, query), nil
}

func (a *App) NotesByTag(tag string) ([]note.Note, error) {
	notes, err := a.loadNotes()
	if err != nil {
		return nil, err
	}
	return note.ByTag(notes, tag), nil
}

func (a *App) TagCounts() ([]note.TagCount, error) {
	notes, err := a.loadNotes()
	if err != nil {
		return nil, err
	}
	return note.TagCounts(notes), nil
}

func (a *App) loadNotes() (note.Collection, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.LoadNotes()
}

// App state.

func (a *App) State() (AppState, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.LoadState()
}

func (a *App) SaveState(state AppState) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.SaveState(state)
}

// Sync.

// SyncNow triggers one sync cycle and reports whether it finished
// synced. False means the trigger was dropped, the replica was
// unreachable, or the cycle faulted; SyncStatus tells which.
func (a *App) SyncNow(ctx context.Context) bool {
	return a.engine.Sync(ctx)
}

func (a *App) SyncStatus() Status {
	return a.engine.Status()
}

func (a *App) OnStatusChange(fn func(Status)) {
	a.engine.Subscribe(fn)
}

func (a *App) StartAutoSync(ctx context.Context) {
	a.scheduler.Start(ctx)
}

func (a *App) StopAutoSync() {
	a.scheduler.Stop()
}

func (a *App) Close() error {
	a.scheduler.Stop()
	return a.store.Close()
}
