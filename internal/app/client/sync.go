package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"notemaster/internal/domain/note"
)

// Status is the sync state shown to the user.
type Status string

const (
	StatusOffline Status = "offline"
	StatusSyncing Status = "syncing"
	StatusSynced  Status = "synced"
	StatusError   Status = "error"
)

// Engine runs sync cycles against the replica. A cycle fetches the full
// remote collection, merges it into the local one with last-writer-wins,
// pushes everything locally newer and stamps the push time.
//
// At most one cycle is in flight; concurrent triggers are dropped, not
// queued.
type Engine struct {
	store  LocalStore
	remote Remote
	log    *slog.Logger

	now func() time.Time

	mu          sync.Mutex
	status      Status
	inFlight    bool
	subscribers []func(Status)
}

func NewEngine(store LocalStore, remote Remote, log *slog.Logger) *Engine {
	return &Engine{
		store:  store,
		remote: remote,
		log:    log.With("component", "sync_engine"),
		now:    time.Now,
		status: StatusOffline,
	}
}

// Status returns the current sync status.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Subscribe registers a callback invoked on every status change. The
// callback runs on the syncing goroutine and must not block.
func (e *Engine) Subscribe(fn func(Status)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscribers = append(e.subscribers, fn)
}

func (e *Engine) setStatus(status Status) {
	e.mu.Lock()
	if e.status == status {
		e.mu.Unlock()
		return
	}
	e.status = status
	subscribers := make([]func(Status), len(e.subscribers))
	copy(subscribers, e.subscribers)
	e.mu.Unlock()

	for _, fn := range subscribers {
		fn(status)
	}
}

// Sync runs one cycle and reports whether it finished synced. It returns
// false when the trigger was dropped because another cycle was in flight,
// when the replica was unreachable, or when the cycle faulted.
func (e *Engine) Sync(ctx context.Context) bool {
	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		e.log.Debug("sync already in flight, trigger dropped")
		return false
	}
	e.inFlight = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.inFlight = false
		e.mu.Unlock()
	}()

	if err := e.runCycle(ctx); err != nil {
		e.log.Error("sync cycle failed", "error", err)
		e.setStatus(StatusError)
		return false
	}
	return e.Status() == StatusSynced
}

func (e *Engine) runCycle(ctx context.Context) error {
	if !e.remote.IsAvailable(ctx) {
		e.log.Debug("replica unavailable, staying offline")
		e.setStatus(StatusOffline)
		return nil
	}

	e.setStatus(StatusSyncing)
	start := e.now()

	local, err := e.store.LoadNotes()
	if err != nil {
		return fmt.Errorf("load local notes: %w", err)
	}

	remote, err := e.remote.FetchAll(ctx)
	if err != nil {
		return fmt.Errorf("fetch remote notes: %w", err)
	}

	merged := note.Merge(local, remote)
	if err := e.store.SaveNotes(merged); err != nil {
		return fmt.Errorf("persist merged notes: %w", err)
	}

	dirty := merged.DirtySet()
	pushed, pushErr := e.push(ctx, merged, dirty)

	// Stamps for already pushed notes must survive even when a later
	// push fails, otherwise the next cycle would create duplicates.
	if err := e.store.SaveNotes(merged); err != nil {
		return fmt.Errorf("persist synced notes: %w", err)
	}
	if pushErr != nil {
		return fmt.Errorf("push notes: %w", pushErr)
	}

	e.setStatus(StatusSynced)
	e.log.Info("sync cycle complete",
		"duration", e.now().Sub(start),
		"fetched", len(remote),
		"pushed", pushed,
	)
	return nil
}

// push sends each dirty note to the replica and stamps it in merged.
// Notes without a remote binding are created and capture the assigned
// document id.
func (e *Engine) push(ctx context.Context, merged note.Collection, dirty []note.Note) (int, error) {
	pushed := 0
	for _, n := range dirty {
		if n.RemoteID == "" {
			remoteID, err := e.remote.Create(ctx, n)
			if err != nil {
				return pushed, fmt.Errorf("create note %s: %w", n.ID, err)
			}
			n.RemoteID = remoteID
		} else {
			if err := e.remote.Update(ctx, n); err != nil {
				return pushed, fmt.Errorf("update note %s: %w", n.ID, err)
			}
		}

		syncedAt := e.now()
		n.LastSyncedAt = &syncedAt
		merged[n.ID] = n
		pushed++
	}
	return pushed, nil
}
