package client

import (
	"sync"

	"notemaster/internal/domain/note"
)

// AppState is the UI state persisted between runs.
type AppState struct {
	CurrentNoteID    string `json:"current_note_id"`
	SearchQuery      string `json:"search_query"`
	SelectedTag      string `json:"selected_tag"`
	SidebarCollapsed bool   `json:"sidebar_collapsed"`
	SyncStatus       Status `json:"sync_status"`
}

func DefaultAppState() AppState {
	return AppState{
		SyncStatus: StatusOffline,
	}
}

// MemoryStore is an in-memory LocalStore for tests. The exported fields
// are for seeding and asserting; touch them only while no engine is
// running.
type MemoryStore struct {
	mu sync.RWMutex

	Notes note.Collection
	State AppState

	NotesErr error
	StateErr error

	SaveNotesCalls int
	SaveStateCalls int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Notes: note.Collection{},
		State: DefaultAppState(),
	}
}

func (m *MemoryStore) LoadNotes() (note.Collection, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.NotesErr != nil {
		return nil, m.NotesErr
	}
	return m.Notes.Clone(), nil
}

func (m *MemoryStore) SaveNotes(notes note.Collection) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveNotesCalls++
	if m.NotesErr != nil {
		return m.NotesErr
	}
	m.Notes = notes.Clone()
	return nil
}

func (m *MemoryStore) LoadState() (AppState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.StateErr != nil {
		return AppState{}, m.StateErr
	}
	return m.State, nil
}

func (m *MemoryStore) SaveState(state AppState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveStateCalls++
	if m.StateErr != nil {
		return m.StateErr
	}
	m.State = state
	return nil
}

func (m *MemoryStore) Close() error { return nil }
