package client

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"notemaster/internal/domain/note"
)

// LocalStore is the client persistence layer. Notes and app state are
// stored as whole records: load everything, save everything. The note
// collection is small enough that record-level access buys nothing.
type LocalStore interface {
	LoadNotes() (note.Collection, error)
	SaveNotes(notes note.Collection) error
	LoadState() (AppState, error)
	SaveState(state AppState) error
	Close() error
}

const (
	recordNotes = "notes"
	recordState = "app_state"
)

// SQLiteStore keeps both records as JSON values in a single kv table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init tables: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			name  TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

func (s *SQLiteStore) LoadNotes() (note.Collection, error) {
	notes := note.Collection{}
	if err := s.load(recordNotes, &notes); err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	return notes, nil
}

func (s *SQLiteStore) SaveNotes(notes note.Collection) error {
	if err := s.save(recordNotes, notes); err != nil {
		return fmt.Errorf("save notes: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LoadState() (AppState, error) {
	state := DefaultAppState()
	if err := s.load(recordState, &state); err != nil {
		return AppState{}, fmt.Errorf("load app state: %w", err)
	}
	return state, nil
}

func (s *SQLiteStore) SaveState(state AppState) error {
	if err := s.save(recordState, state); err != nil {
		return fmt.Errorf("save app state: %w", err)
	}
	return nil
}

// load unmarshals the named record into dst. A missing record leaves dst
// untouched so callers get their zero or default value.
func (s *SQLiteStore) load(name string, dst any) error {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE name = ?`, name).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(value), dst)
}

func (s *SQLiteStore) save(name string, src any) error {
	value, err := json.Marshal(src)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO kv (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, name, string(value))
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
