package note

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

const DefaultTitle = "Untitled Note"

// Note is a user-authored titled text record with tags and lifecycle flags.
// Identifiers are generated locally and stay stable across syncs; RemoteID
// is assigned by the replica on first push and is never cleared afterwards.
type Note struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Tags         []string   `json:"tags"`
	Favorite     bool       `json:"is_favorite"`
	Archived     bool       `json:"is_archived"`
	Deleted      bool       `json:"is_deleted"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	RemoteID     string     `json:"remote_id,omitempty"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
}

// New creates a note with a fresh local identifier.
func New(title, content string) (Note, error) {
	if title == "" {
		title = DefaultTitle
	}
	id, err := uuid.NewV4()
	if err != nil {
		return Note{}, fmt.Errorf("generate note id: %w", err)
	}
	now := time.Now().UTC()
	return Note{
		ID:        id.String(),
		Title:     title,
		Content:   content,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Dirty reports whether the note's local state is newer than the last
// state confirmed pushed to the replica.
func (n Note) Dirty() bool {
	return n.LastSyncedAt == nil || n.UpdatedAt.After(*n.LastSyncedAt)
}

// Touch bumps UpdatedAt to at. UpdatedAt must never go backwards, so a
// clock that lags the previous mutation still produces a strictly newer
// timestamp.
func (n *Note) Touch(at time.Time) {
	if !at.After(n.UpdatedAt) {
		at = n.UpdatedAt.Add(time.Nanosecond)
	}
	n.UpdatedAt = at
}

// HasTag reports whether tag is present.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AddTag appends tag unless already present. Insertion order is preserved
// for display; it carries no other meaning.
func (n *Note) AddTag(tag string) {
	if tag == "" || n.HasTag(tag) {
		return
	}
	n.Tags = append(n.Tags, tag)
}

// RemoveTag deletes tag, keeping the order of the rest.
func (n *Note) RemoveTag(tag string) {
	out := n.Tags[:0]
	for _, t := range n.Tags {
		if t != tag {
			out = append(out, t)
		}
	}
	n.Tags = out
}

// Collection is an unordered mapping from note identifier to note.
type Collection map[string]Note

// Clone returns a shallow per-note copy of the collection.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	for id, n := range c {
		out[id] = n
	}
	return out
}
