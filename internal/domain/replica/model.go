package replica

import (
	"time"

	"notemaster/internal/domain/note"
)

// Document is the replica-side representation of a note. Timestamps travel
// as unix milliseconds rather than strings, and the client's note
// identifier rides along as LocalID so identity survives the round trip;
// ID is the replica-native document identifier assigned on create.
type Document struct {
	ID        string   `json:"id,omitempty"`
	LocalID   string   `json:"local_id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	Favorite  bool     `json:"is_favorite"`
	Archived  bool     `json:"is_archived"`
	Deleted   bool     `json:"is_deleted"`
	CreatedAt int64    `json:"created_at"`
	UpdatedAt int64    `json:"updated_at"`
}

// FromNote builds the wire document for a note. The replica document id is
// addressed separately (update path), so it is not set here.
func FromNote(n note.Note) Document {
	tags := n.Tags
	if tags == nil {
		tags = []string{}
	}
	return Document{
		LocalID:   n.ID,
		Title:     n.Title,
		Content:   n.Content,
		Tags:      tags,
		Favorite:  n.Favorite,
		Archived:  n.Archived,
		Deleted:   n.Deleted,
		CreatedAt: n.CreatedAt.UnixMilli(),
		UpdatedAt: n.UpdatedAt.UnixMilli(),
	}
}

// ToNote maps the document back to a local note. Fetched notes are in sync
// with the replica by definition, so LastSyncedAt is stamped with the
// fetch time.
func (d Document) ToNote(syncedAt time.Time) note.Note {
	id := d.LocalID
	if id == "" {
		// Documents written by clients that predate local ids.
		id = d.ID
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	synced := syncedAt
	return note.Note{
		ID:           id,
		Title:        d.Title,
		Content:      d.Content,
		Tags:         tags,
		Favorite:     d.Favorite,
		Archived:     d.Archived,
		Deleted:      d.Deleted,
		CreatedAt:    time.UnixMilli(d.CreatedAt).UTC(),
		UpdatedAt:    time.UnixMilli(d.UpdatedAt).UTC(),
		RemoteID:     d.ID,
		LastSyncedAt: &synced,
	}
}
