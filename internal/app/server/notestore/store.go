package notestore

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"
)

var ErrNotFound = errors.New("note not found")

// Note is the server-side note served by the CRUD API. Independent from
// the sync path, which works on replica documents.
type Note struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	Favorite  bool      `json:"is_favorite"`
	Archived  bool      `json:"is_archived"`
	Deleted   bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Patch carries the fields of a partial update; nil means keep.
type Patch struct {
	Title    *string
	Content  *string
	Tags     *[]string
	Favorite *bool
	Archived *bool
	Deleted  *bool
}

// Store is an in-memory note collection with incrementing integer ids.
type Store struct {
	mu     sync.RWMutex
	notes  map[int]Note
	nextID int
}

func New() *Store {
	return &Store{
		notes:  make(map[int]Note),
		nextID: 1,
	}
}

func (s *Store) Create(title, content string, tags []string) Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	if title == "" {
		title = "Untitled Note"
	}
	if tags == nil {
		tags = []string{}
	}

	now := time.Now().UTC()
	n := Note{
		ID:        s.nextID,
		Title:     title,
		Content:   content,
		Tags:      tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.notes[n.ID] = n
	s.nextID++
	return n
}

func (s *Store) Get(id int) (Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[id]
	if !ok {
		return Note{}, ErrNotFound
	}
	return n, nil
}

func (s *Store) Update(id int, patch Patch) (Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return Note{}, ErrNotFound
	}

	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Content != nil {
		n.Content = *patch.Content
	}
	if patch.Tags != nil {
		n.Tags = *patch.Tags
	}
	if patch.Favorite != nil {
		n.Favorite = *patch.Favorite
	}
	if patch.Archived != nil {
		n.Archived = *patch.Archived
	}
	if patch.Deleted != nil {
		n.Deleted = *patch.Deleted
	}
	n.UpdatedAt = time.Now().UTC()

	s.notes[id] = n
	return n, nil
}

// Delete moves the note to trash. There is no physical removal; the CRUD
// surface mirrors the client's trash semantics.
func (s *Store) Delete(id int) (Note, error) {
	deleted := true
	return s.Update(id, Patch{Deleted: &deleted})
}

// List returns active notes: not archived, not deleted.
func (s *Store) List() []Note {
	return s.collect(func(n Note) bool {
		return !n.Archived && !n.Deleted
	})
}

func (s *Store) Favorites() []Note {
	return s.collect(func(n Note) bool {
		return n.Favorite && !n.Archived && !n.Deleted
	})
}

func (s *Store) Archived() []Note {
	return s.collect(func(n Note) bool {
		return n.Archived && !n.Deleted
	})
}

func (s *Store) Trash() []Note {
	return s.collect(func(n Note) bool {
		return n.Deleted
	})
}

// Search matches the query case-insensitively against title, content and
// tags of non-deleted notes.
func (s *Store) Search(query string) []Note {
	q := strings.ToLower(query)
	return s.collect(func(n Note) bool {
		if n.Deleted {
			return false
		}
		if strings.Contains(strings.ToLower(n.Title), q) {
			return true
		}
		if strings.Contains(strings.ToLower(n.Content), q) {
			return true
		}
		for _, tag := range n.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	})
}

func (s *Store) ByTag(tag string) []Note {
	return s.collect(func(n Note) bool {
		if n.Deleted {
			return false
		}
		for _, t := range n.Tags {
			if t == tag {
				return true
			}
		}
		return false
	})
}

func (s *Store) collect(keep func(Note) bool) []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Note{}
	for _, n := range s.notes {
		if keep(n) {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
