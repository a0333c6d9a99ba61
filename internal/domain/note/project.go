package note

import (
	"sort"
	"strings"
)

// View selects a slice of the collection for display.
type View string

const (
	ViewAll       View = "all"
	ViewFavorites View = "favorites"
	ViewArchived  View = "archived"
	ViewTrash     View = "trash"
)

var tagColors = []string{"blue", "green", "purple", "orange", "red", "pink"}

// TagCount is a tag with its usage count and display color.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// Filter projects the collection onto a view. ViewAll hides archived and
// deleted notes, ViewTrash shows only deleted ones. Results are ordered by
// UpdatedAt, newest first.
func Filter(c Collection, view View) []Note {
	keep := func(n Note) bool {
		switch view {
		case ViewFavorites:
			return !n.Deleted && n.Favorite
		case ViewArchived:
			return !n.Deleted && n.Archived
		case ViewTrash:
			return n.Deleted
		default:
			return !n.Deleted && !n.Archived
		}
	}

	var out []Note
	for _, n := range c {
		if keep(n) {
			out = append(out, n)
		}
	}
	sortByUpdated(out)
	return out
}

// Search matches query case-insensitively against title, content and tags
// of non-deleted notes.
func Search(c Collection, query string) []Note {
	term := strings.ToLower(query)

	var out []Note
	for _, n := range c {
		if n.Deleted {
			continue
		}
		if strings.Contains(strings.ToLower(n.Title), term) ||
			strings.Contains(strings.ToLower(n.Content), term) ||
			anyTagContains(n.Tags, term) {
			out = append(out, n)
		}
	}
	sortByUpdated(out)
	return out
}

// ByTag returns the non-deleted notes carrying tag exactly.
func ByTag(c Collection, tag string) []Note {
	var out []Note
	for _, n := range c {
		if !n.Deleted && n.HasTag(tag) {
			out = append(out, n)
		}
	}
	sortByUpdated(out)
	return out
}

// TagCounts aggregates tag usage across non-deleted notes, most used
// first. Colors cycle through a fixed palette.
func TagCounts(c Collection) []TagCount {
	counts := map[string]int{}
	for _, n := range c {
		if n.Deleted {
			continue
		}
		for _, t := range n.Tags {
			counts[t]++
		}
	}

	out := make([]TagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	for i := range out {
		out[i].Color = tagColors[i%len(tagColors)]
	}
	return out
}

func anyTagContains(tags []string, term string) bool {
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), term) {
			return true
		}
	}
	return false
}

func sortByUpdated(notes []Note) {
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].UpdatedAt.Equal(notes[j].UpdatedAt) {
			return notes[i].ID < notes[j].ID
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}
