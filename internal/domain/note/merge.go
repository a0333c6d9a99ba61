package note

import "sort"

// Merge combines a local and a remote collection into one under the
// last-writer-wins rule. Every identifier present on either side appears
// exactly once in the result: notes known to only one side are taken as-is,
// and when both sides carry a note the one with the strictly greater
// UpdatedAt wins. Exact-timestamp ties keep the local version — local is
// authoritative when the clocks agree.
//
// Merge is pure: it performs no I/O, never mutates its inputs, and applying
// it again with the same remote collection yields the same result.
func Merge(local, remote Collection) Collection {
	merged := make(Collection, len(local)+len(remote))
	for id, n := range local {
		merged[id] = n
	}
	for id, rn := range remote {
		ln, ok := merged[id]
		if !ok {
			// Note created on another replica.
			merged[id] = rn
			continue
		}
		if rn.UpdatedAt.After(ln.UpdatedAt) {
			merged[id] = rn
		}
	}
	return merged
}

// DirtySet returns the notes whose UpdatedAt is strictly newer than their
// LastSyncedAt, or which have never been pushed at all. Order is by
// identifier so push batches are deterministic.
func (c Collection) DirtySet() []Note {
	var dirty []Note
	for _, n := range c {
		if n.Dirty() {
			dirty = append(dirty, n)
		}
	}
	sort.Slice(dirty, func(i, j int) bool { return dirty[i].ID < dirty[j].ID })
	return dirty
}
