// Package editor provides the uniform CRUD operations over the document's
// ordered collections. Every operation returns a new collection value; the
// owning session replaces its document rather than mutating it in place, so a
// change is always observable by simple comparison.
package editor

import "strings"

// Entry is satisfied by every collection element type in the resume package.
type Entry interface {
	EntryID() string
}

// Add appends an entry at the end of the collection. It always succeeds and
// never aliases the input's backing array.
func Add[E Entry](collection []E, entry E) []E {
	out := make([]E, 0, len(collection)+1)
	out = append(out, collection...)
	return append(out, entry)
}

// Update replaces the matching entry with apply(entry), preserving its
// position. An unknown id is a silent no-op: the input collection is returned
// unchanged. Identifiers are internal, so a miss is policy, not an error.
func Update[E Entry](collection []E, id string, apply func(E) E) []E {
	idx := indexOf(collection, id)
	if idx < 0 {
		return collection
	}
	out := make([]E, len(collection))
	copy(out, collection)
	out[idx] = apply(out[idx])
	return out
}

// Remove deletes the matching entry, preserving the order of the rest.
// An unknown id is a silent no-op.
func Remove[E Entry](collection []E, id string) []E {
	idx := indexOf(collection, id)
	if idx < 0 {
		return collection
	}
	out := make([]E, 0, len(collection)-1)
	out = append(out, collection[:idx]...)
	return append(out, collection[idx+1:]...)
}

func indexOf[E Entry](collection []E, id string) int {
	for i, entry := range collection {
		if entry.EntryID() == id {
			return i
		}
	}
	return -1
}

// SplitTechnologies normalizes a comma-separated technology string into an
// ordered list: split on commas, trim whitespace, drop empty results.
// Duplicates are kept; the model does not deduplicate by value.
func SplitTechnologies(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
