// Package diff compares two JSON values and classifies every element as
// added, removed, modified or unchanged.
package diff

import (
	"github.com/jsonlens/jsonlens/internal/model"
)

// Kind classifies one comparison outcome
type Kind int

const (
	Unchanged Kind = iota
	Added
	Removed
	Modified
)

func (k Kind) String() string {
	switch k {
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return "unchanged"
	}
}

// Options configures comparison behavior
type Options struct {
	// StrictType makes cross-type scalar comparisons always modified.
	// When false, scalars of differing types are coerced to a canonical
	// string form first, so "1" equals 1 and "true" equals true.
	StrictType bool
	// IgnoreArrayOrder compares arrays as unordered collections, pairing
	// elements by id field, name field or structural hash instead of
	// position.
	IgnoreArrayOrder bool
	// IgnoreKeyOrder documents intent only: objects are unordered maps
	// here, so key order never participates in equality either way.
	IgnoreKeyOrder bool
}

// Item is one node of the comparison result tree. A container's own Kind
// reflects only that node's presence; finer-grained changes live in
// Children.
type Item struct {
	Path []string // field names and stringified array indices from the root
	// LeftPath holds the left document's coordinates when unordered array
	// matching paired elements at different positions; nil means Path is
	// valid for both sides.
	LeftPath []string
	Kind     Kind
	Left     *model.Value // populated for removed, modified and unchanged
	Right    *model.Value // populated for added, modified and unchanged
	Children []*Item
	Depth    int
}

// LeftSidePath returns the item's path in left-document coordinates. It
// differs from Path only below an unordered array pairing that matched
// elements at different indices.
func (it *Item) LeftSidePath() []string {
	if it.LeftPath != nil {
		return it.LeftPath
	}
	return it.Path
}

// Key returns the last path segment, or "" at the comparison root
func (it *Item) Key() string {
	if len(it.Path) == 0 {
		return ""
	}
	return it.Path[len(it.Path)-1]
}

// HasDiff reports whether this item or any descendant is not unchanged
func (it *Item) HasDiff() bool {
	if it.Kind != Unchanged {
		return true
	}
	for _, c := range it.Children {
		if c.HasDiff() {
			return true
		}
	}
	return false
}
