package diff

import (
	"strings"
)

// Result is the outcome of a comparison: the root item plus derived views
type Result struct {
	Root          *Item
	AddedCount    int
	RemovedCount  int
	ModifiedCount int
}

func (r *Result) tally(it *Item) {
	switch it.Kind {
	case Added:
		r.AddedCount++
	case Removed:
		r.RemovedCount++
	case Modified:
		r.ModifiedCount++
	}
	for _, c := range it.Children {
		r.tally(c)
	}
}

// TotalCount is the number of non-unchanged items in the whole tree
func (r *Result) TotalCount() int {
	return r.AddedCount + r.RemovedCount + r.ModifiedCount
}

// IsIdentical reports whether the two documents were structurally equal
// under the options in effect
func (r *Result) IsIdentical() bool {
	return r.TotalCount() == 0
}

// Flattened returns all non-unchanged items in depth-first pre-order
func (r *Result) Flattened() []*Item {
	var items []*Item
	flatten(r.Root, &items)
	return items
}

func flatten(it *Item, out *[]*Item) {
	if it.Kind != Unchanged {
		*out = append(*out, it)
	}
	for _, c := range it.Children {
		flatten(c, out)
	}
}

// Record is the serializable form of one non-unchanged item
type Record struct {
	Type       string      `json:"type"`
	Path       string      `json:"path"`
	LeftValue  interface{} `json:"leftValue,omitempty"`
	RightValue interface{} `json:"rightValue,omitempty"`
}

// Serialize externalizes every non-unchanged item as a record with a
// JSON-Pointer path
func (r *Result) Serialize() []Record {
	flat := r.Flattened()
	records := make([]Record, 0, len(flat))
	for _, it := range flat {
		rec := Record{Type: it.Kind.String(), Path: PointerPath(it.Path)}
		if it.Kind == Removed || it.Kind == Modified {
			rec.LeftValue = it.Left.ToAny()
		}
		if it.Kind == Added || it.Kind == Modified {
			rec.RightValue = it.Right.ToAny()
		}
		records = append(records, rec)
	}
	return records
}

// PointerPath renders path segments as an RFC 6901 JSON Pointer,
// e.g. ["a","b","0"] -> "/a/b/0". The empty path renders as "/".
func PointerPath(segments []string) string {
	if len(segments) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteByte('/')
		s = strings.ReplaceAll(s, "~", "~0")
		s = strings.ReplaceAll(s, "/", "~1")
		sb.WriteString(s)
	}
	return sb.String()
}
