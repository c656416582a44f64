package diff

import (
	"sort"
	"strconv"

	"github.com/jsonlens/jsonlens/internal/model"
)

// Compare recursively compares two values under the given options and
// returns the classified result tree with aggregate counts. Any two values
// are comparable; the worst case is a type mismatch classified modified.
func Compare(left, right *model.Value, opts Options) *Result {
	root := compare(left, right, nil, nil, opts)
	res := &Result{Root: root}
	res.tally(root)
	return res
}

// leftPath is nil while both sides share the same coordinates; it becomes
// concrete once an unordered array pairing matches different indices.
func compare(left, right *model.Value, path, leftPath []string, opts Options) *Item {
	item := &Item{Path: path, LeftPath: leftPath, Depth: len(path), Left: left, Right: right}

	// identical subtrees need no descent
	if left.Equal(right) {
		return item
	}

	lk, rk := left.Kind(), right.Kind()
	switch {
	case lk == model.KindObject && rk == model.KindObject:
		compareObjects(item, left, right, opts)
	case lk == model.KindArray && rk == model.KindArray:
		if opts.IgnoreArrayOrder {
			compareArraysUnordered(item, left, right, opts)
		} else {
			compareArraysOrdered(item, left, right, opts)
		}
	case left.IsContainer() || right.IsContainer():
		// container vs scalar, or object vs array
		item.Kind = Modified
	default:
		if lk != rk && !opts.StrictType && left.ScalarString() == right.ScalarString() {
			// coerced cross-type equality, e.g. "1" vs 1
			return item
		}
		item.Kind = Modified
	}
	return item
}

func compareObjects(item *Item, left, right *model.Value, opts Options) {
	for _, k := range unionKeys(left, right) {
		lv, lok := left.Field(k)
		rv, rok := right.Field(k)
		p := extendPath(item.Path, k)
		lp := childLeftPath(item, k)
		switch {
		case lok && !rok:
			item.Children = append(item.Children, leafItem(p, lp, Removed, lv, nil))
		case !lok && rok:
			item.Children = append(item.Children, leafItem(p, lp, Added, nil, rv))
		default:
			item.Children = append(item.Children, compare(lv, rv, p, lp, opts))
		}
	}
}

func compareArraysOrdered(item *Item, left, right *model.Value, opts Options) {
	lElems, rElems := left.Elements(), right.Elements()
	shorter := len(lElems)
	if len(rElems) < shorter {
		shorter = len(rElems)
	}
	for i := 0; i < shorter; i++ {
		p := extendPath(item.Path, strconv.Itoa(i))
		item.Children = append(item.Children, compare(lElems[i], rElems[i], p, childLeftPath(item, strconv.Itoa(i)), opts))
	}
	for i := shorter; i < len(lElems); i++ {
		p := extendPath(item.Path, strconv.Itoa(i))
		item.Children = append(item.Children, leafItem(p, childLeftPath(item, strconv.Itoa(i)), Removed, lElems[i], nil))
	}
	for i := shorter; i < len(rElems); i++ {
		p := extendPath(item.Path, strconv.Itoa(i))
		item.Children = append(item.Children, leafItem(p, nil, Added, nil, rElems[i]))
	}
}

// compareArraysUnordered pairs elements across the two sides instead of
// comparing positionally: object elements by a unique id field, then a
// unique name field, then by structural hash; everything else as a
// multiset of structural hashes.
func compareArraysUnordered(item *Item, left, right *model.Value, opts Options) {
	lElems, rElems := left.Elements(), right.Elements()

	if allObjects(lElems) && allObjects(rElems) {
		for _, field := range []string{"id", "name"} {
			lKeys, lok := fieldKeys(lElems, field)
			rKeys, rok := fieldKeys(rElems, field)
			if lok && rok {
				matchByKeys(item, lElems, rElems, lKeys, rKeys, opts)
				return
			}
		}
	}
	matchByHash(item, lElems, rElems, opts)
}

// fieldKeys extracts a pairing key per element from the named field.
// Returns false when any element lacks the field or keys repeat.
func fieldKeys(elems []*model.Value, field string) ([]string, bool) {
	keys := make([]string, len(elems))
	seen := make(map[string]bool, len(elems))
	for i, e := range elems {
		fv, ok := e.Field(field)
		if !ok {
			return nil, false
		}
		key := fv.EncodeJSON(false)
		if seen[key] {
			return nil, false
		}
		seen[key] = true
		keys[i] = key
	}
	return keys, true
}

func matchByKeys(item *Item, lElems, rElems []*model.Value, lKeys, rKeys []string, opts Options) {
	leftByKey := make(map[string]int, len(lElems))
	for i, k := range lKeys {
		leftByKey[k] = i
	}

	matchedLeft := make([]bool, len(lElems))
	for j, key := range rKeys {
		p := extendPath(item.Path, strconv.Itoa(j))
		if i, ok := leftByKey[key]; ok {
			matchedLeft[i] = true
			item.Children = append(item.Children, compare(lElems[i], rElems[j], p, pairLeftPath(item, i, j), opts))
		} else {
			item.Children = append(item.Children, leafItem(p, nil, Added, nil, rElems[j]))
		}
	}
	for i, matched := range matchedLeft {
		if !matched {
			p := extendPath(item.Path, strconv.Itoa(i))
			item.Children = append(item.Children, leafItem(p, childLeftPath(item, strconv.Itoa(i)), Removed, lElems[i], nil))
		}
	}
}

func matchByHash(item *Item, lElems, rElems []*model.Value, opts Options) {
	unconsumed := make(map[uint64][]int)
	for i, e := range lElems {
		h := e.Hash()
		unconsumed[h] = append(unconsumed[h], i)
	}

	matchedLeft := make([]bool, len(lElems))
	for j, e := range rElems {
		p := extendPath(item.Path, strconv.Itoa(j))
		h := e.Hash()
		if idxs := unconsumed[h]; len(idxs) > 0 {
			i := idxs[0]
			unconsumed[h] = idxs[1:]
			matchedLeft[i] = true
			item.Children = append(item.Children, compare(lElems[i], e, p, pairLeftPath(item, i, j), opts))
		} else {
			item.Children = append(item.Children, leafItem(p, nil, Added, nil, e))
		}
	}
	for i, matched := range matchedLeft {
		if !matched {
			p := extendPath(item.Path, strconv.Itoa(i))
			item.Children = append(item.Children, leafItem(p, childLeftPath(item, strconv.Itoa(i)), Removed, lElems[i], nil))
		}
	}
}

func allObjects(elems []*model.Value) bool {
	if len(elems) == 0 {
		return false
	}
	for _, e := range elems {
		if e.Kind() != model.KindObject {
			return false
		}
	}
	return true
}

func unionKeys(left, right *model.Value) []string {
	keys := append([]string(nil), left.SortedKeys()...)
	for _, k := range right.SortedKeys() {
		if _, ok := left.Field(k); !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func leafItem(path, leftPath []string, kind Kind, left, right *model.Value) *Item {
	return &Item{Path: path, LeftPath: leftPath, Depth: len(path), Kind: kind, Left: left, Right: right}
}

// childLeftPath extends the item's left-side path with a segment shared by
// both sides. nil stays nil: the child's coordinates still agree.
func childLeftPath(it *Item, segment string) []string {
	if it.LeftPath == nil {
		return nil
	}
	return extendPath(it.LeftPath, segment)
}

// pairLeftPath is the left-side path for a matched array pair whose left
// element sits at index i and right element at index j.
func pairLeftPath(it *Item, i, j int) []string {
	if it.LeftPath == nil && i == j {
		return nil
	}
	base := it.LeftPath
	if base == nil {
		base = it.Path
	}
	return extendPath(base, strconv.Itoa(i))
}

func extendPath(path []string, segment string) []string {
	p := make([]string, len(path)+1)
	copy(p, path)
	p[len(path)] = segment
	return p
}
