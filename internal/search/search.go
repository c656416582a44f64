// Package search finds matching positions in a JSON value without
// materializing tree nodes, so counting and locating matches stays cheap
// on large documents.
package search

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jsonlens/jsonlens/internal/model"
)

// Mode selects how query text is matched against keys and scalar values
type Mode int

const (
	// ModeContains matches case-insensitive substrings (the default)
	ModeContains Mode = iota
	// ModeFuzzy matches the query characters in order, not necessarily adjacent
	ModeFuzzy
	// ModeRegex matches a regular expression pattern
	ModeRegex
)

// Matcher is a single-position predicate over (key, value) pairs.
// A position matches when its key label contains the query, or, for scalar
// values only, when the value's string form contains it. Containers never
// match through their contents.
type Matcher struct {
	query         string
	mode          Mode
	re            *regexp.Regexp
	ignoreEscapes bool
}

// NewMatcher creates a case-insensitive substring matcher
func NewMatcher(query string) *Matcher {
	return &Matcher{query: strings.ToLower(query), ignoreEscapes: true}
}

// NewFuzzyMatcher creates a fuzzy matcher for the query
func NewFuzzyMatcher(query string) *Matcher {
	return &Matcher{query: strings.ToLower(query), mode: ModeFuzzy, ignoreEscapes: true}
}

// NewRegexMatcher creates a regular-expression matcher
func NewRegexMatcher(pattern string) (*Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern: %w", err)
	}
	return &Matcher{query: pattern, mode: ModeRegex, re: re, ignoreEscapes: true}, nil
}

// NewMatcherFromQuery builds a matcher from interactive query syntax:
// a "~" prefix selects fuzzy matching, a query wrapped in slashes is a
// regular expression, anything else a case-insensitive substring.
func NewMatcherFromQuery(query string) (*Matcher, error) {
	switch {
	case strings.HasPrefix(query, "~"):
		return NewFuzzyMatcher(query[1:]), nil
	case len(query) > 2 && strings.HasPrefix(query, "/") && strings.HasSuffix(query, "/"):
		return NewRegexMatcher(query[1 : len(query)-1])
	default:
		return NewMatcher(query), nil
	}
}

// SetIgnoreEscapeSequences controls how string scalars are matched: when
// true (the default) against their decoded text, when false against their
// escaped JSON literal form as shown in rendered output.
func (m *Matcher) SetIgnoreEscapeSequences(on bool) { m.ignoreEscapes = on }

// MatchText reports whether a single piece of text matches the query
func (m *Matcher) MatchText(text string) bool {
	if m.query == "" {
		return false
	}
	switch m.mode {
	case ModeFuzzy:
		return fuzzy.MatchFold(m.query, strings.ToLower(text))
	case ModeRegex:
		return m.re.MatchString(text)
	default:
		return strings.Contains(strings.ToLower(text), m.query)
	}
}

// MatchNode reports whether the position (key, v) matches
func (m *Matcher) MatchNode(key string, v *model.Value) bool {
	if key != "" && m.MatchText(key) {
		return true
	}
	if v.IsContainer() {
		return false
	}
	return m.MatchText(m.scalarText(v))
}

func (m *Matcher) scalarText(v *model.Value) string {
	if !m.ignoreEscapes && v.Kind() == model.KindString {
		if quoted, err := json.Marshal(v.StringVal()); err == nil && len(quoted) >= 2 {
			return string(quoted[1 : len(quoted)-1])
		}
	}
	return v.ScalarString()
}

// Count returns how many positions in the subtree rooted at (key, v) match.
// Array positions carry synthesized "[i]" labels, same as tree nodes.
func (m *Matcher) Count(key string, v *model.Value) int {
	count := 0
	if m.MatchNode(key, v) {
		count++
	}
	switch v.Kind() {
	case model.KindObject:
		for _, k := range v.SortedKeys() {
			field, _ := v.Field(k)
			count += m.Count(k, field)
		}
	case model.KindArray:
		for i, e := range v.Elements() {
			count += m.Count(fmt.Sprintf("[%d]", i), e)
		}
	}
	return count
}

// Paths returns the structural path of every matching position, as child
// indices from the root: sorted-key position for objects, natural index
// for arrays. A root match yields the empty path. Results are in the same
// pre-order as a full tree traversal.
func (m *Matcher) Paths(key string, v *model.Value) [][]int {
	var paths [][]int
	m.collectPaths(key, v, nil, &paths)
	return paths
}

func (m *Matcher) collectPaths(key string, v *model.Value, prefix []int, out *[][]int) {
	if m.MatchNode(key, v) {
		path := make([]int, len(prefix))
		copy(path, prefix)
		*out = append(*out, path)
	}
	switch v.Kind() {
	case model.KindObject:
		for i, k := range v.SortedKeys() {
			field, _ := v.Field(k)
			m.collectPaths(k, field, append(prefix, i), out)
		}
	case model.KindArray:
		for i, e := range v.Elements() {
			m.collectPaths(fmt.Sprintf("[%d]", i), e, append(prefix, i), out)
		}
	}
}

// CountMatches counts matching positions under (key, v) for a lowercased
// substring query. ignoreEscapeSequences selects decoded vs escaped string
// matching.
func CountMatches(key string, v *model.Value, query string, ignoreEscapeSequences bool) int {
	m := NewMatcher(query)
	m.SetIgnoreEscapeSequences(ignoreEscapeSequences)
	return m.Count(key, v)
}

// SearchMatchPaths returns the structural paths of all matching positions
// under (key, v) for a substring query
func SearchMatchPaths(key string, v *model.Value, query string) [][]int {
	return NewMatcher(query).Paths(key, v)
}
