// Package render maps diff classifications back onto pretty-printed JSON
// text lines. Every line gets a reconstructed structural path, and
// classification is decided only by exact path equality, never by comparing
// line text, so textually identical lines at different paths can never
// contaminate each other.
package render

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jsonlens/jsonlens/internal/diff"
)

// Line is one line of classified output for one side
type Line struct {
	Text string
	Kind diff.Kind
}

// PathLine is one line of input text with its reconstructed structural
// path. Pure syntax lines (an anonymous open, or anything unrecognized)
// carry no path and never receive a classification of their own.
type PathLine struct {
	Text    string
	Path    []string
	HasPath bool
}

// Result holds the two classified line lists for side-by-side display
type Result struct {
	LeftLines  []Line
	RightLines []Line
}

type frame struct {
	path      []string
	nextIndex int
	isArray   bool
	owned     bool // whether the open line carried its own path
}

// BuildLinePathMap reconstructs a structural path for every line of
// canonical pretty-printed JSON: one element per line, container braces on
// their own lines, keys sorted. Lines that match none of the expected
// shapes are treated as syntax-only.
func BuildLinePathMap(lines []string) []PathLine {
	result := make([]PathLine, len(lines))
	stack := []*frame{{}}

	for i, raw := range lines {
		result[i] = PathLine{Text: raw}
		line := strings.TrimSpace(raw)
		line = strings.TrimSuffix(line, ",")
		top := stack[len(stack)-1]

		switch {
		case line == "":
			// blank, no identity

		case line == "{" || line == "[":
			// anonymous open; inside an array it is still an indexed element
			path := top.path
			owned := false
			if top.isArray {
				path = extendPath(top.path, strconv.Itoa(top.nextIndex))
				top.nextIndex++
				owned = true
				result[i].Path = path
				result[i].HasPath = true
			}
			stack = append(stack, &frame{path: path, isArray: line == "[", owned: owned})

		case line == "}" || line == "]":
			if len(stack) > 1 {
				closed := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if closed.owned {
					result[i].Path = closed.path
					result[i].HasPath = true
				}
			}

		default:
			key, rest, keyed := splitKeyedLine(line)
			switch {
			case keyed && (rest == "{" || rest == "["):
				path := extendPath(top.path, key)
				result[i].Path = path
				result[i].HasPath = true
				stack = append(stack, &frame{path: path, isArray: rest == "[", owned: true})
			case keyed:
				result[i].Path = extendPath(top.path, key)
				result[i].HasPath = true
			case top.isArray:
				// bare leaf as an array element
				result[i].Path = extendPath(top.path, strconv.Itoa(top.nextIndex))
				result[i].HasPath = true
				top.nextIndex++
			}
		}
	}
	return result
}

// splitKeyedLine extracts the decoded key and the value text from a line of
// the form `"key" : value`. The scan honors escaped quotes inside the key.
func splitKeyedLine(line string) (key, rest string, ok bool) {
	if len(line) < 2 || line[0] != '"' {
		return "", "", false
	}
	end := -1
	for i := 1; i < len(line); i++ {
		switch line[i] {
		case '\\':
			i++ // skip the escaped character
		case '"':
			end = i
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return "", "", false
	}
	remainder := strings.TrimSpace(line[end+1:])
	if !strings.HasPrefix(remainder, ":") {
		return "", "", false
	}
	var decoded string
	if err := json.Unmarshal([]byte(line[:end+1]), &decoded); err != nil {
		return "", "", false
	}
	return decoded, strings.TrimSpace(remainder[1:]), true
}

// BuildRenderResult classifies every line of the two pretty-printed texts
// from the comparison result. Lines default to unchanged; an item marks the
// line whose path equals its own exactly, and a container that is wholly
// added or removed marks its entire subtree on the side where it exists.
func BuildRenderResult(leftText, rightText string, res *diff.Result) *Result {
	leftPaths := BuildLinePathMap(splitLines(leftText))
	rightPaths := BuildLinePathMap(splitLines(rightText))

	flat := res.Flattened()
	leftExact := make(map[string]diff.Kind)
	rightExact := make(map[string]diff.Kind)
	var leftSubtrees, rightSubtrees []string
	for _, it := range flat {
		// Path carries right-side coordinates when unordered matching
		// paired elements at different indices; the left panel must be
		// keyed on the element's position in the left document.
		lp := diff.PointerPath(it.LeftSidePath())
		rp := diff.PointerPath(it.Path)
		switch it.Kind {
		case diff.Removed:
			leftExact[lp] = diff.Removed
			if it.Left != nil && it.Left.IsContainer() {
				leftSubtrees = append(leftSubtrees, lp)
			}
		case diff.Added:
			rightExact[rp] = diff.Added
			if it.Right != nil && it.Right.IsContainer() {
				rightSubtrees = append(rightSubtrees, rp)
			}
		case diff.Modified:
			leftExact[lp] = diff.Modified
			rightExact[rp] = diff.Modified
		}
	}

	return &Result{
		LeftLines:  classify(leftPaths, leftExact, leftSubtrees, diff.Removed),
		RightLines: classify(rightPaths, rightExact, rightSubtrees, diff.Added),
	}
}

func classify(lines []PathLine, exact map[string]diff.Kind, subtrees []string, subtreeKind diff.Kind) []Line {
	out := make([]Line, len(lines))
	for i, pl := range lines {
		out[i] = Line{Text: pl.Text, Kind: diff.Unchanged}
		if !pl.HasPath {
			continue
		}
		p := diff.PointerPath(pl.Path)
		for _, root := range subtrees {
			if underPath(p, root) {
				out[i].Kind = subtreeKind
				break
			}
		}
		if out[i].Kind == diff.Unchanged {
			if k, ok := exact[p]; ok {
				out[i].Kind = k
			}
		}
	}
	return out
}

// underPath reports whether pointer path p equals root or lies beneath it
func underPath(p, root string) bool {
	if root == "/" {
		return true
	}
	return p == root || strings.HasPrefix(p, root+"/")
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	// a trailing newline produces an empty final element, not a real line
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

func extendPath(path []string, segment string) []string {
	p := make([]string, len(path)+1)
	copy(p, path)
	p[len(path)] = segment
	return p
}

