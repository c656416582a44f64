package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/jsonlens/jsonlens/internal/model"
	"github.com/jsonlens/jsonlens/internal/search"
)

// SearchBar manages incremental search over a JSON document
type SearchBar struct {
	query      string
	cursorPos  int
	active     bool
	rootKey    string
	root       *model.Value
	matcher    *search.Matcher
	matchPaths [][]int
	currentIdx int
	matchCount int
}

// NewSearchBar creates a search bar over the given document root
func NewSearchBar(rootKey string, root *model.Value) *SearchBar {
	return &SearchBar{rootKey: rootKey, root: root}
}

// Start starts search mode with an empty query
func (s *SearchBar) Start() {
	s.active = true
	s.query = ""
	s.cursorPos = 0
	s.matcher = nil
	s.matchPaths = nil
	s.currentIdx = 0
	s.matchCount = 0
}

// Stop leaves search mode, keeping the current results for n/N navigation
func (s *SearchBar) Stop() {
	s.active = false
}

// Clear drops the query and all results
func (s *SearchBar) Clear() {
	s.active = false
	s.query = ""
	s.cursorPos = 0
	s.matcher = nil
	s.matchPaths = nil
	s.currentIdx = 0
	s.matchCount = 0
}

// IsActive returns whether search input mode is active
func (s *SearchBar) IsActive() bool {
	return s.active
}

// Query returns the current query
func (s *SearchBar) Query() string {
	return s.query
}

// Matcher returns the active matcher, or nil when the query is empty
func (s *SearchBar) Matcher() *search.Matcher {
	return s.matcher
}

// HandleKey handles key presses during search mode.
// Returns true when Enter committed a query with at least one match.
func (s *SearchBar) HandleKey(ev *tcell.EventKey) bool {
	if !s.active {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		s.query = ""
		s.updateResults()
		s.Stop()
		return false
	case tcell.KeyEnter:
		s.Stop()
		return len(s.matchPaths) > 0
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if s.cursorPos > 0 {
			s.query = s.query[:s.cursorPos-1] + s.query[s.cursorPos:]
			s.cursorPos--
			s.updateResults()
		}
		return false
	case tcell.KeyDelete:
		if s.cursorPos < len(s.query) {
			s.query = s.query[:s.cursorPos] + s.query[s.cursorPos+1:]
			s.updateResults()
		}
		return false
	case tcell.KeyLeft:
		if s.cursorPos > 0 {
			s.cursorPos--
		}
		return false
	case tcell.KeyRight:
		if s.cursorPos < len(s.query) {
			s.cursorPos++
		}
		return false
	case tcell.KeyHome:
		s.cursorPos = 0
		return false
	case tcell.KeyEnd:
		s.cursorPos = len(s.query)
		return false
	default:
		ch := ev.Rune()
		if ch > 0 && ch < 127 {
			s.query = s.query[:s.cursorPos] + string(ch) + s.query[s.cursorPos:]
			s.cursorPos++
			s.updateResults()
		}
		return false
	}
}

// updateResults recomputes matches as the query changes (incremental search)
func (s *SearchBar) updateResults() {
	s.currentIdx = 0

	if s.query == "" {
		s.matcher = nil
		s.matchPaths = nil
		s.matchCount = 0
		return
	}

	m, err := search.NewMatcherFromQuery(s.query)
	if err != nil {
		// a half-typed regex; keep the bar open with no matches
		s.matcher = nil
		s.matchPaths = nil
		s.matchCount = 0
		return
	}
	s.matcher = m
	s.matchPaths = m.Paths(s.rootKey, s.root)
	s.matchCount = len(s.matchPaths)
}

// MatchCount returns the number of matches for the current query
func (s *SearchBar) MatchCount() int {
	return s.matchCount
}

// CurrentMatchNumber returns the 1-based current match number, 0 without matches
func (s *SearchBar) CurrentMatchNumber() int {
	if len(s.matchPaths) == 0 {
		return 0
	}
	return s.currentIdx + 1
}

// CurrentPath returns the child index path of the current match, nil without matches
func (s *SearchBar) CurrentPath() []int {
	if s.currentIdx < 0 || s.currentIdx >= len(s.matchPaths) {
		return nil
	}
	return s.matchPaths[s.currentIdx]
}

// NextMatch advances to the next match, wrapping around
func (s *SearchBar) NextMatch() bool {
	if len(s.matchPaths) == 0 {
		return false
	}
	s.currentIdx++
	if s.currentIdx >= len(s.matchPaths) {
		s.currentIdx = 0
	}
	return true
}

// PrevMatch moves to the previous match, wrapping around
func (s *SearchBar) PrevMatch() bool {
	if len(s.matchPaths) == 0 {
		return false
	}
	s.currentIdx--
	if s.currentIdx < 0 {
		s.currentIdx = len(s.matchPaths) - 1
	}
	return true
}

// HasResults returns true if the last committed query had matches
func (s *SearchBar) HasResults() bool {
	return len(s.matchPaths) > 0
}

// Render renders the search bar on the given row
func (s *SearchBar) Render(screen *Screen, y int) {
	labelStyle := screen.SearchLabelStyle()
	textStyle := screen.SearchTextStyle()
	cursorStyle := screen.SearchCursorStyle()
	resultStyle := screen.SearchResultCountStyle()

	screen.DrawString(0, y, "Search: ", labelStyle)

	x := 8
	maxWidth := screen.GetWidth() - x
	displayQuery := s.query
	if len(displayQuery) > maxWidth {
		displayQuery = displayQuery[len(displayQuery)-maxWidth:]
	}

	for i, r := range displayQuery {
		charStyle := textStyle
		if s.active && i == s.cursorPos {
			charStyle = cursorStyle
		}
		screen.SetCell(x+i, y, r, charStyle)
	}

	if s.active && s.cursorPos >= len(displayQuery) {
		screen.SetCell(x+len(displayQuery), y, ' ', cursorStyle)
	}

	for i := len(displayQuery); i < maxWidth; i++ {
		screen.SetCell(x+i, y, ' ', textStyle)
	}

	var resultText string
	if s.query == "" {
		resultText = ""
	} else if s.matchCount == 0 {
		resultText = " (no matches)"
	} else {
		resultText = fmt.Sprintf(" (%d of %d matches)", s.CurrentMatchNumber(), s.matchCount)
	}
	screen.DrawString(screen.GetWidth()-len(resultText), y, resultText, resultStyle)
}
