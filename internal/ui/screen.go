package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/jsonlens/jsonlens/internal/config"
	"github.com/jsonlens/jsonlens/internal/theme"
)

// Screen wraps tcell.Screen with theme-aware drawing helpers
type Screen struct {
	screen tcell.Screen
	width  int
	height int
	Theme  *theme.Theme
}

// NewScreen creates and initializes a new screen with the configured theme
func NewScreen() (*Screen, error) {
	cfg, err := config.Load()
	var themeName string
	if err != nil {
		themeName = "default"
	} else {
		themeName = cfg.Theme
	}

	t := theme.LoadThemeOrDefault(themeName)
	return NewScreenWithTheme(t)
}

// NewScreenWithTheme creates and initializes a new screen with a specific theme
func NewScreenWithTheme(t *theme.Theme) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}

	width, height := screen.Size()

	return &Screen{
		screen: screen,
		width:  width,
		height: height,
		Theme:  t,
	}, nil
}

// Close finalizes the screen
func (s *Screen) Close() {
	s.screen.Fini()
}

// Suspend suspends the screen so external programs can use the terminal
func (s *Screen) Suspend() error {
	return s.screen.Suspend()
}

// Resume resumes the screen after a suspend
func (s *Screen) Resume() error {
	return s.screen.Resume()
}

// Clear clears the screen
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show makes all pending changes visible
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync forces a full redraw
func (s *Screen) Sync() {
	s.screen.Sync()
}

// PollEvent waits for the next event
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Size returns the current screen dimensions
func (s *Screen) Size() (int, int) {
	s.width, s.height = s.screen.Size()
	return s.width, s.height
}

// GetWidth returns the screen width
func (s *Screen) GetWidth() int {
	return s.width
}

// GetHeight returns the screen height
func (s *Screen) GetHeight() int {
	return s.height
}

// UpdateSize refreshes the cached dimensions after a resize event
func (s *Screen) UpdateSize() {
	s.width, s.height = s.screen.Size()
}

// SetCell sets a single cell, bounds-checked
func (s *Screen) SetCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.screen.SetContent(x, y, ch, nil, style)
}

// DrawString draws a string starting at the given position
func (s *Screen) DrawString(x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetCell(col, y, r, style)
		col += RuneWidth(r)
	}
}

// DrawStringLimited draws a string, truncating it to maxWidth columns
func (s *Screen) DrawStringLimited(x, y int, text string, maxWidth int, style tcell.Style) {
	s.DrawString(x, y, TruncateToWidth(text, maxWidth), style)
}

// ClearLine fills a line with spaces
func (s *Screen) ClearLine(y int, style tcell.Style) {
	for x := 0; x < s.width; x++ {
		s.SetCell(x, y, ' ', style)
	}
}

// DefaultStyle returns the base style
func (s *Screen) DefaultStyle() tcell.Style {
	return tcell.StyleDefault
}

// TreeKeyStyle returns the style for object keys and array indices
func (s *Screen) TreeKeyStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.TreeKey)
}

// TreeStringStyle returns the style for string values
func (s *Screen) TreeStringStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.TreeString)
}

// TreeNumberStyle returns the style for number values
func (s *Screen) TreeNumberStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.TreeNumber)
}

// TreeBoolStyle returns the style for boolean values
func (s *Screen) TreeBoolStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.TreeBool)
}

// TreeNullStyle returns the style for null values
func (s *Screen) TreeNullStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.TreeNull)
}

// TreeSelectedStyle returns the style for the selected tree row
func (s *Screen) TreeSelectedStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.TreeSelectedItem).Reverse(true)
}

// TreeExpandedArrowStyle returns the style for the expanded marker
func (s *Screen) TreeExpandedArrowStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.TreeExpandedArrow)
}

// TreeCollapsedArrowStyle returns the style for the collapsed marker
func (s *Screen) TreeCollapsedArrowStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.TreeCollapsedArrow)
}

// TreeConnectorStyle returns the style for tree connector lines
func (s *Screen) TreeConnectorStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.TreeConnector)
}

// SearchLabelStyle returns the style for the search prompt label
func (s *Screen) SearchLabelStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.SearchLabel).Bold(true)
}

// SearchTextStyle returns the style for the search query text
func (s *Screen) SearchTextStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.SearchText)
}

// SearchCursorStyle returns the style for the search input cursor
func (s *Screen) SearchCursorStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.SearchText).Reverse(true)
}

// SearchMatchStyle returns the style for highlighted matches
func (s *Screen) SearchMatchStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.SearchMatch).Bold(true)
}

// SearchResultCountStyle returns the style for the match counter
func (s *Screen) SearchResultCountStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.SearchResultCount)
}

// DiffAddedStyle returns the style for added lines
func (s *Screen) DiffAddedStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.DiffAdded)
}

// DiffRemovedStyle returns the style for removed lines
func (s *Screen) DiffRemovedStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.DiffRemoved)
}

// DiffModifiedStyle returns the style for modified lines
func (s *Screen) DiffModifiedStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.DiffModified)
}

// DiffContextStyle returns the style for unchanged lines
func (s *Screen) DiffContextStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.DiffContext)
}

// DiffHeaderStyle returns the style for diff pane headers
func (s *Screen) DiffHeaderStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.DiffHeader).Bold(true)
}

// StatusModeStyle returns the style for the mode indicator
func (s *Screen) StatusModeStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.StatusMode).Bold(true)
}

// StatusMessageStyle returns the style for status bar messages
func (s *Screen) StatusMessageStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.StatusMessage)
}

// HeaderStyle returns the style for the title bar
func (s *Screen) HeaderStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(s.Theme.Colors.HeaderTitle).Bold(true)
}
