package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/jsonlens/jsonlens/internal/diff"
	"github.com/jsonlens/jsonlens/internal/render"
)

// DiffView shows a side-by-side comparison of two documents
type DiffView struct {
	visible      bool
	scrollOffset int
	result       *render.Result
	counts       *diff.Result
	leftName     string
	rightName    string
}

// NewDiffView creates an empty, hidden diff view
func NewDiffView() *DiffView {
	return &DiffView{}
}

// Show makes the view visible with the given rendered comparison
func (d *DiffView) Show(res *render.Result, counts *diff.Result, leftName, rightName string) {
	d.result = res
	d.counts = counts
	d.leftName = leftName
	d.rightName = rightName
	d.scrollOffset = 0
	d.visible = true
}

// Hide closes the view
func (d *DiffView) Hide() {
	d.visible = false
}

// IsVisible returns whether the view is shown
func (d *DiffView) IsVisible() bool {
	return d.visible
}

// lineCount returns the taller of the two panes
func (d *DiffView) lineCount() int {
	if d.result == nil {
		return 0
	}
	n := len(d.result.LeftLines)
	if len(d.result.RightLines) > n {
		n = len(d.result.RightLines)
	}
	return n
}

// HandleKeyEvent processes key events while the view is visible.
// Returns true if the event was consumed.
func (d *DiffView) HandleKeyEvent(ev *tcell.EventKey, viewHeight int) bool {
	if !d.visible {
		return false
	}

	maxOffset := d.lineCount() - viewHeight
	if maxOffset < 0 {
		maxOffset = 0
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		d.Hide()
		return true
	case tcell.KeyUp:
		d.scrollBy(-1, maxOffset)
		return true
	case tcell.KeyDown:
		d.scrollBy(1, maxOffset)
		return true
	case tcell.KeyPgUp:
		d.scrollBy(-viewHeight, maxOffset)
		return true
	case tcell.KeyPgDn:
		d.scrollBy(viewHeight, maxOffset)
		return true
	case tcell.KeyCtrlU:
		d.scrollBy(-viewHeight/2, maxOffset)
		return true
	case tcell.KeyCtrlD:
		d.scrollBy(viewHeight/2, maxOffset)
		return true
	}

	switch ev.Rune() {
	case 'q':
		d.Hide()
		return true
	case 'j':
		d.scrollBy(1, maxOffset)
		return true
	case 'k':
		d.scrollBy(-1, maxOffset)
		return true
	case 'g':
		d.scrollOffset = 0
		return true
	case 'G':
		d.scrollOffset = maxOffset
		return true
	}

	return true
}

func (d *DiffView) scrollBy(delta, maxOffset int) {
	d.scrollOffset += delta
	if d.scrollOffset > maxOffset {
		d.scrollOffset = maxOffset
	}
	if d.scrollOffset < 0 {
		d.scrollOffset = 0
	}
}

// Render draws the two panes over the full screen
func (d *DiffView) Render(screen *Screen) {
	if !d.visible || d.result == nil {
		return
	}

	width, height := screen.Size()
	paneWidth := (width - 1) / 2
	headerStyle := screen.DiffHeaderStyle()
	sepStyle := screen.DiffContextStyle()

	// Header: file names and change counts
	screen.ClearLine(0, headerStyle)
	screen.DrawStringLimited(0, 0, d.leftName, paneWidth, headerStyle)
	screen.DrawStringLimited(paneWidth+1, 0, d.rightName, paneWidth, headerStyle)

	summary := fmt.Sprintf("+%d -%d ~%d", d.counts.AddedCount, d.counts.RemovedCount, d.counts.ModifiedCount)
	if d.counts.IsIdentical() {
		summary = "identical"
	}
	screen.DrawString(width-len(summary), 0, summary, headerStyle)

	bodyHeight := height - 1
	for row := 0; row < bodyHeight; row++ {
		y := row + 1
		idx := d.scrollOffset + row

		screen.SetCell(paneWidth, y, '│', sepStyle)

		if idx < len(d.result.LeftLines) {
			line := d.result.LeftLines[idx]
			screen.DrawStringLimited(0, y, line.Text, paneWidth, d.lineStyle(screen, line.Kind))
		}
		if idx < len(d.result.RightLines) {
			line := d.result.RightLines[idx]
			screen.DrawStringLimited(paneWidth+1, y, line.Text, paneWidth, d.lineStyle(screen, line.Kind))
		}
	}
}

// lineStyle maps a diff classification to a style
func (d *DiffView) lineStyle(screen *Screen, kind diff.Kind) tcell.Style {
	switch kind {
	case diff.Added:
		return screen.DiffAddedStyle()
	case diff.Removed:
		return screen.DiffRemovedStyle()
	case diff.Modified:
		return screen.DiffModifiedStyle()
	default:
		return screen.DiffContextStyle()
	}
}
