package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/jsonlens/jsonlens/internal/model"
	"github.com/jsonlens/jsonlens/internal/search"
	"github.com/jsonlens/jsonlens/internal/tree"
)

// TreeView renders a lazy JSON tree and tracks selection and scrolling
type TreeView struct {
	root         *tree.Node
	visible      []*tree.Node
	selectedIdx  int
	scrollOffset int
	matcher      *search.Matcher
}

// NewTreeView creates a tree view over the given root node
func NewTreeView(root *tree.Node) *TreeView {
	tv := &TreeView{root: root}
	tv.Refresh()
	return tv
}

// Refresh recomputes the visible node list after expand state changes
func (tv *TreeView) Refresh() {
	tv.visible = tv.root.AllNodes()
	if tv.selectedIdx >= len(tv.visible) {
		tv.selectedIdx = len(tv.visible) - 1
	}
	if tv.selectedIdx < 0 {
		tv.selectedIdx = 0
	}
}

// Root returns the root node
func (tv *TreeView) Root() *tree.Node {
	return tv.root
}

// SetMatcher sets the search matcher used to highlight rows, nil disables it
func (tv *TreeView) SetMatcher(m *search.Matcher) {
	tv.matcher = m
}

// Selected returns the currently selected node, or nil when the tree is empty
func (tv *TreeView) Selected() *tree.Node {
	if tv.selectedIdx < 0 || tv.selectedIdx >= len(tv.visible) {
		return nil
	}
	return tv.visible[tv.selectedIdx]
}

// VisibleCount returns the number of currently visible rows
func (tv *TreeView) VisibleCount() int {
	return len(tv.visible)
}

// SelectNext moves the selection one row down
func (tv *TreeView) SelectNext() {
	if tv.selectedIdx < len(tv.visible)-1 {
		tv.selectedIdx++
	}
}

// SelectPrev moves the selection one row up
func (tv *TreeView) SelectPrev() {
	if tv.selectedIdx > 0 {
		tv.selectedIdx--
	}
}

// SelectFirst jumps to the first row
func (tv *TreeView) SelectFirst() {
	tv.selectedIdx = 0
}

// SelectLast jumps to the last row
func (tv *TreeView) SelectLast() {
	if len(tv.visible) > 0 {
		tv.selectedIdx = len(tv.visible) - 1
	}
}

// PageDown moves the selection a page down
func (tv *TreeView) PageDown(pageSize int) {
	tv.selectedIdx += pageSize
	if tv.selectedIdx >= len(tv.visible) {
		tv.selectedIdx = len(tv.visible) - 1
	}
	if tv.selectedIdx < 0 {
		tv.selectedIdx = 0
	}
}

// PageUp moves the selection a page up
func (tv *TreeView) PageUp(pageSize int) {
	tv.selectedIdx -= pageSize
	if tv.selectedIdx < 0 {
		tv.selectedIdx = 0
	}
}

// ExpandSelected expands the selected node
func (tv *TreeView) ExpandSelected() {
	if n := tv.Selected(); n != nil && n.Value.IsContainer() {
		n.SetExpanded(true)
		tv.Refresh()
	}
}

// CollapseSelected collapses the selected node, or moves to the parent
// when the node is already collapsed
func (tv *TreeView) CollapseSelected() {
	n := tv.Selected()
	if n == nil {
		return
	}
	if n.Value.IsContainer() && n.IsExpanded() {
		n.SetExpanded(false)
		tv.Refresh()
		return
	}
	if n.Parent != nil {
		tv.SelectNode(n.Parent)
	}
}

// ToggleSelected toggles the expand state of the selected node
func (tv *TreeView) ToggleSelected() {
	if n := tv.Selected(); n != nil && n.Value.IsContainer() {
		n.ToggleExpanded()
		tv.Refresh()
	}
}

// ExpandAll expands every container in the tree
func (tv *TreeView) ExpandAll() {
	tv.root.ExpandAll()
	tv.Refresh()
}

// CollapseAll collapses every container except the root
func (tv *TreeView) CollapseAll() {
	tv.root.CollapseAll()
	tv.root.SetExpanded(true)
	tv.Refresh()
}

// SelectNode expands ancestors as needed and moves the selection to target
func (tv *TreeView) SelectNode(target *tree.Node) {
	tv.root.ExpandPathTo(target)
	tv.Refresh()
	for i, n := range tv.visible {
		if n == target {
			tv.selectedIdx = i
			return
		}
	}
}

// SelectPath selects the node at the given child index path
func (tv *TreeView) SelectPath(path []int) bool {
	n := tv.root.NodeAt(path)
	if n == nil {
		return false
	}
	tv.SelectNode(n)
	return true
}

// Render draws the tree into the given region of the screen
func (tv *TreeView) Render(screen *Screen, x, y, width, height int) {
	tv.ensureVisible(height)

	for row := 0; row < height; row++ {
		idx := tv.scrollOffset + row
		if idx >= len(tv.visible) {
			break
		}
		tv.renderRow(screen, tv.visible[idx], x, y+row, width, idx == tv.selectedIdx)
	}
}

// ensureVisible scrolls so the selected row stays on screen
func (tv *TreeView) ensureVisible(height int) {
	if height <= 0 {
		return
	}
	if tv.selectedIdx < tv.scrollOffset {
		tv.scrollOffset = tv.selectedIdx
	}
	if tv.selectedIdx >= tv.scrollOffset+height {
		tv.scrollOffset = tv.selectedIdx - height + 1
	}
	if tv.scrollOffset < 0 {
		tv.scrollOffset = 0
	}
}

func (tv *TreeView) renderRow(screen *Screen, n *tree.Node, x, y, width int, selected bool) {
	if selected {
		style := screen.TreeSelectedStyle()
		for col := x; col < x+width; col++ {
			screen.SetCell(col, y, ' ', style)
		}
	}

	col := x + n.Depth*2

	// Expand marker for containers
	if n.Value.IsContainer() && n.Value.ChildCount() > 0 {
		arrow := '▶'
		arrowStyle := screen.TreeCollapsedArrowStyle()
		if n.IsExpanded() {
			arrow = '▼'
			arrowStyle = screen.TreeExpandedArrowStyle()
		}
		if selected {
			arrowStyle = screen.TreeSelectedStyle()
		}
		screen.SetCell(col, y, arrow, arrowStyle)
	}
	col += 2

	keyStyle := screen.TreeKeyStyle()
	valStyle := tv.valueStyle(screen, n.Value)
	if selected {
		keyStyle = screen.TreeSelectedStyle()
		valStyle = keyStyle
	} else if tv.matcher != nil && tv.matcher.MatchNode(n.Key, n.Value) {
		keyStyle = screen.SearchMatchStyle()
		valStyle = keyStyle
	}

	remaining := x + width - col
	if remaining <= 0 {
		return
	}

	label := n.Key
	if label != "" {
		screen.DrawStringLimited(col, y, label, remaining, keyStyle)
		col += StringWidth(TruncateToWidth(label, remaining))
		remaining = x + width - col
	}

	text := valueText(n)
	if text != "" && remaining > 2 {
		if label != "" {
			screen.DrawString(col, y, ": ", keyStyle)
			col += 2
			remaining -= 2
		}
		screen.DrawStringLimited(col, y, TruncateToWidthWithEllipsis(text, remaining), remaining, valStyle)
	}
}

// valueText returns the text shown after the key: the scalar value, or a
// child count summary for collapsed containers
func valueText(n *tree.Node) string {
	v := n.Value
	switch {
	case !v.IsContainer():
		if v.Kind() == model.KindString {
			return "\"" + v.StringVal() + "\""
		}
		return v.ScalarString()
	case n.IsExpanded():
		return ""
	case v.Kind() == model.KindObject:
		return fmt.Sprintf("{…%d}", v.ChildCount())
	default:
		return fmt.Sprintf("[…%d]", v.ChildCount())
	}
}

func (tv *TreeView) valueStyle(screen *Screen, v *model.Value) tcell.Style {
	switch v.Kind() {
	case model.KindString:
		return screen.TreeStringStyle()
	case model.KindNumber:
		return screen.TreeNumberStyle()
	case model.KindBool:
		return screen.TreeBoolStyle()
	case model.KindNull:
		return screen.TreeNullStyle()
	default:
		return screen.TreeConnectorStyle()
	}
}
