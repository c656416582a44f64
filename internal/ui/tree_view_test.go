package ui

import (
	"testing"

	"github.com/jsonlens/jsonlens/internal/tree"
)

func buildTreeView(t *testing.T) *TreeView {
	t.Helper()
	v := searchFixture(t)
	return NewTreeView(tree.New(v, 2))
}

func TestTreeViewCollapseAllKeepsRootOpen(t *testing.T) {
	tv := buildTreeView(t)

	tv.ExpandAll()
	tv.CollapseAll()

	// the root row plus its two immediate children stay visible
	if got := tv.VisibleCount(); got != 3 {
		t.Errorf("VisibleCount after CollapseAll = %d, want 3", got)
	}
	if !tv.Root().IsExpanded() {
		t.Error("root must stay expanded after CollapseAll")
	}
}

func TestTreeViewSelectNextPrev(t *testing.T) {
	tv := buildTreeView(t)

	tv.SelectNext()
	if n := tv.Selected(); n == nil || n.Key != "title" {
		t.Errorf("first SelectNext should land on title, got %v", n)
	}
	tv.SelectPrev()
	if n := tv.Selected(); n == nil || n.Key != "" {
		t.Errorf("SelectPrev should return to the root, got %v", n)
	}
}
