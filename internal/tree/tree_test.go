package tree

import (
	"testing"

	"github.com/jsonlens/jsonlens/internal/model"
)

const fixture = `{
	"config": {"debug": true, "level": {"min": 1, "max": 9}},
	"items": [10, 20, {"name": "third"}],
	"title": "example"
}`

func buildTree(t *testing.T) *Node {
	t.Helper()
	v, err := model.Parse([]byte(fixture))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return New(v, DefaultFoldDepth)
}

func TestChildrenOrder(t *testing.T) {
	root := buildTree(t)

	children := root.Children()
	wantKeys := []string{"config", "items", "title"}
	if len(children) != len(wantKeys) {
		t.Fatalf("got %d children, want %d", len(children), len(wantKeys))
	}
	for i, k := range wantKeys {
		if children[i].Key != k {
			t.Errorf("children[%d].Key = %q, want %q", i, children[i].Key, k)
		}
	}

	items := children[1].Children()
	wantLabels := []string{"[0]", "[1]", "[2]"}
	for i, label := range wantLabels {
		if items[i].Key != label {
			t.Errorf("array child %d key = %q, want %q", i, items[i].Key, label)
		}
	}
	if !items[2].IsLast {
		t.Error("last array child should have IsLast set")
	}
	if items[0].IsLast {
		t.Error("first array child should not have IsLast set")
	}
}

func TestLazyMaterialization(t *testing.T) {
	root := buildTree(t)

	// AllNodes only walks expanded nodes, so subtrees below the fold
	// depth must stay unmaterialized.
	root.AllNodes()

	config := root.Children()[0]
	if !config.materialized {
		t.Error("depth-1 container under an expanded parent should be materialized")
	}
	level := config.Children()[1]
	if level.Key != "level" {
		t.Fatalf("expected level child, got %q", level.Key)
	}
	if level.materialized {
		t.Error("collapsed depth-2 container should not be materialized yet")
	}

	// First access builds them exactly once.
	first := level.Children()
	second := level.Children()
	if len(first) != 2 {
		t.Fatalf("level children = %d, want 2", len(first))
	}
	if first[0] != second[0] {
		t.Error("Children must return the same nodes on repeat access")
	}
}

func TestFoldDepth(t *testing.T) {
	root := buildTree(t)

	if !root.IsExpanded() {
		t.Error("root should start expanded with fold depth 2")
	}
	config := root.Children()[0]
	if !config.IsExpanded() {
		t.Error("depth-1 container should start expanded")
	}
	level := config.Children()[1]
	if level.IsExpanded() {
		t.Error("depth-2 container should start collapsed")
	}

	zero := New(root.Value, 0)
	if zero.IsExpanded() {
		t.Error("fold depth 0 should collapse even the root")
	}
}

func TestAllNodesRespectsExpandState(t *testing.T) {
	root := buildTree(t)

	// depth 0: root. depth 1: config, items, title. depth 2: debug, level,
	// [0], [1], [2]. level and [2] are collapsed so nothing deeper appears.
	nodes := root.AllNodes()
	if len(nodes) != 9 {
		t.Fatalf("visible nodes = %d, want 9", len(nodes))
	}

	// Collapsing a container hides its subtree.
	config := root.Children()[0]
	config.SetExpanded(false)
	nodes = root.AllNodes()
	if len(nodes) != 7 {
		t.Errorf("visible nodes after collapse = %d, want 7", len(nodes))
	}

	// Expanding a deep container reveals it.
	config.SetExpanded(true)
	level := config.Children()[1]
	level.SetExpanded(true)
	nodes = root.AllNodes()
	if len(nodes) != 11 {
		t.Errorf("visible nodes after expand = %d, want 11", len(nodes))
	}
}

// Toggling a single node must change the visible list by exactly that
// node's descendant range: splicing the range into the captured list gives
// the same result as recomputing from scratch.
func TestIncrementalTraversalEquivalence(t *testing.T) {
	root := buildTree(t)

	before := root.AllNodes()
	level := root.NodeAt([]int{0, 1})
	if level == nil || level.IsExpanded() {
		t.Fatal("fixture should have a collapsed level node")
	}

	pos := -1
	for i, n := range before {
		if n == level {
			pos = i
		}
	}
	if pos < 0 {
		t.Fatal("level node not in visible list")
	}

	level.SetExpanded(true)
	descendants := level.AllNodes()[1:]

	spliced := make([]*Node, 0, len(before)+len(descendants))
	spliced = append(spliced, before[:pos+1]...)
	spliced = append(spliced, descendants...)
	spliced = append(spliced, before[pos+1:]...)

	recomputed := root.AllNodes()
	if len(spliced) != len(recomputed) {
		t.Fatalf("spliced %d nodes, recomputed %d", len(spliced), len(recomputed))
	}
	for i := range spliced {
		if spliced[i] != recomputed[i] {
			t.Fatalf("node %d differs: %q vs %q", i, spliced[i].Key, recomputed[i].Key)
		}
	}

	// Collapsing again removes exactly that range.
	level.SetExpanded(false)
	again := root.AllNodes()
	if len(again) != len(before) {
		t.Fatalf("collapse left %d nodes, want %d", len(again), len(before))
	}
	for i := range again {
		if again[i] != before[i] {
			t.Fatalf("node %d differs after collapse", i)
		}
	}
}

func TestExpandCollapseAll(t *testing.T) {
	root := buildTree(t)

	root.ExpandAll()
	all := root.AllNodes()
	complete := root.AllNodesIncludingCollapsed()
	if len(all) != len(complete) {
		t.Errorf("after ExpandAll visible = %d, complete = %d", len(all), len(complete))
	}

	root.CollapseAll()
	if nodes := root.AllNodes(); len(nodes) != 1 {
		t.Errorf("after CollapseAll visible = %d, want 1", len(nodes))
	}
}

func TestNodeAt(t *testing.T) {
	root := buildTree(t)

	tests := []struct {
		name    string
		path    []int
		wantKey string
		wantNil bool
	}{
		{"empty path is root", nil, "", false},
		{"object child by sorted position", []int{0}, "config", false},
		{"deep path", []int{0, 1, 0}, "max", false},
		{"array element", []int{1, 2}, "[2]", false},
		{"into array object", []int{1, 2, 0}, "name", false},
		{"index too large", []int{5}, "", true},
		{"negative index", []int{-1}, "", true},
		{"path through scalar", []int{2, 0}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := root.NodeAt(tt.path)
			if tt.wantNil {
				if n != nil {
					t.Errorf("NodeAt(%v) = %v, want nil", tt.path, n.Key)
				}
				return
			}
			if n == nil {
				t.Fatalf("NodeAt(%v) = nil", tt.path)
			}
			if n.Key != tt.wantKey {
				t.Errorf("NodeAt(%v).Key = %q, want %q", tt.path, n.Key, tt.wantKey)
			}
		})
	}
}

func TestExpandPathTo(t *testing.T) {
	root := buildTree(t)

	target := root.NodeAt([]int{0, 1, 1}) // config.level.min
	if target == nil {
		t.Fatal("fixture path not found")
	}

	visible := func() bool {
		for _, n := range root.AllNodes() {
			if n == target {
				return true
			}
		}
		return false
	}

	if visible() {
		t.Fatal("target should start hidden under the collapsed level node")
	}

	root.ExpandPathTo(target)
	if !visible() {
		t.Error("target should be reachable after ExpandPathTo")
	}
}

func TestExpandPathToKeepsTargetCollapsed(t *testing.T) {
	root := buildTree(t)

	target := root.NodeAt([]int{0, 1}) // config.level, collapsed at fold depth 2
	if target == nil {
		t.Fatal("fixture path not found")
	}
	if target.IsExpanded() {
		t.Fatal("fixture level node should start collapsed")
	}

	root.ExpandPathTo(target)

	found := false
	for _, n := range root.AllNodes() {
		if n == target {
			found = true
		}
		if n.Parent == target {
			t.Errorf("revealing must not expose the target's children, saw %q", n.Key)
		}
	}
	if !found {
		t.Error("target should be visible after ExpandPathTo")
	}
	if target.IsExpanded() {
		t.Error("revealing a collapsed container must not expand it")
	}
}

func TestMatches(t *testing.T) {
	root := buildTree(t)

	tests := []struct {
		name  string
		path  []int
		query string
		want  bool
	}{
		{"key match", []int{2}, "tit", true},
		{"key match is case-insensitive on node text", []int{2}, "title", true},
		{"scalar value match", []int{2}, "example", true},
		{"number value match", []int{1, 0}, "10", true},
		{"bool value match", []int{0, 0}, "true", true},
		{"container not matched by content", []int{0}, "debug", false},
		{"container key still matches", []int{0}, "conf", true},
		{"array label match", []int{1, 1}, "[1]", true},
		{"no match", []int{2}, "zzz", false},
		{"empty query", []int{2}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := root.NodeAt(tt.path)
			if n == nil {
				t.Fatalf("NodeAt(%v) = nil", tt.path)
			}
			if got := n.Matches(tt.query); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
