// Package tree provides a lazily-materialized navigable view over a JSON value.
package tree

import (
	"fmt"
	"strings"

	"github.com/jsonlens/jsonlens/internal/model"
)

// DefaultFoldDepth is used when a tree is built without an explicit fold depth
const DefaultFoldDepth = 2

// Node wraps one position in a JSON value with navigation metadata.
// Children are not built until first accessed, so a tree over a large
// document only pays for the subtrees that are actually visited.
type Node struct {
	Key           string // field name or "[i]"; empty for the root
	Value         *model.Value
	Depth         int
	IndexInParent int // -1 for the root
	IsLast        bool
	Parent        *Node

	expanded     bool
	foldDepth    int
	materialized bool
	children     []*Node
}

// New builds the root node for a value. Nodes at depth < defaultFoldDepth
// start expanded; everything deeper starts collapsed.
func New(v *model.Value, defaultFoldDepth int) *Node {
	return &Node{
		Value:         v,
		IndexInParent: -1,
		IsLast:        true,
		expanded:      0 < defaultFoldDepth,
		foldDepth:     defaultFoldDepth,
	}
}

// Children returns this node's child nodes, materializing them on first
// access. Object children come in sorted key order, array children in
// source order. Scalars always return nil.
func (n *Node) Children() []*Node {
	if n.materialized {
		return n.children
	}
	if !n.Value.IsContainer() {
		return nil
	}
	n.children = n.buildChildren()
	n.materialized = true
	return n.children
}

func (n *Node) buildChildren() []*Node {
	var children []*Node
	switch n.Value.Kind() {
	case model.KindObject:
		keys := n.Value.SortedKeys()
		children = make([]*Node, 0, len(keys))
		for i, k := range keys {
			child, _ := n.Value.Field(k)
			children = append(children, n.newChild(k, child, i, i == len(keys)-1))
		}
	case model.KindArray:
		elems := n.Value.Elements()
		children = make([]*Node, 0, len(elems))
		for i, e := range elems {
			children = append(children, n.newChild(fmt.Sprintf("[%d]", i), e, i, i == len(elems)-1))
		}
	}
	return children
}

func (n *Node) newChild(key string, v *model.Value, index int, last bool) *Node {
	depth := n.Depth + 1
	return &Node{
		Key:           key,
		Value:         v,
		Depth:         depth,
		IndexInParent: index,
		IsLast:        last,
		Parent:        n,
		expanded:      depth < n.foldDepth,
		foldDepth:     n.foldDepth,
	}
}

// IsExpanded reports whether this node's children are shown in traversal
func (n *Node) IsExpanded() bool { return n.expanded }

// SetExpanded sets the expand flag without materializing children
func (n *Node) SetExpanded(expanded bool) { n.expanded = expanded }

// ToggleExpanded flips the expand flag
func (n *Node) ToggleExpanded() { n.expanded = !n.expanded }

// ExpandAll expands the entire subtree. This materializes every node below
// and is the expensive path; interactive expansion should toggle single
// nodes instead.
func (n *Node) ExpandAll() {
	n.expanded = true
	for _, c := range n.Children() {
		c.ExpandAll()
	}
}

// CollapseAll collapses the entire subtree. Like ExpandAll this visits
// every node so lazily-built children keep a consistent flag.
func (n *Node) CollapseAll() {
	n.expanded = false
	for _, c := range n.Children() {
		c.CollapseAll()
	}
}

// AllNodes returns the nodes reachable under currently-expanded ancestors
// in depth-first pre-order. The receiver is always included.
func (n *Node) AllNodes() []*Node {
	nodes := []*Node{n}
	if !n.expanded {
		return nodes
	}
	for _, c := range n.Children() {
		nodes = append(nodes, c.AllNodes()...)
	}
	return nodes
}

// AllNodesIncludingCollapsed returns every node of the subtree in
// depth-first pre-order regardless of expand state. Materializes the whole
// subtree; use only for precomputation passes.
func (n *Node) AllNodesIncludingCollapsed() []*Node {
	nodes := []*Node{n}
	for _, c := range n.Children() {
		nodes = append(nodes, c.AllNodesIncludingCollapsed()...)
	}
	return nodes
}

// NodeAt walks the child-index path from this node, materializing only the
// levels on the path. Returns nil on any out-of-range index.
func (n *Node) NodeAt(indices []int) *Node {
	cur := n
	for _, idx := range indices {
		children := cur.Children()
		if idx < 0 || idx >= len(children) {
			return nil
		}
		cur = children[idx]
	}
	return cur
}

// ExpandPathTo expands every ancestor of target up to and including this
// node, so target is reachable in AllNodes. target keeps its own expand
// state: revealing a collapsed container must not open it. target must
// already belong to this node's subtree.
func (n *Node) ExpandPathTo(target *Node) {
	if target == n {
		return
	}
	for cur := target.Parent; cur != nil; cur = cur.Parent {
		cur.expanded = true
		if cur == n {
			return
		}
	}
}

// Matches reports whether this single node matches the lowercased query:
// the key contains it, or for scalar values the canonical string form
// contains it. Containers never match through their contents.
func (n *Node) Matches(query string) bool {
	if query == "" {
		return false
	}
	if n.Key != "" && strings.Contains(strings.ToLower(n.Key), query) {
		return true
	}
	if n.Value.IsContainer() {
		return false
	}
	return strings.Contains(strings.ToLower(n.Value.ScalarString()), query)
}
