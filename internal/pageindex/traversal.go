package pageindex

import (
	"strings"
)

// NodeResult is the read view of a node returned by the lookup helpers.
type NodeResult struct {
	NodeID     string   `json:"node_id"`
	Title      string   `json:"title"`
	Text       string   `json:"text"`
	Summary    *string  `json:"summary"`
	Depth      int      `json:"depth"`
	Breadcrumb []string `json:"breadcrumb"`
}

// ChildRef identifies a direct child of a node.
type ChildRef struct {
	NodeID string `json:"node_id"`
	Title  string `json:"title"`
}

// GetNode returns a node with its own body text and its breadcrumb.
func GetNode(tree *Tree, nodeID string) (*NodeResult, bool) {
	node, ok := tree.Find(nodeID)
	if !ok {
		return nil, false
	}
	return newNodeResult(tree, node, node.Text), true
}

// GetNodeWithChildren is like GetNode but the text also holds every
// descendant section, each introduced by a synthetic heading line.
func GetNodeWithChildren(tree *Tree, nodeID string) (*NodeResult, bool) {
	node, ok := tree.Find(nodeID)
	if !ok {
		return nil, false
	}
	return newNodeResult(tree, node, collectSubtreeText(node)), true
}

// GetChildren lists the direct children of a node. A leaf and an unknown
// id both yield an empty slice.
func GetChildren(tree *Tree, nodeID string) []ChildRef {
	refs := []ChildRef{}
	node, ok := tree.Find(nodeID)
	if !ok {
		return refs
	}
	for _, child := range node.Children {
		refs = append(refs, ChildRef{NodeID: child.NodeID, Title: child.Title})
	}
	return refs
}

// GetTreeOutline renders one line per real node, e.g.:
//
//	[1] Introduction
//	  [1.1] Background
//	  [1.2] Goals
func GetTreeOutline(tree *Tree) string {
	var lines []string
	tree.Root.Walk(func(n *Node) {
		if n.IsAggregator() {
			return
		}
		lines = append(lines, OutlineIndent(n.Depth)+"["+n.NodeID+"] "+n.Title)
	})
	return strings.Join(lines, "\n")
}

// OutlineIndent returns the leading whitespace for a node at depth in the outline.
func OutlineIndent(depth int) string {
	return strings.Repeat("  ", max(depth-1, 0))
}

// Breadcrumb returns the titles along the path from the outermost section
// down to nodeID. Prefixes that resolve to no node are skipped.
func Breadcrumb(tree *Tree, nodeID string) []string {
	parts := strings.Split(nodeID, ".")
	crumbs := []string{}
	for i := 1; i <= len(parts); i++ {
		if node, ok := tree.Find(strings.Join(parts[:i], ".")); ok {
			crumbs = append(crumbs, node.Title)
		}
	}
	return crumbs
}

func newNodeResult(tree *Tree, node *Node, text string) *NodeResult {
	return &NodeResult{
		NodeID:     node.NodeID,
		Title:      node.Title,
		Text:       text,
		Summary:    node.Summary,
		Depth:      node.Depth,
		Breadcrumb: Breadcrumb(tree, node.NodeID),
	}
}

// collectSubtreeText joins a node's body with each child's heading line and
// expanded text, dropping empty fragments.
func collectSubtreeText(node *Node) string {
	parts := []string{node.Text}
	for _, child := range node.Children {
		parts = append(parts, strings.Repeat(string(HeadingMarker), child.Depth)+" "+child.Title)
		parts = append(parts, collectSubtreeText(child))
	}

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, "\n\n")
}
