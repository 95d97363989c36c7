package pageindex

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AggregatorID is the node id of the synthetic root that holds the top-level
// sections of a document with zero or several of them.
const AggregatorID = "0"

// Node represents one heading-delimited section of a document.
// Children are owned by their parent and kept in document order.
type Node struct {
	NodeID   string  `json:"node_id" yaml:"node_id"`
	Title    string  `json:"title" yaml:"title"`
	Depth    int     `json:"depth" yaml:"depth"`
	Text     string  `json:"text" yaml:"text"`
	Summary  *string `json:"summary" yaml:"summary"`
	Children []*Node `json:"children" yaml:"children"`
}

// Tree is the parse result for one document.
type Tree struct {
	DocID       string  `json:"doc_id" yaml:"doc_id"`
	Title       string  `json:"title" yaml:"title"`
	Description *string `json:"description" yaml:"description"`
	Root        *Node   `json:"root" yaml:"root"`
}

func newNode(nodeID, title string, depth int, text string) *Node {
	return &Node{
		NodeID:   nodeID,
		Title:    title,
		Depth:    depth,
		Text:     text,
		Children: []*Node{},
	}
}

// IsAggregator reports whether n is the synthetic root.
func (n *Node) IsAggregator() bool {
	return n != nil && n.NodeID == AggregatorID
}

// Walk traverses the subtree in preorder, calling fn for each node.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Find returns the first node in preorder whose id equals nodeID.
func (n *Node) Find(nodeID string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	if n.NodeID == nodeID {
		return n, true
	}
	for _, child := range n.Children {
		if found, ok := child.Find(nodeID); ok {
			return found, true
		}
	}
	return nil, false
}

// Flatten returns the subtree as a preorder slice, n included.
func (n *Node) Flatten() []*Node {
	var nodes []*Node
	n.Walk(func(node *Node) {
		nodes = append(nodes, node)
	})
	return nodes
}

// IDs returns the ids of the subtree in preorder, n included.
func (n *Node) IDs() []string {
	var ids []string
	n.Walk(func(node *Node) {
		ids = append(ids, node.NodeID)
	})
	return ids
}

// NewTree wraps an already built root.
func NewTree(docID, title string, root *Node) *Tree {
	return &Tree{
		DocID: docID,
		Title: title,
		Root:  root,
	}
}

// Find looks up a node anywhere in the tree by exact id.
func (t *Tree) Find(nodeID string) (*Node, bool) {
	return t.Root.Find(nodeID)
}

// AllNodes returns every real section in document order.
// The synthetic aggregator root is left out.
func (t *Tree) AllNodes() []*Node {
	nodes := []*Node{}
	for _, top := range t.sections() {
		nodes = append(nodes, top.Flatten()...)
	}
	return nodes
}

// AllNodeIDs returns the ids of every real section in document order.
func (t *Tree) AllNodeIDs() []string {
	ids := []string{}
	for _, top := range t.sections() {
		ids = append(ids, top.IDs()...)
	}
	return ids
}

// sections returns the top-level real sections of the tree.
func (t *Tree) sections() []*Node {
	if t.Root == nil {
		return nil
	}
	if t.Root.IsAggregator() {
		return t.Root.Children
	}
	return []*Node{t.Root}
}

// JSON returns the pretty-printed serialized form of the tree.
func (t *Tree) JSON() (string, error) {
	b, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal tree %q: %w", t.DocID, err)
	}
	return string(b), nil
}

// YAML returns the tree encoded as YAML with the same field names as JSON.
func (t *Tree) YAML() (string, error) {
	b, err := yaml.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("marshal tree %q: %w", t.DocID, err)
	}
	return string(b), nil
}

// String returns the JSON form for debugging.
func (t *Tree) String() string {
	s, _ := t.JSON()
	return s
}

// UnmarshalTree decodes the JSON form produced by Tree.JSON.
func UnmarshalTree(data []byte) (*Tree, error) {
	var t Tree
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unmarshal tree: %w", err)
	}
	t.normalize()
	return &t, nil
}

// UnmarshalTreeYAML decodes the YAML form produced by Tree.YAML.
func UnmarshalTreeYAML(data []byte) (*Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unmarshal tree: %w", err)
	}
	t.normalize()
	return &t, nil
}

// normalize restores empty child lists so a decoded tree encodes the same way
// as a parsed one.
func (t *Tree) normalize() {
	if t.Root == nil {
		t.Root = newNode(AggregatorID, "", 0, "")
		return
	}
	t.Root.Walk(func(n *Node) {
		if n.Children == nil {
			n.Children = []*Node{}
		}
	})
}
