// Package pageindex builds a navigable tree index from heading-structured
// text and answers read-only queries over it.
//
// # Overview
//
// A document is split at lines that start with one or more '#' characters.
// Each heading becomes a Node holding the body text up to the next heading
// of any depth. Nodes are nested by heading depth and addressed by a dotted
// positional id such as "2.1.3", where each component is the node's 1-based
// position among the sections opened at that depth since the last shallower
// heading. A level skipped in the source shows up as a 0 component, so a
// depth-3 heading directly under "1" gets the id "1.0.1".
//
// When a document has exactly one top-level section, that section is the
// root of the tree. Otherwise the root is a synthetic node with id "0" and
// the top-level sections as its children.
//
// # Usage
//
//	tree := pageindex.FromMarkdown("guide", text)
//	fmt.Println(pageindex.GetTreeOutline(tree))
//	if res, ok := pageindex.GetNode(tree, "1.2"); ok {
//		fmt.Println(strings.Join(res.Breadcrumb, " > "))
//	}
//
// # Architecture
//
//   - types.go: Node and Tree, lookup and the JSON/YAML interchange forms
//   - markdown.go: segmentation into heading blocks and tree assembly
//   - traversal.go: breadcrumbs, outlines, child listings, subtree text
//   - loader.go: reading documents from files and readers
//   - tokens.go: token estimates for consumers budgeting context
//
// A Tree is never modified after parsing and may be read from several
// goroutines at once.
package pageindex
