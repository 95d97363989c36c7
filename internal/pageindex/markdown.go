package pageindex

import (
	"strconv"
	"strings"
)

// HeadingMarker is the character that introduces a heading line.
const HeadingMarker = '#'

// block is one heading with the body text that follows it, before tree assembly.
type block struct {
	depth int
	title string
	body  string
}

// ParseMarkdown builds a Tree from heading-structured text.
// It never fails: lines that are not headings become body text of the
// current section, and text before the first heading is dropped.
func ParseMarkdown(docID, markdown string) *Tree {
	blocks, docTitle := extractBlocks(markdown)
	if docTitle == "" {
		docTitle = docID
	}
	return NewTree(docID, docTitle, buildTree(blocks))
}

// extractBlocks splits the input at heading lines. The returned title is the
// first heading's text when that heading has depth 1, and empty otherwise.
func extractBlocks(markdown string) ([]block, string) {
	var (
		blocks   []block
		docTitle string
		current  block
		body     []string
		started  bool
	)

	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSuffix(line, "\r")

		depth, title, ok := parseHeading(line)
		if !ok {
			if started {
				body = append(body, line)
			}
			continue
		}

		if started {
			current.body = strings.TrimSpace(strings.Join(body, "\n"))
			blocks = append(blocks, current)
		} else if depth == 1 {
			docTitle = title
		}

		current = block{depth: depth, title: title}
		body = body[:0]
		started = true
	}

	if started {
		current.body = strings.TrimSpace(strings.Join(body, "\n"))
		blocks = append(blocks, current)
	}

	return blocks, docTitle
}

// parseHeading reports the depth and title of a heading line.
// A line is a heading when it starts with one or more markers followed by
// non-blank text.
func parseHeading(line string) (int, string, bool) {
	depth := 0
	for depth < len(line) && line[depth] == HeadingMarker {
		depth++
	}
	if depth == 0 {
		return 0, "", false
	}

	title := strings.TrimSpace(line[depth:])
	if title == "" {
		return 0, "", false
	}
	return depth, title, true
}

// buildTree nests blocks by depth and assigns positional ids.
//
// Counters are kept per depth and zeroed below the current depth on every
// heading, so a skipped level shows up as a 0 component in the id. Open
// sections sit on a stack above a synthetic root and are attached to their
// parent once a heading at their depth or shallower appears.
func buildTree(blocks []block) *Node {
	root := newNode(AggregatorID, "", 0, "")
	stack := []*Node{root}
	counters := make([]int, 1)

	closeTop := func() {
		child := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent := stack[len(stack)-1]
		parent.Children = append(parent.Children, child)
	}

	for _, b := range blocks {
		for len(counters) <= b.depth {
			counters = append(counters, 0)
		}
		counters[b.depth]++
		for i := b.depth + 1; i < len(counters); i++ {
			counters[i] = 0
		}

		node := newNode(nodeIDFromCounters(counters[1:b.depth+1]), b.title, b.depth, b.body)

		for len(stack) > 1 && stack[len(stack)-1].Depth >= b.depth {
			closeTop()
		}
		stack = append(stack, node)
	}

	for len(stack) > 1 {
		closeTop()
	}

	// A single top-level section becomes the root itself.
	if len(root.Children) == 1 {
		return root.Children[0]
	}
	return root
}

func nodeIDFromCounters(counters []int) string {
	parts := make([]string, len(counters))
	for i, c := range counters {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}
