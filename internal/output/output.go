package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/pageindex/internal/pageindex"
)

var (
	// titleStyle for bold red headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("160"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// idStyle for node ids
	idStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	// topStyle for depth-1 section titles
	topStyle = lipgloss.NewStyle().
			Bold(true)

	// boxStyle for summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1)
)

// Printer writes tree views to w, styled unless Plain is set.
type Printer struct {
	w     io.Writer
	Plain bool
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, plain bool) *Printer {
	return &Printer{w: w, Plain: plain}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if p.Plain {
		return s
	}
	return style.Render(s)
}

// Outline writes the outline of tree, one node per line.
func (p *Printer) Outline(tree *pageindex.Tree) {
	if p.Plain {
		if outline := pageindex.GetTreeOutline(tree); outline != "" {
			fmt.Fprintln(p.w, outline)
		}
		return
	}

	for _, n := range tree.AllNodes() {
		title := n.Title
		if n.Depth == 1 {
			title = topStyle.Render(title)
		}
		fmt.Fprintf(p.w, "%s%s %s\n", pageindex.OutlineIndent(n.Depth), idStyle.Render("["+n.NodeID+"]"), title)
	}
}

// NodeIDs writes one id per line.
func (p *Printer) NodeIDs(ids []string) {
	for _, id := range ids {
		fmt.Fprintln(p.w, id)
	}
}

// Node writes a node's breadcrumb, header and text.
func (p *Printer) Node(res *pageindex.NodeResult) {
	fmt.Fprintln(p.w, p.render(dimStyle, strings.Join(res.Breadcrumb, " > ")))
	fmt.Fprintf(p.w, "%s %s\n", p.render(idStyle, "["+res.NodeID+"]"), p.render(titleStyle, res.Title))
	fmt.Fprintln(p.w, p.render(dimStyle, fmt.Sprintf("depth %d, ~%s tokens", res.Depth, formatNumber(pageindex.CountTokens(res.Text)))))
	if res.Summary != nil {
		fmt.Fprintf(p.w, "%s %s\n", p.render(dimStyle, "Summary:"), *res.Summary)
	}
	if res.Text != "" {
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, res.Text)
	}
}

// Children writes one "[id] title" line per child.
func (p *Printer) Children(refs []pageindex.ChildRef) {
	for _, c := range refs {
		fmt.Fprintf(p.w, "%s %s\n", p.render(idStyle, "["+c.NodeID+"]"), c.Title)
	}
}

// Summary writes a box with document statistics.
func (p *Printer) Summary(tree *pageindex.Tree) {
	nodes := tree.AllNodes()
	maxDepth := 0
	for _, n := range nodes {
		maxDepth = max(maxDepth, n.Depth)
	}

	line1 := fmt.Sprintf("%s %s  %s %s",
		p.render(dimStyle, "Doc:"), tree.DocID,
		p.render(dimStyle, "Title:"), p.render(titleStyle, tree.Title),
	)
	line2 := fmt.Sprintf("%s %d  %s %d  %s %s",
		p.render(dimStyle, "Sections:"), len(nodes),
		p.render(dimStyle, "Max depth:"), maxDepth,
		p.render(dimStyle, "Tokens:"), formatNumber(pageindex.SubtreeTokens(tree.Root)),
	)

	content := line1 + "\n" + line2
	if p.Plain {
		fmt.Fprintln(p.w, content)
		return
	}
	fmt.Fprintln(p.w, boxStyle.Render(content))
}

// formatNumber adds commas to large numbers for readability
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%d,%03d", n/1000, n%1000)
	}
	return fmt.Sprintf("%d,%03d,%03d", n/1000000, (n/1000)%1000, n%1000)
}
