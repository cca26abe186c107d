package wikitext

import (
	"strings"

	"golang.org/x/net/html"
)

// Categories collects category labels seen while rendering, in first-seen
// order without duplicates. A nil *Categories discards everything.
type Categories struct {
	names []string
	seen  map[string]bool
}

// Add records a category name.
func (c *Categories) Add(name string) {
	if c == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" || c.seen[name] {
		return
	}
	if c.seen == nil {
		c.seen = map[string]bool{}
	}
	c.seen[name] = true
	c.names = append(c.names, name)
}

// Names returns the collected names.
func (c *Categories) Names() []string {
	if c == nil {
		return nil
	}
	return c.names
}

// blockTags start and end a line when rendered.
var blockTags = map[string]bool{
	"div": true, "p": true, "li": true, "dd": true, "dt": true, "ul": true, "ol": true,
	"dl": true, "table": true, "tr": true, "h1": true, "h2": true, "h3": true, "h4": true,
}

// Render renders nodes to clean display text. Category links found on the
// way, including those produced by template expansion, are added to cats.
func (e *Engine) Render(cats *Categories, nodes ...*Node) string {
	var b strings.Builder
	for _, n := range nodes {
		e.render(&b, cats, n, 0)
	}
	return Clean(b.String())
}

// RenderTitle renders a heading's title.
func (e *Engine) RenderTitle(cats *Categories, level *Node) string {
	return e.Render(cats, level.Title...)
}

func (e *Engine) render(b *strings.Builder, cats *Categories, n *Node, depth int) {
	if n == nil {
		return
	}
	children := func() {
		for _, c := range n.Children {
			e.render(b, cats, c, depth)
		}
	}
	switch n.Kind {
	case KindText:
		b.WriteString(n.Text)
	case KindTemplate:
		if depth > 2 {
			return
		}
		for _, c := range e.ExpandNode(n).Children {
			e.render(b, cats, c, depth+1)
		}
	case KindLink:
		if name, ok := e.categoryName(n.Target); ok {
			cats.Add(name)
			return
		}
		if e.isFile(n.Target) {
			return
		}
		children()
	case KindHTML:
		switch {
		case n.Name == "br":
			b.WriteByte('\n')
		case n.Name == "ref":
		case blockTags[n.Name]:
			b.WriteByte('\n')
			children()
			b.WriteByte('\n')
		default:
			children()
		}
	case KindList, KindTable:
		b.WriteByte('\n')
		children()
		b.WriteByte('\n')
	case KindListItem, KindTableRow:
		b.WriteByte('\n')
		children()
	case KindTableCell, KindTableHeaderCell:
		children()
		b.WriteByte(' ')
	case KindLevel:
		b.WriteByte('\n')
		for _, c := range n.Title {
			e.render(b, cats, c, depth)
		}
		b.WriteByte('\n')
		children()
	default:
		children()
	}
}

func (e *Engine) categoryName(target string) (string, bool) {
	for _, prefix := range e.ns.Category {
		if hasPrefixFold(target, prefix) {
			name, _, _ := strings.Cut(target[len(prefix):], "|")
			return strings.TrimSpace(name), true
		}
	}
	return "", false
}

func (e *Engine) isFile(target string) bool {
	for _, prefix := range e.ns.File {
		if hasPrefixFold(target, prefix) {
			return true
		}
	}
	return false
}

// Clean unescapes entities, turns non-breaking spaces into spaces,
// collapses runs of whitespace within each line and drops empty lines.
func Clean(s string) string {
	s = html.UnescapeString(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
