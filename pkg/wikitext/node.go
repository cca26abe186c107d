package wikitext

import (
	"strconv"
	"strings"
)

// Kind identifies the type of a document tree node.
type Kind int

// Node kinds produced by [Parse].
const (
	KindRoot Kind = iota
	KindLevel
	KindTemplate
	KindLink
	KindURL
	KindList
	KindListItem
	KindBold
	KindItalic
	KindHTML
	KindTable
	KindTableRow
	KindTableHeaderCell
	KindTableCell
	KindText
)

var kindNames = map[Kind]string{
	KindRoot:            "root",
	KindLevel:           "level",
	KindTemplate:        "template",
	KindLink:            "link",
	KindURL:             "url",
	KindList:            "list",
	KindListItem:        "list_item",
	KindBold:            "bold",
	KindItalic:          "italic",
	KindHTML:            "html",
	KindTable:           "table",
	KindTableRow:        "table_row",
	KindTableHeaderCell: "table_header_cell",
	KindTableCell:       "table_cell",
	KindText:            "text",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Param is one template or link argument. Positional arguments are keyed
// "1", "2", ... in order of appearance; named arguments keep their name.
type Param struct {
	Key   string
	Raw   string
	Value []*Node
}

// Node is an element of the parsed document tree.
//
// Headings (KindLevel) own every node that follows them up to the next
// heading of the same or a higher level, so section content and subsections
// are both found in Children.
type Node struct {
	Kind Kind

	// Level is the heading depth (1-6) for KindLevel.
	Level int

	// Title holds the heading title nodes for KindLevel.
	Title []*Node

	// Name is the template name (KindTemplate) or the lower-cased tag
	// name (KindHTML).
	Name string

	// Params are template arguments, or link segments for KindLink.
	Params []Param

	// Target is the link target for KindLink and KindURL.
	Target string

	// Prefix is the list marker run for KindList and KindListItem.
	Prefix string

	// Attrs are HTML or table cell attributes.
	Attrs map[string]string

	// Text is the literal content of KindText.
	Text string

	// Raw is the source text of a template invocation.
	Raw string

	Children []*Node
}

// NewText returns a text node.
func NewText(s string) *Node { return &Node{Kind: KindText, Text: s} }

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n != nil && n.Kind == KindText }

// IsLevel reports whether n is a heading.
func (n *Node) IsLevel() bool { return n != nil && n.Kind == KindLevel }

// IsTemplate reports whether n is a template invocation, optionally
// restricted to one of names.
func (n *Node) IsTemplate(names ...string) bool {
	if n == nil || n.Kind != KindTemplate {
		return false
	}
	if len(names) == 0 {
		return true
	}
	for _, name := range names {
		if n.Name == name {
			return true
		}
	}
	return false
}

// Arg returns the value nodes of the named or positional argument, or nil.
func (n *Node) Arg(key string) []*Node {
	for _, p := range n.Params {
		if p.Key == key {
			return p.Value
		}
	}
	return nil
}

// ArgRaw returns the raw source of an argument, or "" when absent.
func (n *Node) ArgRaw(key string) string {
	for _, p := range n.Params {
		if p.Key == key {
			return p.Raw
		}
	}
	return ""
}

// HasArg reports whether the argument is present, even if empty.
func (n *Node) HasArg(key string) bool {
	for _, p := range n.Params {
		if p.Key == key {
			return true
		}
	}
	return false
}

// PositionalArgs returns the positional arguments in order.
func (n *Node) PositionalArgs() []Param {
	var out []Param
	for _, p := range n.Params {
		if _, err := strconv.Atoi(p.Key); err == nil {
			out = append(out, p)
		}
	}
	return out
}

// FindChild returns direct children matching any of kinds.
func (n *Node) FindChild(kinds ...Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.is(kinds) {
			out = append(out, c)
		}
	}
	return out
}

// InvertFindChild returns direct children matching none of kinds.
func (n *Node) InvertFindChild(kinds ...Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if !c.is(kinds) {
			out = append(out, c)
		}
	}
	return out
}

// FindChildRecursively returns all descendants matching any of kinds in
// pre-order, including those nested in template arguments and heading
// titles.
func (n *Node) FindChildRecursively(kinds ...Kind) []*Node {
	var out []*Node
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, c := range nodes {
			if c.is(kinds) {
				out = append(out, c)
			}
			walk(c.Title)
			for _, p := range c.Params {
				walk(p.Value)
			}
			walk(c.Children)
		}
	}
	walk(n.Children)
	return out
}

// FindContent returns nodes matching kinds inside a heading's title.
func (n *Node) FindContent(kinds ...Kind) []*Node {
	var out []*Node
	for _, c := range n.Title {
		if c.is(kinds) {
			out = append(out, c)
		}
	}
	return out
}

// Headings returns the direct child headings.
func (n *Node) Headings() []*Node { return n.FindChild(KindLevel) }

// Content returns the direct children that are not headings, i.e. the body
// text of a section before its first subsection.
func (n *Node) Content() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind != KindLevel {
			out = append(out, c)
		}
	}
	return out
}

// FilterEmptyText returns children with whitespace-only text nodes removed.
func (n *Node) FilterEmptyText() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == KindText && strings.TrimSpace(c.Text) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Contains reports whether any descendant is of kind k.
func (n *Node) Contains(k Kind) bool {
	for _, c := range n.Children {
		if c.Kind == k || c.Contains(k) {
			return true
		}
	}
	return false
}

// FindHTML returns descendant HTML elements with the given tag name.
func (n *Node) FindHTML(tag string) []*Node {
	var out []*Node
	for _, c := range n.FindChildRecursively(KindHTML) {
		if c.Name == tag {
			out = append(out, c)
		}
	}
	return out
}

// HasClass reports whether an HTML node carries class c.
func (n *Node) HasClass(c string) bool {
	for _, f := range strings.Fields(n.Attrs["class"]) {
		if f == c {
			return true
		}
	}
	return false
}

func (n *Node) is(kinds []Kind) bool {
	if len(kinds) == 0 {
		return true
	}
	for _, k := range kinds {
		if n.Kind == k {
			return true
		}
	}
	return false
}
