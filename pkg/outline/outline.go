package outline

import (
	"context"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Heading is one section heading with its classification.
type Heading struct {
	Title string
	Level int
	Role  extract.Role

	// Language is set for headings at the edition's language level.
	Language bool

	// Unprocessed is set for headings the extractor reported.
	Unprocessed bool

	Children []*Heading
}

// Outline is the heading tree of one page.
type Outline struct {
	Page     string
	Headings []*Heading
}

// ClassifyFunc returns the display title and role of a heading.
type ClassifyFunc func(level *wikitext.Node) (string, extract.Role)

// Build collects the headings of tree, nested the way the parser nests
// them, and classifies each one.
func Build(page string, tree *wikitext.Node, classify ClassifyFunc) *Outline {
	return &Outline{Page: page, Headings: build(tree, classify)}
}

func build(n *wikitext.Node, classify ClassifyFunc) []*Heading {
	var out []*Heading
	for _, level := range n.Headings() {
		title, role := classify(level)
		out = append(out, &Heading{
			Title:    title,
			Level:    level.Level,
			Role:     role,
			Children: build(level, classify),
		})
	}
	return out
}

// Mark flags the headings named by diags. Diagnostics are matched in page
// order, each against the first unflagged heading with the same title.
// It returns the number of diagnostics that matched.
func (o *Outline) Mark(diags []extract.Diagnostic) int {
	matched := 0
	for _, d := range diags {
		done := false
		o.Walk(func(h *Heading, _ int) {
			if !done && !h.Unprocessed && h.Title == d.Section {
				h.Unprocessed = true
				done = true
			}
		})
		if done {
			matched++
		}
	}
	return matched
}

// Walk calls fn for every heading in pre-order.
func (o *Outline) Walk(fn func(h *Heading, depth int)) {
	var visit func(hs []*Heading, depth int)
	visit = func(hs []*Heading, depth int) {
		for _, h := range hs {
			fn(h, depth)
			visit(h.Children, depth+1)
		}
	}
	visit(o.Headings, 0)
}

// Len returns the number of headings.
func (o *Outline) Len() int {
	n := 0
	o.Walk(func(*Heading, int) { n++ })
	return n
}

// FromPage extracts the page and returns its outline, classified the way
// the extractor classified it and marked with its diagnostics.
func FromPage(ctx context.Context, lang *extract.Language, title, text string, opts extract.Options) *Outline {
	w := extract.NewWalker(ctx, lang, title, opts)
	o := Build(title, wikitext.Parse(text), func(level *wikitext.Node) (string, extract.Role) {
		return w.Classify(level)
	})
	o.Walk(func(h *Heading, _ int) {
		h.Language = h.Level == lang.LanguageLevel
	})

	res := extract.ExtractPage(ctx, lang, title, text, opts)
	o.Mark(res.Diagnostics)
	return o
}
