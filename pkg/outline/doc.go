// Package outline renders the heading tree of a page as a diagram, with
// the role the extractor assigned to each heading.
//
// It is a debugging aid for edition tables: headings that the extractor
// reported as unprocessed are drawn dashed and tinted, so a glance at
// the diagram shows which titles are missing from the classifier.
//
//	o := outline.FromPage(ctx, zh.Language, "太陽風", text, opts)
//	svg, err := outline.RenderSVG(outline.ToDOT(o, outline.Options{Detailed: true}))
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering, so no Graphviz installation is needed.
package outline
