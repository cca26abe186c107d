package outline

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wikiextract/pkg/extract"
)

// Options configures outline rendering.
type Options struct {
	// Detailed adds the heading level and role to node labels.
	// When false, only the title is shown.
	Detailed bool
}

// ToDOT converts an outline to Graphviz DOT format. The page title is the
// root node; every heading hangs below the heading that owns it.
//
// Unprocessed headings are drawn dashed with a red fill, ignored headings
// in grey, and language headings in bold.
func ToDOT(o *Outline, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, shape=plaintext, style=\"\"];\n", "page", o.Page)

	var edges []string
	id := 0
	var visit func(parent string, hs []*Heading)
	visit = func(parent string, hs []*Heading) {
		for _, h := range hs {
			node := "h" + strconv.Itoa(id)
			id++
			attrs := fmtAttrs(h, fmtLabel(h, opts.Detailed))
			fmt.Fprintf(&buf, "  %q [%s];\n", node, strings.Join(attrs, ", "))
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", parent, node))
			visit(node, h.Children)
		}
	}
	visit("page", o.Headings)

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(h *Heading, detailed bool) string {
	if !detailed {
		return h.Title
	}
	role := h.Role.String()
	if h.Language {
		role = "language"
	}
	return fmt.Sprintf("%s\nlevel: %d\nrole: %s", h.Title, h.Level, role)
}

func fmtAttrs(h *Heading, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch {
	case h.Unprocessed:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=\"#f8d7da\"", "color=\"#c0392b\"")
	case h.Language:
		attrs = append(attrs, "fontname=\"bold\"", "fillcolor=\"#e8f0fe\"")
	case h.Role.Kind == extract.RoleIgnore:
		attrs = append(attrs, "fillcolor=lightgrey", "fontcolor=grey40")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the drawing starts at the
// origin and carries explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
