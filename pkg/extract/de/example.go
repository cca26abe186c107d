package de

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

var senseIDRe = regexp.MustCompile(`^\s*\[([^\]]*)\]\s*`)

// SenseIDs splits the leading "[1]" or "[1, 2]" marker off a list item.
// The remaining nodes are returned without it.
func SenseIDs(nodes []*wikitext.Node) ([]string, []*wikitext.Node) {
	if len(nodes) == 0 || !nodes[0].IsText() {
		return nil, nodes
	}
	m := senseIDRe.FindStringSubmatchIndex(nodes[0].Text)
	if m == nil {
		return nil, nodes
	}
	ids := splitIDs(nodes[0].Text[m[2]:m[3]])
	rest := slices.Clone(nodes)
	rest[0] = wikitext.NewText(nodes[0].Text[m[1]:])
	return ids, rest
}

func splitIDs(s string) []string {
	var out []string
	for _, id := range strings.Split(s, ",") {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func senseByID(entry *extract.WordEntry, ids []string) *extract.Sense {
	for i := range entry.Senses {
		if slices.Contains(ids, entry.Senses[i].SenseID) {
			return &entry.Senses[i]
		}
	}
	return nil
}

// Examples reads an example list. Each item goes to the senses whose
// number it names; <ref> elements become the source of the example.
func Examples(w *extract.Walker, entry *extract.WordEntry, list *wikitext.Node) {
	for _, item := range list.FindChild(wikitext.KindListItem) {
		ids, rest := SenseIDs(item.InvertFindChild(wikitext.KindList))
		var ex extract.Example
		var body []*wikitext.Node
		for _, n := range rest {
			if n.Kind == wikitext.KindHTML && n.Name == "ref" {
				Reference(w, &ex, n)
				continue
			}
			body = append(body, n)
		}
		if ex.Text = w.Render(body...); ex.Text == "" {
			continue
		}

		placed := false
		for i := range entry.Senses {
			if slices.Contains(ids, entry.Senses[i].SenseID) {
				entry.Senses[i].Examples = append(entry.Senses[i].Examples, ex.Clone())
				placed = true
			}
		}
		if !placed {
			w.Logger().Debug("example without sense", "page", w.Page.Title, "senseids", ids)
		}
	}
}

// Reference reads a <ref> element: the rendered text is the source, and
// the named parameters of a {{Literatur}} citation are kept by lower-case
// name.
func Reference(w *extract.Walker, ex *extract.Example, ref *wikitext.Node) {
	ex.Ref = w.Render(ref.Children...)
	for _, t := range ref.FindChildRecursively(wikitext.KindTemplate) {
		if !t.IsTemplate("Literatur") {
			continue
		}
		for _, p := range t.Params {
			if _, err := strconv.Atoi(p.Key); err == nil {
				continue
			}
			v := w.Render(p.Value...)
			if v == "" {
				continue
			}
			if ex.RefParams == nil {
				ex.RefParams = make(map[string]string)
			}
			ex.RefParams[strings.ToLower(strings.TrimSpace(p.Key))] = v
		}
	}
}
