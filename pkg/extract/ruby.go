package extract

import (
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// ExtractRuby collects (base, annotation) pairs from <ruby> elements and
// returns a copy of nodes where each ruby element is replaced by its base
// text. The input nodes are not modified.
func ExtractRuby(w *Walker, nodes []*wikitext.Node) ([][2]string, []*wikitext.Node) {
	var pairs [][2]string
	var strip func(nodes []*wikitext.Node) []*wikitext.Node
	strip = func(nodes []*wikitext.Node) []*wikitext.Node {
		out := make([]*wikitext.Node, 0, len(nodes))
		for _, n := range nodes {
			if n.Kind == wikitext.KindHTML && n.Name == "ruby" {
				var base, ann []*wikitext.Node
				for _, c := range n.Children {
					switch {
					case c.Kind == wikitext.KindHTML && c.Name == "rt":
						ann = append(ann, c.Children...)
					case c.Kind == wikitext.KindHTML && c.Name == "rp":
					default:
						base = append(base, c)
					}
				}
				b, a := w.Render(base...), w.Render(ann...)
				if b != "" && a != "" {
					pairs = append(pairs, [2]string{b, a})
				}
				out = append(out, wikitext.NewText(b))
				continue
			}
			if len(n.Children) > 0 {
				c := *n
				c.Children = strip(n.Children)
				out = append(out, &c)
				continue
			}
			out = append(out, n)
		}
		return out
	}
	return pairs, strip(nodes)
}
