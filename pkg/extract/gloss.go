package extract

import (
	"strings"

	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// GlossGrammar describes the definition lists of an edition.
type GlossGrammar struct {
	// ListPrefix is the list marker of definitions, e.g. "#".
	ListPrefix string
	Examples   *ExampleGrammar

	// Item decodes one definition. Nil means the default: the item text
	// without nested lists is the gloss.
	Item func(w *Walker, entry *WordEntry, item *wikitext.Node) (Sense, bool)

	// Attach handles a list that follows a definition without being one.
	// Nil means the list holds examples of the previous sense.
	Attach func(w *Walker, entry *WordEntry, sense *Sense, list *wikitext.Node)

	// Template handles a template standing on its own line after a
	// definition. Nil means such templates are skipped.
	Template func(w *Walker, entry *WordEntry, sense *Sense, t *wikitext.Node)
}

// POSHandler returns a handler for editions whose part-of-speech headings
// open entries anywhere below the language heading. The previous entry is
// pruned if it is still empty.
func POSHandler(g *GlossGrammar) Handler {
	return func(w *Walker, cur *Cursor, level *wikitext.Node, role Role) *Cursor {
		w.block.PruneIfEmpty(cur, true)
		cur = w.block.BeginPOSAs(POSData{POS: role.POS, Tags: role.Tags})
		w.Glosses(g, cur.Entry(), level)
		return cur
	}
}

// GlossHandler returns a handler that adds the definitions of a section to
// the current entry.
func GlossHandler(g *GlossGrammar) Handler {
	return func(w *Walker, cur *Cursor, level *wikitext.Node, _ Role) *Cursor {
		cur = w.Current(cur)
		w.Glosses(g, cur.Entry(), level)
		return cur
	}
}

// Glosses decodes the definition lists in the body of a heading into
// senses of entry.
func (w *Walker) Glosses(g *GlossGrammar, entry *WordEntry, level *wikitext.Node) {
	last := -1
	for _, n := range level.FindChild(wikitext.KindList, wikitext.KindTemplate) {
		switch {
		case n.Kind == wikitext.KindTemplate:
			if last >= 0 && g.Template != nil {
				g.Template(w, entry, &entry.Senses[last], n)
			}
		case n.Prefix != g.ListPrefix:
			if last >= 0 {
				w.attach(g, entry, &entry.Senses[last], n)
			}
		default:
			for _, item := range n.FindChild(wikitext.KindListItem) {
				if w.glossItem(g, entry, item, nil) {
					last = len(entry.Senses) - 1
				}
			}
		}
	}
}

func (w *Walker) glossItem(g *GlossGrammar, entry *WordEntry, item *wikitext.Node, parent []string) bool {
	var sense Sense
	var ok bool
	if g.Item != nil {
		sense, ok = g.Item(w, entry, item)
	} else {
		var cats wikitext.Categories
		gloss := w.RenderCats(&cats, item.InvertFindChild(wikitext.KindList)...)
		sense = Sense{Categories: cats.Names()}
		if gloss != "" {
			sense.Glosses = []string{gloss}
			ok = true
		}
	}
	if !ok {
		return false
	}
	if len(parent) > 0 {
		sense.Glosses = append(append([]string{}, parent...), sense.Glosses...)
	}

	var sub []*wikitext.Node
	for _, list := range item.FindChild(wikitext.KindList) {
		if strings.HasSuffix(list.Prefix, g.ListPrefix) {
			sub = append(sub, list)
			continue
		}
		w.attach(g, entry, &sense, list)
	}
	entry.Senses = append(entry.Senses, sense)

	glosses := entry.Senses[len(entry.Senses)-1].Glosses
	for _, list := range sub {
		for _, child := range list.FindChild(wikitext.KindListItem) {
			w.glossItem(g, entry, child, glosses)
		}
	}
	return true
}

func (w *Walker) attach(g *GlossGrammar, entry *WordEntry, sense *Sense, list *wikitext.Node) {
	if g.Attach != nil {
		g.Attach(w, entry, sense, list)
		return
	}
	if g.Examples != nil {
		NewExampleDecoder(w, g.Examples, entry, sense).Decode(list)
	}
}
