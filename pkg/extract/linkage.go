package extract

import (
	"strings"

	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// TagRomanization marks forms taken from a romanization section.
const TagRomanization = "romanization"

// placeholders are list items that stand for "no words".
var placeholders = map[string]bool{"-": true, "—": true, "–": true, "?": true}

// LinkageHandler returns a handler that collects the linked words of a
// linkage section into the list named by the role. Words of a numbered
// list item take the gloss of the sense with the same number.
func LinkageHandler() Handler {
	return func(w *Walker, cur *Cursor, level *wikitext.Node, role Role) *Cursor {
		cur = w.Current(cur)
		entry := cur.Entry()
		list := entry.Linkages(role.Linkage)
		if list == nil {
			w.Unprocessed(w.Render(level.Title...), "unknown linkage "+role.Linkage)
			return cur
		}
		for _, l := range level.FindChild(wikitext.KindList) {
			for i, item := range l.FindChild(wikitext.KindListItem) {
				var sense string
				if strings.HasSuffix(l.Prefix, "#") && i < len(entry.Senses) && len(entry.Senses[i].Glosses) > 0 {
					sense = entry.Senses[i].Glosses[0]
				}
				*list = append(*list, w.LinkedWords(item, sense)...)
			}
		}
		return cur
	}
}

// LinkedWords returns one linkage per link in a list item. An item without
// links yields its comma separated text.
func (w *Walker) LinkedWords(item *wikitext.Node, sense string) []Linkage {
	var out []Linkage
	links := item.FindChildRecursively(wikitext.KindLink)
	if len(links) == 0 {
		for _, word := range strings.FieldsFunc(w.Render(item.InvertFindChild(wikitext.KindList)...), func(r rune) bool {
			return r == ',' || r == ';' || r == '，' || r == '、'
		}) {
			if word = strings.TrimSpace(word); word != "" && !placeholders[word] {
				out = append(out, Linkage{Word: word, Sense: sense})
			}
		}
		return out
	}
	for _, link := range links {
		if _, isCat := w.categoryLink(link); isCat {
			continue
		}
		if word := w.Render(link); word != "" && !placeholders[word] {
			out = append(out, Linkage{Word: word, Sense: sense})
		}
	}
	return out
}

func (w *Walker) categoryLink(link *wikitext.Node) (string, bool) {
	var cats wikitext.Categories
	if w.RenderCats(&cats, link) == "" && len(cats.Names()) > 0 {
		return cats.Names()[0], true
	}
	return "", false
}

// RomanizationHandler returns a handler that turns the links of a section
// into romanization forms of the current entry.
func RomanizationHandler() Handler {
	return func(w *Walker, cur *Cursor, level *wikitext.Node, _ Role) *Cursor {
		cur = w.Current(cur)
		entry := cur.Entry()
		for _, link := range level.FindChildRecursively(wikitext.KindLink) {
			if _, isCat := w.categoryLink(link); isCat {
				continue
			}
			if form := w.Render(link); form != "" {
				entry.Forms = append(entry.Forms, Form{Form: form, Tags: []string{TagRomanization}})
			}
		}
		return cur
	}
}

// EtymologyHandler returns a handler that stores the rendered body of an
// etymology section. A shallow section replaces the text of the base
// template, so it reaches the entries opened after it and an empty one
// clears the text of an earlier etymology. A nested one sets the current
// entry.
func EtymologyHandler() Handler {
	return func(w *Walker, cur *Cursor, level *wikitext.Node, _ Role) *Cursor {
		var cats wikitext.Categories
		text := w.RenderCats(&cats, level.Content()...)
		var e *WordEntry
		switch {
		case w.Shallow(level):
			e = w.block.Base
		case text == "":
			return cur
		default:
			e = w.Target(cur)
		}
		e.EtymologyText = text
		e.AddCategories(cats.Names()...)
		return cur
	}
}
