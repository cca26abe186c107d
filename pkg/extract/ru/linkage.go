package ru

import (
	"strconv"
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

func related(w *extract.Walker, cur *extract.Cursor, level *wikitext.Node, _ extract.Role) *extract.Cursor {
	cur = w.Current(cur)
	for _, t := range level.FindChild(wikitext.KindTemplate) {
		if t.IsTemplate("родств-блок") {
			RelatedBlock(w, cur.Entry(), t)
		}
	}
	return cur
}

// RelatedBlock adds the words of a {{родств-блок}} word family to the
// related words, labelled with the name of their parameter.
func RelatedBlock(w *extract.Walker, entry *extract.WordEntry, t *wikitext.Node) {
	for _, p := range t.Params {
		if _, err := strconv.Atoi(p.Key); err == nil {
			continue
		}
		label := relatedLabels[p.Key]
		if label == "" {
			label = p.Key
		}
		for _, l := range w.LinkedWords(group(p.Value), "") {
			l.RawTags = append(l.RawTags, label)
			entry.Related = append(entry.Related, l)
		}
	}
}

func phrases(w *extract.Walker, cur *extract.Cursor, level *wikitext.Node, _ extract.Role) *extract.Cursor {
	cur = w.Current(cur)
	entry := cur.Entry()
	for _, item := range level.FindChildRecursively(wikitext.KindListItem) {
		for _, phrase := range Phrases(w, item) {
			entry.Idioms = append(entry.Idioms, extract.Linkage{Word: phrase})
		}
	}
	return cur
}

// Phrases splits a list item into phrases at commas and semicolons in its
// text. Links between separators make up one phrase.
func Phrases(w *extract.Walker, item *wikitext.Node) []string {
	var out []string
	var buf []*wikitext.Node
	flush := func() {
		if s := w.Render(buf...); s != "" {
			out = append(out, s)
		}
		buf = nil
	}
	for _, c := range item.InvertFindChild(wikitext.KindList) {
		if !c.IsText() {
			buf = append(buf, c)
			continue
		}
		text := c.Text
		for {
			i := strings.IndexAny(text, ",;")
			if i < 0 {
				buf = append(buf, wikitext.NewText(text))
				break
			}
			buf = append(buf, wikitext.NewText(text[:i]))
			flush()
			text = text[i+1:]
		}
	}
	flush()
	return out
}
