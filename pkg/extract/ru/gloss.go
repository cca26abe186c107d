package ru

import (
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Glosses is the definition list markup. Examples are {{пример}} templates
// placed on the definition line.
var Glosses = &extract.GlossGrammar{
	ListPrefix: "#",
	Item:       glossItem,
}

// meaningLinkages are the linkage parameters of {{значение}}.
var meaningLinkages = map[string]string{
	"синонимы":   extract.LinkSynonyms,
	"антонимы":   extract.LinkAntonyms,
	"гиперонимы": extract.LinkHypernyms,
	"гипонимы":   extract.LinkHyponyms,
}

func glossItem(w *extract.Walker, _ *extract.WordEntry, item *wikitext.Node) (extract.Sense, bool) {
	var sense extract.Sense
	var body []*wikitext.Node
	for _, c := range item.InvertFindChild(wikitext.KindList) {
		if c.IsTemplate("пример") {
			if ex, ok := Example(w, c); ok && w.Config.Examples {
				sense.Examples = append(sense.Examples, ex)
			}
			continue
		}
		body = append(body, c)
	}

	var cats wikitext.Categories
	gloss := w.RenderCats(&cats, body...)
	sense.Categories = cats.Names()
	if gloss == "" {
		return sense, false
	}
	sense.Glosses = []string{gloss}
	return sense, true
}

// Example decodes {{пример|text|author|title|date}}. Named автор, титул,
// дата and источник parameters override the positional ones.
func Example(w *extract.Walker, t *wikitext.Node) (extract.Example, bool) {
	ex := extract.Example{
		Text:        w.Arg(t, "1"),
		Translation: w.Arg(t, "перевод"),
	}
	if ex.Text == "" {
		return ex, false
	}
	var ref []string
	for _, keys := range [][2]string{{"автор", "2"}, {"титул", "3"}, {"дата", "4"}, {"источник", ""}} {
		v := w.Arg(t, keys[0])
		if v == "" && keys[1] != "" {
			v = w.Arg(t, keys[1])
		}
		if v != "" {
			ref = append(ref, v)
		}
	}
	ex.Ref = strings.Join(ref, ", ")
	return ex, true
}

// Meaning decodes a {{значение}} template: the definition, its labels,
// examples and the linked words of the sense.
func Meaning(w *extract.Walker, entry *extract.WordEntry, t *wikitext.Node) extract.Sense {
	var cats wikitext.Categories
	var sense extract.Sense
	gloss := w.RenderCats(&cats, t.Arg("определение")...)
	if gloss != "" {
		sense.Glosses = []string{gloss}
	}
	for _, raw := range strings.Split(w.RenderCats(&cats, t.Arg("пометы")...), ",") {
		if raw = strings.TrimSpace(raw); raw != "" {
			sense.RawTags = append(sense.RawTags, raw)
		}
	}

	if w.Config.Examples {
		for _, ex := range group(t.Arg("примеры")).FindChildRecursively(wikitext.KindTemplate) {
			if !ex.IsTemplate("пример") {
				continue
			}
			if x, ok := Example(w, ex); ok {
				sense.Examples = append(sense.Examples, x)
			}
		}
	}

	if w.Config.Linkages && gloss != "" {
		for param, kind := range meaningLinkages {
			list := entry.Linkages(kind)
			*list = append(*list, w.LinkedWords(group(t.Arg(param)), gloss)...)
		}
	}
	sense.Categories = cats.Names()
	return sense
}

// semantic reads the {{значение}} templates of a semantic properties
// section. Sub-sections are dispatched on their own.
func semantic(w *extract.Walker, cur *extract.Cursor, level *wikitext.Node, _ extract.Role) *extract.Cursor {
	cur = w.Current(cur)
	entry := cur.Entry()
	for _, list := range level.FindChild(wikitext.KindList) {
		for _, t := range list.FindChildRecursively(wikitext.KindTemplate) {
			if !t.IsTemplate("значение") {
				continue
			}
			if sense := Meaning(w, entry, t); len(sense.Glosses) > 0 {
				entry.Senses = append(entry.Senses, sense)
			}
		}
	}
	return cur
}

// group wraps argument nodes so they can be searched like a section body.
func group(nodes []*wikitext.Node) *wikitext.Node {
	return &wikitext.Node{Kind: wikitext.KindRoot, Children: nodes}
}
