package de

import (
	"slices"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/langcodes"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// tableParams are the {{Ü-Tabelle}} parameters holding translation lists.
var tableParams = map[string]bool{"Ü-Liste": true, "Ü-links": true, "Ü-rechts": true}

// translations reads the {{Ü-Tabelle}} of a translation heading into the
// current entry.
func translations(w *extract.Walker, cur *extract.Cursor, level *wikitext.Node, _ extract.Role) *extract.Cursor {
	cur = w.Current(cur)
	for _, t := range level.FindChild(wikitext.KindTemplate) {
		if !t.IsTemplate("Ü-Tabelle") {
			continue
		}
		for _, p := range t.Params {
			if !tableParams[p.Key] {
				continue
			}
			for _, item := range wikitext.Parse(p.Raw).FindChildRecursively(wikitext.KindListItem) {
				TranslationItem(w, cur.Entry(), item)
			}
		}
	}
	return cur
}

// TranslationItem decodes one line such as
//
//	*{{en}}: [1] {{Ü|en|dog}}, {{Ü|en|hound}}; [2] {{Ü|en|cur}}
//
// A sense marker applies to the words after it; gender templates tag the
// word before them.
func TranslationItem(w *extract.Walker, entry *extract.WordEntry, item *wikitext.Node) {
	var lang string
	var ids []string
	last := -1
	for _, n := range item.Children {
		switch {
		case n.IsText():
			for _, m := range senseMarkerRe.FindAllStringSubmatch(n.Text, -1) {
				ids = splitIDs(m[1])
			}
		case n.IsTemplate("Ü", "Üt"):
			code := n.ArgRaw("1")
			tr := extract.Translation{
				LangCode: code,
				Lang:     langcodes.Name(code, "de"),
				Word:     w.Arg(n, "2"),
				SenseIDs: slices.Clone(ids),
			}
			if tr.Lang == "" {
				tr.Lang = lang
			}
			if n.Name == "Üt" {
				tr.Roman = w.Arg(n, "3")
			}
			if tr.Word == "" {
				continue
			}
			entry.Translations = append(entry.Translations, tr)
			last = len(entry.Translations) - 1
		case n.Kind == wikitext.KindTemplate:
			if tag, ok := extract.GenderTags[n.Name]; ok && last >= 0 {
				entry.Translations[last].Tags = append(entry.Translations[last].Tags, tag)
			} else if lang == "" {
				lang = w.Render(n)
			}
		}
	}
}
