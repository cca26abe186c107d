package ru

import (
	"strconv"
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/langcodes"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

func translations(w *extract.Walker, cur *extract.Cursor, level *wikitext.Node, _ extract.Role) *extract.Cursor {
	cur = w.Current(cur)
	for _, t := range level.FindChildRecursively(wikitext.KindTemplate) {
		if t.IsTemplate("перев-блок") {
			TranslationBlock(w, cur.Entry(), t)
		}
	}
	return cur
}

// TranslationBlock decodes {{перев-блок}}. Parameter 1 is the sense; every
// named parameter is a language code whose value lists the translations.
// Links are words, gender templates tag the word before them and other
// templates add raw tags. A value without links is a comma separated list.
func TranslationBlock(w *extract.Walker, entry *extract.WordEntry, t *wikitext.Node) {
	sense := w.Arg(t, "1")
	for _, p := range t.Params {
		if _, err := strconv.Atoi(p.Key); err == nil {
			continue
		}
		code := strings.TrimSpace(p.Key)
		lang := langcodes.Name(code, "ru")
		if lang == "" {
			lang = code
		}
		b := extract.NewTranslationBuilder(&entry.Translations, extract.Translation{
			Lang:     lang,
			LangCode: code,
			Sense:    sense,
		})
		word := func(s string) {
			if s = strings.TrimSpace(s); s != "" {
				b.Emit()
				b.Current().Word = s
			}
		}

		value := group(p.Value)
		hasLinks := value.Contains(wikitext.KindLink)
		for _, n := range p.Value {
			switch n.Kind {
			case wikitext.KindLink:
				word(w.Render(n))
			case wikitext.KindTemplate:
				if tag, ok := extract.GenderTags[n.Name]; ok {
					tr := b.Current()
					tr.Tags = append(tr.Tags, tag)
				} else if raw := strings.Trim(w.Render(n), "() "); raw != "" {
					tr := b.Current()
					tr.RawTags = append(tr.RawTags, raw)
				}
			case wikitext.KindText:
				if hasLinks {
					continue
				}
				for _, s := range strings.FieldsFunc(n.Text, func(r rune) bool { return r == ',' || r == ';' }) {
					word(s)
				}
			default:
				for _, l := range n.FindChildRecursively(wikitext.KindLink) {
					word(w.Render(l))
				}
			}
		}
		b.Emit()
	}
}
