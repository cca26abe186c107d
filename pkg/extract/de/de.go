// Package de describes the German dictionary edition.
//
// Language sections are level-2 headings holding {{Sprache|Name}}, and
// part-of-speech sections are level-3 {{Wortart|Name|Language}} headings.
// Inside a part-of-speech section the parts (meanings, pronunciation,
// examples, related words) are not headings but templates such as
// {{Bedeutungen}} standing on their own line, each followed by a ":" list
// whose items carry sense numbers like "[1]". Translations are the only
// level-4 heading.
package de

import (
	"slices"
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/langcodes"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Language is the German edition.
var Language = &extract.Language{
	Code: "de",
	Name: "German",
	Namespaces: wikitext.Namespaces{
		Template: "Vorlage:",
		Category: []string{"Kategorie:", "Category:"},
		File:     []string{"Datei:", "Bild:", "File:"},
	},
	LanguageLevel: 2,
	LanguageOf:    languageOf,
	SectionKey:    sectionKey,
	Classifier: extract.NewClassifier(
		extract.POSTable(posTitles),
		extract.Titles(extract.RoleTranslations, "Übersetzungen"),
		extract.Titles(extract.RoleIgnore, ignoredTitles...),
	),
	Handlers: map[extract.RoleKind]extract.Handler{
		extract.RolePOS:          pos,
		extract.RoleTranslations: translations,
	},
}

// Glosses is the meaning list markup.
var Glosses = &extract.GlossGrammar{
	ListPrefix: ":",
	Item:       glossItem,
}

func languageOf(w *extract.Walker, level *wikitext.Node, cats *wikitext.Categories) (string, string, bool) {
	for _, t := range level.FindContent(wikitext.KindTemplate) {
		if !t.IsTemplate("Sprache") {
			continue
		}
		w.RenderCats(cats, t)
		name := w.Arg(t, "1")
		if name == "" {
			return "", "", false
		}
		code := langcodes.Code(name, "de")
		if code == "" {
			code = "unknown"
		}
		return name, code, true
	}
	return "", "", false
}

// sectionKey classifies a heading by its first template: the word class
// of {{Wortart}}, or the template name for headings like {{Übersetzungen}}.
func sectionKey(w *extract.Walker, level *wikitext.Node) string {
	ts := level.FindContent(wikitext.KindTemplate)
	if len(ts) == 0 {
		return w.Render(level.Title...)
	}
	if ts[0].IsTemplate("Wortart") {
		return strings.TrimSpace(ts[0].ArgRaw("1"))
	}
	return ts[0].Name
}

// pos opens an entry for a {{Wortart}} heading. Gender templates next to
// it become tags of the entry.
func pos(w *extract.Walker, cur *extract.Cursor, level *wikitext.Node, role extract.Role) *extract.Cursor {
	d := extract.POSData{POS: role.POS, Tags: slices.Clone(role.Tags)}
	for _, t := range level.FindContent(wikitext.KindTemplate) {
		if tag, ok := extract.GenderTags[t.Name]; ok {
			d.Tags = append(d.Tags, tag)
		}
	}

	b := w.Block()
	b.PruneIfEmpty(cur, true)
	cur = b.BeginPOSAs(d)
	readParts(w, cur.Entry(), level)
	return cur
}

// readParts routes every list of a part-of-speech section to the part
// introduced by the last part template before it.
func readParts(w *extract.Walker, entry *extract.WordEntry, level *wikitext.Node) {
	var part string
	for _, n := range level.Content() {
		switch n.Kind {
		case wikitext.KindTemplate:
			if p, ok := partTemplates[n.Name]; ok {
				part = p
			}
		case wikitext.KindList:
			readPart(w, entry, part, n)
		}
	}
}

func readPart(w *extract.Walker, entry *extract.WordEntry, part string, list *wikitext.Node) {
	switch part {
	case partSenses:
		w.Glosses(Glosses, entry, &wikitext.Node{Kind: wikitext.KindRoot, Children: []*wikitext.Node{list}})
	case partExamples:
		if w.Config.Examples {
			Examples(w, entry, list)
		}
	case partSounds:
		if w.Config.Pronunciation {
			var cats wikitext.Categories
			entry.Sounds = append(entry.Sounds, Sounds(w, list, &cats)...)
			entry.AddCategories(cats.Names()...)
		}
	case partEtymology:
		if w.Config.Etymologies {
			var cats wikitext.Categories
			var lines []string
			for _, item := range list.FindChildRecursively(wikitext.KindListItem) {
				if s := w.RenderCats(&cats, item.InvertFindChild(wikitext.KindList)...); s != "" {
					lines = append(lines, s)
				}
			}
			entry.EtymologyText = strings.Join(lines, "\n")
			entry.AddCategories(cats.Names()...)
		}
	case "":
	default:
		if w.Config.Linkages {
			Linkages(w, entry, part, list)
		}
	}
}

// Linkages adds the words of a related-word list. Words of an item take
// the gloss of the sense its number refers to.
func Linkages(w *extract.Walker, entry *extract.WordEntry, kind string, list *wikitext.Node) {
	dst := entry.Linkages(kind)
	if dst == nil {
		return
	}
	for _, item := range list.FindChild(wikitext.KindListItem) {
		ids, rest := SenseIDs(item.InvertFindChild(wikitext.KindList))
		var sense string
		if s := senseByID(entry, ids); s != nil && len(s.Glosses) > 0 {
			sense = s.Glosses[0]
		}
		*dst = append(*dst, w.LinkedWords(&wikitext.Node{Kind: wikitext.KindListItem, Children: rest}, sense)...)
	}
}

func glossItem(w *extract.Walker, _ *extract.WordEntry, item *wikitext.Node) (extract.Sense, bool) {
	ids, rest := SenseIDs(item.InvertFindChild(wikitext.KindList))
	var cats wikitext.Categories
	gloss := w.RenderCats(&cats, rest...)
	if gloss == "" {
		return extract.Sense{}, false
	}
	sense := extract.Sense{Glosses: []string{gloss}, Categories: cats.Names()}
	if len(ids) > 0 {
		sense.SenseID = ids[0]
	}
	return sense, true
}

// Sounds reads a pronunciation list: {{Lautschrift}} gives an IPA and
// {{Audio}} a media file.
func Sounds(w *extract.Walker, list *wikitext.Node, cats *wikitext.Categories) []extract.Sound {
	var out []extract.Sound
	for _, t := range list.FindChildRecursively(wikitext.KindTemplate) {
		switch t.Name {
		case "Lautschrift":
			if ipa := w.Arg(t, "1"); ipa != "" {
				out = append(out, extract.Sound{IPA: ipa})
			}
		case "Audio":
			if file := w.Arg(t, "1"); file != "" {
				out = append(out, extract.NewAudio(file))
			}
		default:
			continue
		}
		w.RenderCats(cats, t)
	}
	return out
}
