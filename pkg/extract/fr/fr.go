// Package fr describes the French dictionary edition.
//
// Language sections are level-2 {{langue|xx}} headings; every other
// heading is an {{S|name}} template. Pronunciation sections at level 3
// apply to every entry of the language.
package fr

import (
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/langcodes"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Language is the French edition.
var Language = &extract.Language{
	Code: "fr",
	Name: "French",
	Namespaces: wikitext.Namespaces{
		Template: "Modèle:",
		Category: []string{"Catégorie:", "Category:"},
		File:     []string{"Fichier:", "Image:", "File:"},
	},
	LanguageLevel: 2,
	LanguageOf:    languageOf,
	SectionKey:    sectionKey,
	Classifier: extract.NewClassifier(
		extract.POSTable(posTitles),
		extract.LinkageTable(linkageTitles),
		extract.Titles(extract.RoleTranslations, translationTitles...),
		extract.Titles(extract.RolePronunciation, pronunciationTitles...),
		extract.Titles(extract.RoleEtymology, etymologyTitles...),
		extract.Titles(extract.RoleIgnore, ignoredTitles...),
	),
	Handlers: map[extract.RoleKind]extract.Handler{
		extract.RolePOS:           pos,
		extract.RolePronunciation: extract.SoundHandler(Pronunciation),
		extract.RoleEtymology:     extract.EtymologyHandler(),
		extract.RoleTranslations:  extract.TranslationHandler(Translations),
		extract.RoleLinkage:       extract.LinkageHandler(),
	},
}

// Translations is the translation table markup.
var Translations = &extract.TranslationGrammar{
	Edition: "fr",
	Top:     []string{"trad-début"},
	Word:    []string{"trad+", "trad-", "trad", "trad--"},
	Skip:    []string{"trad-fin", "ébauche-trad"},
}

// Glosses is the definition list markup.
var Glosses = &extract.GlossGrammar{
	ListPrefix: "#",
	Attach:     examples,
}

var posHandler = extract.POSHandler(Glosses)

// pos opens an entry and reads the inflection tables of the head line.
func pos(w *extract.Walker, cur *extract.Cursor, level *wikitext.Node, role extract.Role) *extract.Cursor {
	cur = posHandler(w, cur, level, role)
	for _, t := range level.FindChild(wikitext.KindTemplate) {
		Inflection(w, cur.Entry(), t)
	}
	return cur
}

func languageOf(w *extract.Walker, level *wikitext.Node, cats *wikitext.Categories) (string, string, bool) {
	title := w.RenderCats(cats, level.Title...)
	for _, t := range level.FindContent(wikitext.KindTemplate) {
		if !t.IsTemplate("langue") {
			continue
		}
		code := strings.TrimSpace(t.ArgRaw("1"))
		if name := langcodes.Name(code, "fr"); name != "" {
			return name, code, true
		}
		if code != "" {
			return title, code, true
		}
	}
	if title == "" {
		return "", "", false
	}
	code := langcodes.Code(title, "fr")
	if code == "" {
		code = "unknown"
	}
	return title, code, true
}

// sectionKey classifies {{S|name|...}} headings by name.
func sectionKey(w *extract.Walker, level *wikitext.Node) string {
	for _, t := range level.FindContent(wikitext.KindTemplate) {
		if t.IsTemplate("S") {
			return strings.TrimSpace(t.ArgRaw("1"))
		}
	}
	return w.Render(level.Title...)
}

// examples reads the example items below a definition: {{exemple}}
// templates or plain, usually italic, text.
func examples(w *extract.Walker, _ *extract.WordEntry, sense *extract.Sense, list *wikitext.Node) {
	if !w.Config.Examples {
		return
	}
	for _, item := range list.FindChild(wikitext.KindListItem) {
		var ex extract.Example
		if ts := item.FindChild(wikitext.KindTemplate); len(ts) > 0 && ts[0].IsTemplate("exemple") {
			t := ts[0]
			ex.Text = w.Arg(t, "1")
			ex.Translation = w.Arg(t, "sens")
			if ex.Translation == "" {
				ex.Translation = w.Arg(t, "2")
			}
			ex.Roman = w.Arg(t, "tr")
			ex.Ref = w.Arg(t, "source")
		} else {
			ex.Text = w.Render(item.InvertFindChild(wikitext.KindList)...)
		}
		if ex.Text != "" {
			sense.Examples = append(sense.Examples, ex)
		}
	}
}
