// Package ru describes the Russian dictionary edition.
//
// Language sections are level-1 headings holding a {{-xx-}} template. A
// page with homonyms splits a language into level-2 blocks, each owning one
// entry and its level-3 sections; pages without blocks put level-3
// sections directly below the language heading. Part-of-speech titles are
// rare, so the part of speech is mostly detected from morphology templates
// and from the text.
package ru

import (
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/langcodes"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Language is the Russian edition.
var Language = &extract.Language{
	Code: "ru",
	Name: "Russian",
	Namespaces: wikitext.Namespaces{
		Template: "Шаблон:",
		Category: []string{"Категория:", "Category:"},
		File:     []string{"Файл:", "Изображение:", "File:", "Image:"},
	},
	LanguageLevel: 1,
	BlockLevel:    2,
	LanguageOf:    languageOf,
	Classifier: extract.NewClassifier(
		extract.POSTable(posTitles),
		extract.LinkageTable(linkageTitles),
		extract.Titles(extract.RoleMorphology, morphologyTitles...),
		extract.Titles(extract.RolePronunciation, pronunciationTitles...),
		extract.Titles(extract.RoleSemantic, semanticTitles...),
		extract.Titles(extract.RoleGloss, glossTitles...),
		extract.Titles(extract.RoleRelated, relatedTitles...),
		extract.Titles(extract.RoleEtymology, etymologyTitles...),
		extract.Titles(extract.RolePhrases, phraseTitles...),
		extract.Titles(extract.RoleTranslations, translationTitles...),
		extract.Titles(extract.RoleRomanization, romanizationTitles...),
		extract.Titles(extract.RoleIgnore, ignoredTitles...),
	),
	DetectPOS: DetectPOS,
	Harvest: &extract.HarvestRule{
		Prefix:      "Форма-",
		LemmaParams: []string{"база", "1"},
		IPAParam:    "МФА",
		POSOf:       posFromTemplate,
	},
	Handlers: map[extract.RoleKind]extract.Handler{
		extract.RolePOS:           pos,
		extract.RoleMorphology:    morphology,
		extract.RolePronunciation: extract.SoundHandler(Pronunciation),
		extract.RoleSemantic:      semantic,
		extract.RoleGloss:         extract.GlossHandler(Glosses),
		extract.RoleRelated:       related,
		extract.RoleEtymology:     extract.EtymologyHandler(),
		extract.RolePhrases:       phrases,
		extract.RoleTranslations:  translations,
		extract.RoleLinkage:       extract.LinkageHandler(),
		extract.RoleRomanization:  extract.RomanizationHandler(),
	},
}

// languageOf reads the language code from the name of the first template
// in the heading, e.g. {{-ru-}}.
func languageOf(w *extract.Walker, level *wikitext.Node, cats *wikitext.Categories) (string, string, bool) {
	for _, t := range level.FindContent(wikitext.KindTemplate) {
		code := strings.Trim(t.Name, " -")
		if code == "" {
			code = "unknown"
		}
		name := w.RenderCats(cats, t)
		if name == "" {
			name = langcodes.Name(code, "ru")
		}
		if name == "" {
			name = code
		}
		return name, code, true
	}
	return "", "", false
}

// DetectPOS looks for a part of speech in the templates of a heading body,
// then in the templates of its title, then in its rendered body text.
func DetectPOS(w *extract.Walker, level *wikitext.Node) (extract.POSData, bool) {
	for _, t := range level.FindChild(wikitext.KindTemplate) {
		if d, ok := posFromTemplate(w, t); ok {
			return d, true
		}
	}
	for _, t := range level.FindContent(wikitext.KindTemplate) {
		if d, ok := posFromTemplate(w, t); ok {
			return d, true
		}
	}

	text := strings.ToLower(w.Render(level.InvertFindChild(wikitext.KindLevel)...))
	for _, p := range posOrder {
		if strings.Contains(text, p.title) {
			return p.data, true
		}
	}
	return extract.POSData{}, false
}

// posFromTemplate reads the part of speech declared by {{morph}},
// {{заголовок}} or by a part of the template name.
func posFromTemplate(w *extract.Walker, t *wikitext.Node) (extract.POSData, bool) {
	name := strings.ToLower(t.Name)
	switch {
	case name == "morph":
		if kind, ok := morphArgs[strings.TrimSpace(t.ArgRaw("тип"))]; ok {
			return extract.POSData{POS: kind, Tags: []string{"morpheme"}}, true
		}
	case (name == "заголовок" || name == "з") && t.HasArg("1"):
		fields := strings.Fields(strings.ToLower(strings.Trim(w.Arg(t, "1"), "()")))
		if len(fields) == 0 {
			return extract.POSData{}, false
		}
		if d, ok := posTitles[fields[0]]; ok {
			return d, true
		}
	}

	parts := strings.Fields(name)
	if len(parts) > 3 {
		parts = append(parts[:2], strings.Join(parts[2:], " "))
	}
	for _, part := range parts {
		for _, sub := range strings.SplitN(part, "-", 3) {
			if d, ok := posTemplateNames[sub]; ok {
				return d, true
			}
		}
	}
	return extract.POSData{}, false
}

// pos handles the rare part-of-speech headings: they name the part of
// speech of the current entry and hold its definitions.
func pos(w *extract.Walker, cur *extract.Cursor, level *wikitext.Node, role extract.Role) *extract.Cursor {
	cur = w.Current(cur)
	extract.SetPOS(cur.Entry(), extract.POSData{POS: role.POS, Tags: role.Tags})
	w.Glosses(Glosses, cur.Entry(), level)
	return cur
}

// morphology reads the part of speech, the grammatical tags printed by the
// morphology templates and the forms listed in their parameters.
func morphology(w *extract.Walker, cur *extract.Cursor, level *wikitext.Node, _ extract.Role) *extract.Cursor {
	cur = w.Current(cur)
	targets := w.Targets(cur, level)
	if d, ok := DetectPOS(w, level); ok {
		for _, e := range targets {
			extract.SetPOS(e, d)
		}
	}

	for _, t := range level.FindChild(wikitext.KindTemplate) {
		var cats wikitext.Categories
		var tags []string
		for _, n := range w.Engine.ExpandNode(t).Children {
			for _, text := range strings.Split(w.RenderCats(&cats, n), ",") {
				tags = append(tags, morphTags[strings.TrimSpace(text)]...)
			}
		}

		var forms []extract.Form
		for _, p := range formParams {
			if !t.HasArg(p.param) {
				continue
			}
			for _, form := range strings.Split(w.Arg(t, p.param), ",") {
				if form = strings.TrimSpace(form); form != "" {
					forms = append(forms, extract.Form{Form: form, Tags: []string{p.tag}})
				}
			}
		}

		for _, e := range targets {
			e.Tags = append(e.Tags, tags...)
			for _, f := range forms {
				e.Forms = append(e.Forms, f.Clone())
			}
			e.AddCategories(cats.Names()...)
		}
	}
	return cur
}
