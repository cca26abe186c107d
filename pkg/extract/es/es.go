// Package es describes the Spanish dictionary edition.
//
// Language sections are level-2 headings holding a {{lengua|xx}} template.
// Part-of-speech headings are usually templates themselves
// ({{sustantivo masculino|es}}) and may sit below an etymology heading.
// Definitions are ";N" list items, followed by usage notes and examples.
package es

import (
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/langcodes"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Language is the Spanish edition.
var Language = &extract.Language{
	Code: "es",
	Name: "Spanish",
	Namespaces: wikitext.Namespaces{
		Template: "Plantilla:",
		Category: []string{"Categoría:", "Category:"},
		File:     []string{"Archivo:", "Imagen:", "File:", "Image:"},
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
	).WithPrefixes(extract.LinkageTable(linkageTitles), linkagePrefixes...),
	Preamble: preamble,
	Handlers: map[extract.RoleKind]extract.Handler{
		extract.RolePOS:           extract.POSHandler(Glosses),
		extract.RolePronunciation: extract.SoundHandler(sounds),
		extract.RoleEtymology:     etymology,
		extract.RoleTranslations:  translations,
		extract.RoleLinkage:       extract.LinkageHandler(),
	},
}

// Glosses is the definition list markup.
var Glosses = &extract.GlossGrammar{
	ListPrefix: ";",
	Item:       glossItem,
	Attach:     attach,
	Template:   senseTemplate,
}

func languageOf(w *extract.Walker, level *wikitext.Node, cats *wikitext.Categories) (string, string, bool) {
	title := w.RenderCats(cats, level.Title...)
	for _, t := range level.FindContent(wikitext.KindTemplate) {
		if t.Name != "lengua" {
			continue
		}
		code := strings.TrimSpace(t.ArgRaw("1"))
		if code == "" {
			break
		}
		name := langcodes.Name(code, "es")
		if name == "" {
			name = title
		}
		return name, code, true
	}
	if title == "" {
		return "", "", false
	}
	code := langcodes.Code(title, "es")
	if code == "" {
		code = "unknown"
	}
	return title, code, true
}

// sectionKey classifies template headings by template name.
func sectionKey(w *extract.Walker, level *wikitext.Node) string {
	if ts := level.FindContent(wikitext.KindTemplate); len(ts) > 0 {
		return ts[0].Name
	}
	return w.Render(level.Title...)
}

// preamble reads the pronunciation box placed above the first heading of a
// language section.
func preamble(w *extract.Walker, level *wikitext.Node) {
	if !w.Config.Pronunciation {
		return
	}
	var cats wikitext.Categories
	base := w.Block().Base
	base.Sounds = append(base.Sounds, pronGraf(w, level.Content(), &cats)...)
	base.AddCategories(cats.Names()...)
}

// etymology stores the etymology text and the pronunciation box of an
// etymology section. A shallow section replaces the sounds and the text of
// the base template: every etymology of a word carries its own.
func etymology(w *extract.Walker, cur *extract.Cursor, level *wikitext.Node, _ extract.Role) *extract.Cursor {
	var cats wikitext.Categories
	var body []*wikitext.Node
	for _, n := range level.Content() {
		if !n.IsTemplate("pron-graf") {
			body = append(body, n)
		}
	}
	shallow := w.Shallow(level)
	e := w.Block().Base
	if !shallow {
		e = w.Target(cur)
	}
	if w.Config.Pronunciation {
		if s := pronGraf(w, level.Content(), &cats); len(s) > 0 {
			e.Sounds = s
		}
	}
	if text := w.RenderCats(&cats, body...); text != "" || shallow {
		e.EtymologyText = text
	}
	e.AddCategories(cats.Names()...)
	return cur
}

func sounds(w *extract.Walker, level *wikitext.Node, cats *wikitext.Categories) []extract.Sound {
	return pronGraf(w, level.Children, cats)
}

// pronGraf reads the pron-graf box: fone/fono parameters are IPA,
// audio parameters are media files.
func pronGraf(w *extract.Walker, nodes []*wikitext.Node, cats *wikitext.Categories) []extract.Sound {
	var out []extract.Sound
	for _, n := range nodes {
		if !n.IsTemplate("pron-graf") {
			continue
		}
		for _, p := range n.Params {
			v := w.Render(p.Value...)
			if v == "" {
				continue
			}
			switch {
			case strings.HasPrefix(p.Key, "fone"), strings.HasPrefix(p.Key, "fono"):
				out = append(out, extract.Sound{IPA: v})
			case strings.HasPrefix(p.Key, "audio"):
				out = append(out, extract.NewAudio(v))
			}
		}
		w.RenderCats(cats, n)
	}
	return out
}

func translations(w *extract.Walker, cur *extract.Cursor, level *wikitext.Node, _ extract.Role) *extract.Cursor {
	cur = w.Current(cur)
	for _, t := range level.FindChildRecursively(wikitext.KindTemplate) {
		if t.IsTemplate("t+", "t") {
			Translation(w, cur.Entry(), t)
		}
	}
	return cur
}
