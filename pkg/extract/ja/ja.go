// Package ja describes the Japanese dictionary edition.
package ja

import (
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/langcodes"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Language is the Japanese edition.
var Language = &extract.Language{
	Code: "ja",
	Name: "Japanese",
	Namespaces: wikitext.Namespaces{
		Template: "テンプレート:",
		Category: []string{"カテゴリ:", "Category:"},
		File:     []string{"ファイル:", "画像:", "File:", "Image:"},
	},
	LanguageLevel: 2,
	LanguageOf:    languageOf,
	Classifier: extract.NewClassifier(
		extract.POSTable(posTitles),
		extract.LinkageTable(linkageTitles),
		extract.Titles(extract.RoleTranslations, translationTitles...),
		extract.Titles(extract.RolePronunciation, pronunciationTitles...),
		extract.Titles(extract.RoleEtymology, etymologyTitles...),
		extract.Titles(extract.RoleIgnore, ignoredTitles...),
	),
	Handlers: map[extract.RoleKind]extract.Handler{
		extract.RolePOS:           extract.POSHandler(Glosses),
		extract.RolePronunciation: extract.SoundHandler(Sounds),
		extract.RoleEtymology:     extract.EtymologyHandler(),
		extract.RoleTranslations:  extract.TranslationHandler(Translations),
		extract.RoleLinkage:       extract.LinkageHandler(),
	},
}

// Translations is the translation table markup.
var Translations = &extract.TranslationGrammar{
	Edition:       "ja",
	Top:           []string{"trans-top", "checktrans-top"},
	Subpage:       map[string]extract.SubpageRef{"trans-see": {Title: "1"}},
	SubpageSuffix: "/翻訳",
	Word:          []string{"t", "t+", "t-", "tø", "t-simple"},
	Skip:          []string{"trans-mid", "trans-bottom", "t-needed"},
	Qualifier:     []string{"qualifier", "qual", "q"},
}

// Examples is the example markup below definitions.
var Examples = &extract.ExampleGrammar{
	QuotePrefixes: []string{"quote-", "RQ:"},
	Ux:            []string{"ux", "usex"},
	Uxi:           []string{"uxi"},
	JaX:           []string{"ja-usex", "ja-x"},
	Separator:     " ― ",
}

// Glosses is the definition list markup.
var Glosses = &extract.GlossGrammar{
	ListPrefix: "#",
	Examples:   Examples,
}

// languageOf reads "日本語", {{L|ja}} and {{ja}} headings.
func languageOf(w *extract.Walker, level *wikitext.Node, cats *wikitext.Categories) (string, string, bool) {
	title := w.RenderCats(cats, level.Title...)
	for _, t := range level.FindContent(wikitext.KindTemplate) {
		code := t.Name
		if t.IsTemplate("L", "lang") {
			code = strings.TrimSpace(t.ArgRaw("1"))
		}
		if name := langcodes.Name(code, "ja"); name != "" {
			return name, code, true
		}
	}
	if title == "" {
		return "", "", false
	}
	code := langcodes.Code(title, "ja")
	if code == "" {
		code = "unknown"
	}
	return title, code, true
}
