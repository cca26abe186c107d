// Package zh describes the Chinese dictionary edition.
//
// Language sections are level-2 headings named in Chinese. Part-of-speech
// headings open entries wherever they appear below the language heading;
// pronunciation and etymology sections placed directly below it apply to
// every entry of the language.
package zh

import (
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/langcodes"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Language is the Chinese edition.
var Language = &extract.Language{
	Code: "zh",
	Name: "Chinese",
	Namespaces: wikitext.Namespaces{
		Template: "Template:",
		Category: []string{"Category:", "分類:", "分类:"},
		File:     []string{"File:", "Image:", "文件:", "檔案:", "档案:", "圖像:"},
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
		extract.RolePronunciation: extract.SoundHandler(sounds),
		extract.RoleEtymology:     extract.EtymologyHandler(),
		extract.RoleTranslations:  extract.TranslationHandler(Translations),
		extract.RoleLinkage:       extract.LinkageHandler(),
	},
}

// Translations is the translation table markup.
var Translations = &extract.TranslationGrammar{
	Edition: "zh",
	Top:     []string{"trans-top", "翻譯-頂", "trans-top-also"},
	Subpage: map[string]extract.SubpageRef{
		"see translation subpage": {Section: "1", Title: "2"},
		"trans-see":               {Title: "2"},
	},
	SubpageSuffix: "/翻譯",
	Multi:         []string{"multitrans"},
	DataParam:     "data",
	Word:          []string{"t", "t+", "tt", "tt+", "t-check", "t+check", "l"},
	Skip:          []string{"t-needed"},
	Qualifier:     []string{"qualifier", "q"},
	Brackets:      [2]string{"〈", "〉"},
}

// Examples is the example and quotation markup.
var Examples = &extract.ExampleGrammar{
	QuotePrefixes: []string{"quote-", "RQ:"},
	RomanParam:    "transliteration",
	Sentinel:      "（請為本引文添加中文翻譯）",
	Ux:            []string{"ux", "eg", "usex"},
	Uxi:           []string{"uxi"},
	JaX:           []string{"ja-x", "ja-usex"},
	ZhX:           []string{"zh-x", "zh-usex"},
	Separator:     " ― ",
	RefPrefix:     "來自：",
	Linkage: map[string]string{
		"syn":       extract.LinkSynonyms,
		"synonyms":  extract.LinkSynonyms,
		"ant":       extract.LinkAntonyms,
		"antonyms":  extract.LinkAntonyms,
		"hyper":     extract.LinkHypernyms,
		"hypernyms": extract.LinkHypernyms,
		"hypo":      extract.LinkHyponyms,
		"hyponyms":  extract.LinkHyponyms,
	},
}

// Glosses is the definition list markup.
var Glosses = &extract.GlossGrammar{
	ListPrefix: "#",
	Examples:   Examples,
}

func languageOf(w *extract.Walker, level *wikitext.Node, cats *wikitext.Categories) (string, string, bool) {
	name := w.RenderCats(cats, level.Title...)
	if name == "" {
		return "", "", false
	}
	code := langcodes.Code(name, "zh")
	if code == "" {
		code = "unknown"
	}
	return name, code, true
}

// sounds reads pronunciation list templates: IPA, audio, homophones and
// the expanded zh-pron box.
func sounds(w *extract.Walker, level *wikitext.Node, cats *wikitext.Categories) []extract.Sound {
	var out []extract.Sound
	for _, t := range level.FindChildRecursively(wikitext.KindTemplate) {
		switch t.Name {
		case "IPA":
			out = append(out, extract.IPASounds(w, t, 2)...)
		case "audio":
			if file := w.Arg(t, "2"); file != "" {
				s := extract.NewAudio(file)
				if tag := w.Arg(t, "3"); tag != "" {
					s.RawTags = append(s.RawTags, tag)
				}
				out = append(out, s)
			}
		case "homophones":
			var words []string
			for _, p := range t.PositionalArgs()[min(1, len(t.PositionalArgs())):] {
				if word := w.Render(p.Value...); word != "" {
					words = append(words, word)
				}
			}
			if len(words) > 0 {
				out = append(out, extract.Sound{Homophones: words})
			}
		case "zh-pron":
			out = append(out, zhPron(w, t)...)
		default:
			continue
		}
		w.RenderCats(cats, t)
	}
	return out
}

// zhPron reads the "variety: reading" lines of the expanded pronunciation
// box. IPA spans give the IPA, other readings are romanizations.
func zhPron(w *extract.Walker, t *wikitext.Node) []extract.Sound {
	var out []extract.Sound
	for _, item := range w.Engine.ExpandNode(t).FindChildRecursively(wikitext.KindListItem) {
		var s extract.Sound
		if ipa := item.FindHTML("span"); len(ipa) > 0 && ipa[0].HasClass("IPA") {
			s.IPA = w.Render(ipa[0])
		}
		text := w.Render(item.InvertFindChild(wikitext.KindList)...)
		label, value, ok := cutColon(text)
		if !ok {
			continue
		}
		if s.IPA == "" {
			s.Roman = value
		}
		if label != "" {
			s.RawTags = append(s.RawTags, label)
		}
		if s.IPA != "" || s.Roman != "" {
			out = append(out, s)
		}
	}
	return out
}

func cutColon(s string) (string, string, bool) {
	for _, sep := range []string{"：", ":"} {
		if before, after, ok := strings.Cut(s, sep); ok {
			return strings.TrimSpace(before), strings.TrimSpace(after), strings.TrimSpace(after) != ""
		}
	}
	return "", "", false
}
