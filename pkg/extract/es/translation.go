package es

import (
	"regexp"
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/langcodes"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// senseIDs matches a sense number list such as "1" or "1, 2".
var senseIDs = regexp.MustCompile(`^\d+(\s*,\s*\d+)*$`)

// translationRawTags are markers kept verbatim on the current word.
var translationRawTags = map[string]bool{
	"f": true, "m": true, "n": true, "c": true, "p": true,
	"adj": true, "sust": true,
}

// Translation decodes one {{t+}} template. Parameter 1 is the language
// code; the remaining positional values are read in order:
//
//   - "," ends the current word
//   - a sense number list sets the sense ids of a word not yet started
//   - "nota" and "tr" take the next value as note or romanization
//   - "nl" is skipped; consecutive plain values form one word
//   - gender and word class markers are raw tags
func Translation(w *extract.Walker, entry *extract.WordEntry, t *wikitext.Node) {
	code := strings.TrimSpace(t.ArgRaw("1"))
	b := extract.NewTranslationBuilder(&entry.Translations, extract.Translation{
		Lang:     langcodes.Name(code, "es"),
		LangCode: code,
	})

	var word string
	args := t.PositionalArgs()
	for i := 1; i < len(args); i++ {
		v := w.Render(args[i].Value...)
		switch {
		case v == "", v == "nl":
		case v == ",":
			b.Emit()
			word = ""
		case v == "nota" || v == "tr":
			if i+1 >= len(args) {
				continue
			}
			i++
			next := w.Render(args[i].Value...)
			if next == "" {
				continue
			}
			if v == "nota" {
				b.Current().Notes = append(b.Current().Notes, next)
			} else {
				b.Current().Roman = next
			}
		case translationRawTags[v]:
			b.Current().RawTags = append(b.Current().RawTags, v)
		case word == "" && senseIDs.MatchString(v):
			for _, id := range strings.Split(v, ",") {
				b.Current().SenseIDs = append(b.Current().SenseIDs, strings.TrimSpace(id))
			}
		default:
			if word != "" {
				word += " "
			}
			word += v
			b.Current().Word = word
		}
	}
	if tr := w.Arg(t, "tr"); tr != "" && word != "" {
		b.Current().Roman = tr
	}
	b.Emit()
}
