package fr

import (
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Pronunciation decodes the list items of a pronunciation section.
func Pronunciation(w *extract.Walker, level *wikitext.Node, cats *wikitext.Categories) []extract.Sound {
	var out []extract.Sound
	for _, list := range level.FindChild(wikitext.KindList) {
		for _, item := range list.FindChild(wikitext.KindListItem) {
			out = append(out, pronItem(w, item)...)
			w.RenderCats(cats, item.FindChildRecursively(wikitext.KindTemplate)...)
		}
	}
	return out
}

// pronItem decodes one item. An item holding a nested list gives its
// labels to every nested item, and each nested item with an IPA becomes a
// sound of its own.
func pronItem(w *extract.Walker, item *wikitext.Node) []extract.Sound {
	var s extract.Sound
	pronTemplates(w, item, &s)
	if !item.Contains(wikitext.KindList) {
		pronText(item, &s)
		if s.IPA == "" {
			return nil
		}
		return []extract.Sound{s}
	}

	for _, b := range item.FindChild(wikitext.KindBold) {
		if label := w.Render(b); label != "" {
			s.RawTags = append(s.RawTags, label)
		}
	}
	var out []extract.Sound
	for _, nested := range item.FindChildRecursively(wikitext.KindListItem) {
		n := s.Clone()
		pronTemplates(w, nested, &n)
		pronText(nested, &n)
		if n.IPA != "" {
			out = append(out, n)
		}
	}
	return out
}

func pronTemplates(w *extract.Walker, item *wikitext.Node, s *extract.Sound) {
	for _, t := range item.FindChild(wikitext.KindTemplate) {
		switch t.Name {
		case "pron", "prononciation", "phon", "lang":
			if t.IsTemplate("pron", "prononciation") && strings.TrimSpace(t.ArgRaw("1")) == "" {
				continue
			}
			s.IPA = w.Render(t)
		case "écouter", "audio", "pron-rég":
			if loc := w.Arg(t, "1"); loc != "" {
				s.RawTags = append(s.RawTags, loc)
			}
			ipa := w.Arg(t, "2")
			if ipa == "" {
				ipa = w.Arg(t, "pron")
			}
			if ipa != "" {
				s.IPA = ipa
			}
			if file := w.Arg(t, "audio"); file != "" {
				a := extract.NewAudio(file)
				s.Audio, s.AudioURL = a.Audio, a.AudioURL
			}
		default:
			if tag := strings.Trim(w.Render(t), "() "); tag != "" {
				s.RawTags = append(s.RawTags, tag)
			}
		}
	}
}

// pronText reads "label : \ipa\" text when no template gave an IPA.
func pronText(item *wikitext.Node, s *extract.Sound) {
	if s.IPA != "" {
		return
	}
	for _, c := range item.FilterEmptyText() {
		if !c.IsText() {
			continue
		}
		text := strings.TrimSpace(c.Text)
		switch {
		case strings.HasPrefix(text, ": "):
			s.IPA = strings.TrimSpace(strings.TrimPrefix(text, ": "))
		case text != "" && text != ":":
			s.RawTags = append(s.RawTags, text)
		}
	}
}
