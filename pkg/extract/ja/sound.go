package ja

import (
	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Sounds decodes the templates of a pronunciation section. Every template
// is rendered once so its categories reach the entries.
func Sounds(w *extract.Walker, level *wikitext.Node, cats *wikitext.Categories) []extract.Sound {
	var out []extract.Sound
	for _, t := range level.FindChildRecursively(wikitext.KindTemplate) {
		switch t.Name {
		case "音声":
			if file := w.Arg(t, "2"); file != "" {
				s := extract.NewAudio(file)
				if tag := w.Arg(t, "3"); tag != "" {
					s.RawTags = append(s.RawTags, tag)
				}
				out = append(out, s)
			}
		case "IPA":
			out = append(out, extract.IPASounds(w, t, 1)...)
		case "X-SAMPA":
			out = append(out, extract.IPASounds(w, t, 1, "X-SAMPA")...)
		case "homophones":
			var words []string
			for _, p := range t.PositionalArgs() {
				if word := w.Render(p.Value...); word != "" {
					words = append(words, word)
				}
			}
			if len(words) > 0 {
				out = append(out, extract.Sound{Homophones: words})
			}
		case "ja-pron":
			out = append(out, jaPron(w, t)...)
		case "ja-accent-common":
			if s, ok := jaAccent(w, t); ok {
				out = append(out, s)
			}
		}
		w.RenderCats(cats, t)
	}
	return out
}

// jaPron reads the reading lines of the expanded ja-pron box and its
// audio parameters.
func jaPron(w *extract.Walker, t *wikitext.Node) []extract.Sound {
	var out []extract.Sound
	for _, item := range w.Engine.ExpandNode(t).FindChildRecursively(wikitext.KindListItem) {
		if item.Contains(wikitext.KindTable) {
			continue
		}
		var s extract.Sound
		for _, span := range item.FindHTML("span") {
			switch {
			case span.HasClass("qualifier-content"):
				if tag := w.Render(span); tag != "" {
					s.RawTags = append(s.RawTags, tag)
				}
			case span.HasClass("IPA"):
				s.IPA = w.Render(span)
			case span.HasClass("Latn"):
				s.Roman = w.Render(span)
			case span.HasClass("Jpan"):
				s.Form = w.Render(span)
			}
		}
		if s.IPA != "" || s.Roman != "" || s.Form != "" || len(s.RawTags) > 0 {
			out = append(out, s)
		}
	}
	for _, key := range []string{"a", "audio"} {
		if file := w.Arg(t, key); file != "" {
			out = append(out, extract.NewAudio(file))
		}
	}
	return out
}

// jaAccent reads a pitch accent box: links are labels, the last span is
// the accented form.
func jaAccent(w *extract.Walker, t *wikitext.Node) (extract.Sound, bool) {
	root := w.Engine.ExpandNode(t)
	var s extract.Sound
	for _, link := range root.FindChildRecursively(wikitext.KindLink) {
		if tag := w.Render(link); tag != "" {
			s.RawTags = append(s.RawTags, tag)
		}
	}
	for _, span := range root.FindHTML("span") {
		s.Form = w.Render(span)
	}
	return s, s.Form != ""
}
