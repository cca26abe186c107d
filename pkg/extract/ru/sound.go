package ru

import (
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Pronunciation decodes the transcription templates of a pronunciation
// section. The transcription itself is computed by the template, so it is
// read from the IPA spans of the expansion.
func Pronunciation(w *extract.Walker, level *wikitext.Node, cats *wikitext.Categories) []extract.Sound {
	var out []extract.Sound
	for _, t := range level.FindChildRecursively(wikitext.KindTemplate) {
		name := strings.ToLower(t.Name)
		switch {
		case strings.HasPrefix(name, "transcriptions"):
			out = append(out, transcriptions(w, t, cats)...)
		case strings.HasPrefix(name, "transcription"):
			out = append(out, transcription(w, t, cats)...)
		case name == "мфа" || name == "ipa":
			out = append(out, extract.IPASounds(w, t, 1)...)
			w.RenderCats(cats, t)
		case name == "audio" || name == "аудио":
			if file := w.Arg(t, "1"); file != "" {
				out = append(out, extract.NewAudio(file))
			}
		}
	}
	return out
}

// transcription handles {{transcription-xx|word|audio}}.
func transcription(w *extract.Walker, t *wikitext.Node, cats *wikitext.Categories) []extract.Sound {
	ipas := ipaSpans(w, t, cats)
	var s extract.Sound
	if len(ipas) > 0 {
		s.IPA = ipas[0]
	}
	if file := w.Arg(t, "2"); file != "" {
		a := extract.NewAudio(file)
		s.Audio, s.AudioURL = a.Audio, a.AudioURL
	}
	if s.IPA == "" && s.Audio == "" {
		return nil
	}
	return []extract.Sound{s}
}

// transcriptions handles {{transcriptions-xx|singular|plural|audio|audio}}.
func transcriptions(w *extract.Walker, t *wikitext.Node, cats *wikitext.Categories) []extract.Sound {
	ipas := ipaSpans(w, t, cats)
	var out []extract.Sound
	for i, number := range []string{"singular", "plural"} {
		var s extract.Sound
		if i < len(ipas) {
			s.IPA = ipas[i]
		}
		if file := w.Arg(t, []string{"3", "4"}[i]); file != "" {
			a := extract.NewAudio(file)
			s.Audio, s.AudioURL = a.Audio, a.AudioURL
		}
		if s.IPA == "" && s.Audio == "" {
			continue
		}
		s.Tags = []string{number}
		out = append(out, s)
	}
	return out
}

func ipaSpans(w *extract.Walker, t *wikitext.Node, cats *wikitext.Categories) []string {
	expanded := w.Engine.ExpandNode(t)
	w.RenderCats(cats, expanded)
	var out []string
	for _, span := range expanded.FindHTML("span") {
		if !span.HasClass("IPA") {
			continue
		}
		if ipa := w.Render(span); ipa != "" {
			out = append(out, ipa)
		}
	}
	return out
}
