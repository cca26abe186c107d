package extract

import (
	"net/url"
	"strings"

	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// CommonsFilePath resolves media file names to download URLs.
const CommonsFilePath = "https://commons.wikimedia.org/wiki/Special:FilePath/"

// NewAudio returns a sound for a media file.
func NewAudio(file string) Sound {
	file = strings.TrimSpace(file)
	return Sound{Audio: file, AudioURL: AudioURL(file)}
}

// AudioURL returns the download URL of a media file name.
func AudioURL(file string) string {
	file = strings.TrimSpace(file)
	for _, ns := range []string{"File:", "Файл:", "Archivo:", "ファイル:", "Fichier:", "文件:", "Datei:"} {
		file = strings.TrimPrefix(file, ns)
	}
	if file == "" {
		return ""
	}
	return CommonsFilePath + url.PathEscape(strings.ReplaceAll(file, " ", "_"))
}

// SoundDecoder extracts the sounds of a pronunciation section and records
// the categories its templates render.
type SoundDecoder func(w *Walker, level *wikitext.Node, cats *wikitext.Categories) []Sound

// SoundHandler returns a pronunciation handler. Sounds of a shallow section
// go to every entry of the language, nested ones to the current entry.
func SoundHandler(decode SoundDecoder) Handler {
	return func(w *Walker, cur *Cursor, level *wikitext.Node, _ Role) *Cursor {
		var cats wikitext.Categories
		sounds := decode(w, level, &cats)
		for _, e := range w.Targets(cur, level) {
			e.Sounds = append(e.Sounds, cloneEach(sounds, Sound.Clone)...)
			e.AddCategories(cats.Names()...)
		}
		return cur
	}
}

// IPASounds returns one sound per non-empty positional argument from
// position from on, tagged with tags.
func IPASounds(w *Walker, t *wikitext.Node, from int, tags ...string) []Sound {
	var out []Sound
	for _, p := range t.PositionalArgs() {
		if !positionalFrom(p.Key, from) {
			continue
		}
		if ipa := w.Render(p.Value...); ipa != "" {
			s := Sound{IPA: ipa}
			if len(tags) > 0 {
				s.Tags = append(s.Tags, tags...)
			}
			out = append(out, s)
		}
	}
	return out
}
