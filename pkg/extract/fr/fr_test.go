package fr

import (
	"context"
	"reflect"
	"testing"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

const frReg = `{| class="flextable flextable-fr-mfsp"
|-
| class="invisible" |
! scope="col" | Singulier
! scope="col" | Pluriel
|-
! scope="row" | Masculin
| [[chat]]<br>\ʃa\
| [[chats]]<br>\ʃa\
|}`

var templates = map[string]string{
	"Modèle:pron":   `\{{{1}}}\`,
	"Modèle:pays":   "({{{1}}})",
	"Modèle:T":      "allemand",
	"Modèle:fr-rég": frReg,
}

func newWalker(title string) *extract.Walker {
	return extract.NewWalker(context.Background(), Language, title, extract.Options{
		Config: extract.DefaultConfig(),
		Fetcher: extract.FetcherFunc(func(_ context.Context, t string) (string, bool) {
			body, ok := templates[t]
			return body, ok
		}),
	})
}

func TestPronunciation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []extract.Sound
	}{
		{
			name:  "pron template",
			input: "* {{pron|ʃa|fr}}",
			want:  []extract.Sound{{IPA: `\ʃa\`}},
		},
		{
			name:  "empty pron template",
			input: "* {{pron||fr}}",
		},
		{
			name:  "audio template",
			input: "* {{écouter|France (Paris)|ʃa|audio=Fr-chat.ogg}}",
			want: []extract.Sound{{
				IPA:      "ʃa",
				Audio:    "Fr-chat.ogg",
				AudioURL: extract.CommonsFilePath + "Fr-chat.ogg",
				RawTags:  []string{"France (Paris)"},
			}},
		},
		{
			name:  "nested list with bold label",
			input: "* '''Canada''' :\n** {{pays|Québec}} : \\ʃɑ\\\n** {{pays|Ontario}}",
			want:  []extract.Sound{{IPA: `\ʃɑ\`, RawTags: []string{"Canada", "Québec"}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWalker("chat")
			var cats wikitext.Categories
			got := Pronunciation(w, wikitext.Parse(tt.input), &cats)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sounds:\n got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestInflection(t *testing.T) {
	w := newWalker("chat")
	entry := &extract.WordEntry{Word: "chat", Lang: "français", LangCode: "fr"}
	Inflection(w, entry, wikitext.Parse("{{fr-rég|ʃa}}").Children[0])

	want := []extract.Form{{Form: "chats", IPAs: []string{`\ʃa\`}, RawTags: []string{"Pluriel", "Masculin"}}}
	if !reflect.DeepEqual(entry.Forms, want) {
		t.Errorf("forms:\n got %+v\nwant %+v", entry.Forms, want)
	}
}

func TestIsIPA(t *testing.T) {
	tests := map[string]bool{
		`\ʃa\`:  true,
		"/ʃa/":  true,
		"[ʃa]":  true,
		"chats": false,
		`\`:     false,
		"/chat": false,
	}
	for in, want := range tests {
		if got := isIPA(in); got != want {
			t.Errorf("isIPA(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestExtractPage(t *testing.T) {
	text := `== {{langue|fr}} ==
=== {{S|étymologie}} ===
: Du latin ''cattus''.

=== {{S|nom|fr}} ===
{{fr-rég|ʃa}}
'''chat''' {{pron|ʃa|fr}} {{m}}
# [[mammifère|Mammifère]] carnivore félin.
#* ''Le chat dort.''
#* {{exemple|Le chat miaule.|source=Auteur}}

==== {{S|traductions}} ====
{{trad-début|Mammifère}}
* {{T|de}} : {{trad+|de|Katze|f}}
{{trad-fin}}

=== {{S|verbe|fr}} ===
# Chercher des chats.

=== {{S|prononciation}} ===
* {{pron|ʃa|fr}}
`
	res := extract.ExtractPage(context.Background(), Language, "chat", text, extract.Options{
		Config: extract.DefaultConfig(),
		Fetcher: extract.FetcherFunc(func(_ context.Context, t string) (string, bool) {
			body, ok := templates[t]
			return body, ok
		}),
	})
	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(res.Entries), res.Entries)
	}

	noun, verb := res.Entries[0], res.Entries[1]
	if noun.Lang != "français" || noun.POS != "noun" || verb.POS != "verb" {
		t.Errorf("entries = %s/%s, %s", noun.Lang, noun.POS, verb.POS)
	}
	if noun.EtymologyText != "Du latin cattus." || verb.EtymologyText != noun.EtymologyText {
		t.Errorf("etymology = %q / %q", noun.EtymologyText, verb.EtymologyText)
	}

	wantSenses := []extract.Sense{{
		Glosses: []string{"Mammifère carnivore félin."},
		Examples: []extract.Example{
			{Text: "Le chat dort."},
			{Text: "Le chat miaule.", Ref: "Auteur"},
		},
	}}
	if !reflect.DeepEqual(noun.Senses, wantSenses) {
		t.Errorf("senses:\n got %+v\nwant %+v", noun.Senses, wantSenses)
	}

	wantTr := []extract.Translation{{
		Lang: "allemand", LangCode: "de", Word: "Katze", Sense: "Mammifère", Tags: []string{"feminine"},
	}}
	if !reflect.DeepEqual(noun.Translations, wantTr) {
		t.Errorf("translations:\n got %+v\nwant %+v", noun.Translations, wantTr)
	}
	if len(verb.Translations) != 0 {
		t.Errorf("verb translations = %+v", verb.Translations)
	}

	if len(noun.Forms) != 1 || noun.Forms[0].Form != "chats" {
		t.Errorf("forms = %+v", noun.Forms)
	}

	// Level-3 pronunciation applies to both entries.
	want := []extract.Sound{{IPA: `\ʃa\`}}
	if !reflect.DeepEqual(noun.Sounds, want) || !reflect.DeepEqual(verb.Sounds, want) {
		t.Errorf("sounds = %+v / %+v, want %+v", noun.Sounds, verb.Sounds, want)
	}
}
