package de

import (
	"context"
	"reflect"
	"testing"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

func newWalker(title string, pages map[string]string) *extract.Walker {
	fetch := extract.FetcherFunc(func(_ context.Context, t string) (string, bool) {
		body, ok := pages[t]
		return body, ok
	})
	return extract.NewWalker(context.Background(), Language, title, extract.Options{
		Config:  extract.DefaultConfig(),
		Fetcher: fetch,
	})
}

func TestSenseIDs(t *testing.T) {
	tests := []struct {
		input string
		ids   []string
		rest  string
	}{
		{"[1] Haustier", []string{"1"}, "Haustier"},
		{"[1, 2] Tier", []string{"1", "2"}, "Tier"},
		{"[2a] Rüde", []string{"2a"}, "Rüde"},
		{"ohne Nummer", nil, "ohne Nummer"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			w := newWalker("Hund", nil)
			ids, rest := SenseIDs(wikitext.Parse(tt.input).Children)
			if !reflect.DeepEqual(ids, tt.ids) {
				t.Errorf("ids = %q, want %q", ids, tt.ids)
			}
			if got := w.Render(rest...); got != tt.rest {
				t.Errorf("rest = %q, want %q", got, tt.rest)
			}
		})
	}
}

func decodeExamples(w *extract.Walker, text string, ids ...string) []extract.Sense {
	entry := &extract.WordEntry{Word: w.Page.Title, Lang: "Deutsch", LangCode: "de"}
	for _, id := range ids {
		entry.Senses = append(entry.Senses, extract.Sense{Glosses: []string{"gloss " + id}, SenseID: id})
	}
	Examples(w, entry, wikitext.Parse(text).Children[0])
	return entry.Senses
}

func TestExamplesFollowSenseIDs(t *testing.T) {
	w := newWalker("Beispiel", nil)
	got := decodeExamples(w, ":[1] example1A \n:[1] example1B\n:[2] example2\n:[3] example3", "1", "2")
	want := []extract.Sense{
		{
			Glosses:  []string{"gloss 1"},
			SenseID:  "1",
			Examples: []extract.Example{{Text: "example1A"}, {Text: "example1B"}},
		},
		{
			Glosses:  []string{"gloss 2"},
			SenseID:  "2",
			Examples: []extract.Example{{Text: "example2"}},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("senses:\n got %+v\nwant %+v", got, want)
	}
}

func TestExampleReferences(t *testing.T) {
	tests := []struct {
		name  string
		pages map[string]string
		input string
		want  extract.Example
	}{
		{
			name:  "plain reference",
			input: ":[1] example1 <ref>ref1A</ref>",
			want:  extract.Example{Text: "example1", Ref: "ref1A"},
		},
		{
			name:  "citation template",
			pages: map[string]string{"Vorlage:Literatur": "Expanded template"},
			input: ":[1] example1 <ref>{{Literatur|Titel=title}}</ref>",
			want: extract.Example{
				Text:      "example1",
				Ref:       "Expanded template",
				RefParams: map[string]string{"titel": "title"},
			},
		},
		{
			name:  "citation fields",
			pages: map[string]string{"Vorlage:Literatur": "{{{Autor}}}: {{{Titel}}}"},
			input: ":[1] Der Hund bellt.<ref>{{Literatur|Autor=Duden|Titel=Wörterbuch|Seite=}}</ref>",
			want: extract.Example{
				Text:      "Der Hund bellt.",
				Ref:       "Duden: Wörterbuch",
				RefParams: map[string]string{"autor": "Duden", "titel": "Wörterbuch"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeExamples(newWalker("Beispiel", tt.pages), tt.input, "1")
			want := []extract.Example{tt.want}
			if !reflect.DeepEqual(got[0].Examples, want) {
				t.Errorf("examples:\n got %+v\nwant %+v", got[0].Examples, want)
			}
		})
	}
}

func TestTranslationItem(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []extract.Translation
	}{
		{
			name:  "sense markers",
			input: "*{{en}}: [1] {{Ü|en|dog}}, {{Ü|en|hound}}; [2] {{Ü|en|cur}}",
			want: []extract.Translation{
				{Lang: "Englisch", LangCode: "en", Word: "dog", SenseIDs: []string{"1"}},
				{Lang: "Englisch", LangCode: "en", Word: "hound", SenseIDs: []string{"1"}},
				{Lang: "Englisch", LangCode: "en", Word: "cur", SenseIDs: []string{"2"}},
			},
		},
		{
			name:  "gender and transcription",
			input: "*{{ru}}: [1, 2] {{Üt|ru|собака|sobaka}} {{f}}",
			want: []extract.Translation{
				{Lang: "Russisch", LangCode: "ru", Word: "собака", Roman: "sobaka", SenseIDs: []string{"1", "2"}, Tags: []string{"feminine"}},
			},
		},
		{
			name:  "empty word",
			input: "*{{fr}}: [1] {{Ü|fr|}}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWalker("Hund", nil)
			entry := &extract.WordEntry{Word: "Hund", Lang: "Deutsch", LangCode: "de"}
			item := wikitext.Parse(tt.input).Children[0].Children[0]
			TranslationItem(w, entry, item)
			if !reflect.DeepEqual(entry.Translations, tt.want) {
				t.Errorf("translations:\n got %+v\nwant %+v", entry.Translations, tt.want)
			}
		})
	}
}

func TestExtractPage(t *testing.T) {
	pages := map[string]string{
		"Vorlage:Literatur": "{{{Autor}}}: {{{Titel}}}",
	}
	text := `== Hund ({{Sprache|Deutsch}}) ==
=== {{Wortart|Substantiv|Deutsch}}, {{m}} ===

{{Aussprache}}
:{{IPA}} {{Lautschrift|hʊnt}}
:{{Hörbeispiele}} {{Audio|De-Hund.ogg}}

{{Bedeutungen}}
:[1] [[Haustier]]
:[2] [[abwertend]] [[Mensch]]

{{Herkunft}}
:von [[althochdeutsch]] ''hunt''

{{Synonyme}}
:[1] [[Köter]], [[Töle]]

{{Beispiele}}
:[1] Der Hund bellt.<ref>{{Literatur|Autor=Duden|Titel=Wörterbuch}}</ref>
:[3] Ohne Bedeutung.

==== {{Übersetzungen}} ====
{{Ü-Tabelle|Ü-links=
*{{en}}: [1] {{Ü|en|dog}}; [2] {{Ü|en|cur}}
|Ü-rechts=
*{{fr}}: [1] {{Ü|fr|chien}} {{m}}
}}

=== {{Wortart|Verb|Deutsch}} ===
`
	fetch := extract.FetcherFunc(func(_ context.Context, t string) (string, bool) {
		body, ok := pages[t]
		return body, ok
	})
	res := extract.ExtractPage(context.Background(), Language, "Hund", text, extract.Options{
		Config:  extract.DefaultConfig(),
		Fetcher: fetch,
	})

	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(res.Entries), res.Entries)
	}
	e := res.Entries[0]
	if e.Lang != "Deutsch" || e.LangCode != "de" || e.POS != "noun" {
		t.Errorf("entry = %s/%s/%s, want Deutsch/de/noun", e.Lang, e.LangCode, e.POS)
	}
	if !reflect.DeepEqual(e.Tags, []string{"masculine"}) {
		t.Errorf("tags = %v", e.Tags)
	}
	wantSounds := []extract.Sound{{IPA: "hʊnt"}, extract.NewAudio("De-Hund.ogg")}
	if !reflect.DeepEqual(e.Sounds, wantSounds) {
		t.Errorf("sounds = %+v, want %+v", e.Sounds, wantSounds)
	}
	if e.EtymologyText != "von althochdeutsch hunt" {
		t.Errorf("etymology = %q", e.EtymologyText)
	}
	wantSenses := []extract.Sense{
		{
			Glosses: []string{"Haustier"},
			SenseID: "1",
			Examples: []extract.Example{{
				Text:      "Der Hund bellt.",
				Ref:       "Duden: Wörterbuch",
				RefParams: map[string]string{"autor": "Duden", "titel": "Wörterbuch"},
			}},
		},
		{Glosses: []string{"abwertend Mensch"}, SenseID: "2"},
	}
	if !reflect.DeepEqual(e.Senses, wantSenses) {
		t.Errorf("senses:\n got %+v\nwant %+v", e.Senses, wantSenses)
	}
	wantSyn := []extract.Linkage{{Word: "Köter", Sense: "Haustier"}, {Word: "Töle", Sense: "Haustier"}}
	if !reflect.DeepEqual(e.Synonyms, wantSyn) {
		t.Errorf("synonyms = %+v, want %+v", e.Synonyms, wantSyn)
	}
	wantTr := []extract.Translation{
		{Lang: "Englisch", LangCode: "en", Word: "dog", SenseIDs: []string{"1"}},
		{Lang: "Englisch", LangCode: "en", Word: "cur", SenseIDs: []string{"2"}},
		{Lang: "Französisch", LangCode: "fr", Word: "chien", SenseIDs: []string{"1"}, Tags: []string{"masculine"}},
	}
	if !reflect.DeepEqual(e.Translations, wantTr) {
		t.Errorf("translations:\n got %+v\nwant %+v", e.Translations, wantTr)
	}
}

func TestLanguageOfUnknownName(t *testing.T) {
	res := extract.ExtractPage(context.Background(), Language, "Hund", `== Hund ({{Sprache|Klingonisch}}) ==
=== {{Wortart|Substantiv|Klingonisch}} ===
{{Bedeutungen}}
:[1] Tier
`, extract.Options{Config: extract.DefaultConfig()})

	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(res.Entries))
	}
	if got := res.Entries[0]; got.Lang != "Klingonisch" || got.LangCode != "unknown" {
		t.Errorf("language = %s/%s, want Klingonisch/unknown", got.Lang, got.LangCode)
	}
}
