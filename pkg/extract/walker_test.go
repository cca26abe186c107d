package extract

import (
	"context"
	"reflect"
	"testing"

	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

var testCodes = map[string]string{"English": "en", "German": "de"}

var testLang = &Language{
	Code: "xx",
	Name: "Test",
	Namespaces: wikitext.Namespaces{
		Template: "Template:",
		Category: []string{"Category:"},
		File:     []string{"File:"},
	},
	LanguageLevel: 2,
	LanguageOf: func(w *Walker, level *wikitext.Node, cats *wikitext.Categories) (string, string, bool) {
		name := w.RenderCats(cats, level.Title...)
		if name == "" {
			return "", "", false
		}
		code, ok := testCodes[name]
		if !ok {
			code = "unknown"
		}
		return name, code, true
	},
	Classifier: NewClassifier(
		POSTable(map[string]POSData{
			"noun": {POS: "noun"},
			"verb": {POS: "verb"},
		}),
		LinkageTable(map[string]string{"synonyms": LinkSynonyms}),
		Titles(RolePronunciation, "pronunciation"),
		Titles(RoleEtymology, "etymology"),
		Titles(RoleTranslations, "translations"),
		Titles(RoleGloss, "usage notes"),
		Titles(RoleIgnore, "references"),
	),
	Handlers: map[RoleKind]Handler{
		RolePOS:           POSHandler(&GlossGrammar{ListPrefix: "#"}),
		RolePronunciation: SoundHandler(testSounds),
		RoleEtymology:     EtymologyHandler(),
		RoleTranslations: TranslationHandler(&TranslationGrammar{
			Top:  []string{"trans-top"},
			Word: []string{"t"},
		}),
		RoleLinkage: LinkageHandler(),
	},
}

func testSounds(w *Walker, level *wikitext.Node, cats *wikitext.Categories) []Sound {
	var out []Sound
	for _, t := range level.FindChildRecursively(wikitext.KindTemplate) {
		if t.IsTemplate("IPA") {
			out = append(out, IPASounds(w, t, 1)...)
			w.RenderCats(cats, t)
		}
	}
	return out
}

func extractTest(t *testing.T, text string, cfg Config) *Result {
	t.Helper()
	return ExtractPage(context.Background(), testLang, "cat", text, Options{Config: cfg})
}

// checkInvariants verifies what must hold for every extracted page.
func checkInvariants(t *testing.T, res *Result) {
	t.Helper()
	for i, e := range res.Entries {
		if e.Word != res.Title {
			t.Errorf("entry %d: word %q, want %q", i, e.Word, res.Title)
		}
		if len(e.Senses) == 0 {
			t.Errorf("entry %d has no senses", i)
		}
		if e.LangCode == "" || e.POS == "" {
			t.Errorf("entry %d: lang code %q, pos %q", i, e.LangCode, e.POS)
		}
	}
}

const catPage = `== English ==
=== Pronunciation ===
* {{IPA|/kæt/}}

=== Etymology ===
From Old English.

=== Noun ===
# A small feline.
# A person.

==== Synonyms ====
# [[kitty]]
# [[guy]], [[dude]]

==== Translations ====
{{trans-top|feline}}
* German: {{t|de|Katze|f}}
{{trans-bottom}}

=== Verb ===

==== Synonyms ====
* [[moggy]]

=== Misc ===

=== Usage notes ===
Informal.

=== References ===

== German ==
=== Noun ===
# Cat.
`

func TestExtractPage(t *testing.T) {
	res := extractTest(t, catPage, DefaultConfig())
	checkInvariants(t, res)
	if len(res.Entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(res.Entries), res.Entries)
	}

	noun, verb, de := res.Entries[0], res.Entries[1], res.Entries[2]
	if noun.POS != "noun" || verb.POS != "verb" || de.POS != "noun" {
		t.Errorf("pos = %s, %s, %s", noun.POS, verb.POS, de.POS)
	}
	if de.Lang != "German" || de.LangCode != "de" {
		t.Errorf("german entry = %s/%s", de.Lang, de.LangCode)
	}

	sounds := []Sound{{IPA: "/kæt/"}}
	for _, e := range []WordEntry{noun, verb} {
		if !reflect.DeepEqual(e.Sounds, sounds) {
			t.Errorf("%s sounds = %+v, want %+v", e.POS, e.Sounds, sounds)
		}
		if e.EtymologyText != "From Old English." {
			t.Errorf("%s etymology = %q", e.POS, e.EtymologyText)
		}
	}
	if len(de.Sounds) != 0 || de.EtymologyText != "" {
		t.Errorf("german entry leaked english data: %+v", de)
	}

	wantSenses := []Sense{{Glosses: []string{"A small feline."}}, {Glosses: []string{"A person."}}}
	if !reflect.DeepEqual(noun.Senses, wantSenses) {
		t.Errorf("senses = %+v, want %+v", noun.Senses, wantSenses)
	}
	if want := []Sense{{Tags: []string{TagNoGloss}}}; !reflect.DeepEqual(verb.Senses, want) {
		t.Errorf("verb senses = %+v, want %+v", verb.Senses, want)
	}

	wantSyn := []Linkage{
		{Word: "kitty", Sense: "A small feline."},
		{Word: "guy", Sense: "A person."},
		{Word: "dude", Sense: "A person."},
	}
	if !reflect.DeepEqual(noun.Synonyms, wantSyn) {
		t.Errorf("synonyms = %+v, want %+v", noun.Synonyms, wantSyn)
	}

	wantTr := []Translation{{Lang: "German", LangCode: "de", Word: "Katze", Sense: "feline", Tags: []string{"feminine"}}}
	if !reflect.DeepEqual(noun.Translations, wantTr) {
		t.Errorf("translations = %+v, want %+v", noun.Translations, wantTr)
	}

	wantDiags := []Diagnostic{
		{Page: "cat", Section: "Misc"},
		{Page: "cat", Section: "Usage notes", Message: "no handler for gloss"},
	}
	if !reflect.DeepEqual(res.Diagnostics, wantDiags) {
		t.Errorf("diagnostics = %+v, want %+v", res.Diagnostics, wantDiags)
	}
}

func TestExtractPageLanguageFilter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Languages = []string{"de"}
	res := extractTest(t, catPage, cfg)
	checkInvariants(t, res)
	if len(res.Entries) != 1 || res.Entries[0].LangCode != "de" {
		t.Errorf("entries = %+v, want only german", res.Entries)
	}
}

func TestGatedSectionStillVisitsChildren(t *testing.T) {
	text := `== English ==
=== Pronunciation ===
* {{IPA|/x/}}

==== Noun ====
# gloss
`
	cfg := DefaultConfig()
	cfg.Pronunciation = false
	res := extractTest(t, text, cfg)
	checkInvariants(t, res)
	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(res.Entries))
	}
	if e := res.Entries[0]; len(e.Sounds) != 0 || !reflect.DeepEqual(e.Senses, []Sense{{Glosses: []string{"gloss"}}}) {
		t.Errorf("entry = %+v", e)
	}
	if len(res.Diagnostics) != 0 {
		t.Errorf("gated section reported: %+v", res.Diagnostics)
	}
}

func TestShallowSectionReachesEarlierAndLaterEntries(t *testing.T) {
	text := `== English ==
=== Noun ===
# a

=== Pronunciation ===
* {{IPA|/a/}}

=== Verb ===
# b

==== Pronunciation ====
* {{IPA|/b/}}
`
	res := extractTest(t, text, DefaultConfig())
	checkInvariants(t, res)
	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(res.Entries))
	}
	if want := []Sound{{IPA: "/a/"}}; !reflect.DeepEqual(res.Entries[0].Sounds, want) {
		t.Errorf("noun sounds = %+v, want %+v", res.Entries[0].Sounds, want)
	}
	if want := []Sound{{IPA: "/a/"}, {IPA: "/b/"}}; !reflect.DeepEqual(res.Entries[1].Sounds, want) {
		t.Errorf("verb sounds = %+v, want %+v", res.Entries[1].Sounds, want)
	}
}

func TestFlatEntryForSectionsWithoutPOS(t *testing.T) {
	text := `== English ==
=== Etymology ===
From Latin.

==== Synonyms ====
* [[moggy]]
`
	res := extractTest(t, text, DefaultConfig())
	checkInvariants(t, res)
	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(res.Entries), res.Entries)
	}
	e := res.Entries[0]
	if e.POS != POSUnknown || !reflect.DeepEqual(e.Synonyms, []Linkage{{Word: "moggy"}}) {
		t.Errorf("flat entry = %+v", e)
	}
}

func TestEmptyPage(t *testing.T) {
	for _, text := range []string{"", "no headings at all", "== English ==\n=== References ===\n"} {
		res := extractTest(t, text, DefaultConfig())
		if len(res.Entries) != 0 {
			t.Errorf("%q: got entries %+v", text, res.Entries)
		}
	}
}

func TestEmptyPOSSectionIsPruned(t *testing.T) {
	text := `== English ==
=== Pronunciation ===
* {{IPA|/kæt/}}

=== Verb ===

=== Noun ===
# A small feline.
`
	res := extractTest(t, text, DefaultConfig())
	checkInvariants(t, res)
	if len(res.Entries) != 1 || res.Entries[0].POS != "noun" {
		t.Errorf("entries = %+v, want only the noun", res.Entries)
	}
}

func TestEtymologyGroups(t *testing.T) {
	text := `== English ==
=== Etymology 1 ===
From Old English.

==== Pronunciation ====
* {{IPA|/a/}}

==== Noun ====
# first

=== Etymology 2 ===

==== Pronunciation ====
* {{IPA|/b/}}

==== Verb ====
# second
`
	res := extractTest(t, text, DefaultConfig())
	checkInvariants(t, res)
	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(res.Entries), res.Entries)
	}
	noun, verb := res.Entries[0], res.Entries[1]
	if noun.POS != "noun" || verb.POS != "verb" {
		t.Fatalf("pos = %s, %s", noun.POS, verb.POS)
	}
	if want := []Sound{{IPA: "/a/"}}; !reflect.DeepEqual(noun.Sounds, want) {
		t.Errorf("noun sounds = %+v, want %+v", noun.Sounds, want)
	}
	if want := []Sound{{IPA: "/b/"}}; !reflect.DeepEqual(verb.Sounds, want) {
		t.Errorf("verb sounds = %+v, want %+v", verb.Sounds, want)
	}
	if noun.EtymologyText != "From Old English." {
		t.Errorf("noun etymology = %q", noun.EtymologyText)
	}
	if verb.EtymologyText != "" {
		t.Errorf("verb etymology = %q, want empty", verb.EtymologyText)
	}
}

func TestPendingSectionWithoutPOS(t *testing.T) {
	text := `== English ==
=== Etymology ===
From Latin.

==== Pronunciation ====
* {{IPA|/x/}}
`
	res := extractTest(t, text, DefaultConfig())
	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1: %+v", len(res.Entries), res.Entries)
	}
	if e := res.Entries[0]; e.POS != POSUnknown || !reflect.DeepEqual(e.Sounds, []Sound{{IPA: "/x/"}}) {
		t.Errorf("flat entry = %+v", e)
	}
}
