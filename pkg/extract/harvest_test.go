package extract

import (
	"context"
	"reflect"
	"testing"

	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

func harvestLang() *Language {
	lang := *testLang
	lang.Harvest = &HarvestRule{
		Prefix:      "form-",
		LemmaParams: []string{"lemma", "1"},
		IPAParam:    "ipa",
		POSOf: func(_ *Walker, t *wikitext.Node) (POSData, bool) {
			if t.Name == "form-of" {
				return POSData{POS: "noun"}, true
			}
			return POSData{}, false
		},
	}
	return &lang
}

var harvestTemplates = FetcherFunc(func(_ context.Context, title string) (string, bool) {
	switch title {
	case "Template:form-of":
		return "# plural of {{{1}}}[[Category:Plurals]]", true
	case "Template:form-x":
		return "nothing to see", true
	}
	return "", false
})

func TestHarvest(t *testing.T) {
	text := "== English ==\n{{form-of|cat|ipa=/kæts/}}\n{{form-x|dog}}\n"
	res := ExtractPage(context.Background(), harvestLang(), "cats", text, Options{
		Config:  DefaultConfig(),
		Fetcher: harvestTemplates,
	})

	want := []WordEntry{{
		Word:       "cats",
		Lang:       "English",
		LangCode:   "en",
		POS:        "noun",
		Categories: []string{"Plurals"},
		Senses: []Sense{{
			Glosses: []string{"plural of cat"},
			Tags:    []string{TagFormOf},
			FormOf:  []AltForm{{Word: "cat"}},
		}},
		Sounds: []Sound{{IPA: "/kæts/"}},
	}}
	if !reflect.DeepEqual(res.Entries, want) {
		t.Errorf("entries:\n got %+v\nwant %+v", res.Entries, want)
	}
}

func TestHarvestLeavesBaseUntouched(t *testing.T) {
	w := NewWalker(context.Background(), harvestLang(), "cats", Options{
		Config:  DefaultConfig(),
		Fetcher: harvestTemplates,
	})
	w.block = w.Page.BeginLanguage("English", "en", nil)
	w.Harvest(wikitext.Parse("Some text {{form-of|cat}} inline."))

	if w.block.Base.POS != POSUnknown {
		t.Errorf("base pos = %q, want %q", w.block.Base.POS, POSUnknown)
	}
	if w.Page.Len() != 1 {
		t.Errorf("page len = %d, want 1", w.Page.Len())
	}
}

func TestHarvestIgnoresSubHeadings(t *testing.T) {
	text := "== English ==\n=== Noun ===\n# cat\n{{form-of|cat}}\n"
	res := ExtractPage(context.Background(), harvestLang(), "cats", text, Options{
		Config:  DefaultConfig(),
		Fetcher: harvestTemplates,
	})
	if len(res.Entries) != 1 || res.Entries[0].POS != "noun" {
		t.Errorf("entries = %+v, want only the noun", res.Entries)
	}
}
