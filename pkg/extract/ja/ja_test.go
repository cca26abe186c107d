package ja

import (
	"context"
	"reflect"
	"testing"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

func fetcher(pages map[string]string) extract.PageFetcher {
	return extract.FetcherFunc(func(_ context.Context, t string) (string, bool) {
		body, ok := pages[t]
		return body, ok
	})
}

func TestSounds(t *testing.T) {
	w := extract.NewWalker(context.Background(), Language, "puppy", extract.Options{
		Config: extract.DefaultConfig(),
		Fetcher: fetcher(map[string]string{
			"テンプレート:IPA":     `[[w:国際音声記号|IPA]]: <span class="IPA">/ˈpə.pi/</span>, <span class="IPA">/ˈpʌp.i/</span>[[カテゴリ: 国際音声記号あり]]`,
			"テンプレート:X-SAMPA": `[[w:X-SAMPA|X-SAMPA]]:&nbsp;<span title="X-SAMPA pronunciation">/<span class="SAMPA">"p@.pi</span>/</span>`,
			"テンプレート:音声":      `<table class="audiotable"><tr><td>音声 (米)</td><td>[[File:en-us-puppy.ogg|noicon|175px]]</td></tr></table>[[カテゴリ:英語 音声リンクがある語句|PUPPY]]`,
		}),
	})
	root := wikitext.Parse(`* {{IPA|ˈpə.pi|ˈpʌp.i}}
* {{X-SAMPA|"p@.pi|"pVp.i}}
* {{音声|en|en-us-puppy.ogg|音声 (米)}}`)

	var cats wikitext.Categories
	sounds := Sounds(w, root, &cats)

	wantCats := []string{"国際音声記号あり", "英語 音声リンクがある語句"}
	if !reflect.DeepEqual(cats.Names(), wantCats) {
		t.Errorf("categories = %v, want %v", cats.Names(), wantCats)
	}
	if len(sounds) != 5 {
		t.Fatalf("got %d sounds, want 5: %+v", len(sounds), sounds)
	}
	wantIPA := []extract.Sound{
		{IPA: "ˈpə.pi"},
		{IPA: "ˈpʌp.i"},
		{IPA: `"p@.pi`, Tags: []string{"X-SAMPA"}},
		{IPA: `"pVp.i`, Tags: []string{"X-SAMPA"}},
	}
	if !reflect.DeepEqual(sounds[:4], wantIPA) {
		t.Errorf("sounds = %+v, want %+v", sounds[:4], wantIPA)
	}
	if sounds[4].Audio != "en-us-puppy.ogg" {
		t.Errorf("audio = %q", sounds[4].Audio)
	}
	if !reflect.DeepEqual(sounds[4].RawTags, []string{"音声 (米)"}) {
		t.Errorf("raw tags = %v", sounds[4].RawTags)
	}
	if sounds[4].AudioURL != extract.CommonsFilePath+"en-us-puppy.ogg" {
		t.Errorf("audio url = %q", sounds[4].AudioURL)
	}
}

func TestHomophonesAndJaPron(t *testing.T) {
	w := extract.NewWalker(context.Background(), Language, "橋", extract.Options{
		Config: extract.DefaultConfig(),
		Fetcher: fetcher(map[string]string{
			"テンプレート:ja-pron": `* <span class="qualifier-content">東京</span> <span class="Jpan">はし</span> <span class="Latn">háshí</span> <span class="IPA">/ha̠ɕi/</span>`,
		}),
	})
	var cats wikitext.Categories
	got := Sounds(w, wikitext.Parse("* {{homophones|ja|箸|端}}\n* {{ja-pron|はし|a=Ja-hashi.ogg}}"), &cats)
	want := []extract.Sound{
		{Homophones: []string{"ja", "箸", "端"}},
		{Form: "はし", Roman: "háshí", IPA: "/ha̠ɕi/", RawTags: []string{"東京"}},
		extract.NewAudio("Ja-hashi.ogg"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("sounds:\n got %+v\nwant %+v", got, want)
	}
}

func TestSoundBroadcast(t *testing.T) {
	text := `==英語==
===発音===
* {{IPA|ˈpʌp.i}}

===名詞===
# [[子犬]]

===動詞===
# 子を産む

====発音====
* {{IPA|ˈpʌpi}}

==日本語==
===名詞===
# 子犬
`
	res := extract.ExtractPage(context.Background(), Language, "puppy", text, extract.Options{
		Config: extract.DefaultConfig(),
	})
	if len(res.Entries) != 3 {
		t.Fatalf("got %d entries, want 3: %+v", len(res.Entries), res.Entries)
	}

	noun, verb, ja := res.Entries[0], res.Entries[1], res.Entries[2]
	if noun.POS != "noun" || verb.POS != "verb" || noun.LangCode != "en" {
		t.Errorf("entries = %s/%s %s/%s", noun.LangCode, noun.POS, verb.LangCode, verb.POS)
	}
	if want := []extract.Sound{{IPA: "ˈpʌp.i"}}; !reflect.DeepEqual(noun.Sounds, want) {
		t.Errorf("noun sounds = %+v, want %+v", noun.Sounds, want)
	}
	if want := []extract.Sound{{IPA: "ˈpʌp.i"}, {IPA: "ˈpʌpi"}}; !reflect.DeepEqual(verb.Sounds, want) {
		t.Errorf("verb sounds = %+v, want %+v", verb.Sounds, want)
	}
	if ja.Lang != "日本語" || ja.LangCode != "ja" || len(ja.Sounds) != 0 {
		t.Errorf("japanese entry = %+v", ja)
	}
}
