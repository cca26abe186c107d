package extract

import (
	"context"
	"reflect"
	"testing"

	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

func TestAudioURL(t *testing.T) {
	tests := []struct{ file, want string }{
		{"En-us-cat.ogg", CommonsFilePath + "En-us-cat.ogg"},
		{" File:En us cat.ogg ", CommonsFilePath + "En_us_cat.ogg"},
		{"Файл:Ru-кот.ogg", CommonsFilePath + "Ru-%D0%BA%D0%BE%D1%82.ogg"},
		{"", ""},
		{"File:", ""},
	}
	for _, tt := range tests {
		if got := AudioURL(tt.file); got != tt.want {
			t.Errorf("AudioURL(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}

func TestNewAudio(t *testing.T) {
	got := NewAudio(" LL-Q150 (fra)-cat.wav ")
	want := Sound{Audio: "LL-Q150 (fra)-cat.wav", AudioURL: CommonsFilePath + "LL-Q150_%28fra%29-cat.wav"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NewAudio() = %+v, want %+v", got, want)
	}
}

func TestIPASounds(t *testing.T) {
	w := NewWalker(context.Background(), testLang, "cat", Options{Config: DefaultConfig()})
	tmpl := wikitext.Parse("{{IPA|en|/kæt/||/kat/|a=UK}}").FindChild(wikitext.KindTemplate)[0]

	got := IPASounds(w, tmpl, 2, "UK")
	want := []Sound{{IPA: "/kæt/", Tags: []string{"UK"}}, {IPA: "/kat/", Tags: []string{"UK"}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IPASounds() = %+v, want %+v", got, want)
	}
	if got := IPASounds(w, tmpl, 5); got != nil {
		t.Errorf("IPASounds(from 5) = %+v, want nil", got)
	}
}
