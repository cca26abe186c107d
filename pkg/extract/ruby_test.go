package extract

import (
	"context"
	"reflect"
	"testing"

	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

func TestExtractRuby(t *testing.T) {
	w := NewWalker(context.Background(), testLang, "漢字", Options{Config: DefaultConfig()})
	nodes := wikitext.ParseFragment("<ruby>漢<rp>(</rp><rt>かん</rt><rp>)</rp></ruby>''<ruby>字<rt>じ</rt></ruby>''を書く")

	pairs, stripped := ExtractRuby(w, nodes)
	want := [][2]string{{"漢", "かん"}, {"字", "じ"}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("pairs = %v, want %v", pairs, want)
	}
	if got := w.Render(stripped...); got != "漢字を書く" {
		t.Errorf("stripped text = %q", got)
	}
	if len(nodes[0].Children) == 0 || nodes[0].Name != "ruby" {
		t.Errorf("input modified: %+v", nodes[0])
	}
}

func TestExtractRubyWithoutAnnotation(t *testing.T) {
	w := NewWalker(context.Background(), testLang, "x", Options{Config: DefaultConfig()})
	pairs, stripped := ExtractRuby(w, wikitext.ParseFragment("<ruby>漢</ruby> plain"))
	if len(pairs) != 0 {
		t.Errorf("pairs = %v, want none", pairs)
	}
	if got := w.Render(stripped...); got != "漢 plain" {
		t.Errorf("stripped text = %q", got)
	}
}
