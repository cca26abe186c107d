// Package languages provides the complete list of supported dictionary
// editions.
//
// This package exists to break import cycles: the edition packages (zh,
// ru, etc.) import pkg/extract, so pkg/extract cannot import them back.
// Consumers that need the full edition list import this package instead.
//
// Usage:
//
//	import "github.com/matzehuels/wikiextract/pkg/extract/languages"
//
//	for _, lang := range languages.All {
//	    fmt.Println(lang.Code, lang.Name)
//	}
package languages

import (
	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/extract/de"
	"github.com/matzehuels/wikiextract/pkg/extract/es"
	"github.com/matzehuels/wikiextract/pkg/extract/fr"
	"github.com/matzehuels/wikiextract/pkg/extract/ja"
	"github.com/matzehuels/wikiextract/pkg/extract/ru"
	"github.com/matzehuels/wikiextract/pkg/extract/zh"
)

// All is the canonical list of supported editions.
var All = []*extract.Language{
	ru.Language,
	zh.Language,
	es.Language,
	ja.Language,
	fr.Language,
	de.Language,
}

// Find returns the edition with the given code, or nil if not found.
func Find(code string) *extract.Language {
	return extract.FindLanguage(code, All)
}

// Codes returns the edition codes in registry order.
func Codes() []string {
	out := make([]string, len(All))
	for i, l := range All {
		out[i] = l.Code
	}
	return out
}
