// Package langcodes maps language codes to localized language names and back.
//
// Each supported dictionary edition names languages in its own language:
// the Spanish edition calls "de" "alemán", the Chinese edition calls it
// "德语" or "德語". Lookups are scoped by edition code.
//
//	langcodes.Name("af", "es")     // "afrikáans"
//	langcodes.Code("英語", "zh")    // "en"
//
// Name lookups in [Code] are case-insensitive and accept the alternative
// spellings registered for an edition (for example both simplified and
// traditional Chinese names).
package langcodes

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
)

var (
	reverseOnce sync.Once
	reverse     map[string]map[string]string
)

// Name returns the display name of the language code in the given edition,
// or "" when unknown.
func Name(code, edition string) string {
	return names[edition][strings.TrimSpace(code)]
}

// Code returns the language code for a localized language name, or "" when
// the name is not known to the edition.
func Code(name, edition string) string {
	reverseOnce.Do(buildReverse)
	return reverse[edition][foldName(strings.TrimSpace(name))]
}

// Editions returns the edition codes that have name tables, sorted.
func Editions() []string {
	out := make([]string, 0, len(names))
	for e := range names {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}

// Supported reports whether the edition has a name table.
func Supported(edition string) bool {
	_, ok := names[edition]
	return ok
}

func buildReverse() {
	reverse = make(map[string]map[string]string, len(names))
	for edition, table := range names {
		r := make(map[string]string, len(table))
		for code, name := range table {
			r[foldName(name)] = code
		}
		for name, code := range aliases[edition] {
			r[foldName(name)] = code
		}
		reverse[edition] = r
	}
}

// foldName case-folds a name. Casers carry state, so one is made per call.
func foldName(s string) string { return cases.Fold().String(s) }
