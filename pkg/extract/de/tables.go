package de

import (
	"regexp"

	"github.com/matzehuels/wikiextract/pkg/extract"
)

// posTitles are the word classes named by {{Wortart}}.
var posTitles = map[string]extract.POSData{
	"Abkürzung":            {POS: "abbrev", Tags: []string{"abbreviation"}},
	"Adjektiv":             {POS: "adj"},
	"Adverb":               {POS: "adv"},
	"Affix":                {POS: "affix"},
	"Akronym":              {POS: "abbrev", Tags: []string{"acronym"}},
	"Artikel":              {POS: "article"},
	"Deklinierte Form":     {POS: "noun", Tags: []string{"form-of"}},
	"Demonstrativpronomen": {POS: "pron", Tags: []string{"demonstrative"}},
	"Eigenname":            {POS: "name"},
	"Gebundenes Lexem":     {POS: "affix"},
	"Hilfsverb":            {POS: "verb", Tags: []string{"auxiliary"}},
	"Indefinitpronomen":    {POS: "pron", Tags: []string{"indefinite"}},
	"Initialwort":          {POS: "abbrev", Tags: []string{"initialism"}},
	"Interjektion":         {POS: "intj"},
	"Interrogativpronomen": {POS: "pron", Tags: []string{"interrogative"}},
	"Kardinalzahl":         {POS: "num", Tags: []string{"cardinal"}},
	"Konjugierte Form":     {POS: "verb", Tags: []string{"form-of"}},
	"Konjunktion":          {POS: "conj"},
	"Kontraktion":          {POS: "contraction"},
	"Kurzwort":             {POS: "abbrev", Tags: []string{"clipping"}},
	"Modalpartikel":        {POS: "particle", Tags: []string{"modal"}},
	"Nachname":             {POS: "name", Tags: []string{"surname"}},
	"Numerale":             {POS: "num"},
	"Onomatopoetikum":      {POS: "intj", Tags: []string{"onomatopoeic"}},
	"Ordinalzahl":          {POS: "num", Tags: []string{"ordinal"}},
	"Partikel":             {POS: "particle"},
	"Partizip I":           {POS: "verb", Tags: []string{"participle", "present"}},
	"Partizip II":          {POS: "verb", Tags: []string{"participle", "past"}},
	"Personalpronomen":     {POS: "pron", Tags: []string{"personal"}},
	"Possessivpronomen":    {POS: "pron", Tags: []string{"possessive"}},
	"Postposition":         {POS: "postp"},
	"Pronomen":             {POS: "pron"},
	"Präfix":               {POS: "prefix"},
	"Präposition":          {POS: "prep"},
	"Redewendung":          {POS: "phrase", Tags: []string{"idiomatic"}},
	"Reflexivpronomen":     {POS: "pron", Tags: []string{"reflexive"}},
	"Relativpronomen":      {POS: "pron", Tags: []string{"relative"}},
	"Sprichwort":           {POS: "proverb"},
	"Subjunktion":          {POS: "conj", Tags: []string{"subordinating"}},
	"Substantiv":           {POS: "noun"},
	"Suffix":               {POS: "suffix"},
	"Symbol":               {POS: "symbol"},
	"Toponym":              {POS: "name", Tags: []string{"toponymic"}},
	"Verb":                 {POS: "verb"},
	"Vorname":              {POS: "name", Tags: []string{"given-name"}},
	"Wortverbindung":       {POS: "phrase"},
	"Zirkumfix":            {POS: "circumfix"},
}

// ignoredTitles are headings that carry nothing to extract.
var ignoredTitles = []string{"Referenzen", "Quellen", "Lesezeichen"}

// The parts of a part-of-speech section other than linkages.
const (
	partSenses    = "senses"
	partExamples  = "examples"
	partSounds    = "sounds"
	partEtymology = "etymology"
)

// partTemplates map the templates that open a part of a part-of-speech
// section to that part. Linkage parts map to their linkage kind, and parts
// that are not extracted map to "".
var partTemplates = map[string]string{
	"Bedeutungen":          partSenses,
	"Beispiele":            partExamples,
	"Aussprache":           partSounds,
	"Herkunft":             partEtymology,
	"Synonyme":             extract.LinkSynonyms,
	"Sinnverwandte Wörter": extract.LinkRelated,
	"Gegenwörter":          extract.LinkAntonyms,
	"Oberbegriffe":         extract.LinkHypernyms,
	"Unterbegriffe":        extract.LinkHyponyms,
	"Meronyme":             extract.LinkMeronyms,
	"Wortbildungen":        extract.LinkDerived,
	"Redewendungen":        extract.LinkIdioms,
	"Sprichwörter":         extract.LinkProverbs,
	"Worttrennung":         "",
	"Nebenformen":          "",
	"Alte Schreibweisen":   "",
	"Anmerkung":            "",
	"Referenzen":           "",
	"Abkürzungen":          "",
}

// senseMarkerRe matches the "[1]" or "[1, 2]" markers inside a line.
var senseMarkerRe = regexp.MustCompile(`\[([^\]]+)\]`)
