package fr

import "github.com/matzehuels/wikiextract/pkg/extract"

// posTitles are section names used in {{S|...}} headings.
var posTitles = map[string]extract.POSData{
	"adjectif":                    {POS: "adj"},
	"adjectif démonstratif":       {POS: "det"},
	"adjectif indéfini":           {POS: "det"},
	"adjectif interrogatif":       {POS: "det"},
	"adjectif numéral":            {POS: "num"},
	"adjectif possessif":          {POS: "det"},
	"adverbe":                     {POS: "adv"},
	"article":                     {POS: "article"},
	"article défini":              {POS: "article"},
	"article indéfini":            {POS: "article"},
	"conjonction":                 {POS: "conj"},
	"conjonction de coordination": {POS: "conj"},
	"interjection":                {POS: "intj"},
	"lettre":                      {POS: "character"},
	"locution":                    {POS: "phrase"},
	"locution-phrase":             {POS: "phrase"},
	"nom":                         {POS: "noun"},
	"nom commun":                  {POS: "noun"},
	"nom de famille":              {POS: "name"},
	"nom propre":                  {POS: "name"},
	"numéral":                     {POS: "num"},
	"onomatopée":                  {POS: "intj", Tags: []string{"onomatopoeic"}},
	"particule":                   {POS: "particle"},
	"postposition":                {POS: "postp"},
	"préfixe":                     {POS: "prefix"},
	"prénom":                      {POS: "name"},
	"préposition":                 {POS: "prep"},
	"pronom":                      {POS: "pron"},
	"pronom personnel":            {POS: "pron"},
	"pronom relatif":              {POS: "pron"},
	"proverbe":                    {POS: "proverb"},
	"suffixe":                     {POS: "suffix"},
	"symbole":                     {POS: "symbol"},
	"verbe":                       {POS: "verb"},
}

var linkageTitles = map[string]string{
	"synonymes":   extract.LinkSynonyms,
	"antonymes":   extract.LinkAntonyms,
	"hyperonymes": extract.LinkHypernyms,
	"hyponymes":   extract.LinkHyponyms,
	"méronymes":   extract.LinkMeronyms,
	"dérivés":     extract.LinkDerived,
	"apparentés":  extract.LinkRelated,
	"vocabulaire": extract.LinkRelated,
	"composés":    extract.LinkCompounds,
	"locutions":   extract.LinkIdioms,
	"proverbes":   extract.LinkProverbs,
}

var (
	translationTitles   = []string{"traductions"}
	pronunciationTitles = []string{"prononciation"}
	etymologyTitles     = []string{"étymologie"}
	ignoredTitles       = []string{
		"références", "voir aussi", "anagrammes", "homophones", "paronymes",
		"notes", "variantes", "variantes orthographiques", "attestations",
		"faux-amis", "traductions à trier",
	}
)

// ignoredHeaders are inflection table headers that are not form labels.
var ignoredHeaders = map[string]bool{"Terme": true, "Forme": true}

// ignoredCells are inflection table cells that are not forms.
var ignoredCells = map[string]bool{"Déclinaisons": true, "—": true}
