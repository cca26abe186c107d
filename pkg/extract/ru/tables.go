package ru

import "github.com/matzehuels/wikiextract/pkg/extract"

type posTitle struct {
	title string
	data  extract.POSData
}

// posOrder lists part-of-speech titles in the order free text is searched
// for them. Longer titles come before the titles they contain.
var posOrder = []posTitle{
	{"имя существительное", extract.POSData{POS: "noun"}},
	{"существительное", extract.POSData{POS: "noun"}},
	{"имя собственное", extract.POSData{POS: "name"}},
	{"собственное", extract.POSData{POS: "name"}},
	{"прилагательное", extract.POSData{POS: "adj"}},
	{"деепричастие", extract.POSData{POS: "verb", Tags: []string{"adverbial", "participle"}}},
	{"причастие", extract.POSData{POS: "verb", Tags: []string{"participle"}}},
	{"глагол", extract.POSData{POS: "verb"}},
	{"наречие", extract.POSData{POS: "adv"}},
	{"местоимение", extract.POSData{POS: "pron"}},
	{"числительное", extract.POSData{POS: "num"}},
	{"предлог", extract.POSData{POS: "prep"}},
	{"послелог", extract.POSData{POS: "postp"}},
	{"союз", extract.POSData{POS: "conj"}},
	{"частица", extract.POSData{POS: "particle"}},
	{"междометие", extract.POSData{POS: "intj"}},
	{"звукоподражание", extract.POSData{POS: "intj", Tags: []string{"onomatopoeic"}}},
	{"предикатив", extract.POSData{POS: "adj", Tags: []string{"predicative"}}},
	{"вводное слово", extract.POSData{POS: "adv", Tags: []string{"parenthetic"}}},
	{"аббревиатура", extract.POSData{POS: "abbrev", Tags: []string{"abbreviation"}}},
	{"фразеологизм", extract.POSData{POS: "phrase", Tags: []string{"idiomatic"}}},
	{"идиома", extract.POSData{POS: "phrase", Tags: []string{"idiomatic"}}},
	{"устойчивое сочетание", extract.POSData{POS: "phrase"}},
	{"пословица", extract.POSData{POS: "proverb"}},
	{"поговорка", extract.POSData{POS: "proverb"}},
	{"приставка", extract.POSData{POS: "prefix", Tags: []string{"morpheme"}}},
	{"суффикс", extract.POSData{POS: "suffix", Tags: []string{"morpheme"}}},
	{"корень", extract.POSData{POS: "root", Tags: []string{"morpheme"}}},
	{"артикль", extract.POSData{POS: "article"}},
	{"иероглиф", extract.POSData{POS: "character"}},
}

var posTitles = func() map[string]extract.POSData {
	m := make(map[string]extract.POSData, len(posOrder))
	for _, p := range posOrder {
		m[p.title] = p.data
	}
	return m
}()

// posTemplateNames maps parts of template names, such as "сущ" in
// {{сущ ru m a 1a}} or {{Форма-сущ}}, to parts of speech.
var posTemplateNames = map[string]extract.POSData{
	"сущ":     {POS: "noun"},
	"прил":    {POS: "adj"},
	"гл":      {POS: "verb"},
	"прич":    {POS: "verb", Tags: []string{"participle"}},
	"деепр":   {POS: "verb", Tags: []string{"adverbial", "participle"}},
	"adv":     {POS: "adv"},
	"нар":     {POS: "adv"},
	"мест":    {POS: "pron"},
	"числ":    {POS: "num"},
	"предл":   {POS: "prep"},
	"союз":    {POS: "conj"},
	"part":    {POS: "particle"},
	"част":    {POS: "particle"},
	"interj":  {POS: "intj"},
	"межд":    {POS: "intj"},
	"predic":  {POS: "adj", Tags: []string{"predicative"}},
	"предик":  {POS: "adj", Tags: []string{"predicative"}},
	"abbrev":  {POS: "abbrev", Tags: []string{"abbreviation"}},
	"phrase":  {POS: "phrase"},
	"prefix":  {POS: "prefix", Tags: []string{"morpheme"}},
	"suffix":  {POS: "suffix", Tags: []string{"morpheme"}},
	"фраз":    {POS: "phrase"},
	"посл":    {POS: "proverb"},
	"conj":    {POS: "conj"},
	"pronoun": {POS: "pron"},
}

// morphArgs maps the тип= parameter of {{morph}} to parts of speech.
var morphArgs = map[string]string{
	"p":         "prefix",
	"prefix":    "prefix",
	"i":         "interfix",
	"interfix":  "interfix",
	"in":        "infix",
	"infix":     "infix",
	"s":         "suffix",
	"suffix":    "suffix",
	"t":         "transfix",
	"transfix":  "transfix",
	"po":        "suffix",
	"postfix":   "suffix",
	"c":         "circumfix",
	"confix":    "circumfix",
	"circumfix": "circumfix",
	"r":         "root",
	"e":         "suffix",
	"ending":    "suffix",
}

// morphTags maps phrases of expanded morphology templates to tags.
var morphTags = map[string][]string{
	"мужской род":       {"masculine"},
	"женский род":       {"feminine"},
	"средний род":       {"neuter"},
	"общий род":         {"common-gender"},
	"одушевлённое":      {"animate"},
	"неодушевлённое":    {"inanimate"},
	"совершенный вид":   {"perfective"},
	"несовершенный вид": {"imperfective"},
	"переходный":        {"transitive"},
	"непереходный":      {"intransitive"},
	"возвратный":        {"reflexive"},
	"безличный":         {"impersonal"},
	"несклоняемое":      {"indeclinable"},
	"pluralia tantum":   {"plural-only"},
	"singularia tantum": {"singular-only"},
	"мужской и женский": {"masculine", "feminine"},
}

// formParams are parameters of morphology templates that list forms.
var formParams = []struct {
	param string
	tag   string
}{
	{"степень", "comparative"},
	{"соотв", "perfective"},
}

var linkageTitles = map[string]string{
	"синонимы":    extract.LinkSynonyms,
	"антонимы":    extract.LinkAntonyms,
	"гиперонимы":  extract.LinkHypernyms,
	"гипонимы":    extract.LinkHyponyms,
	"меронимы":    extract.LinkMeronyms,
	"производные": extract.LinkDerived,
	"пословицы":   extract.LinkProverbs,
}

// relatedLabels names the parameters of {{родств-блок}}.
var relatedLabels = map[string]string{
	"умласк":  "уменьшительно-ласкательные формы",
	"увелич":  "увеличительные формы",
	"унич":    "уничижительные формы",
	"сущ":     "существительные",
	"прил":    "прилагательные",
	"гл":      "глаголы",
	"нар":     "наречия",
	"прич":    "причастия",
	"деепр":   "деепричастия",
	"мест":    "местоимения",
	"числ":    "числительные",
	"соб":     "имена собственные",
	"фам":     "фамилии",
	"этимол":  "этимологически связанные слова",
	"пр":      "производные",
	"внутр":   "внутренние",
	"сокращ":  "сокращения",
	"сложные": "сложные слова",
}

var morphologyTitles = []string{
	"морфологические и синтаксические свойства",
	"тип и синтаксические свойства сочетания",
	"тип и свойства сочетания",
}

var (
	pronunciationTitles = []string{"произношение"}
	semanticTitles      = []string{"семантические свойства"}
	glossTitles         = []string{"значение", "значения"}
	relatedTitles       = []string{"родственные слова"}
	etymologyTitles     = []string{"этимология"}
	phraseTitles        = []string{"фразеологизмы и устойчивые сочетания"}
	translationTitles   = []string{"перевод"}
	romanizationTitles  = []string{"латиница (latinça)", "латиница (latinca)"}
	ignoredTitles       = []string{"библиография", "иноязычные аналоги", "прочее", "анаграммы", "метаграммы"}
)
