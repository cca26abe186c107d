package ja

import "github.com/matzehuels/wikiextract/pkg/extract"

var posTitles = map[string]extract.POSData{
	"名詞":   {POS: "noun"},
	"固有名詞": {POS: "name"},
	"代名詞":  {POS: "pron"},
	"動詞":   {POS: "verb"},
	"助動詞":  {POS: "verb", Tags: []string{"auxiliary"}},
	"形容詞":  {POS: "adj"},
	"形容動詞": {POS: "adj", Tags: []string{"adjectival"}},
	"副詞":   {POS: "adv"},
	"連体詞":  {POS: "adnominal"},
	"接続詞":  {POS: "conj"},
	"感動詞":  {POS: "intj"},
	"間投詞":  {POS: "intj"},
	"助詞":   {POS: "particle"},
	"助数詞":  {POS: "counter"},
	"数詞":   {POS: "num"},
	"前置詞":  {POS: "prep"},
	"後置詞":  {POS: "postp"},
	"冠詞":   {POS: "article"},
	"接頭辞":  {POS: "prefix"},
	"接尾辞":  {POS: "suffix"},
	"造語成分": {POS: "affix"},
	"漢字":   {POS: "character"},
	"文字":   {POS: "character"},
	"記号":   {POS: "symbol"},
	"略語":   {POS: "abbrev"},
	"成句":   {POS: "phrase"},
	"ことわざ": {POS: "proverb"},
	"慣用句":  {POS: "phrase", Tags: []string{"idiomatic"}},
}

var linkageTitles = map[string]string{
	"類義語": extract.LinkSynonyms,
	"同義語": extract.LinkSynonyms,
	"対義語": extract.LinkAntonyms,
	"反意語": extract.LinkAntonyms,
	"上位語": extract.LinkHypernyms,
	"下位語": extract.LinkHyponyms,
	"派生語": extract.LinkDerived,
	"関連語": extract.LinkRelated,
	"複合語": extract.LinkCompounds,
	"熟語":  extract.LinkIdioms,
}

var (
	translationTitles   = []string{"翻訳", "訳語"}
	pronunciationTitles = []string{"発音"}
	etymologyTitles     = []string{"語源", "由来"}
	ignoredTitles       = []string{
		"参照", "脚注", "参考文献", "活用", "異表記・別形", "表記", "用法", "注意",
		"関連項目",
	}
)
