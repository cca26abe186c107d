package zh

import "github.com/matzehuels/wikiextract/pkg/extract"

var posTitles = map[string]extract.POSData{
	"不及物动词": {POS: "verb", Tags: []string{"intransitive"}},
	"不及物動詞": {POS: "verb", Tags: []string{"intransitive"}},
	"不定代词": {POS: "pron"},
	"不定冠詞": {POS: "article"},
	"不定冠词": {POS: "article"},
	"专有名詞": {POS: "name"},
	"专有名词": {POS: "name"},
	"中綴": {POS: "interfix", Tags: []string{"morpheme"}},
	"中缀": {POS: "infix", Tags: []string{"morpheme"}},
	"习语": {POS: "phrase", Tags: []string{"idiomatic"}},
	"人称代词": {POS: "pron", Tags: []string{"person"}},
	"介係詞": {POS: "prep"},
	"介系詞": {POS: "prep"},
	"介系词": {POS: "prep"},
	"介詞": {POS: "prep"},
	"介詞短語": {POS: "prep_phrase"},
	"介词": {POS: "prep"},
	"介词短语": {POS: "prep_phrase"},
	"代名詞": {POS: "pron"},
	"代名词": {POS: "pron"},
	"代詞": {POS: "pron"},
	"代词": {POS: "pron"},
	"俗語": {POS: "phrase", Tags: []string{"idiomatic"}},
	"俗语": {POS: "phrase", Tags: []string{"idiomatic"}},
	"关系代词": {POS: "pron"},
	"冠詞": {POS: "article"},
	"冠词": {POS: "article"},
	"分詞": {POS: "verb", Tags: []string{"participle"}},
	"分词": {POS: "verb", Tags: []string{"participle"}},
	"分類詞": {POS: "classifier"},
	"前綴": {POS: "prefix", Tags: []string{"morpheme"}},
	"前綴詞": {POS: "prefix", Tags: []string{"morpheme"}},
	"前缀": {POS: "prefix", Tags: []string{"morpheme"}},
	"前置詞": {POS: "prep"},
	"前置词": {POS: "prep"},
	"副助": {POS: "particle"},
	"副詞": {POS: "adv"},
	"副词": {POS: "adv"},
	"动詞": {POS: "verb"},
	"动词": {POS: "verb"},
	"助動詞": {POS: "verb"},
	"助数": {POS: "classifier", Tags: []string{"measure word"}},
	"助數詞": {POS: "counter"},
	"助詞": {POS: "particle"},
	"助词": {POS: "particle"},
	"動名詞": {POS: "verb", Tags: []string{"participle", "gerund"}},
	"動詞": {POS: "verb"},
	"及物动词": {POS: "verb", Tags: []string{"transitive"}},
	"及物動詞": {POS: "verb", Tags: []string{"transitive"}},
	"叹词": {POS: "intj"},
	"名称": {POS: "noun"},
	"名稱": {POS: "noun"},
	"名詞": {POS: "noun"},
	"名词": {POS: "noun"},
	"后缀": {POS: "suffix", Tags: []string{"morpheme"}},
	"后置词": {POS: "postp"},
	"基数": {POS: "num"},
	"基数词": {POS: "num"},
	"基數": {POS: "num"},
	"字母": {POS: "character", Tags: []string{"letter"}},
	"字綴": {POS: "affix"},
	"字面": {POS: "character", Tags: []string{"letter"}},
	"定冠词": {POS: "article"},
	"寧詞": {POS: "noun"},
	"对应汉字": {POS: "romanization"},
	"对应词语": {POS: "romanization"},
	"專有名詞": {POS: "name"},
	"小品词": {POS: "particle"},
	"平假名": {POS: "syllable"},
	"序數": {POS: "adj", Tags: []string{"ordinal"}},
	"序數詞": {POS: "num"},
	"康熙部首": {POS: "symbol"},
	"形容动词": {POS: "adj_noun"},
	"形容動詞": {POS: "adj_noun"},
	"形容詞": {POS: "adj"},
	"形容词": {POS: "adj"},
	"後綴": {POS: "suffix", Tags: []string{"morpheme"}},
	"後置詞": {POS: "postp"},
	"後附語素": {POS: "suffix", Tags: []string{"clitic"}},
	"惯用语": {POS: "phrase"},
	"感叹词": {POS: "intj"},
	"感嘆詞": {POS: "intj"},
	"感歎詞": {POS: "intj"},
	"慣用語": {POS: "phrase"},
	"成句": {POS: "proverb"},
	"成語": {POS: "phrase", Tags: []string{"idiomatic"}},
	"成语": {POS: "phrase", Tags: []string{"idiomatic"}},
	"拼音": {POS: "romanization"},
	"接助": {POS: "particle"},
	"接头": {POS: "prefix"},
	"接头詞": {POS: "prefix"},
	"接头词": {POS: "prefix"},
	"接尾": {POS: "suffix"},
	"接尾詞": {POS: "suffix"},
	"接尾词": {POS: "suffix"},
	"提助": {POS: "article"},
	"擬態詞": {POS: "noun", Tags: []string{"ideophone"}},
	"擬聲詞": {POS: "noun", Tags: []string{"onomatopoeia"}},
	"数字": {POS: "num", Tags: []string{"number"}},
	"数詞": {POS: "num", Tags: []string{"number"}},
	"数词": {POS: "num", Tags: []string{"number"}},
	"數字": {POS: "num", Tags: []string{"number"}},
	"數字符號": {POS: "num", Tags: []string{"number"}},
	"數詞": {POS: "num", Tags: []string{"number"}},
	"标点": {POS: "punct", Tags: []string{"punctuation"}},
	"标点符号": {POS: "punct", Tags: []string{"punctuation"}},
	"標點符號": {POS: "punct", Tags: []string{"punctuation"}},
	"歇后语": {POS: "proverb", Tags: []string{"xiehouyu"}},
	"歇後語": {POS: "proverb", Tags: []string{"xiehouyu"}},
	"汉语拼音": {POS: "romanization"},
	"注音符號": {POS: "character"},
	"漢字": {POS: "character", Tags: []string{"han"}},
	"片語": {POS: "phrase"},
	"物主代词": {POS: "pron"},
	"環綴": {POS: "circumfix", Tags: []string{"morpheme"}},
	"短語": {POS: "phrase"},
	"短语": {POS: "phrase", Tags: []string{"idiomatic"}},
	"符号": {POS: "symbol"},
	"符號": {POS: "symbol"},
	"简写": {POS: "abbrev", Tags: []string{"abbreviation"}},
	"縮寫": {POS: "abbrev", Tags: []string{"abbreviation"}},
	"縮約形": {POS: "contraction", Tags: []string{"contraction"}},
	"结合形式": {POS: "combining_form", Tags: []string{"morpheme"}},
	"缩写": {POS: "abbrev", Tags: []string{"abbreviation"}},
	"缩约形": {POS: "abbrev", Tags: []string{"abbreviation"}},
	"罗马化": {POS: "romanization"},
	"罗马字": {POS: "romanization"},
	"羅馬化": {POS: "romanization"},
	"羅馬字": {POS: "romanization"},
	"習語": {POS: "phrase", Tags: []string{"idiomatic"}},
	"表語": {POS: "adj", Tags: []string{"predicative"}},
	"詞綴": {POS: "affix"},
	"諺語": {POS: "proverb"},
	"變位": {POS: "conj"},
	"词组": {POS: "phrase"},
	"词缀": {POS: "affix"},
	"语气助词": {POS: "particle"},
	"谚语": {POS: "proverb"},
	"连体词": {POS: "adnominal"},
	"连词": {POS: "conj"},
	"連詞": {POS: "conj"},
	"連體詞": {POS: "adnominal"},
	"部件": {POS: "component"},
	"釋義": {POS: ""},
	"量詞": {POS: "classifier"},
	"量词": {POS: "classifier"},
	"間綴": {POS: "interfix", Tags: []string{"morpheme"}},
	"關係詞": {POS: "conj", Tags: []string{"relative"}},
	"附加符號": {POS: "character", Tags: []string{"diacritic"}},
	"附著語素": {POS: "suffix", Tags: []string{"morpheme"}},
	"限定詞": {POS: "det"},
	"限定词": {POS: "det"},
	"音節": {POS: "syllable"},
	"音节": {POS: "syllable"},
	"首字母縮略字": {POS: "abbrev", Tags: []string{"abbreviation"}},
	"首字母縮略詞": {POS: "abbrev", Tags: []string{"abbreviation"}},
	"首字母缩略词": {POS: "abbrev", Tags: []string{"abbreviation"}},
}

var linkageTitles = map[string]string{
	"同義詞":  extract.LinkSynonyms,
	"同义词":  extract.LinkSynonyms,
	"近義詞":  extract.LinkSynonyms,
	"近义词":  extract.LinkSynonyms,
	"反義詞":  extract.LinkAntonyms,
	"反义词":  extract.LinkAntonyms,
	"上位詞":  extract.LinkHypernyms,
	"上位词":  extract.LinkHypernyms,
	"下位詞":  extract.LinkHyponyms,
	"下位词":  extract.LinkHyponyms,
	"部分詞":  extract.LinkMeronyms,
	"部分词":  extract.LinkMeronyms,
	"衍生詞":  extract.LinkDerived,
	"衍生词":  extract.LinkDerived,
	"派生詞":  extract.LinkDerived,
	"派生词":  extract.LinkDerived,
	"衍生詞彙": extract.LinkDerived,
	"相關詞":  extract.LinkRelated,
	"相关词":  extract.LinkRelated,
	"相關詞彙": extract.LinkRelated,
	"相关词汇": extract.LinkRelated,
	"複合詞":  extract.LinkCompounds,
	"复合词":  extract.LinkCompounds,
}

var (
	translationTitles   = []string{"翻譯", "翻译"}
	pronunciationTitles = []string{"發音", "发音", "讀音", "读音"}
	etymologyTitles     = []string{"詞源", "词源", "字源", "語源", "语源"}
	ignoredTitles       = []string{
		"參考文獻", "参考文献", "參考", "参考", "參見", "参见", "另見", "另见",
		"延伸閱讀", "延伸阅读", "使用說明", "使用说明", "異體字", "异体字",
		"字源學", "其他寫法", "其他写法", "備註", "备注",
	}
)
