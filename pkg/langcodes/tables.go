package langcodes

// names maps edition -> language code -> display name.
var names = map[string]map[string]string{
	"zh": {
		"ab": "阿布哈茲語",
		"af": "南非荷蘭語",
		"an": "阿拉貢語",
		"ar": "阿拉伯語",
		"cmn": "官話",
		"cs": "捷克語",
		"da": "丹麥語",
		"de": "德語",
		"el": "希臘語",
		"en": "英語",
		"eo": "世界語",
		"es": "西班牙語",
		"fi": "芬蘭語",
		"fr": "法語",
		"he": "希伯來語",
		"hi": "印地語",
		"hu": "匈牙利語",
		"hy": "亞美尼亞語",
		"id": "印尼語",
		"it": "意大利語",
		"ja": "日語",
		"ko": "朝鮮語",
		"la": "拉丁語",
		"ms": "馬來語",
		"nl": "荷蘭語",
		"no": "挪威語",
		"pl": "波蘭語",
		"pt": "葡萄牙語",
		"ru": "俄語",
		"sh": "塞爾維亞-克羅地亞語",
		"sv": "瑞典語",
		"th": "泰語",
		"tr": "土耳其語",
		"uk": "烏克蘭語",
		"vi": "越南語",
		"yue": "粵語",
		"zh": "漢語",
	},
	"es": {
		"af": "afrikáans",
		"ar": "árabe",
		"ca": "catalán",
		"cs": "checo",
		"da": "danés",
		"de": "alemán",
		"el": "griego",
		"en": "inglés",
		"eo": "esperanto",
		"es": "español",
		"eu": "euskera",
		"fi": "finés",
		"fr": "francés",
		"gl": "gallego",
		"he": "hebreo",
		"hu": "húngaro",
		"hy": "armenio",
		"it": "italiano",
		"ja": "japonés",
		"ko": "coreano",
		"la": "latín",
		"nl": "neerlandés",
		"no": "noruego",
		"pl": "polaco",
		"pt": "portugués",
		"qu": "quechua",
		"ro": "rumano",
		"ru": "ruso",
		"sv": "sueco",
		"tr": "turco",
		"uk": "ucraniano",
		"zh": "chino",
	},
	"ru": {
		"ar": "арабский",
		"be": "белорусский",
		"bg": "болгарский",
		"cs": "чешский",
		"de": "немецкий",
		"el": "греческий",
		"en": "английский",
		"eo": "эсперанто",
		"es": "испанский",
		"fi": "финский",
		"fr": "французский",
		"it": "итальянский",
		"ja": "японский",
		"kk": "казахский",
		"la": "латинский",
		"nl": "нидерландский",
		"pl": "польский",
		"pt": "португальский",
		"ru": "русский",
		"sv": "шведский",
		"tr": "турецкий",
		"tt": "татарский",
		"uk": "украинский",
		"zh": "китайский",
	},
	"ja": {
		"ar": "アラビア語",
		"de": "ドイツ語",
		"el": "ギリシア語",
		"en": "英語",
		"eo": "エスペラント",
		"es": "スペイン語",
		"fr": "フランス語",
		"it": "イタリア語",
		"ja": "日本語",
		"ko": "朝鮮語",
		"la": "ラテン語",
		"nl": "オランダ語",
		"pt": "ポルトガル語",
		"ru": "ロシア語",
		"zh": "中国語",
	},
	"fr": {
		"ar": "arabe",
		"br": "breton",
		"ca": "catalan",
		"de": "allemand",
		"el": "grec",
		"en": "anglais",
		"eo": "espéranto",
		"es": "espagnol",
		"eu": "basque",
		"fr": "français",
		"it": "italien",
		"ja": "japonais",
		"la": "latin",
		"nl": "néerlandais",
		"oc": "occitan",
		"pl": "polonais",
		"pt": "portugais",
		"ru": "russe",
		"vls": "flamand occidental",
		"zh": "chinois",
	},
	"de": {
		"ar":  "Arabisch",
		"cs":  "Tschechisch",
		"da":  "Dänisch",
		"de":  "Deutsch",
		"el":  "Griechisch",
		"en":  "Englisch",
		"eo":  "Esperanto",
		"es":  "Spanisch",
		"fi":  "Finnisch",
		"fr":  "Französisch",
		"gmh": "Mittelhochdeutsch",
		"goh": "Althochdeutsch",
		"grc": "Altgriechisch",
		"he":  "Hebräisch",
		"hu":  "Ungarisch",
		"it":  "Italienisch",
		"ja":  "Japanisch",
		"ko":  "Koreanisch",
		"la":  "Latein",
		"nl":  "Niederländisch",
		"no":  "Norwegisch",
		"pl":  "Polnisch",
		"pt":  "Portugiesisch",
		"ru":  "Russisch",
		"sv":  "Schwedisch",
		"tr":  "Türkisch",
		"uk":  "Ukrainisch",
		"zh":  "Chinesisch",
	},
}

// aliases are alternative names accepted by Code.
var aliases = map[string]map[string]string{
	"zh": {
		"阿布哈兹语":       "ab",
		"南非荷兰语":       "af",
		"阿拉贡语":        "an",
		"阿拉伯语":        "ar",
		"官话":          "cmn",
		"捷克语":         "cs",
		"丹麦语":         "da",
		"德语":          "de",
		"希腊语":         "el",
		"英语":          "en",
		"世界语":         "eo",
		"西班牙语":        "es",
		"芬兰语":         "fi",
		"法语":          "fr",
		"希伯来语":        "he",
		"印地语":         "hi",
		"匈牙利语":        "hu",
		"亚美尼亚语":       "hy",
		"印尼语":         "id",
		"意大利语":        "it",
		"日语":          "ja",
		"日本語":         "ja",
		"朝鲜语":         "ko",
		"韓語":          "ko",
		"韩语":          "ko",
		"拉丁语":         "la",
		"马来语":         "ms",
		"荷兰语":         "nl",
		"挪威语":         "no",
		"波兰语":         "pl",
		"葡萄牙语":        "pt",
		"俄语":          "ru",
		"塞尔维亚-克罗地亚语":  "sh",
		"瑞典语":         "sv",
		"泰语":          "th",
		"土耳其语":        "tr",
		"乌克兰语":        "uk",
		"越南语":         "vi",
		"粤语":          "yue",
		"汉语":          "zh",
		"中文":          "zh",
	},
	"es": {
		"alemán":   "de",
		"eusquera": "eu",
		"vasco":    "eu",
		"holandés": "nl",
	},
	"fr": {
		"allemand": "de",
	},
	"de": {
		"Neugriechisch": "el",
		"Lateinisch":    "la",
	},
}
