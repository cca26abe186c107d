package es

import "github.com/matzehuels/wikiextract/pkg/extract"

// posTitles are heading titles and heading template names that open an
// entry.
var posTitles = map[string]extract.POSData{
	"abreviatura":                         {POS: "abbrev"},
	"acrónimo":                            {POS: "abbrev"},
	"adjetivo cardinal":                   {POS: "num"},
	"adjetivo demostrativo":               {POS: "adj"},
	"adjetivo indefinido":                 {POS: "adj"},
	"adjetivo indeterminado":              {POS: "adj"},
	"adjetivo interrogativo":              {POS: "adj"},
	"adjetivo numeral":                    {POS: "num"},
	"adjetivo ordinal":                    {POS: "num"},
	"adjetivo posesivo":                   {POS: "adj"},
	"adjetivo relativo":                   {POS: "adj"},
	"adjetivo":                            {POS: "adj"},
	"adverbio comparativo":                {POS: "adv"},
	"adverbio de afirmación":              {POS: "adv"},
	"adverbio de cantidad":                {POS: "adv"},
	"adverbio de duda":                    {POS: "adv"},
	"adverbio de lugar":                   {POS: "adv"},
	"adverbio de modo":                    {POS: "adv"},
	"adverbio de negación":                {POS: "adv"},
	"adverbio de orden":                   {POS: "adv"},
	"adverbio de tiempo":                  {POS: "adv"},
	"adverbio demostrativo":               {POS: "adv"},
	"adverbio interrogativo":              {POS: "adv"},
	"adverbio relativo":                   {POS: "adv"},
	"adverbio":                            {POS: "adv"},
	"afijo":                               {POS: "affix"},
	"artículo determinado":                {POS: "article"},
	"artículo indeterminado":              {POS: "article"},
	"artículo":                            {POS: "article"},
	"circunfijo":                          {POS: "circumfix"},
	"conjunción adversativa":              {POS: "conj"},
	"conjunción ilativa":                  {POS: "conj"},
	"conjunción":                          {POS: "conj"},
	"dígrafo":                             {POS: "character"},
	"expresión":                           {POS: "phrase"},
	"forma adjetiva":                      {POS: "adj"},
	"forma de participio":                 {POS: "participle"},
	"forma de sufijo":                     {POS: "suffix"},
	"forma pronominal":                    {POS: "pron"},
	"forma sustantiva femenina":           {POS: "noun"},
	"forma sustantiva masculina":          {POS: "noun"},
	"forma sustantiva neutra":             {POS: "noun"},
	"forma sustantiva":                    {POS: "noun"},
	"forma verbal":                        {POS: "verb"},
	"interjección":                        {POS: "intj"},
	"letra":                               {POS: "character"},
	"locución adjetiva":                   {POS: "phrase"},
	"locución adverbial":                  {POS: "phrase"},
	"locución conjuntiva":                 {POS: "phrase"},
	"locución interjectiva":               {POS: "phrase"},
	"locución prepositiva":                {POS: "phrase"},
	"locución pronominal":                 {POS: "phrase"},
	"locución sustantiva":                 {POS: "phrase"},
	"locución verbal":                     {POS: "phrase"},
	"locución":                            {POS: "phrase"},
	"onomatopeya":                         {POS: "noun"},
	"partícula":                           {POS: "particle"},
	"postposición":                        {POS: "postp"},
	"prefijo":                             {POS: "prefix"},
	"preposición de ablativo":             {POS: "prep"},
	"preposición de acusativo o ablativo": {POS: "prep"},
	"preposición de acusativo":            {POS: "prep"},
	"preposición de genitivo":             {POS: "prep"},
	"preposición":                         {POS: "prep"},
	"pronombre demostrativo":              {POS: "pron"},
	"pronombre indefinido":                {POS: "pron"},
	"pronombre interrogativo":             {POS: "pron"},
	"pronombre personal":                  {POS: "pron"},
	"pronombre posesivo":                  {POS: "det"},
	"pronombre relativo":                  {POS: "pron"},
	"pronombre":                           {POS: "pron"},
	"refrán":                              {POS: "proverb"},
	"sigla":                               {POS: "abbrev"},
	"símbolo":                             {POS: "symbol"},
	"sufijo flexivo":                      {POS: "suffix"},
	"sufijo":                              {POS: "suffix"},
	"sustantivo ambiguo":                  {POS: "noun"},
	"sustantivo animado":                  {POS: "noun"},
	"sustantivo común":                    {POS: "noun"},
	"sustantivo femenino y masculino":     {POS: "noun"},
	"sustantivo femenino":                 {POS: "noun"},
	"sustantivo inanimado":                {POS: "noun"},
	"sustantivo masculino":                {POS: "noun"},
	"sustantivo neutro y masculino":       {POS: "noun"},
	"sustantivo neutro":                   {POS: "noun"},
	"sustantivo propio":                   {POS: "name"},
	"sustantivo propio/pruebas":           {POS: "name"},
	"sustantivo":                          {POS: "noun"},
	"verbo auxiliar":                      {POS: "verb"},
	"verbo impersonal":                    {POS: "verb"},
	"verbo intransitivo":                  {POS: "verb"},
	"verbo modal":                         {POS: "verb"},
	"verbo perfectivo":                    {POS: "verb"},
	"verbo pronominal":                    {POS: "verb"},
	"verbo transitivo":                    {POS: "verb"},
	"verbo":                               {POS: "verb"},
}

// linkageTitles are matched by prefix, both as headings and as template
// names inside definitions.
var linkageTitles = map[string]string{
	"antónimo":    extract.LinkAntonyms,
	"compuestos":  extract.LinkCompounds,
	"derivad":     extract.LinkDerived,
	"hipónimo":    extract.LinkHyponyms,
	"hiperónimo":  extract.LinkHypernyms,
	"merónimo":    extract.LinkMeronyms,
	"locucion":    extract.LinkIdioms,
	"locuciones":  extract.LinkIdioms,
	"relacionado": extract.LinkRelated,
	"refranes":    extract.LinkProverbs,
	"sinónimo":    extract.LinkSynonyms,
}

// linkagePrefixes fixes the match order of linkageTitles: longer prefixes
// first.
var linkagePrefixes = []string{
	"locuciones", "locucion", "relacionado", "compuestos", "hiperónimo",
	"antónimo", "hipónimo", "merónimo", "sinónimo", "refranes", "derivad",
}

var (
	translationTitles   = []string{"traducciones", "traducción"}
	pronunciationTitles = []string{"pronunciación", "pronunciación y escritura"}
	etymologyTitles     = []string{"etimología"}
	ignoredTitles       = []string{
		"véase también", "referencias y notas", "información adicional",
		"conjugación", "flexión", "forma flexiva", "notas",
	}
)

// csemTopics maps the semantic fields of the csem template to topics.
var csemTopics = map[string]string{
	"aeronáutica":  "aeronautics",
	"agricultura":  "agriculture",
	"anatomía":     "anatomy",
	"arquitectura": "architecture",
	"astronomía":   "astronomy",
	"biología":     "biology",
	"botánica":     "botany",
	"deporte":      "sports",
	"deportes":     "sports",
	"derecho":      "law",
	"economía":     "economics",
	"física":       "physics",
	"geografía":    "geography",
	"historia":     "history",
	"informática":  "computing",
	"lingüística":  "linguistics",
	"matemáticas":  "mathematics",
	"medicina":     "medicine",
	"música":       "music",
	"química":      "chemistry",
	"religión":     "religion",
	"vehículos":    "vehicles",
	"zoología":     "zoology",
}

// usoTags maps register labels of the uso template to tags.
var usoTags = map[string]string{
	"anticuado":   "obsolete",
	"coloquial":   "colloquial",
	"desusado":    "obsolete",
	"despectivo":  "derogatory",
	"figurado":    "figuratively",
	"formal":      "formal",
	"humorístico": "humorous",
	"infantil":    "childish",
	"informal":    "informal",
	"jergal":      "slang",
	"literario":   "literary",
	"malsonante":  "vulgar",
	"poético":     "poetic",
	"poco usado":  "rare",
	"rural":       "rural",
	"vulgar":      "vulgar",
}

// ambitoTags maps regions of the ámbito template to tags.
var ambitoTags = map[string]string{
	"Andalucía":   "Andalusia",
	"Argentina":   "Argentina",
	"Bolivia":     "Bolivia",
	"Canarias":    "Canary-Islands",
	"Chile":       "Chile",
	"Colombia":    "Colombia",
	"Costa Rica":  "Costa-Rica",
	"Cuba":        "Cuba",
	"Ecuador":     "Ecuador",
	"España":      "Spain",
	"Guatemala":   "Guatemala",
	"Honduras":    "Honduras",
	"México":      "Mexico",
	"Nicaragua":   "Nicaragua",
	"Panamá":      "Panama",
	"Paraguay":    "Paraguay",
	"Perú":        "Peru",
	"Puerto Rico": "Puerto-Rico",
	"Uruguay":     "Uruguay",
	"Venezuela":   "Venezuela",
}
