package extract

import (
	"bytes"
	"encoding/json"
	"maps"
	"slices"
)

// WordEntry is one sense group for a (word, language, part of speech)
// triple.
type WordEntry struct {
	Word          string        `json:"word"`
	Lang          string        `json:"lang"`
	LangCode      string        `json:"lang_code"`
	POS           string        `json:"pos"`
	Tags          []string      `json:"tags,omitempty"`
	RawTags       []string      `json:"raw_tags,omitempty"`
	Categories    []string      `json:"categories,omitempty"`
	Senses        []Sense       `json:"senses,omitempty"`
	Sounds        []Sound       `json:"sounds,omitempty"`
	Forms         []Form        `json:"forms,omitempty"`
	Translations  []Translation `json:"translations,omitempty"`
	EtymologyText string        `json:"etymology_text,omitempty"`

	Synonyms  []Linkage `json:"synonyms,omitempty"`
	Antonyms  []Linkage `json:"antonyms,omitempty"`
	Hypernyms []Linkage `json:"hypernyms,omitempty"`
	Hyponyms  []Linkage `json:"hyponyms,omitempty"`
	Meronyms  []Linkage `json:"meronyms,omitempty"`
	Derived   []Linkage `json:"derived,omitempty"`
	Related   []Linkage `json:"related,omitempty"`
	Compounds []Linkage `json:"compounds,omitempty"`
	Idioms    []Linkage `json:"idioms,omitempty"`
	Proverbs  []Linkage `json:"proverbs,omitempty"`
}

// Sense is one meaning of an entry.
type Sense struct {
	Glosses    []string  `json:"glosses,omitempty"`
	SenseID    string    `json:"senseid,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	RawTags    []string  `json:"raw_tags,omitempty"`
	Topics     []string  `json:"topics,omitempty"`
	Categories []string  `json:"categories,omitempty"`
	Examples   []Example `json:"examples,omitempty"`
	FormOf     []AltForm `json:"form_of,omitempty"`
}

// AltForm points at another headword.
type AltForm struct {
	Word string `json:"word"`
}

// Sound is a pronunciation record. Audio is the media file name and
// AudioURL its resolved download location.
type Sound struct {
	IPA        string   `json:"ipa,omitempty"`
	Roman      string   `json:"roman,omitempty"`
	Form       string   `json:"form,omitempty"`
	Audio      string   `json:"audio,omitempty"`
	AudioURL   string   `json:"audio_url,omitempty"`
	Homophones []string `json:"homophones,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	RawTags    []string `json:"raw_tags,omitempty"`
}

// Form is an inflected or alternative written form.
type Form struct {
	Form    string   `json:"form"`
	Tags    []string `json:"tags,omitempty"`
	RawTags []string `json:"raw_tags,omitempty"`
	IPAs    []string `json:"ipas,omitempty"`
}

// Translation is one translated word in one target language.
type Translation struct {
	Lang     string   `json:"lang,omitempty"`
	LangCode string   `json:"lang_code,omitempty"`
	Word     string   `json:"word"`
	Roman    string   `json:"roman,omitempty"`
	Alt      string   `json:"alt,omitempty"`
	Lit      string   `json:"lit,omitempty"`
	Sense    string   `json:"sense,omitempty"`
	SenseIDs []string `json:"senseids,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	RawTags  []string `json:"raw_tags,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

// Example is a usage example or quotation attached to a sense. RefParams
// holds the named fields of a structured citation, with lower-case keys.
type Example struct {
	Text        string            `json:"text,omitempty"`
	Texts       []string          `json:"texts,omitempty"`
	Roman       string            `json:"roman,omitempty"`
	Translation string            `json:"translation,omitempty"`
	Ref         string            `json:"ref,omitempty"`
	RefParams   map[string]string `json:"ref_params,omitempty"`
	Ruby        [][2]string       `json:"ruby,omitempty"`
	RawTags     []string          `json:"raw_tags,omitempty"`
}

// Linkage is a related word: synonym, derived term, idiom and so on.
type Linkage struct {
	Word    string   `json:"word"`
	Sense   string   `json:"sense,omitempty"`
	Roman   string   `json:"roman,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	RawTags []string `json:"raw_tags,omitempty"`
}

// Linkage kinds, matching the JSON field names of WordEntry.
const (
	LinkSynonyms  = "synonyms"
	LinkAntonyms  = "antonyms"
	LinkHypernyms = "hypernyms"
	LinkHyponyms  = "hyponyms"
	LinkMeronyms  = "meronyms"
	LinkDerived   = "derived"
	LinkRelated   = "related"
	LinkCompounds = "compounds"
	LinkIdioms    = "idioms"
	LinkProverbs  = "proverbs"
)

// Linkages returns a pointer to the linkage list of the given kind, or nil
// for an unknown kind.
func (e *WordEntry) Linkages(kind string) *[]Linkage {
	switch kind {
	case LinkSynonyms:
		return &e.Synonyms
	case LinkAntonyms:
		return &e.Antonyms
	case LinkHypernyms:
		return &e.Hypernyms
	case LinkHyponyms:
		return &e.Hyponyms
	case LinkMeronyms:
		return &e.Meronyms
	case LinkDerived:
		return &e.Derived
	case LinkRelated:
		return &e.Related
	case LinkCompounds:
		return &e.Compounds
	case LinkIdioms:
		return &e.Idioms
	case LinkProverbs:
		return &e.Proverbs
	}
	return nil
}

// AddCategories appends categories not yet present.
func (e *WordEntry) AddCategories(cats ...string) {
	e.Categories = appendUnique(e.Categories, cats...)
}

// Equal reports whether two entries carry exactly the same data.
// Nil and empty lists compare equal.
func (e *WordEntry) Equal(o *WordEntry) bool {
	a, _ := json.Marshal(e)
	b, _ := json.Marshal(o)
	return bytes.Equal(a, b)
}

// Clone returns a deep copy of the entry.
func (e *WordEntry) Clone() *WordEntry {
	c := *e
	c.Tags = slices.Clone(e.Tags)
	c.RawTags = slices.Clone(e.RawTags)
	c.Categories = slices.Clone(e.Categories)
	c.Senses = cloneEach(e.Senses, Sense.Clone)
	c.Sounds = cloneEach(e.Sounds, Sound.Clone)
	c.Forms = cloneEach(e.Forms, Form.Clone)
	c.Translations = cloneEach(e.Translations, Translation.Clone)
	for _, kind := range []string{
		LinkSynonyms, LinkAntonyms, LinkHypernyms, LinkHyponyms, LinkMeronyms,
		LinkDerived, LinkRelated, LinkCompounds, LinkIdioms, LinkProverbs,
	} {
		l := c.Linkages(kind)
		*l = cloneEach(*l, Linkage.Clone)
	}
	return &c
}

// Clone returns a deep copy of the sense.
func (s Sense) Clone() Sense {
	s.Glosses = slices.Clone(s.Glosses)
	s.Tags = slices.Clone(s.Tags)
	s.RawTags = slices.Clone(s.RawTags)
	s.Topics = slices.Clone(s.Topics)
	s.Categories = slices.Clone(s.Categories)
	s.Examples = cloneEach(s.Examples, Example.Clone)
	s.FormOf = slices.Clone(s.FormOf)
	return s
}

// Clone returns a deep copy of the sound.
func (s Sound) Clone() Sound {
	s.Homophones = slices.Clone(s.Homophones)
	s.Tags = slices.Clone(s.Tags)
	s.RawTags = slices.Clone(s.RawTags)
	return s
}

// Clone returns a deep copy of the form.
func (f Form) Clone() Form {
	f.Tags = slices.Clone(f.Tags)
	f.RawTags = slices.Clone(f.RawTags)
	f.IPAs = slices.Clone(f.IPAs)
	return f
}

// Clone returns a deep copy of the translation.
func (t Translation) Clone() Translation {
	t.SenseIDs = slices.Clone(t.SenseIDs)
	t.Tags = slices.Clone(t.Tags)
	t.RawTags = slices.Clone(t.RawTags)
	t.Notes = slices.Clone(t.Notes)
	return t
}

// Clone returns a deep copy of the example.
func (x Example) Clone() Example {
	x.Texts = slices.Clone(x.Texts)
	x.RefParams = maps.Clone(x.RefParams)
	x.Ruby = slices.Clone(x.Ruby)
	x.RawTags = slices.Clone(x.RawTags)
	return x
}

// Clone returns a deep copy of the linkage.
func (l Linkage) Clone() Linkage {
	l.Tags = slices.Clone(l.Tags)
	l.RawTags = slices.Clone(l.RawTags)
	return l
}

func cloneEach[T any](in []T, clone func(T) T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}

func appendUnique(dst []string, items ...string) []string {
	for _, s := range items {
		if s != "" && !slices.Contains(dst, s) {
			dst = append(dst, s)
		}
	}
	return dst
}
