package extract

import (
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Handler processes one classified heading. It returns the cursor that
// later headings should write to: part-of-speech handlers may open a new
// entry, everything else returns cur unchanged.
//
// Handlers do not visit child headings; the dispatcher does that after the
// handler returns.
type Handler func(w *Walker, cur *Cursor, level *wikitext.Node, role Role) *Cursor

// Language describes how one dictionary edition lays out its pages.
type Language struct {
	// Code is the edition code, e.g. "zh".
	Code string
	// Name is the English name of the edition.
	Name string

	Namespaces wikitext.Namespaces

	// LanguageLevel is the heading depth of language sections.
	LanguageLevel int
	// BlockLevel is the heading depth of part-of-speech blocks that each
	// own one entry and a set of sub-sections. Zero means entries are
	// opened by part-of-speech headings wherever they occur.
	BlockLevel int

	// LanguageOf identifies the language of a language heading and
	// collects the categories its title renders.
	LanguageOf func(w *Walker, level *wikitext.Node, cats *wikitext.Categories) (name, code string, ok bool)

	// SectionKey returns the string classified for a heading. Nil means the
	// rendered heading title.
	SectionKey func(w *Walker, level *wikitext.Node) string

	Classifier *Classifier

	// Preamble reads the body of a language heading before its first
	// sub-heading, e.g. pronunciation boxes that apply to every entry.
	Preamble func(w *Walker, level *wikitext.Node)

	// DetectPOS finds a part of speech in block headings and their
	// content. Only used when BlockLevel is set.
	DetectPOS func(w *Walker, level *wikitext.Node) (POSData, bool)

	// Harvest configures the form-of template harvester; nil disables it.
	Harvest *HarvestRule

	Handlers map[RoleKind]Handler
}

// FindLanguage returns the language with the given edition code from all,
// or nil.
func FindLanguage(code string, all []*Language) *Language {
	for _, l := range all {
		if l.Code == code {
			return l
		}
	}
	return nil
}

// SetPOS sets the part of speech of e and appends the implied tags. An
// empty part of speech leaves the current one.
func SetPOS(e *WordEntry, d POSData) {
	if d.POS != "" {
		e.POS = d.POS
	}
	e.Tags = append(e.Tags, d.Tags...)
}
