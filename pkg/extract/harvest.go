package extract

import (
	"strings"

	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// TagFormOf marks a sense that points at another headword.
const TagFormOf = "form-of"

// HarvestRule describes the form-of template family of an edition:
// templates placed in body text that declare the page an inflected form of
// another word.
type HarvestRule struct {
	// Prefix selects templates by name, e.g. "Форма-".
	Prefix string
	// LemmaParams are tried in order; the first non-empty one names the
	// lemma.
	LemmaParams []string
	// IPAParam names the pronunciation parameter, if any.
	IPAParam string
	// POSOf resolves the part of speech declared by the template.
	POSOf func(w *Walker, t *wikitext.Node) (POSData, bool)
}

func (r *HarvestRule) matches(t *wikitext.Node) bool {
	return t.IsTemplate() && strings.HasPrefix(t.Name, r.Prefix)
}

// Harvest scans the body of a heading, but not its sub-headings, for
// form-of templates and appends one entry per template that yields a sense
// or a sound.
func (w *Walker) Harvest(level *wikitext.Node) {
	rule := w.Lang.Harvest
	if rule == nil || w.block == nil {
		return
	}
	for _, node := range level.Content() {
		if rule.matches(node) {
			w.harvestTemplate(rule, node)
			continue
		}
		for _, t := range node.FindChildRecursively(wikitext.KindTemplate) {
			if rule.matches(t) {
				w.harvestTemplate(rule, t)
			}
		}
	}
}

func (w *Walker) harvestTemplate(rule *HarvestRule, t *wikitext.Node) {
	entry := w.block.Base.Clone()
	if rule.POSOf != nil {
		if d, ok := rule.POSOf(w, t); ok {
			entry.POS = d.POS
			entry.Tags = append(entry.Tags, d.Tags...)
		}
	}

	var lemma string
	for _, p := range rule.LemmaParams {
		if lemma = w.Arg(t, p); lemma != "" {
			break
		}
	}

	for _, item := range w.Engine.ExpandNode(t).FindChildRecursively(wikitext.KindListItem) {
		gloss := w.Render(item.Children...)
		if gloss == "" {
			continue
		}
		sense := Sense{Glosses: []string{gloss}}
		if lemma != "" {
			sense.FormOf = append(sense.FormOf, AltForm{Word: lemma})
			sense.Tags = append(sense.Tags, TagFormOf)
		}
		entry.Senses = append(entry.Senses, sense)
	}

	if rule.IPAParam != "" {
		if ipa := w.Arg(t, rule.IPAParam); ipa != "" {
			entry.Sounds = append(entry.Sounds, Sound{IPA: ipa})
		}
	}

	if len(entry.Senses) == 0 && len(entry.Sounds) == 0 {
		return
	}
	var cats wikitext.Categories
	w.RenderCats(&cats, t)
	entry.AddCategories(cats.Names()...)
	w.block.Append(entry)
}
