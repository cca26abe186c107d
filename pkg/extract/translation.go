package extract

import (
	"slices"
	"strings"

	"github.com/matzehuels/wikiextract/pkg/langcodes"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// GenderTags maps gender and number codes used by translation templates
// to tags.
var GenderTags = map[string]string{
	"m":    "masculine",
	"f":    "feminine",
	"n":    "neuter",
	"c":    "common",
	"s":    "singular",
	"p":    "plural",
	"d":    "dual",
	"pf":   "perfective",
	"impf": "imperfective",
	"an":   "animate",
	"in":   "inanimate",
	"anml": "animal-not-person",
	"pr":   "personal",
	"np":   "nonpersonal",
}

type builderState int

const (
	stateIdle builderState = iota
	stateAccumulating
)

// TranslationBuilder accumulates one translation at a time. Fields are set
// through Current; Emit appends a deep copy of the record to the
// destination and starts a new one that keeps the language and sense.
type TranslationBuilder struct {
	dst   *[]Translation
	cur   Translation
	state builderState
}

// NewTranslationBuilder starts an idle builder whose records carry the
// fields of seed.
func NewTranslationBuilder(dst *[]Translation, seed Translation) *TranslationBuilder {
	return &TranslationBuilder{dst: dst, cur: seed}
}

// Current returns the record being accumulated.
func (b *TranslationBuilder) Current() *Translation {
	b.state = stateAccumulating
	return &b.cur
}

// Accumulating reports whether any field has been touched since the last
// emit.
func (b *TranslationBuilder) Accumulating() bool { return b.state == stateAccumulating }

// Emit flushes the current record if it has a word. Records without a word
// stay in place and keep collecting fields.
func (b *TranslationBuilder) Emit() bool {
	if b.cur.Word == "" {
		return false
	}
	*b.dst = append(*b.dst, b.cur.Clone())
	b.cur = Translation{Lang: b.cur.Lang, LangCode: b.cur.LangCode, Sense: b.cur.Sense}
	b.state = stateIdle
	return true
}

// SubpageRef names the parameters of a see-subpage template.
type SubpageRef struct {
	// Section is the parameter holding the heading to look under; empty
	// means the first translations heading of the subpage.
	Section string
	// Title is the parameter holding the subpage title; absent means the
	// current page.
	Title string
}

// TranslationGrammar describes the translation markup of an edition.
// Template names are matched in lower case.
type TranslationGrammar struct {
	// Edition selects the language name table.
	Edition string
	// Top templates open a translation table; parameter 1 is its sense.
	Top []string
	// Subpage templates point at translations on another page.
	Subpage map[string]SubpageRef
	// SubpageSuffix is appended to the title when a subpage template
	// points at the current page.
	SubpageSuffix string
	// Multi templates carry a list in their DataParam.
	Multi     []string
	DataParam string
	// Word templates start a new record: 1 is the language code, 2 the
	// word, later positional arguments and g= gender codes.
	Word []string
	// Skip templates are ignored.
	Skip []string
	// Qualifier templates add a raw tag with parentheses stripped.
	Qualifier []string
	// Brackets enclose raw tags produced by other templates, e.g. 〈〉.
	Brackets [2]string
}

// TranslationHandler returns a handler that decodes the translation lists
// of a section into the current entry.
func TranslationHandler(g *TranslationGrammar) Handler {
	return func(w *Walker, cur *Cursor, level *wikitext.Node, _ Role) *Cursor {
		cur = w.Current(cur)
		d := NewTranslationDecoder(w, g, cur.Entry())
		d.Section(level, "", false)
		return cur
	}
}

// TranslationDecoder decodes translation sections into one entry.
type TranslationDecoder struct {
	w       *Walker
	g       *TranslationGrammar
	entry   *WordEntry
	visited map[string]bool
}

// NewTranslationDecoder creates a decoder writing to entry.
func NewTranslationDecoder(w *Walker, g *TranslationGrammar, entry *WordEntry) *TranslationDecoder {
	return &TranslationDecoder{w: w, g: g, entry: entry, visited: map[string]bool{w.Page.Title: true}}
}

// Section decodes the top-level templates and lists of a node. A pinned
// sense is kept even when a top template names another one.
func (d *TranslationDecoder) Section(node *wikitext.Node, sense string, pinned bool) {
	for _, child := range node.FindChild(wikitext.KindTemplate, wikitext.KindList) {
		if child.Kind == wikitext.KindList {
			for _, item := range child.FindChildRecursively(wikitext.KindListItem) {
				d.Item(item, sense)
			}
			continue
		}
		name := strings.ToLower(child.Name)
		switch {
		case slices.Contains(d.g.Top, name):
			if !pinned && child.HasArg("1") {
				sense = d.w.Arg(child, "1")
			}
		case hasKey(d.g.Subpage, name):
			d.subpage(child, d.g.Subpage[name], sense)
		case slices.Contains(d.g.Multi, name):
			d.Section(wikitext.Parse(child.ArgRaw(d.g.DataParam)), sense, pinned)
		}
	}
}

// Item decodes one list item into zero or more translations.
func (d *TranslationDecoder) Item(item *wikitext.Node, sense string) {
	b := NewTranslationBuilder(&d.entry.Translations, Translation{Sense: sense})
	for i, child := range item.FilterEmptyText() {
		if i == 0 {
			d.language(b, child)
			continue
		}
		switch child.Kind {
		case wikitext.KindTemplate:
			d.template(b, child)
		case wikitext.KindLink:
			b.Emit()
			b.Current().Word = d.w.Render(child)
		}
	}
	b.Emit()
}

func (d *TranslationDecoder) language(b *TranslationBuilder, child *wikitext.Node) {
	var lang string
	if child.IsText() {
		if before, _, ok := strings.Cut(child.Text, "："); ok {
			lang = before
		} else if before, _, ok := strings.Cut(child.Text, ":"); ok {
			lang = before
		}
	} else {
		lang = d.w.Render(child)
	}
	if lang = strings.TrimSpace(lang); lang != "" {
		t := b.Current()
		t.Lang = lang
		t.LangCode = langcodes.Code(lang, d.g.Edition)
	}
}

func (d *TranslationDecoder) template(b *TranslationBuilder, t *wikitext.Node) {
	name := strings.ToLower(t.Name)
	switch {
	case slices.Contains(d.g.Word, name):
		b.Emit()
		tr := b.Current()
		if tr.LangCode == "" {
			tr.LangCode = strings.TrimSpace(t.ArgRaw("1"))
		}
		if tr.Lang == "" {
			tr.Lang = langcodes.Name(tr.LangCode, d.g.Edition)
		}
		tr.Word = d.w.Arg(t, "2")
		tr.Roman = d.w.Arg(t, "tr")
		tr.Alt = d.w.Arg(t, "alt")
		tr.Lit = d.w.Arg(t, "lit")
		for _, p := range t.Params {
			if p.Key != "g" && !positionalFrom(p.Key, 3) {
				continue
			}
			for _, code := range strings.Split(strings.TrimSpace(p.Raw), "-") {
				if tag, ok := GenderTags[code]; ok {
					tr.Tags = append(tr.Tags, tag)
				}
			}
		}
	case slices.Contains(d.g.Skip, name):
	case slices.Contains(d.g.Qualifier, name):
		if raw := strings.Trim(d.w.Render(t), "()"); raw != "" {
			tr := b.Current()
			tr.RawTags = append(tr.RawTags, raw)
		}
	default:
		open, end := d.g.Brackets[0], d.g.Brackets[1]
		if open == "" {
			return
		}
		raw := d.w.Render(t)
		if strings.HasPrefix(raw, open) && strings.HasSuffix(raw, end) && len(raw) > len(open)+len(end) {
			tr := b.Current()
			tr.RawTags = append(tr.RawTags, raw[len(open):len(raw)-len(end)])
		}
	}
}

// subpage decodes the translations of another page. The referring sense is
// pinned when it is known.
func (d *TranslationDecoder) subpage(t *wikitext.Node, ref SubpageRef, sense string) {
	title := d.w.Page.Title
	if ref.Title != "" && t.HasArg(ref.Title) {
		title = strings.TrimSpace(t.ArgRaw(ref.Title))
	}
	if title == d.w.Page.Title {
		title += d.g.SubpageSuffix
	}
	if d.visited[title] {
		return
	}
	d.visited[title] = true

	body, ok := d.w.FetchPage(title)
	if !ok {
		d.w.Logger().Debug("translation subpage missing", "page", d.w.Page.Title, "subpage", title)
		return
	}
	root := wikitext.Parse(body)
	target := root
	if ref.Section != "" && t.HasArg(ref.Section) {
		if target = d.findSection(root, strings.TrimSpace(t.ArgRaw(ref.Section))); target == nil {
			return
		}
	}
	node := d.findSection(target, "")
	if target != root && d.isTranslations(target) {
		node = target
	}
	if node != nil {
		d.Section(node, sense, sense != "")
	}
}

func (d *TranslationDecoder) isTranslations(h *wikitext.Node) bool {
	c := d.w.Lang.Classifier
	return c != nil && c.Classify(d.w.Render(h.Title...)).Kind == RoleTranslations
}

// findSection returns the first heading below node titled name, or the
// first translations heading when name is empty or not found earlier.
func (d *TranslationDecoder) findSection(node *wikitext.Node, name string) *wikitext.Node {
	for _, h := range node.FindChildRecursively(wikitext.KindLevel) {
		title := d.w.Render(h.Title...)
		if name != "" && title == name {
			return h
		}
		if d.isTranslations(h) {
			return h
		}
	}
	return nil
}

func hasKey[V any](m map[string]V, k string) bool {
	_, ok := m[k]
	return ok
}

// positionalFrom reports whether key is a positional argument number >= n.
func positionalFrom(key string, n int) bool {
	v := 0
	for _, r := range key {
		if r < '0' || r > '9' {
			return false
		}
		v = v*10 + int(r-'0')
	}
	return key != "" && v >= n
}
