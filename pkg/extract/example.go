package extract

import (
	"slices"
	"strings"

	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// ExampleGrammar names the example templates of an edition. Names are
// matched exactly, quotation prefixes by prefix.
type ExampleGrammar struct {
	// QuotePrefixes select quotation templates, e.g. "quote-", "RQ:".
	QuotePrefixes []string
	// RomanParam marks a quotation whose third line is a romanization.
	RomanParam string
	// Sentinel is the placeholder text for a missing translation.
	Sentinel string

	Ux  []string
	Uxi []string
	JaX []string
	ZhX []string

	// Separator splits single-line usage examples, e.g. " ― ".
	Separator string
	// RefPrefix starts the source line of a zh-x block.
	RefPrefix string

	// Linkage maps linkage templates found among examples to linkage
	// kinds; their words are attached to the entry.
	Linkage map[string]string
}

// ExampleDecoder decodes example list items into a sense.
type ExampleDecoder struct {
	w     *Walker
	g     *ExampleGrammar
	entry *WordEntry
	sense *Sense
}

// NewExampleDecoder creates a decoder writing examples to sense and
// linkages to entry.
func NewExampleDecoder(w *Walker, g *ExampleGrammar, entry *WordEntry, sense *Sense) *ExampleDecoder {
	return &ExampleDecoder{w: w, g: g, entry: entry, sense: sense}
}

// Decode walks nodes and decodes every list item found. Nothing is added
// when example capture is disabled.
func (d *ExampleDecoder) Decode(nodes ...*wikitext.Node) {
	if !d.w.Config.Examples {
		return
	}
	for _, n := range nodes {
		if n.Kind == wikitext.KindListItem {
			d.Item(n)
			continue
		}
		d.Decode(n.Children...)
	}
}

// Item decodes one list item. An item holding a nested list is a source
// line followed by the example text; otherwise its templates are decoded.
func (d *ExampleDecoder) Item(item *wikitext.Node) {
	var ex Example
	if item.Contains(wikitext.KindList) {
		d.nestedList(item, &ex)
	} else {
		for _, t := range item.FindChild(wikitext.KindTemplate) {
			switch {
			case hasAnyPrefix(t.Name, d.g.QuotePrefixes):
				d.Quote(t, &ex)
			case slices.Contains(d.g.JaX, t.Name):
				d.JaX(t, &ex)
			case slices.Contains(d.g.ZhX, t.Name):
				d.ZhX(t)
			case slices.Contains(d.g.Ux, t.Name):
				d.Ux(t, &ex)
			case slices.Contains(d.g.Uxi, t.Name):
				d.SplitLine(d.w.Render(t), &ex)
			case hasKey(d.g.Linkage, t.Name):
				d.linkage(t, d.g.Linkage[t.Name])
			default:
				ex.Text = d.w.Render(t)
			}
		}
	}
	d.add(ex)
}

func (d *ExampleDecoder) add(ex Example) {
	if ex.Text != "" || len(ex.Texts) > 0 {
		d.sense.Examples = append(d.sense.Examples, ex)
	}
}

func (d *ExampleDecoder) nestedList(item *wikitext.Node, ex *Example) {
	for i, c := range item.Children {
		if c.Kind != wikitext.KindList || len(c.Children) == 0 {
			continue
		}
		ex.Ref = d.w.Render(item.Children[:i]...)
		ex.Text = d.w.Render(c.Children[0].Children...)
	}
}

// Quote decodes a quotation by line: source, text, then romanization when
// the template declares one, then translation.
func (d *ExampleDecoder) Quote(t *wikitext.Node, ex *Example) {
	hasRoman := d.g.RomanParam != "" && t.HasArg(d.g.RomanParam)
	for i, line := range strings.Split(d.w.Render(t), "\n") {
		if line == d.g.Sentinel && d.g.Sentinel != "" {
			continue
		}
		switch {
		case i == 0:
			ex.Ref = line
		case i == 1:
			ex.Text = line
		case i == 2 && hasRoman:
			ex.Roman = line
		default:
			ex.Translation = joinNonEmpty(ex.Translation, line)
		}
	}
}

// Ux decodes a usage example by line: text, romanization unless it is the
// last line, then translation. Single-line output with the separator is
// split instead.
func (d *ExampleDecoder) Ux(t *wikitext.Node, ex *Example) {
	text := d.w.Render(t)
	if d.g.Separator != "" && strings.Contains(text, d.g.Separator) {
		d.SplitLine(text, ex)
		return
	}
	assignParts(strings.Split(text, "\n"), ex)
}

// SplitLine applies the usage example roles to the parts of a line split
// on the separator.
func (d *ExampleDecoder) SplitLine(text string, ex *Example) {
	if d.g.Separator == "" {
		assignParts([]string{text}, ex)
		return
	}
	assignParts(strings.Split(text, d.g.Separator), ex)
}

func assignParts(parts []string, ex *Example) {
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		switch {
		case i == 0:
			ex.Texts = append(ex.Texts, part)
		case i == 1 && i < len(parts)-1:
			ex.Roman = part
		default:
			ex.Translation = joinNonEmpty(ex.Translation, part)
		}
	}
}

// JaX decodes a Japanese usage example: ruby annotations first, then text,
// romanization and translation lines.
func (d *ExampleDecoder) JaX(t *wikitext.Node, ex *Example) {
	ruby, nodes := ExtractRuby(d.w, d.w.Engine.ExpandNode(t).Children)
	for i, line := range strings.Split(d.w.Render(nodes...), "\n") {
		switch i {
		case 0:
			ex.Texts = append(ex.Texts, line)
		case 1:
			ex.Roman = line
		default:
			ex.Translation = joinNonEmpty(ex.Translation, line)
		}
	}
	if len(ruby) > 0 {
		ex.Ruby = ruby
	}
}

// ZhX decodes a Chinese usage example. Inline output is split on "―";
// block output is a definition list with one example per script variant.
func (d *ExampleDecoder) ZhX(t *wikitext.Node) {
	root := d.w.Engine.ExpandNode(t)
	text := d.w.Render(root)
	if strings.Contains(text, "―") {
		var ex Example
		for i, part := range strings.Split(text, "―") {
			part = strings.TrimSpace(part)
			switch i {
			case 0:
				for _, s := range strings.Split(part, " / ") {
					if s = strings.TrimSpace(s); s != "" {
						ex.Texts = append(ex.Texts, s)
					}
				}
			case 1:
				ex.Roman = part
			case 2:
				ex.Translation = part
			}
		}
		d.add(ex)
		return
	}

	for _, dl := range root.FindHTML("dl") {
		var ref, roman, translation string
		inDD := map[*wikitext.Node]bool{}
		for _, dd := range dl.FindHTML("dd") {
			ddText := d.w.Render(dd)
			spans := dd.FindHTML("span")
			for _, s := range spans {
				inDD[s] = true
			}
			switch {
			case d.g.RefPrefix != "" && strings.HasPrefix(ddText, d.g.RefPrefix):
				ref = strings.TrimPrefix(ddText, d.g.RefPrefix)
			case hasClass(spans, "Latn"):
				roman = ddText
			default:
				translation = ddText
			}
		}

		var current string
		for _, span := range dl.FindHTML("span") {
			if inDD[span] {
				continue
			}
			spanText := d.w.Render(span)
			if span.HasClass("Hant") || span.HasClass("Hans") {
				current = spanText
				continue
			}
			if current == "" {
				continue
			}
			ex := Example{Text: current, Roman: roman, Ref: ref, Translation: translation}
			for _, tag := range strings.Split(strings.Trim(spanText, "[]"), "，") {
				if tag = strings.TrimSpace(tag); tag != "" {
					ex.RawTags = append(ex.RawTags, tag)
				}
			}
			d.add(ex)
		}
	}
}

func (d *ExampleDecoder) linkage(t *wikitext.Node, kind string) {
	list := d.entry.Linkages(kind)
	if list == nil || !d.w.Config.Linkages {
		return
	}
	var sense string
	if len(d.sense.Glosses) > 0 {
		sense = d.sense.Glosses[0]
	}
	for _, p := range t.PositionalArgs() {
		if !positionalFrom(p.Key, 2) {
			continue
		}
		word := d.w.Render(p.Value...)
		for _, ns := range []string{"Thesaurus:", "Wikisaurus:"} {
			word = strings.TrimPrefix(word, ns)
		}
		if word != "" {
			*list = append(*list, Linkage{Word: word, Sense: sense})
		}
	}
}

func hasClass(nodes []*wikitext.Node, class string) bool {
	for _, n := range nodes {
		if n.HasClass(class) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}
