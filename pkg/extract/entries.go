package extract

import "slices"

// POSUnknown is the part of speech of an entry whose heading did not name one.
const POSUnknown = "unknown"

// TagNoGloss marks the placeholder sense of an entry without glosses.
const TagNoGloss = "no-gloss"

// Page owns the ordered list of entries extracted from one page.
// Handlers never index into the list; they work through a [Cursor].
type Page struct {
	Title   string
	entries []*WordEntry
}

// NewPage starts an empty page.
func NewPage(title string) *Page {
	return &Page{Title: title}
}

// Len returns the number of entries collected so far.
func (p *Page) Len() int { return len(p.entries) }

// Append adds an entry and returns a cursor on it.
func (p *Page) Append(b *Block, e *WordEntry) *Cursor {
	p.entries = append(p.entries, e)
	return &Cursor{block: b, entry: e}
}

// SameLanguage returns the entries with the given language code, in order.
func (p *Page) SameLanguage(code string) []*WordEntry {
	var out []*WordEntry
	for _, e := range p.entries {
		if e.LangCode == code {
			out = append(out, e)
		}
	}
	return out
}

// Finalize adds a no-gloss placeholder sense to every entry without senses
// and returns copies of the entries in page order.
func (p *Page) Finalize() []WordEntry {
	out := make([]WordEntry, 0, len(p.entries))
	for _, e := range p.entries {
		if len(e.Senses) == 0 {
			e.Senses = append(e.Senses, Sense{Tags: []string{TagNoGloss}})
		}
		out = append(out, *e)
	}
	return out
}

func (p *Page) last() *WordEntry {
	if len(p.entries) == 0 {
		return nil
	}
	return p.entries[len(p.entries)-1]
}

func (p *Page) remove(e *WordEntry) bool {
	i := slices.Index(p.entries, e)
	if i < 0 {
		return false
	}
	p.entries = slices.Delete(p.entries, i, i+1)
	return true
}

// Block is the state of one language section: the base template every
// part-of-speech entry is cloned from, and the flat entry guard.
type Block struct {
	Base *WordEntry

	page     *Page
	flatDone bool
	// pending holds data of nested sections seen before any entry was
	// opened; the next part-of-speech entry takes it over.
	pending *WordEntry
}

// Cursor designates the entry handlers write to.
type Cursor struct {
	block *Block
	entry *WordEntry
	pos   *POSData
}

// Entry returns the designated entry.
func (c *Cursor) Entry() *WordEntry { return c.entry }

// Block returns the language block the entry belongs to.
func (c *Cursor) Block() *Block { return c.block }

// BeginLanguage builds the base template of a language section.
func (p *Page) BeginLanguage(lang, code string, categories []string) *Block {
	return &Block{
		page: p,
		Base: &WordEntry{
			Word:       p.Title,
			Lang:       lang,
			LangCode:   code,
			POS:        POSUnknown,
			Categories: slices.Clone(categories),
		},
	}
}

// BeginPOS clones the base template, appends the clone to the page and
// returns a cursor on it. Pending nested data moves to the new entry.
func (b *Block) BeginPOS() *Cursor {
	e := b.Base.Clone()
	if b.pending != nil {
		e.merge(b.pending)
		b.pending = nil
	}
	return b.page.Append(b, e)
}

// BeginPOSAs opens an entry with the part of speech named by its heading.
// An entry that gains nothing beyond that part of speech is still a
// scaffold for PruneIfEmpty.
func (b *Block) BeginPOSAs(d POSData) *Cursor {
	c := b.BeginPOS()
	SetPOS(c.entry, d)
	c.pos = &d
	return c
}

// IsScaffold reports whether e carries nothing beyond the base template.
func (b *Block) IsScaffold(e *WordEntry) bool {
	return e.Equal(b.Base)
}

// scaffold reports whether the cursor's entry carries nothing beyond the
// base template and the part of speech it was opened with.
func (b *Block) scaffold(c *Cursor) bool {
	if c.pos == nil {
		return b.IsScaffold(c.entry)
	}
	ref := b.Base.Clone()
	SetPOS(ref, *c.pos)
	return c.entry.Equal(ref)
}

// PruneIfEmpty removes the cursor's entry when it equals its scaffold or
// when its block had no sub-heading at all. It reports whether the entry
// was removed. Call it once per part-of-speech block.
func (b *Block) PruneIfEmpty(c *Cursor, hadSection bool) bool {
	if c == nil {
		return false
	}
	if b.scaffold(c) || !hadSection {
		return b.page.remove(c.entry)
	}
	return false
}

// Pending returns the entry that collects nested section data while no
// part-of-speech entry is open.
func (b *Block) Pending() *WordEntry {
	if b.pending == nil {
		b.pending = &WordEntry{}
	}
	return b.pending
}

// FlushPending hands pending data that no part-of-speech entry took over
// to the flat entry.
func (b *Block) FlushPending() {
	p := b.pending
	if p == nil {
		return
	}
	b.pending = nil
	b.Flat().entry.merge(p)
}

// Flat returns a cursor for content that sits outside any part-of-speech
// block. The first call per block appends a clone of the base template
// unless the page already ends with an entry of the same language; later
// calls reuse the last entry.
func (b *Block) Flat() *Cursor {
	if !b.flatDone {
		b.flatDone = true
		if last := b.page.last(); last == nil || last.LangCode != b.Base.LangCode {
			return b.BeginPOS()
		}
	}
	if last := b.page.last(); last != nil {
		return &Cursor{block: b, entry: last}
	}
	return b.BeginPOS()
}

// PruneFlat drops the last entry if it is still a scaffold of this block.
func (b *Block) PruneFlat() bool {
	if last := b.page.last(); last != nil && b.IsScaffold(last) {
		return b.page.remove(last)
	}
	return false
}

// Append adds an entry built outside the normal heading flow, such as a
// harvested form-of entry.
func (b *Block) Append(e *WordEntry) *Cursor {
	return b.page.Append(b, e)
}

// SameLanguage returns the page entries sharing the block's language code.
func (b *Block) SameLanguage() []*WordEntry {
	return b.page.SameLanguage(b.Base.LangCode)
}

// merge adds the data staged in src to e.
func (e *WordEntry) merge(src *WordEntry) {
	e.Sounds = append(e.Sounds, src.Sounds...)
	e.Forms = append(e.Forms, src.Forms...)
	e.Tags = append(e.Tags, src.Tags...)
	e.RawTags = append(e.RawTags, src.RawTags...)
	if src.EtymologyText != "" {
		e.EtymologyText = src.EtymologyText
	}
	e.AddCategories(src.Categories...)
}
