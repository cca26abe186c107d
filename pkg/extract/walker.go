package extract

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikiextract/pkg/observability"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// PageFetcher reads raw page text by title. It is used for translation
// subpages and template bodies. A missing page is reported as ok == false;
// implementations decide about caching and retries.
type PageFetcher interface {
	FetchPage(ctx context.Context, title string) (string, bool)
}

// FetcherFunc adapts a function to [PageFetcher].
type FetcherFunc func(ctx context.Context, title string) (string, bool)

// FetchPage calls f.
func (f FetcherFunc) FetchPage(ctx context.Context, title string) (string, bool) {
	return f(ctx, title)
}

// Options configure a single page extraction.
type Options struct {
	Config  Config
	Fetcher PageFetcher
	Logger  *log.Logger
}

// Diagnostic reports a heading the extractor did not process. Diagnostics
// are informational and never change extracted data.
type Diagnostic struct {
	Page    string `json:"page"`
	Section string `json:"section"`
	Message string `json:"message,omitempty"`
}

// Result is the outcome of extracting one page.
type Result struct {
	Title       string       `json:"title"`
	Entries     []WordEntry  `json:"entries"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// Walker carries the per-page state shared by the dispatcher and the
// handlers. A Walker belongs to one page and is not safe for concurrent
// use.
type Walker struct {
	Lang   *Language
	Engine *wikitext.Engine
	Page   *Page
	Config Config

	ctx     context.Context
	fetcher PageFetcher
	logger  *log.Logger
	block   *Block
	root    *wikitext.Node
	diags   []Diagnostic
}

// NewWalker prepares a walker for one page.
func NewWalker(ctx context.Context, lang *Language, title string, opts Options) *Walker {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	w := &Walker{
		Lang:    lang,
		Page:    NewPage(title),
		Config:  opts.Config,
		ctx:     ctx,
		fetcher: opts.Fetcher,
		logger:  logger,
	}
	w.Engine = wikitext.NewEngine(wikitext.SourceFunc(w.FetchPage), lang.Namespaces)
	w.Engine.SetTitle(title)
	return w
}

// ExtractPage extracts every entry of a page. It never fails: unknown
// sections, missing templates and missing subpages only yield less data.
func ExtractPage(ctx context.Context, lang *Language, title, text string, opts Options) *Result {
	start := time.Now()
	observability.Extract().OnPageStart(ctx, lang.Code, title)

	w := NewWalker(ctx, lang, title, opts)
	w.Walk(wikitext.Parse(text))

	res := &Result{
		Title:       title,
		Entries:     w.Page.Finalize(),
		Diagnostics: w.diags,
	}
	observability.Extract().OnPageComplete(ctx, lang.Code, title, len(res.Entries), time.Since(start))
	return res
}

// Walk processes every language section of a parsed page.
func (w *Walker) Walk(tree *wikitext.Node) {
	for _, node := range w.LanguageNodes(tree) {
		var cats wikitext.Categories
		name, code, ok := w.Lang.LanguageOf(w, node, &cats)
		if !ok || !w.Config.CapturesLanguage(code) {
			continue
		}
		w.block = w.Page.BeginLanguage(name, code, cats.Names())
		w.root = node
		if w.Lang.Preamble != nil {
			w.Lang.Preamble(w, node)
		}
		if w.Lang.BlockLevel > 0 {
			w.walkBlocks(node)
		} else {
			w.walkSections(node)
		}
	}
	w.block, w.root = nil, nil
}

// LanguageNodes returns the headings at the language level in page order.
func (w *Walker) LanguageNodes(tree *wikitext.Node) []*wikitext.Node {
	var out []*wikitext.Node
	for _, h := range tree.FindChildRecursively(wikitext.KindLevel) {
		if h.Level == w.Lang.LanguageLevel {
			out = append(out, h)
		}
	}
	return out
}

// walkBlocks handles editions where every part-of-speech block is a
// heading of BlockLevel that owns its sub-sections. Headings of other
// levels below the language share one flat entry.
func (w *Walker) walkBlocks(lang *wikitext.Node) {
	b := w.block
	if d, ok := w.detectPOS(lang); ok {
		SetPOS(b.Base, d)
	}

	var rest []*wikitext.Node
	for _, h := range lang.Headings() {
		if h.Level != w.Lang.BlockLevel {
			rest = append(rest, h)
			continue
		}
		if b.Base.POS == POSUnknown {
			if d, ok := w.detectPOS(h); ok {
				SetPOS(b.Base, d)
			}
		}
		cur := b.BeginPOS()
		hadSection := false
		for _, sub := range h.Headings() {
			cur = w.Dispatch(cur, sub)
			hadSection = true
		}
		b.PruneIfEmpty(cur, hadSection)
		w.Harvest(h)
	}

	var cur *Cursor
	for i, h := range rest {
		if i == 0 {
			cur = b.Flat()
		}
		cur = w.Dispatch(cur, h)
	}
	b.PruneFlat()
	w.Harvest(lang)
}

// walkSections handles editions where part-of-speech headings open
// entries wherever they appear below the language heading.
// A heading that groups part-of-speech headings, such as a numbered
// etymology, closes the entries opened before it.
func (w *Walker) walkSections(lang *wikitext.Node) {
	var cur *Cursor
	for _, h := range lang.Headings() {
		if w.groupsEntries(h) {
			w.block.PruneIfEmpty(cur, true)
			w.block.FlushPending()
			cur = nil
		}
		cur = w.Dispatch(cur, h)
	}
	w.block.PruneIfEmpty(cur, true)
	w.block.FlushPending()
	w.block.PruneFlat()
	w.Harvest(lang)
}

// groupsEntries reports whether a part-of-speech heading sits below level.
func (w *Walker) groupsEntries(level *wikitext.Node) bool {
	for _, h := range level.FindChildRecursively(wikitext.KindLevel) {
		if _, role := w.Classify(h); role.Kind == RolePOS {
			return true
		}
	}
	return false
}

func (w *Walker) detectPOS(level *wikitext.Node) (POSData, bool) {
	if w.Lang.DetectPOS == nil {
		return POSData{}, false
	}
	return w.Lang.DetectPOS(w, level)
}

// Classify returns the rendered title of a heading and its role.
func (w *Walker) Classify(level *wikitext.Node) (string, Role) {
	title := w.Render(level.Title...)
	key := title
	if w.Lang.SectionKey != nil {
		key = w.Lang.SectionKey(w, level)
	}
	if w.Lang.Classifier == nil {
		return title, Role{}
	}
	return title, w.Lang.Classifier.Classify(key)
}

// Dispatch processes one heading and then every child heading, threading
// the cursor through. Sections whose capture flag is off are treated as
// known sections without payload.
func (w *Walker) Dispatch(cur *Cursor, level *wikitext.Node) *Cursor {
	title, role := w.Classify(level)
	if !w.Config.captures(role.Kind) {
		role = Role{Kind: RoleIgnore}
	}

	switch role.Kind {
	case RolePOS, RolePronunciation, RoleEtymology, RoleTranslations,
		RoleLinkage, RoleMorphology, RoleSemantic, RoleGloss,
		RoleRomanization, RoleRelated, RolePhrases, RoleInflection:
		if h, ok := w.Lang.Handlers[role.Kind]; ok {
			cur = h(w, cur, level, role)
		} else {
			w.Unprocessed(title, "no handler for "+role.Kind.String())
		}
	case RoleIgnore:
	case RoleUnknown:
		w.Unprocessed(title, "")
	default:
		w.Unprocessed(title, "unhandled role "+role.Kind.String())
	}

	for _, child := range level.Headings() {
		cur = w.Dispatch(cur, child)
	}
	return cur
}

// Unprocessed records a heading that produced no data.
func (w *Walker) Unprocessed(section, msg string) {
	w.diags = append(w.diags, Diagnostic{Page: w.Page.Title, Section: section, Message: msg})
	w.logger.Debug("unprocessed section", "page", w.Page.Title, "section", section, "msg", msg)
	observability.Extract().OnUnprocessedSection(w.ctx, w.Lang.Code, w.Page.Title, section)
}

// Diagnostics returns the diagnostics recorded so far.
func (w *Walker) Diagnostics() []Diagnostic { return w.diags }

// Block returns the language block being walked.
func (w *Walker) Block() *Block { return w.block }

// Current resolves the entry to write to, opening the flat entry when no
// part-of-speech block is active.
func (w *Walker) Current(cur *Cursor) *Cursor {
	if cur != nil {
		return cur
	}
	return w.block.Flat()
}

// Shallow reports whether a heading sits directly below the language
// heading. Data from shallow pronunciation and morphology sections applies
// to every entry of the language.
func (w *Walker) Shallow(level *wikitext.Node) bool {
	return w.root != nil && level.Level == w.root.Level+1
}

// Targets returns the entries a shared section writes to: the base
// template and every entry of the same language for shallow headings, the
// current entry otherwise.
func (w *Walker) Targets(cur *Cursor, level *wikitext.Node) []*WordEntry {
	if w.Shallow(level) {
		return append([]*WordEntry{w.block.Base}, w.block.SameLanguage()...)
	}
	return []*WordEntry{w.Target(cur)}
}

// Target returns the entry a nested section writes to. Before the first
// part-of-speech entry that is the pending entry of the block, so the data
// reaches the entry the section belongs to instead of a flat one.
func (w *Walker) Target(cur *Cursor) *WordEntry {
	if cur != nil {
		return cur.Entry()
	}
	return w.block.Pending()
}

// Render renders nodes to clean text, discarding categories.
func (w *Walker) Render(nodes ...*wikitext.Node) string {
	return w.Engine.Render(nil, nodes...)
}

// RenderCats renders nodes and collects their categories.
func (w *Walker) RenderCats(cats *wikitext.Categories, nodes ...*wikitext.Node) string {
	return w.Engine.Render(cats, nodes...)
}

// Arg renders a template argument; absent arguments render as "".
func (w *Walker) Arg(t *wikitext.Node, key string) string {
	return w.Render(t.Arg(key)...)
}

// FetchPage reads another page through the configured fetcher.
func (w *Walker) FetchPage(title string) (string, bool) {
	if w.fetcher == nil {
		return "", false
	}
	return w.fetcher.FetchPage(w.ctx, title)
}

// Logger returns the walker's logger.
func (w *Walker) Logger() *log.Logger { return w.logger }
