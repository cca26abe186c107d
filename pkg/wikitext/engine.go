package wikitext

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxDepth bounds template expansion recursion.
const DefaultMaxDepth = 24

// Source looks up the raw text of a page by full title, e.g. "Template:t+".
type Source interface {
	Lookup(title string) (string, bool)
}

// SourceFunc adapts a function to [Source].
type SourceFunc func(title string) (string, bool)

// Lookup calls f.
func (f SourceFunc) Lookup(title string) (string, bool) { return f(title) }

// MapSource is an in-memory [Source], mostly useful in tests.
type MapSource map[string]string

// Lookup returns the page body stored under title.
func (m MapSource) Lookup(title string) (string, bool) {
	body, ok := m[title]
	return body, ok
}

// Namespaces holds the localized namespace prefixes of an edition.
type Namespaces struct {
	Template string
	Category []string
	File     []string
}

// DefaultNamespaces are the English namespace names. Localized editions
// extend the Category and File lists with their own prefixes.
var DefaultNamespaces = Namespaces{
	Template: "Template:",
	Category: []string{"Category:"},
	File:     []string{"File:", "Image:", "Media:"},
}

// Engine expands templates and renders document nodes to clean text.
//
// Templates are read from a [Source] under the configured template
// namespace. Supported constructs are argument references with defaults,
// the #if, #ifeq and #switch parser functions and the PAGENAME magic word.
// Unknown templates expand to the empty string.
//
// An Engine memoizes template bodies and is not safe for concurrent use;
// create one per page.
type Engine struct {
	src      Source
	ns       Namespaces
	title    string
	maxDepth int
	bodies   map[string]string
	missing  map[string]bool
}

// NewEngine creates an engine reading templates from src. A nil src
// behaves as an empty store.
func NewEngine(src Source, ns Namespaces) *Engine {
	if src == nil {
		src = MapSource(nil)
	}
	if ns.Template == "" {
		ns.Template = DefaultNamespaces.Template
	}
	return &Engine{
		src:      src,
		ns:       ns,
		maxDepth: DefaultMaxDepth,
		bodies:   map[string]string{},
		missing:  map[string]bool{},
	}
}

// SetTitle sets the page title used by the PAGENAME magic word.
func (e *Engine) SetTitle(title string) { e.title = title }

// Title returns the current page title.
func (e *Engine) Title() string { return e.title }

// Expand expands every template invocation in text.
func (e *Engine) Expand(text string) string {
	return e.expand(text, nil, 0)
}

// ExpandNode parses the full expansion of a template invocation.
func (e *Engine) ExpandNode(n *Node) *Node {
	if n == nil || n.Kind != KindTemplate {
		return &Node{Kind: KindRoot}
	}
	return Parse(e.Expand(n.Raw))
}

func (e *Engine) expand(text string, args map[string]string, depth int) string {
	if depth > e.maxDepth || !strings.Contains(text, "{{") {
		return text
	}
	var b strings.Builder
	for i := 0; i < len(text); {
		if !strings.HasPrefix(text[i:], "{{") {
			b.WriteByte(text[i])
			i++
			continue
		}
		end := matchBraces(text, i)
		if end < 0 {
			b.WriteString(text[i:])
			break
		}
		if isArgRef(text[i:]) {
			b.WriteString(e.argument(text[i+3:end-3], args, depth))
		} else {
			b.WriteString(e.invoke(text[i+2:end-2], args, depth))
		}
		i = end
	}
	return b.String()
}

func (e *Engine) argument(inner string, args map[string]string, depth int) string {
	name, def, hasDef := cutTop(inner, "|")
	name = strings.TrimSpace(e.expand(name, args, depth+1))
	if args != nil {
		if v, ok := args[name]; ok {
			return v
		}
	}
	if hasDef {
		return e.expand(def, args, depth+1)
	}
	return "{{{" + name + "}}}"
}

func (e *Engine) invoke(inner string, args map[string]string, depth int) string {
	parts := splitTop(inner, "|")
	name := strings.TrimSpace(e.expand(parts[0], args, depth+1))

	if strings.HasPrefix(name, "#") {
		fn, first, _ := strings.Cut(name, ":")
		return e.parserFunction(strings.ToLower(fn), first, parts[1:], args, depth)
	}
	switch name {
	case "PAGENAME", "FULLPAGENAME":
		return e.title
	case "!":
		return "|"
	}

	call := map[string]string{}
	pos := 0
	for _, part := range parts[1:] {
		if key, val, ok := cutTop(part, "="); ok && !strings.Contains(key, "\n") {
			key = strings.TrimSpace(e.expand(key, args, depth+1))
			call[key] = strings.TrimSpace(e.expand(val, args, depth+1))
			continue
		}
		pos++
		call[strconv.Itoa(pos)] = e.expand(part, args, depth+1)
	}

	body, ok := e.body(name)
	if !ok {
		return ""
	}
	return e.expand(body, call, depth+1)
}

func (e *Engine) parserFunction(fn, first string, rest []string, args map[string]string, depth int) string {
	arg := func(i int) string {
		if i < len(rest) {
			return strings.TrimSpace(e.expand(rest[i], args, depth+1))
		}
		return ""
	}
	value := strings.TrimSpace(e.expand(first, args, depth+1))

	switch fn {
	case "#if":
		if value != "" {
			return arg(0)
		}
		return arg(1)
	case "#ifeq":
		if value == arg(0) {
			return arg(1)
		}
		return arg(2)
	case "#switch":
		fallthrough_ := false
		def := ""
		for i, part := range rest {
			key, val, ok := cutTop(part, "=")
			if !ok {
				if strings.TrimSpace(e.expand(part, args, depth+1)) == value {
					fallthrough_ = true
				}
				if i == len(rest)-1 {
					def = strings.TrimSpace(e.expand(part, args, depth+1))
				}
				continue
			}
			key = strings.TrimSpace(e.expand(key, args, depth+1))
			if fallthrough_ || key == value {
				return strings.TrimSpace(e.expand(val, args, depth+1))
			}
			if key == "#default" {
				def = strings.TrimSpace(e.expand(val, args, depth+1))
			}
		}
		return def
	}
	return ""
}

var (
	noincludeRe   = regexp.MustCompile(`(?s)<noinclude>.*?</noinclude>`)
	includeTagsRe = regexp.MustCompile(`</?(includeonly|onlyinclude)>`)
)

func (e *Engine) body(name string) (string, bool) {
	if body, ok := e.bodies[name]; ok {
		return body, true
	}
	if e.missing[name] {
		return "", false
	}
	for _, title := range e.candidates(name) {
		if body, ok := e.src.Lookup(title); ok {
			body = includeTagsRe.ReplaceAllString(noincludeRe.ReplaceAllString(stripComments(body), ""), "")
			body = strings.TrimSuffix(body, "\n")
			e.bodies[name] = body
			return body, true
		}
	}
	e.missing[name] = true
	return "", false
}

// candidates lists the titles a template name may be stored under; the
// first letter of a page title is case-insensitive.
func (e *Engine) candidates(name string) []string {
	name = strings.TrimPrefix(name, ":")
	if strings.HasPrefix(name, e.ns.Template) {
		name = strings.TrimPrefix(name, e.ns.Template)
	}
	out := []string{e.ns.Template + name}
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return out
	}
	if up := string(unicode.ToUpper(r)) + name[size:]; up != name {
		out = append(out, e.ns.Template+up)
	}
	if low := string(unicode.ToLower(r)) + name[size:]; low != name {
		out = append(out, e.ns.Template+low)
	}
	return out
}

func isArgRef(s string) bool {
	return strings.HasPrefix(s, "{{{") && !strings.HasPrefix(s, "{{{{")
}

// matchBraces returns the index just past the closer that balances the
// "{{" or "{{{" opener at s[start:], or -1.
func matchBraces(s string, start int) int {
	var stack []int
	for i := start; i < len(s); {
		switch {
		case isArgRef(s[i:]):
			stack = append(stack, 3)
			i += 3
		case strings.HasPrefix(s[i:], "{{"):
			stack = append(stack, 2)
			i += 2
		case s[i] == '}' && len(stack) > 0:
			n := stack[len(stack)-1]
			if strings.HasPrefix(s[i:], strings.Repeat("}", n)) {
				stack = stack[:len(stack)-1]
				i += n
				if len(stack) == 0 {
					return i
				}
				continue
			}
			i++
		default:
			i++
		}
	}
	return -1
}
