package wikitext

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var (
	headingRe = regexp.MustCompile(`^(={1,6})(.+?)(={1,6})\s*$`)
	openTagRe = regexp.MustCompile(`^<([a-zA-Z][a-zA-Z0-9]*)(\s[^<>]*?)?(/?)>`)
	closeRe   = regexp.MustCompile(`^</([a-zA-Z][a-zA-Z0-9]*)\s*>`)
)

var voidTags = map[string]bool{"br": true, "hr": true, "img": true, "wbr": true}

// rawTags keep their content as literal text.
var rawTags = map[string]bool{"nowiki": true, "pre": true, "math": true, "code": true}

// Parse parses wikitext into a tree rooted at a KindRoot node.
// Parsing never fails: unbalanced markup is kept as text.
func Parse(text string) *Node {
	p := &parser{root: &Node{Kind: KindRoot}}
	p.headings = []*Node{p.root}
	p.run(stripComments(text))
	return p.root
}

// ParseFragment parses a value that may contain block markup (lists,
// headings) when it spans lines, and inline markup otherwise.
func ParseFragment(s string) []*Node {
	if strings.Contains(s, "\n") {
		return Parse(s).Children
	}
	return parseInline(s)
}

type parser struct {
	root     *Node
	headings []*Node
	lists    []*Node
}

func (p *parser) container() *Node { return p.headings[len(p.headings)-1] }

func (p *parser) run(text string) {
	lines := logicalLines(text)
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(trimmed, "{|"):
			end := tableEnd(lines, i)
			p.lists = nil
			p.container().Children = append(p.container().Children, parseTable(lines[i:end+1]))
			i = end
		case headingRe.MatchString(line):
			p.heading(line)
		case len(line) > 0 && strings.ContainsRune("*#:;", rune(line[0])):
			p.listItem(line)
		default:
			p.lists = nil
			c := p.container()
			if len(c.Children) > 0 || strings.TrimSpace(line) != "" {
				// The last line has no break after it, so a one-line
				// template expansion stays inline.
				if i < len(lines)-1 {
					line += "\n"
				}
				c.Children = appendText(c.Children, parseInline(line)...)
			}
		}
	}
}

func (p *parser) heading(line string) {
	m := headingRe.FindStringSubmatch(line)
	level := min(len(m[1]), len(m[3]))
	title := strings.Repeat("=", len(m[1])-level) + m[2] + strings.Repeat("=", len(m[3])-level)
	h := &Node{Kind: KindLevel, Level: level, Title: parseInline(strings.TrimSpace(title))}

	p.lists = nil
	for len(p.headings) > 1 && p.container().Level >= level {
		p.headings = p.headings[:len(p.headings)-1]
	}
	c := p.container()
	c.Children = append(c.Children, h)
	p.headings = append(p.headings, h)
}

func (p *parser) listItem(line string) {
	n := 0
	for n < len(line) && strings.ContainsRune("*#:;", rune(line[n])) {
		n++
	}
	prefix := line[:n]
	item := &Node{Kind: KindListItem, Prefix: prefix, Children: parseInline(line[n:])}

	for len(p.lists) > 0 {
		top := p.lists[len(p.lists)-1]
		if strings.HasPrefix(prefix, top.Prefix) {
			break
		}
		p.lists = p.lists[:len(p.lists)-1]
	}

	if len(p.lists) > 0 && p.lists[len(p.lists)-1].Prefix == prefix {
		top := p.lists[len(p.lists)-1]
		top.Children = append(top.Children, item)
		return
	}

	list := &Node{Kind: KindList, Prefix: prefix, Children: []*Node{item}}
	if len(p.lists) == 0 {
		c := p.container()
		c.Children = append(c.Children, list)
	} else {
		parent := p.lists[len(p.lists)-1]
		last := parent.Children[len(parent.Children)-1]
		last.Children = append(last.Children, list)
	}
	p.lists = append(p.lists, list)
}

// logicalLines splits text on newlines that are not inside a template or
// link, so that multi-line template invocations stay on one line.
func logicalLines(text string) []string {
	var lines []string
	depth := 0
	start := 0
	for i := 0; i < len(text); i++ {
		switch {
		case strings.HasPrefix(text[i:], "{{"), strings.HasPrefix(text[i:], "[["):
			depth++
			i++
		case strings.HasPrefix(text[i:], "}}"), strings.HasPrefix(text[i:], "]]"):
			if depth > 0 {
				depth--
			}
			i++
		case text[i] == '\n' && depth == 0:
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func tableEnd(lines []string, start int) int {
	depth := 0
	for i := start; i < len(lines); i++ {
		t := strings.TrimLeft(lines[i], " \t")
		if strings.HasPrefix(t, "{|") {
			depth++
		} else if strings.HasPrefix(t, "|}") {
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(lines) - 1
}

func parseTable(lines []string) *Node {
	first := strings.TrimLeft(lines[0], " \t")
	table := &Node{Kind: KindTable, Attrs: parseAttrs(strings.TrimPrefix(first, "{|"))}
	var row *Node
	var cell *Node
	ensureRow := func() {
		if row == nil {
			row = &Node{Kind: KindTableRow}
			table.Children = append(table.Children, row)
		}
	}
	addCells := func(kind Kind, body, sep string) {
		ensureRow()
		for _, part := range splitTop(body, sep) {
			cell = &Node{Kind: kind}
			content := part
			if segs := splitTop(part, "|"); len(segs) > 1 && !strings.Contains(segs[0], "[[") && !strings.Contains(segs[0], "{{") {
				cell.Attrs = parseAttrs(segs[0])
				content = strings.Join(segs[1:], "|")
			}
			cell.Children = parseInline(strings.TrimSpace(content))
			row.Children = append(row.Children, cell)
		}
	}

	for _, line := range lines[1:] {
		t := strings.TrimLeft(line, " \t")
		switch {
		case strings.HasPrefix(t, "|}"):
			return table
		case strings.HasPrefix(t, "|-"):
			row = &Node{Kind: KindTableRow, Attrs: parseAttrs(strings.TrimLeft(t, "|-"))}
			table.Children = append(table.Children, row)
			cell = nil
		case strings.HasPrefix(t, "|+"):
			// caption
		case strings.HasPrefix(t, "!"):
			addCells(KindTableHeaderCell, strings.ReplaceAll(t[1:], "||", "!!"), "!!")
		case strings.HasPrefix(t, "|"):
			addCells(KindTableCell, t[1:], "||")
		case cell != nil:
			cell.Children = appendText(cell.Children, parseInline("\n"+line)...)
		}
	}
	return table
}

// parseAttrs parses an HTML-style attribute string.
func parseAttrs(s string) map[string]string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	z := html.NewTokenizer(strings.NewReader("<x " + s + ">"))
	if z.Next() != html.StartTagToken {
		return nil
	}
	attrs := map[string]string{}
	for _, a := range z.Token().Attr {
		attrs[a.Key] = a.Val
	}
	return attrs
}

func parseInline(s string) []*Node {
	var out []*Node
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			out = append(out, NewText(text.String()))
			text.Reset()
		}
	}

	for i := 0; i < len(s); {
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, "{{"):
			end := matchClose(s, i, "{{", "}}")
			if end < 0 {
				text.WriteString("{{")
				i += 2
				continue
			}
			flush()
			out = append(out, parseTemplate(s[i:end]))
			i = end
		case strings.HasPrefix(rest, "[["):
			end := matchClose(s, i, "[[", "]]")
			if end < 0 {
				text.WriteString("[[")
				i += 2
				continue
			}
			flush()
			out = append(out, parseLink(s[i+2:end-2]))
			i = end
		case strings.HasPrefix(rest, "[http://"), strings.HasPrefix(rest, "[https://"), strings.HasPrefix(rest, "[//"):
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				text.WriteByte('[')
				i++
				continue
			}
			flush()
			target, label, _ := strings.Cut(rest[1:end], " ")
			out = append(out, &Node{Kind: KindURL, Target: target, Children: parseInline(label)})
			i += end + 1
		case strings.HasPrefix(rest, "'''"):
			if end := strings.Index(rest[3:], "'''"); end >= 0 {
				flush()
				out = append(out, &Node{Kind: KindBold, Children: parseInline(rest[3 : 3+end])})
				i += end + 6
				continue
			}
			text.WriteString("'''")
			i += 3
		case strings.HasPrefix(rest, "''"):
			if end := strings.Index(rest[2:], "''"); end >= 0 {
				flush()
				out = append(out, &Node{Kind: KindItalic, Children: parseInline(rest[2 : 2+end])})
				i += end + 4
				continue
			}
			text.WriteString("''")
			i += 2
		case rest[0] == '<':
			n, size := parseTag(rest)
			if size == 0 {
				text.WriteByte('<')
				i++
				continue
			}
			flush()
			if n != nil {
				out = append(out, n)
			}
			i += size
		default:
			text.WriteByte(s[i])
			i++
		}
	}
	flush()
	return out
}

// parseTag parses an HTML element at the start of s. It returns the node
// (nil for stray closing tags) and the number of bytes consumed, or 0 when s
// does not start with a tag.
func parseTag(s string) (*Node, int) {
	if m := closeRe.FindString(s); m != "" {
		return nil, len(m)
	}
	loc := openTagRe.FindStringSubmatchIndex(s)
	if loc == nil {
		return nil, 0
	}
	name := strings.ToLower(s[loc[2]:loc[3]])
	n := &Node{Kind: KindHTML, Name: name}
	if loc[4] >= 0 {
		n.Attrs = parseAttrs(s[loc[4]:loc[5]])
	}
	openEnd := loc[1]
	if voidTags[name] || s[loc[6]:loc[7]] == "/" {
		return n, openEnd
	}

	inner, closeEnd := findClosingTag(s, openEnd, name)
	if closeEnd < 0 {
		return n, openEnd
	}
	if rawTags[name] {
		n.Children = []*Node{NewText(inner)}
	} else {
		n.Children = parseInline(inner)
	}
	return n, closeEnd
}

func findClosingTag(s string, from int, name string) (string, int) {
	depth := 1
	open, close := "<"+name, "</"+name
	for i := from; i < len(s); i++ {
		switch {
		case hasPrefixFold(s[i:], close):
			depth--
			if depth == 0 {
				end := strings.IndexByte(s[i:], '>')
				if end < 0 {
					return "", -1
				}
				return s[from:i], i + end + 1
			}
		case hasPrefixFold(s[i:], open) && i+len(open) < len(s) && (s[i+len(open)] == '>' || s[i+len(open)] == ' '):
			depth++
		}
	}
	return "", -1
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func parseTemplate(src string) *Node {
	inner := src[2 : len(src)-2]
	parts := splitTop(inner, "|")
	n := &Node{Kind: KindTemplate, Name: strings.TrimSpace(parts[0]), Raw: src}
	pos := 0
	for _, part := range parts[1:] {
		if key, val, ok := cutTop(part, "="); ok && !strings.Contains(key, "\n") {
			key = strings.TrimSpace(key)
			val = strings.TrimSpace(val)
			n.Params = append(n.Params, Param{Key: key, Raw: val, Value: ParseFragment(val)})
			continue
		}
		pos++
		n.Params = append(n.Params, Param{Key: strconv.Itoa(pos), Raw: part, Value: ParseFragment(part)})
	}
	return n
}

func parseLink(inner string) *Node {
	parts := splitTop(inner, "|")
	target := strings.TrimSpace(parts[0])
	n := &Node{Kind: KindLink, Target: strings.TrimPrefix(target, ":")}
	for i, part := range parts {
		n.Params = append(n.Params, Param{Key: strconv.Itoa(i + 1), Raw: part, Value: parseInline(part)})
	}
	if len(parts) > 1 {
		n.Children = parseInline(parts[len(parts)-1])
	} else {
		n.Children = []*Node{NewText(n.Target)}
	}
	return n
}

// matchClose returns the index just past the closer that balances the
// opener at s[start:], or -1.
func matchClose(s string, start int, opener, closer string) int {
	depth := 0
	for i := start; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], opener):
			depth++
			i += len(opener)
		case strings.HasPrefix(s[i:], closer):
			depth--
			i += len(closer)
			if depth == 0 {
				return i
			}
		default:
			i++
		}
	}
	return -1
}

// splitTop splits s on sep where sep is not nested in a template or link.
func splitTop(s, sep string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], "{{"), strings.HasPrefix(s[i:], "[["):
			depth++
			i += 2
		case strings.HasPrefix(s[i:], "}}"), strings.HasPrefix(s[i:], "]]"):
			if depth > 0 {
				depth--
			}
			i += 2
		case depth == 0 && strings.HasPrefix(s[i:], sep):
			parts = append(parts, s[start:i])
			i += len(sep)
			start = i
		default:
			i++
		}
	}
	return append(parts, s[start:])
}

func cutTop(s, sep string) (string, string, bool) {
	parts := splitTop(s, sep)
	if len(parts) < 2 {
		return s, "", false
	}
	return parts[0], strings.Join(parts[1:], sep), true
}

func stripComments(s string) string {
	for {
		start := strings.Index(s, "<!--")
		if start < 0 {
			return s
		}
		end := strings.Index(s[start+4:], "-->")
		if end < 0 {
			return s[:start]
		}
		s = s[:start] + s[start+4+end+3:]
	}
}

// appendText appends nodes, merging adjacent text nodes.
func appendText(dst []*Node, nodes ...*Node) []*Node {
	for _, n := range nodes {
		if n.Kind == KindText && len(dst) > 0 && dst[len(dst)-1].Kind == KindText {
			dst[len(dst)-1] = NewText(dst[len(dst)-1].Text + n.Text)
			continue
		}
		dst = append(dst, n)
	}
	return dst
}
