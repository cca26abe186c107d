package es

import (
	"strings"
	"unicode"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// glossItem decodes ";N labels: gloss". The number is the sense id; the
// labels before the colon are raw tags, except csem which names topics.
func glossItem(w *extract.Walker, _ *extract.WordEntry, item *wikitext.Node) (extract.Sense, bool) {
	var sense extract.Sense
	var cats wikitext.Categories

	nodes := item.InvertFindChild(wikitext.KindList)
	head, body := splitColon(nodes)
	if body == nil {
		head, body = nil, nodes
	}
	for _, n := range head {
		switch {
		case n.IsText():
			text := strings.TrimSpace(n.Text)
			end := strings.IndexFunc(text, func(r rune) bool { return !unicode.IsDigit(r) })
			if end < 0 {
				end = len(text)
			}
			if end > 0 && sense.SenseID == "" {
				sense.SenseID = text[:end]
				text = text[end:]
			}
			addRawTags(&sense, text)
		case n.IsTemplate("csem"):
			for _, p := range n.PositionalArgs() {
				field := strings.ToLower(w.Render(p.Value...))
				if topic, ok := csemTopics[field]; ok {
					sense.Topics = append(sense.Topics, topic)
				} else if field != "" {
					sense.RawTags = append(sense.RawTags, field)
				}
			}
			w.RenderCats(&cats, n)
		default:
			addRawTags(&sense, w.RenderCats(&cats, n))
		}
	}

	gloss := w.RenderCats(&cats, body...)
	sense.Categories = cats.Names()
	if gloss == "" {
		return sense, false
	}
	sense.Glosses = []string{gloss}
	return sense, true
}

// splitColon splits nodes at the first colon of a text node. Body is nil
// when there is no colon.
func splitColon(nodes []*wikitext.Node) (head, body []*wikitext.Node) {
	for i, n := range nodes {
		if !n.IsText() {
			continue
		}
		before, after, ok := strings.Cut(n.Text, ":")
		if !ok {
			continue
		}
		head = append(append(head, nodes[:i]...), wikitext.NewText(before))
		body = append(append(body, wikitext.NewText(after)), nodes[i+1:]...)
		return head, body
	}
	return nodes, nil
}

func addRawTags(sense *extract.Sense, text string) {
	for _, tag := range strings.Split(text, ",") {
		if tag = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(tag), ".")); tag != "" {
			sense.RawTags = append(sense.RawTags, tag)
		}
	}
}

// senseTemplate handles the note and linkage templates that follow a
// definition.
func senseTemplate(w *extract.Walker, entry *extract.WordEntry, sense *extract.Sense, t *wikitext.Node) {
	switch {
	case t.IsTemplate("uso"):
		Uso(w, sense, t)
	case t.IsTemplate("ámbito"):
		Ambito(w, sense, t)
	case t.IsTemplate("ejemplo"):
		if w.Config.Examples {
			if text := w.Arg(t, "1"); text != "" {
				sense.Examples = append(sense.Examples, extract.Example{Text: text})
			}
		}
	default:
		if kind, ok := linkageKind(t.Name); ok && w.Config.Linkages {
			list := entry.Linkages(kind)
			var gloss string
			if len(sense.Glosses) > 0 {
				gloss = sense.Glosses[0]
			}
			for _, p := range t.PositionalArgs() {
				if word := w.Render(p.Value...); word != "" {
					*list = append(*list, extract.Linkage{Word: word, Sense: gloss})
				}
			}
		}
	}
}

// attach reads note lists below a definition: templates are handled as
// if they stood on their own line, other items are examples.
func attach(w *extract.Walker, entry *extract.WordEntry, sense *extract.Sense, list *wikitext.Node) {
	for _, item := range list.FindChildRecursively(wikitext.KindListItem) {
		ts := item.FindChild(wikitext.KindTemplate)
		if len(ts) > 0 {
			for _, t := range ts {
				senseTemplate(w, entry, sense, t)
			}
			continue
		}
		if !w.Config.Examples {
			continue
		}
		text := w.Render(item.InvertFindChild(wikitext.KindList)...)
		if _, rest, ok := strings.Cut(text, ":"); ok && strings.HasPrefix(strings.ToLower(text), "ejemplo") {
			text = strings.TrimSpace(rest)
		}
		if text != "" {
			sense.Examples = append(sense.Examples, extract.Example{Text: text})
		}
	}
}

// Uso adds the register labels of an {{uso}} template to a sense.
func Uso(w *extract.Walker, sense *extract.Sense, t *wikitext.Node) {
	labelTags(w, sense, t, usoTags, strings.ToLower)
}

// Ambito adds the regions of an {{ámbito}} template to a sense.
func Ambito(w *extract.Walker, sense *extract.Sense, t *wikitext.Node) {
	labelTags(w, sense, t, ambitoTags, func(s string) string { return s })
}

func labelTags(w *extract.Walker, sense *extract.Sense, t *wikitext.Node, table map[string]string, key func(string) string) {
	for _, p := range t.PositionalArgs() {
		label := w.Render(p.Value...)
		if label == "" {
			continue
		}
		if tag, ok := table[key(label)]; ok {
			sense.Tags = append(sense.Tags, tag)
		} else {
			sense.RawTags = append(sense.RawTags, label)
		}
	}
	var cats wikitext.Categories
	w.RenderCats(&cats, t)
	sense.Categories = append(sense.Categories, cats.Names()...)
}

func linkageKind(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, p := range linkagePrefixes {
		if strings.HasPrefix(name, p) {
			return linkageTitles[p], true
		}
	}
	return "", false
}
