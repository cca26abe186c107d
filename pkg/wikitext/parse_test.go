package wikitext

import (
	"reflect"
	"testing"
)

func textOf(nodes []*Node) string {
	var s string
	for _, n := range nodes {
		if n.Kind == KindText {
			s += n.Text
		}
	}
	return s
}

func TestParseHeadingsNest(t *testing.T) {
	root := Parse("==A==\n===B===\ntext\n==C==\nmore\n")

	top := root.Headings()
	if len(top) != 2 {
		t.Fatalf("len(Headings()) = %d, want 2", len(top))
	}
	if got := textOf(top[0].Title); got != "A" {
		t.Errorf("first title = %q, want %q", got, "A")
	}
	if top[0].Level != 2 || top[1].Level != 2 {
		t.Errorf("levels = %d, %d, want 2, 2", top[0].Level, top[1].Level)
	}
	sub := top[0].Headings()
	if len(sub) != 1 || textOf(sub[0].Title) != "B" {
		t.Fatalf("A children = %v, want one heading B", sub)
	}
	if got := textOf(sub[0].Content()); got != "text\n" {
		t.Errorf("B content = %q, want %q", got, "text\n")
	}
	if got := textOf(top[1].Content()); got != "more" {
		t.Errorf("C content = %q, want %q", got, "more")
	}
}

func TestParseLastLineHasNoBreak(t *testing.T) {
	tests := []struct{ in, want string }{
		{"(口語)", "(口語)"},
		{"(口語)\n", "(口語)"},
		{"a\nb", "a\nb"},
		{"a\n\nb", "a\n\nb"},
	}
	for _, tt := range tests {
		if got := textOf(Parse(tt.in).Children); got != tt.want {
			t.Errorf("Parse(%q) text = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseUnbalancedHeading(t *testing.T) {
	root := Parse("===A==\n")
	h := root.Headings()
	if len(h) != 1 {
		t.Fatalf("len(Headings()) = %d, want 1", len(h))
	}
	if h[0].Level != 2 || textOf(h[0].Title) != "=A" {
		t.Errorf("heading = level %d %q, want level 2 %q", h[0].Level, textOf(h[0].Title), "=A")
	}
}

func TestParseTemplate(t *testing.T) {
	root := Parse("{{t+|af|1|kat|g=f}}")
	tmpls := root.FindChild(KindTemplate)
	if len(tmpls) != 1 {
		t.Fatalf("templates = %d, want 1", len(tmpls))
	}
	tmpl := tmpls[0]
	if tmpl.Name != "t+" {
		t.Errorf("Name = %q, want %q", tmpl.Name, "t+")
	}

	var keys []string
	for _, p := range tmpl.Params {
		keys = append(keys, p.Key)
	}
	if want := []string{"1", "2", "3", "g"}; !reflect.DeepEqual(keys, want) {
		t.Errorf("keys = %v, want %v", keys, want)
	}
	if got := tmpl.ArgRaw("3"); got != "kat" {
		t.Errorf("ArgRaw(3) = %q, want %q", got, "kat")
	}
	if got := tmpl.ArgRaw("g"); got != "f" {
		t.Errorf("ArgRaw(g) = %q, want %q", got, "f")
	}
	if tmpl.HasArg("4") {
		t.Error("HasArg(4) = true, want false")
	}
	if got := len(tmpl.PositionalArgs()); got != 3 {
		t.Errorf("len(PositionalArgs()) = %d, want 3", got)
	}
	if tmpl.Raw != "{{t+|af|1|kat|g=f}}" {
		t.Errorf("Raw = %q", tmpl.Raw)
	}
}

func TestParseMultilineTemplate(t *testing.T) {
	root := Parse("{{multitrans|data=\n* en: {{t|en|a}}\n* fr: {{t|fr|b}}\n}}\nafter\n")
	tmpls := root.FindChild(KindTemplate)
	if len(tmpls) != 1 {
		t.Fatalf("templates = %d, want 1", len(tmpls))
	}
	data := Parse(tmpls[0].ArgRaw("data"))
	lists := data.FindChild(KindList)
	if len(lists) != 1 || len(lists[0].Children) != 2 {
		t.Fatalf("data list = %v, want one list with two items", lists)
	}
	inner := data.FindChildRecursively(KindTemplate)
	if len(inner) != 2 || inner[1].ArgRaw("2") != "b" {
		t.Errorf("nested templates = %d, want 2 with second word b", len(inner))
	}
}

func TestParseNestedList(t *testing.T) {
	root := Parse("# gloss\n#* quote\n#: example\n# second\n")
	lists := root.FindChild(KindList)
	if len(lists) != 1 {
		t.Fatalf("lists = %d, want 1", len(lists))
	}
	items := lists[0].Children
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	nested := items[0].FindChild(KindList)
	if len(nested) != 2 {
		t.Fatalf("nested lists = %d, want 2", len(nested))
	}
	if nested[0].Prefix != "#*" || nested[1].Prefix != "#:" {
		t.Errorf("nested prefixes = %q, %q", nested[0].Prefix, nested[1].Prefix)
	}
	if got := textOf(items[0].InvertFindChild(KindList)); got != " gloss" {
		t.Errorf("item text = %q, want %q", got, " gloss")
	}
}

func TestParseLinks(t *testing.T) {
	root := Parse("[[word|label]] [[:Category:X]] [https://example.org site]")
	links := root.FindChildRecursively(KindLink)
	if len(links) != 2 {
		t.Fatalf("links = %d, want 2", len(links))
	}
	if links[0].Target != "word" || textOf(links[0].Children) != "label" {
		t.Errorf("first link = %q/%q", links[0].Target, textOf(links[0].Children))
	}
	if links[1].Target != "Category:X" {
		t.Errorf("second target = %q, want %q", links[1].Target, "Category:X")
	}
	urls := root.FindChildRecursively(KindURL)
	if len(urls) != 1 || urls[0].Target != "https://example.org" {
		t.Errorf("urls = %v", urls)
	}
}

func TestParseHTML(t *testing.T) {
	root := Parse(`<span class="IPA Latn">/pə/</span><br/><nowiki>{{x}}</nowiki><!-- gone -->`)
	spans := root.FindHTML("span")
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	if !spans[0].HasClass("IPA") || spans[0].HasClass("IP") {
		t.Errorf("class handling wrong: %v", spans[0].Attrs)
	}
	if got := textOf(spans[0].Children); got != "/pə/" {
		t.Errorf("span text = %q", got)
	}
	nw := root.FindHTML("nowiki")
	if len(nw) != 1 || textOf(nw[0].Children) != "{{x}}" {
		t.Errorf("nowiki = %v", nw)
	}
	if root.Contains(KindTemplate) {
		t.Error("nowiki content parsed as template")
	}
}

func TestParseFormatting(t *testing.T) {
	root := Parse("'''bold''' and ''it''")
	if got := len(root.FindChild(KindBold)); got != 1 {
		t.Errorf("bold = %d, want 1", got)
	}
	if got := len(root.FindChild(KindItalic)); got != 1 {
		t.Errorf("italic = %d, want 1", got)
	}
}

func TestParseTable(t *testing.T) {
	root := Parse("{| class=\"wikitable\"\n! h1 !! h2\n|-\n| a || b\n|}\n")
	tables := root.FindChild(KindTable)
	if len(tables) != 1 {
		t.Fatalf("tables = %d, want 1", len(tables))
	}
	if tables[0].Attrs["class"] != "wikitable" {
		t.Errorf("attrs = %v", tables[0].Attrs)
	}
	rows := tables[0].FindChild(KindTableRow)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if got := len(rows[0].FindChild(KindTableHeaderCell)); got != 2 {
		t.Errorf("header cells = %d, want 2", got)
	}
	cells := rows[1].FindChild(KindTableCell)
	if len(cells) != 2 || textOf(cells[1].Children) != "b" {
		t.Errorf("cells = %v", cells)
	}
}

func TestFilterEmptyText(t *testing.T) {
	n := &Node{Children: []*Node{NewText("  \n"), NewText("x"), {Kind: KindBold}}}
	if got := len(n.FilterEmptyText()); got != 2 {
		t.Errorf("len(FilterEmptyText()) = %d, want 2", got)
	}
}

func TestKindString(t *testing.T) {
	tests := map[Kind]string{
		KindTemplate: "template",
		KindListItem: "list_item",
		Kind(99):     "kind(99)",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
