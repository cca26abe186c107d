package fr

import (
	"slices"
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/wikitext"
)

// Inflection reads the first table of an expanded agreement template into
// forms. Header cells of the first row label columns unless that row also
// holds data; other header cells label their row.
func Inflection(w *extract.Walker, entry *extract.WordEntry, t *wikitext.Node) {
	tables := w.Engine.ExpandNode(t).FindChild(wikitext.KindTable)
	if len(tables) == 0 {
		return
	}

	var columns []string
	firstRowHasData := false
	for rowNum, row := range tables[0].FindChild(wikitext.KindTableRow) {
		var cells []*wikitext.Node
		for _, c := range row.Children {
			if c.Attrs["style"] == "display:none" {
				continue
			}
			if c.Kind == wikitext.KindTableHeaderCell || (c.Kind == wikitext.KindTableCell && len(c.Children) > 0) {
				cells = append(cells, c)
			}
		}
		if rowNum == 0 {
			for _, c := range cells {
				if c.Kind == wikitext.KindTableCell && !c.HasClass("invisible") {
					firstRowHasData = true
				}
			}
		}
		if rowNum != 0 && len(cells) == len(columns)+1 {
			columns = slices.Insert(columns, 0, "")
		}

		var rowHeaders []string
		for col, c := range cells {
			if c.Kind == wikitext.KindTableHeaderCell {
				text := w.Render(c)
				switch {
				case rowNum == 0 && !firstRowHasData:
					columns = append(columns, text)
				case !ignoredHeaders[text]:
					rowHeaders = append(rowHeaders, text)
				}
				continue
			}

			var form extract.Form
			for _, line := range strings.Split(w.Render(c), "\n") {
				switch {
				case isIPA(line):
					form.IPAs = append(form.IPAs, line)
				case line != entry.Word && !ignoredCells[line]:
					form.Form = line
				}
			}
			if col < len(columns) && columns[col] != "" && !ignoredHeaders[columns[col]] {
				form.RawTags = append(form.RawTags, columns[col])
			}
			form.RawTags = append(form.RawTags, rowHeaders...)
			if form.Form != "" {
				entry.Forms = append(entry.Forms, form)
			}
		}
	}
}

// isIPA reports whether text is a transcription between \ \, / / or [ ].
func isIPA(text string) bool {
	if len(text) < 2 {
		return false
	}
	for _, p := range [][2]string{{`\`, `\`}, {"/", "/"}, {"[", "]"}} {
		if strings.HasPrefix(text, p[0]) && strings.HasSuffix(text, p[1]) {
			return true
		}
	}
	return false
}
