package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wikiextract/pkg/extract"
	pkgio "github.com/matzehuels/wikiextract/pkg/io"
)

// browseCommand creates the browse command, an interactive viewer for
// JSON Lines output.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse FILE",
		Short: "Browse extracted entries interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := pkgio.ImportEntries(args[0])
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printInfo("No entries in %s", args[0])
				return nil
			}
			_, err = tea.NewProgram(NewEntryListModel(entries), tea.WithAltScreen()).Run()
			return err
		},
	}
}

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// EntryListModel - Interactive entry list with a detail view
// =============================================================================

// EntryListModel is the bubbletea model for browsing entries.
type EntryListModel struct {
	Entries []extract.WordEntry
	Cursor  int
	Height  int
	Offset  int

	// Detail is the index of the entry shown in full, or -1 for the list.
	Detail int
	scroll int
}

// NewEntryListModel creates a new entry list model.
func NewEntryListModel(entries []extract.WordEntry) EntryListModel {
	return EntryListModel{
		Entries: entries,
		Height:  15,
		Detail:  -1,
	}
}

func (m EntryListModel) Init() tea.Cmd {
	return nil
}

func (m EntryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Detail >= 0 {
			return m.updateDetail(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Detail = m.Cursor
			m.scroll = 0
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m EntryListModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc", "enter", "backspace":
		m.Detail = -1
	case "up", "k":
		if m.scroll > 0 {
			m.scroll--
		}
	case "down", "j":
		m.scroll++
	}
	return m, nil
}

func (m EntryListModel) View() string {
	if m.Detail >= 0 {
		return m.detailView()
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render("Entries"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ show  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Entries))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Entries[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, e.Word, e.LangCode, e.POS, firstGloss(e), summary(e)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Word", "Lang", "POS", "Gloss", "Data").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			isCurrent := m.Offset+row == m.Cursor
			base := lipgloss.NewStyle()
			if col == 5 {
				base = base.Foreground(colorDim)
			}
			if isCurrent {
				return base.Foreground(colorGreen).Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Entries))))
	return b.String()
}

func (m EntryListModel) detailView() string {
	e := m.Entries[m.Detail]
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return StyleWarning.Render(err.Error())
	}
	lines := strings.Split(string(data), "\n")
	start := min(m.scroll, max(len(lines)-1, 0))
	end := min(start+m.Height, len(lines))

	var b strings.Builder
	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s · %s · %s", e.Word, e.Lang, e.POS)))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ scroll  esc back  q quit"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines[start:end], "\n"))
	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

const glossWidth = 40

func firstGloss(e extract.WordEntry) string {
	for _, s := range e.Senses {
		if len(s.Glosses) > 0 {
			return truncate(s.Glosses[0], glossWidth)
		}
	}
	return "—"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

// summary counts the non-sense data of an entry, e.g. "2 sounds, 5 tr".
func summary(e extract.WordEntry) string {
	var parts []string
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(len(e.Senses), "senses")
	add(len(e.Sounds), "sounds")
	add(len(e.Forms), "forms")
	add(len(e.Translations), "tr")
	links := 0
	for _, kind := range []string{
		extract.LinkSynonyms, extract.LinkAntonyms, extract.LinkHypernyms, extract.LinkHyponyms, extract.LinkMeronyms,
		extract.LinkDerived, extract.LinkRelated, extract.LinkCompounds, extract.LinkIdioms, extract.LinkProverbs,
	} {
		if l := e.Linkages(kind); l != nil {
			links += len(*l)
		}
	}
	add(links, "links")
	return strings.Join(parts, ", ")
}
