package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/extract/languages"
	"github.com/matzehuels/wikiextract/pkg/outline"
	"github.com/matzehuels/wikiextract/pkg/pagestore"
)

// outlineOpts holds the command-line flags for the outline command.
type outlineOpts struct {
	title    string // page title, defaults to the file name
	output   string // .svg or .dot file, text tree on stdout if empty
	detailed bool   // include level and role in diagram labels
}

// outlineCommand creates the outline command, a debugging view of how the
// headings of a page are classified.
func (c *CLI) outlineCommand() *cobra.Command {
	var opts outlineOpts

	cmd := &cobra.Command{
		Use:   "outline FILE",
		Short: "Show how the headings of a page are classified",
		Long: `Show the heading tree of a page with the role assigned to each heading.

Headings reported as unprocessed are highlighted. Without --output a text
tree is printed; with an .svg or .dot output a diagram is written.`,
		Example: `  wikiextract outline кот.wiki --edition ru
  wikiextract outline 太陽風.wiki -o outline.svg --detailed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOutline(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "page title (default: file name)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write a diagram (.svg or .dot)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include level and role in diagram labels")

	return cmd
}

func (c *CLI) runOutline(cmd *cobra.Command, path string, opts outlineOpts) error {
	ctx := cmd.Context()
	page, err := readPageFile(cmd.InOrStdin(), path, opts.title)
	if err != nil {
		return err
	}
	lang := languages.Find(c.Config.Edition)
	if lang == nil {
		return fmt.Errorf("unsupported edition: %s (supported: %v)", c.Config.Edition, languages.Codes())
	}

	store, err := pagestore.Open(ctx, c.Config.Store)
	if err != nil {
		c.Logger.Warn("page store unavailable, templates will not expand", "err", err)
		store = pagestore.NewMemoryStore()
	}
	defer store.Close()

	o := outline.FromPage(ctx, lang, page.Title, page.Body, extract.Options{
		Config:  c.Config.Extract(),
		Fetcher: pagestore.Fetcher(store, c.Logger),
		Logger:  c.Logger,
	})

	switch ext := strings.ToLower(filepath.Ext(opts.output)); ext {
	case "":
		printOutline(cmd.OutOrStdout(), o)
		return nil
	case ".dot":
		return writeFile(opts.output, []byte(outline.ToDOT(o, outline.Options{Detailed: opts.detailed})))
	case ".svg":
		svg, err := outline.RenderSVG(outline.ToDOT(o, outline.Options{Detailed: opts.detailed}))
		if err != nil {
			return err
		}
		return writeFile(opts.output, svg)
	default:
		return fmt.Errorf("unsupported output format %q (want .svg or .dot)", ext)
	}
}

// printOutline writes the outline as an indented tree.
func printOutline(w io.Writer, o *outline.Outline) {
	fmt.Fprintln(w, StyleTitle.Render(o.Page))
	o.Walk(func(h *outline.Heading, depth int) {
		indent := strings.Repeat("  ", depth+1)
		role := h.Role.String()
		switch {
		case h.Language:
			fmt.Fprintf(w, "%s%s\n", indent, StyleHighlight.Render(h.Title))
			return
		case h.Unprocessed:
			role = StyleWarning.Render(iconWarning + " unprocessed")
		default:
			role = StyleDim.Render(role)
		}
		fmt.Fprintf(w, "%s%s %s %s\n", indent, StyleValue.Render(h.Title), StyleDim.Render(iconArrow), role)
	})
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	printFile(path)
	return nil
}
