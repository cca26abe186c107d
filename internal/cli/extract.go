package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/wikiextract/pkg/io"
	"github.com/matzehuels/wikiextract/pkg/pagestore"
)

// extractOpts holds the command-line flags for the extract command.
type extractOpts struct {
	file    string // read the page body from a file ("-" for stdin)
	output  string // output file path (stdout if empty)
	jsonl   bool   // write entries as JSON Lines instead of the full result
	refresh bool   // ignore cached results
	noCache bool   // disable the result cache
}

// extractCommand creates the extract command for a single page.
func (c *CLI) extractCommand() *cobra.Command {
	var opts extractOpts

	cmd := &cobra.Command{
		Use:   "extract [TITLE]",
		Short: "Extract the entries of one page",
		Long: `Extract the entries of one page and print them as JSON.

Without --file the page is read from the configured page store. With --file
the body is read from the file and TITLE defaults to the file name without
extension. Unprocessed sections are logged.`,
		Example: `  wikiextract extract 太陽風
  wikiextract extract --edition ru --file кот.wiki
  curl -s .../raw | wikiextract extract cat --file - --lang en`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := ""
			if len(args) == 1 {
				title = args[0]
			}
			return c.runExtract(cmd, title, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "read the page body from a file (- for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.jsonl, "jsonl", false, "write entries as JSON Lines")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runExtract(cmd *cobra.Command, title string, opts extractOpts) error {
	ctx := cmd.Context()
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := c.options(opts.refresh)
	var page pagestore.Page
	if opts.file != "" {
		page, err = readPageFile(cmd.InOrStdin(), opts.file, title)
	} else if title != "" {
		page, err = runner.LookupPage(ctx, title)
	} else {
		err = fmt.Errorf("a title or --file is required")
	}
	if err != nil {
		return err
	}

	res, cached, err := runner.ExtractPageWithCacheInfo(ctx, popts, page)
	if err != nil {
		return err
	}

	for _, d := range res.Diagnostics {
		c.Logger.Info("unprocessed section", "page", d.Page, "section", d.Section, "msg", d.Message)
	}
	c.Logger.Debug("extracted", "title", res.Title, "entries", len(res.Entries), "cached", cached)

	err = writeOutput(cmd.OutOrStdout(), opts.output, func(w io.Writer) error {
		if opts.jsonl {
			return pkgio.WriteEntries(w, res.Entries)
		}
		return pkgio.WriteResult(w, res)
	})
	if err == nil && opts.output != "" {
		printCached(cached)
	}
	return err
}

// readPageFile reads a page body from path, or from stdin when path is "-".
// An empty title is derived from the file name.
func readPageFile(stdin io.Reader, path, title string) (pagestore.Page, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return pagestore.Page{}, fmt.Errorf("read %s: %w", path, err)
	}
	if title == "" {
		if path == "-" {
			return pagestore.Page{}, fmt.Errorf("a title is required when reading from stdin")
		}
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return pagestore.Page{Title: title, Body: string(data)}, nil
}

// writeOutput calls write with stdout, or with the file at path.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	printFile(path)
	return nil
}
