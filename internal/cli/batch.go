package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wikiextract/pkg/extract"
	pkgio "github.com/matzehuels/wikiextract/pkg/io"
	"github.com/matzehuels/wikiextract/pkg/pagestore"
)

// batchOpts holds the command-line flags for the batch command.
type batchOpts struct {
	output  string // output file path (stdout if empty)
	workers int    // parallel extractions, 0 uses the config
	refresh bool   // ignore cached results
	noCache bool   // disable the result cache
}

// batchCommand creates the batch command for parallel extraction.
func (c *CLI) batchCommand() *cobra.Command {
	var opts batchOpts

	cmd := &cobra.Command{
		Use:   "batch INPUT",
		Short: "Extract many pages in parallel",
		Long: `Extract every page of INPUT and write the entries as JSON Lines.

INPUT is a JSON Lines file of {"title", "body"} objects or a directory of
*.wiki files. Every page of INPUT is visible to template and subpage
lookups, ahead of the configured store. Template pages are not extracted
themselves. Entries are written in input order.`,
		Example: `  wikiextract batch dump.jsonl -o entries.jsonl
  wikiextract batch pages/ --edition ru --workers 16 -o ru.jsonl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBatch(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel extractions (default from config)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runBatch(cmd *cobra.Command, input string, opts batchOpts) error {
	ctx := cmd.Context()
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run", runID)

	pages, err := pkgio.Import(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()
	runner.Logger = logger
	runner.Store = pagestore.Layered{pagestore.NewMemoryStore(pages...), runner.Store}

	popts := c.options(opts.refresh)
	popts.Logger = logger
	if opts.workers > 0 {
		popts.Workers = opts.workers
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	targets := contentPages(pages, popts.Language())
	logger.Info("starting batch", "input", input, "pages", len(targets), "lookups", len(pages)-len(targets), "workers", popts.Workers)

	var out io.Writer = cmd.OutOrStdout()
	toStdout := opts.output == ""
	if !toStdout {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.output, err)
		}
		defer f.Close()
		out = f
	}
	w := pkgio.NewEntryWriter(out)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Extracting 0/%d pages", len(targets)))
	if !toStdout {
		spinner.Start()
	}
	var done atomic.Int64
	stats, err := runner.ExtractAll(ctx, popts, targets, func(res *extract.Result) error {
		n := done.Add(1)
		spinner.SetMessage(fmt.Sprintf("Extracting %d/%d pages", n, len(targets)))
		return w.Write(res.Entries)
	})
	if !toStdout {
		spinner.Stop()
	}
	if ferr := w.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	logger.Info("batch complete", "pages", stats.Pages, "entries", stats.Entries,
		"unprocessed", stats.Diagnostics, "cache_hits", stats.CacheHits, "duration", stats.Duration)
	if !toStdout {
		printSuccess("Extracted %d pages", stats.Pages)
		printStats(stats)
		printFile(opts.output)
		printNextStep("Browse the entries", fmt.Sprintf("%s browse %s", appName, opts.output))
	}
	return nil
}

// contentPages returns the pages outside the template namespace.
func contentPages(pages []pagestore.Page, lang *extract.Language) []pagestore.Page {
	prefix := lang.Namespaces.Template
	if prefix == "" {
		return pages
	}
	out := make([]pagestore.Page, 0, len(pages))
	for _, p := range pages {
		if !strings.HasPrefix(p.Title, prefix) {
			out = append(out, p)
		}
	}
	return out
}
