package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/wikiextract/pkg/io"
	"github.com/matzehuels/wikiextract/pkg/pagestore"
)

// importCommand creates the import command that loads pages into the
// configured store.
func (c *CLI) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import SRC",
		Short: "Load pages into the page store",
		Long: `Load pages into the configured page store.

SRC is a JSON Lines file of {"title", "body"} objects or a directory of
*.wiki files. Existing pages with the same title are replaced.`,
		Example: `  wikiextract import dump.jsonl
  wikiextract import templates/ --config redis.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(c.Logger)

			pages, err := pkgio.Import(args[0])
			if err != nil {
				return err
			}
			store, err := pagestore.Open(ctx, c.Config.Store)
			if err != nil {
				return err
			}
			defer store.Close()

			spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Importing %d pages", len(pages)))
			spinner.Start()
			now := time.Now().UTC()
			for i, p := range pages {
				if p.UpdatedAt.IsZero() {
					p.UpdatedAt = now
				}
				if err := store.Put(ctx, p); err != nil {
					spinner.StopWithError(fmt.Sprintf("Import failed at %q", p.Title))
					return err
				}
				if i%100 == 0 {
					spinner.SetMessage(fmt.Sprintf("Importing %d/%d pages", i, len(pages)))
				}
			}
			spinner.StopWithSuccess(fmt.Sprintf("Imported %d pages", len(pages)))
			printKeyValue("Store", c.Config.Store.Backend)
			prog.done(fmt.Sprintf("Imported %d pages", len(pages)))
			return nil
		},
	}
}
