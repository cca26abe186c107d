package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/wikiextract/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The config file is loaded before any subcommand runs; --edition and
// --lang override its values. Subcommands read the result from c.Config.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Extract structured dictionary entries from Wiktionary pages",
		Long: `wikiextract turns raw Wiktionary wikitext into JSON dictionary entries:
senses, pronunciations, translations, related words and inflected forms.

Pages are read from a page store (a directory, Redis or MongoDB) or from
JSON Lines files; template bodies and translation subpages are looked up
in the same store.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wikiextract/config.toml)")
	flags.StringVarP(&c.edition, "edition", "e", "", "dictionary edition (zh, ru, es, ja, fr, de)")
	flags.StringSliceVar(&c.languages, "lang", nil, "only capture these language codes")

	root.AddCommand(c.extractCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.outlineCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
