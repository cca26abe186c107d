// Package pipeline runs page extraction for the CLI and the HTTP API.
//
// This package wraps [extract.ExtractPage] with the concerns around it: the
// edition registry, the result cache, the page store used for templates and
// subpages, and parallel batch runs. By centralizing this logic, the CLI
// commands and the server behave the same way.
//
// # Usage
//
// Create a Runner and extract pages:
//
//	runner := pipeline.NewRunner(cache, nil, store, logger)
//	opts := pipeline.Options{
//	    Edition: "zh",
//	    Config:  extract.DefaultConfig(),
//	}
//	res, err := runner.ExtractPage(ctx, opts, pagestore.Page{Title: "太陽風", Body: text})
//
// Extract many pages with bounded parallelism; results are emitted in input
// order:
//
//	stats, err := runner.ExtractAll(ctx, opts, pages, func(res *extract.Result) error {
//	    return io.WriteEntries(w, res.Entries)
//	})
package pipeline

import (
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wikiextract/pkg/buildinfo"
	"github.com/matzehuels/wikiextract/pkg/cache"
	werrors "github.com/matzehuels/wikiextract/pkg/errors"
	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/extract/languages"
)

// DefaultEdition is the edition used when none is given.
const DefaultEdition = "zh"

// Options contains the configuration of an extraction run.
// This struct supports JSON serialization for API requests.
type Options struct {
	Edition string         `json:"edition"`
	Config  extract.Config `json:"config"`
	Refresh bool           `json:"refresh,omitempty"` // Ignore cached results

	// Workers bounds the parallelism of ExtractAll.
	Workers int `json:"workers,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	lang      *extract.Language
	validated bool
}

// Stats summarizes an extraction run.
type Stats struct {
	Pages       int
	Entries     int
	Diagnostics int
	CacheHits   int
	Duration    time.Duration
}

// ValidateAndSetDefaults checks the edition and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Edition == "" {
		o.Edition = DefaultEdition
	}
	if err := werrors.ValidateEdition(o.Edition); err != nil {
		return err
	}
	o.lang = languages.Find(o.Edition)
	if o.lang == nil {
		return werrors.New(werrors.ErrCodeInvalidEdition, "unsupported edition: %s (supported: %v)", o.Edition, languages.Codes())
	}
	if err := werrors.ValidateLanguageCodes(o.Config.Languages); err != nil {
		return err
	}
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Language returns the edition selected by the options. It is nil until
// ValidateAndSetDefaults succeeds.
func (o *Options) Language() *extract.Language {
	return o.lang
}

// ExtractKeyOpts returns cache key options for extraction results.
func (o *Options) ExtractKeyOpts() cache.ExtractKeyOpts {
	return cache.ExtractKeyOpts{
		Languages:     o.Config.Languages,
		Pronunciation: o.Config.Pronunciation,
		Translations:  o.Config.Translations,
		Linkages:      o.Config.Linkages,
		Etymologies:   o.Config.Etymologies,
		Examples:      o.Config.Examples,
		Version:       buildinfo.Version,
	}
}
