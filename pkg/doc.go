// Package pkg provides the core libraries for wikiextract.
//
// # Overview
//
// wikiextract turns raw Wiktionary wikitext into structured dictionary
// entries. One page yields one entry per (language, part of speech), with
// senses, pronunciations, translations, related words and inflected forms.
// The pkg directory is organized into three areas:
//
//  1. Extraction - parsing, template expansion and the section dispatcher
//  2. Infrastructure - page stores, the result cache, configuration
//  3. Orchestration - the pipeline used by the CLI and the HTTP API
//
// # Architecture
//
// The typical data flow:
//
//	JSONL dump / *.wiki files / page store
//	         ↓
//	    [wikitext] package (parse, expand templates, render text)
//	         ↓
//	    [extract] package (classify headings, dispatch sections, build entries)
//	         ↓
//	    [pipeline] package (cache, parallel batch runs)
//	         ↓
//	    JSON / JSONL output
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/wikiextract/pkg/extract"
//	    "github.com/matzehuels/wikiextract/pkg/extract/zh"
//	)
//
//	res := extract.ExtractPage(context.Background(), zh.Language, "太陽風", text, extract.Options{
//	    Config: extract.DefaultConfig(),
//	})
//	for _, e := range res.Entries {
//	    fmt.Println(e.Lang, e.POS, len(e.Senses))
//	}
//
// # Main Packages
//
// ## Extraction
//
// [wikitext] - Wikitext parser producing a node tree (headings own their
// content), a template engine that expands parameters and parser functions
// against a page source, and a plain-text renderer that collects categories.
//
// [extract] - The edition-independent extractor: the entry lifecycle (base
// template, clone per part of speech, prune empty entries), the heading
// classifier, section handlers, the form-page harvester and the positional
// translation decoder.
//
// [extract/languages] - The registry of editions. Each edition (zh, ru, es,
// ja, fr, de) is a subpackage declaring its heading tables, templates and
// handlers.
//
// [langcodes] - Language names to codes, per edition.
//
// ## Infrastructure
//
// [pagestore] - Raw pages by title: memory, directory, Redis and MongoDB
// backends. Templates and translation subpages are read through the same
// store.
//
// [cache] - Extraction result cache keyed by edition, title, body hash,
// capture options and build version. File, Redis and null backends.
//
// [config] - TOML configuration with defaults and validation.
//
// [observability] - Hooks for page, cache and store events.
//
// [errors] - Error codes and input validation.
//
// ## Orchestration
//
// [pipeline] - Runs extraction with caching, used by the CLI and the API.
// Batch runs are parallel and emit results in input order.
//
// [io] - JSON Lines input of pages and output of entries.
//
// [outline] - Heading-tree diagrams for debugging classification.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/extract/...            # Specific package
//	go test -tags integration ./pkg/...  # Include Redis and MongoDB tests
//
// [wikitext]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/wikitext
// [extract]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/extract
// [extract/languages]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/extract/languages
// [langcodes]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/langcodes
// [pagestore]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/pagestore
// [cache]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/config
// [observability]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/errors
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/pipeline
// [io]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/io
// [outline]: https://pkg.go.dev/github.com/matzehuels/wikiextract/pkg/outline
package pkg
