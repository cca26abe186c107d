package io

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/matzehuels/wikiextract/pkg/extract"
	"github.com/matzehuels/wikiextract/pkg/pagestore"
)

// WikiExt is the extension of page files read by [ImportDir].
const WikiExt = ".wiki"

// ReadPages decodes a stream of page objects. Objects may be separated by
// any whitespace; one per line is conventional. Pages without a title are
// rejected with the position of the offending object.
//
// ReadPages does not close r.
func ReadPages(r io.Reader) ([]pagestore.Page, error) {
	dec := json.NewDecoder(r)
	var pages []pagestore.Page
	for {
		var p pagestore.Page
		err := dec.Decode(&p)
		if errors.Is(err, io.EOF) {
			return pages, nil
		}
		if err != nil {
			return nil, fmt.Errorf("page %d: decode: %w", len(pages)+1, err)
		}
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("page %d: missing title", len(pages)+1)
		}
		pages = append(pages, p)
	}
}

// ImportPages reads a JSONL page file at path.
func ImportPages(path string) ([]pagestore.Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadPages(f)
}

// ImportDir reads every *.wiki file in dir, not recursively, sorted by
// file name. The title is the path-unescaped base name, so subpages are
// stored as "cat%2Ftranslations.wiki".
func ImportDir(dir string) ([]pagestore.Page, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+WikiExt))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	pages := make([]pagestore.Page, 0, len(matches))
	for _, path := range matches {
		name := strings.TrimSuffix(filepath.Base(path), WikiExt)
		title, err := url.PathUnescape(name)
		if err != nil {
			return nil, fmt.Errorf("file %s: bad title: %w", path, err)
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		pages = append(pages, pagestore.Page{Title: title, Body: string(body)})
	}
	return pages, nil
}

// Import reads pages from path, which is either a JSONL file or a
// directory of *.wiki files.
func Import(path string) ([]pagestore.Page, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return ImportDir(path)
	}
	return ImportPages(path)
}

// ReadEntries decodes a JSONL stream of entries.
//
// ReadEntries does not close r.
func ReadEntries(r io.Reader) ([]extract.WordEntry, error) {
	dec := json.NewDecoder(r)
	var entries []extract.WordEntry
	for {
		var e extract.WordEntry
		err := dec.Decode(&e)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("entry %d: decode: %w", len(entries)+1, err)
		}
		entries = append(entries, e)
	}
}

// ImportEntries reads a JSONL entry file at path.
func ImportEntries(path string) ([]extract.WordEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadEntries(f)
}
