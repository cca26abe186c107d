package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/matzehuels/wikiextract/pkg/extract"
)

// WriteEntries writes entries to w, one JSON object per line.
func WriteEntries(w io.Writer, entries []extract.WordEntry) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for i := range entries {
		if err := enc.Encode(&entries[i]); err != nil {
			return fmt.Errorf("encode %s: %w", entries[i].Word, err)
		}
	}
	return nil
}

// WriteResult writes one extraction result as indented JSON.
func WriteResult(w io.Writer, res *extract.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// EntryWriter buffers JSONL output and is safe for concurrent use.
// Call Flush when done.
type EntryWriter struct {
	mu    sync.Mutex
	buf   *bufio.Writer
	count int
}

// NewEntryWriter returns a writer that writes to w.
func NewEntryWriter(w io.Writer) *EntryWriter {
	return &EntryWriter{buf: bufio.NewWriter(w)}
}

// Write appends entries.
func (w *EntryWriter) Write(entries []extract.WordEntry) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := WriteEntries(w.buf, entries); err != nil {
		return err
	}
	w.count += len(entries)
	return nil
}

// Count returns the number of entries written.
func (w *EntryWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Flush writes buffered data to the underlying writer.
func (w *EntryWriter) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Flush()
}
