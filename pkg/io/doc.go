// Package io reads raw pages and writes extracted entries as JSON Lines.
//
// # Page Input
//
// Pages are imported from a JSONL file, one object per line:
//
//	{"title": "太陽風", "body": "==漢語==\n===名詞===\n# ..."}
//	{"title": "Template:ux", "body": "{{{2}}}<br>{{{t|}}}"}
//
// Template pages and translation subpages go into the same file as
// ordinary pages: the extractor looks them up by full title.
//
// Use [ReadPages] to decode from any io.Reader, [ImportPages] to read a
// file, or [ImportDir] to read a directory of *.wiki files where the file
// name (path-unescaped, without extension) is the title:
//
//	pages, err := io.ImportDir("dump/")
//
// # Entry Output
//
// Entries are written one JSON object per line, the format consumed by
// dictionary importers that read wiktextract output:
//
//	{"word": "太陽風", "lang": "漢語", "lang_code": "zh", "pos": "noun", "senses": [...]}
//
// Use [WriteEntries] for a batch, or an [EntryWriter] to stream results of
// a parallel run to one writer. [ReadEntries] decodes the same format back,
// for the interactive browser.
package io
