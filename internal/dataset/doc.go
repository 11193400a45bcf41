// Package dataset loads the records shown by the listing.
//
// Sources are files matched by doublestar globs and SQLite tables. Supported
// file formats are chosen by extension:
//   - .json: an array of objects, or {"version": "1.x", "records": [...]}
//   - .ndjson / .jsonl: one object per line
//   - .yaml / .yml: a list of mappings, or the same envelope as JSON
//
// A trailing .gz or .zst is decompressed first. Files are decoded in parallel
// and concatenated in sorted path order, followed by SQLite tables in the
// order they were configured, so the resulting Dataset order is stable.
package dataset
