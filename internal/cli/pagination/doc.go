// Package pagination provides the flags and result metadata for printing one
// page of job listings outside the interactive browser.
//
// This package contains:
//   - ListParams: CLI flag parsing and validation for `joblist list`
//   - PaginationMeta: metadata derived from a listing.ViewState
//
// Pages are always produced by walking a listing.Controller forward from the
// first page, so the CLI and the browser agree on page boundaries.
package pagination
