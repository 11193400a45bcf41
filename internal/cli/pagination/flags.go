package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Page limits and output formats.
const (
	DefaultPage = 1
	MinPage     = 1

	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Common validation errors.
var (
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrFilterWithSearch  = errors.New("--filter and --search are mutually exclusive")
	ErrUnsupportedOutput = errors.New("output must be 'table', 'json' or 'yaml'")
	ErrEmptyFilter       = errors.New("--filter requires a category name")
)

// Mode says how the result set is chosen.
type Mode string

// Selection modes.
const (
	ModeAll    Mode = "all"
	ModeFilter Mode = "filter"
	ModeSearch Mode = "search"
)

// ListParams holds the `joblist list` flags. Filter and Search are mutually
// exclusive because each replaces the result set the other would produce.
type ListParams struct {
	// Page is the 1-based page to print.
	Page int

	// Filter is a category name (see `joblist categories`).
	Filter string

	// Search is a case-insensitive substring matched against every field.
	Search string

	// Output is table, json or yaml. Empty means the configured default.
	Output string

	filterSet bool
	searchSet bool
}

// NewListParams creates a ListParams with default values.
func NewListParams() *ListParams {
	return &ListParams{Page: DefaultPage}
}

// AddFlags registers the list flags on cmd.
func (p *ListParams) AddFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.IntVar(&p.Page, "page", DefaultPage, "page number to print (1-based)")
	flags.StringVar(&p.Filter, "filter", "", "show only jobs whose Type contains this category")
	flags.StringVar(&p.Search, "search", "", "show only jobs with a field containing this text (case-insensitive)")
	flags.StringVarP(&p.Output, "output", "o", "", "output format: table, json or yaml")
}

// Capture records which selection flags were given explicitly. An explicit
// empty --search is a valid query that matches everything.
func (p *ListParams) Capture(cmd *cobra.Command) {
	p.filterSet = cmd.Flags().Changed("filter")
	p.searchSet = cmd.Flags().Changed("search")
}

// Validate checks that the parameters are consistent (value receiver).
func (p ListParams) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if (p.filterSet || p.Filter != "") && (p.searchSet || p.Search != "") {
		return ErrFilterWithSearch
	}
	if p.filterSet && p.Filter == "" {
		return ErrEmptyFilter
	}
	switch strings.ToLower(p.Output) {
	case "", OutputTable, OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("%w: got %q", ErrUnsupportedOutput, p.Output)
	}
	return nil
}

// Mode returns how the result set is selected.
func (p ListParams) Mode() Mode {
	switch {
	case p.filterSet || p.Filter != "":
		return ModeFilter
	case p.searchSet || p.Search != "":
		return ModeSearch
	default:
		return ModeAll
	}
}

// Steps returns how many Next calls reach Page from the first page.
func (p ListParams) Steps() int {
	return max(0, p.Page-MinPage)
}
