package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/placementhub/joblist/internal/cli/pagination"
	"github.com/placementhub/joblist/internal/config"
	"github.com/placementhub/joblist/internal/listing"
	"github.com/placementhub/joblist/internal/logging"
	"github.com/placementhub/joblist/internal/theme"
	"github.com/placementhub/joblist/internal/tui"
)

// listOutput is the structured (json/yaml) form of one page.
type listOutput struct {
	Pagination pagination.PaginationMeta `json:"pagination" yaml:"pagination"`
	Jobs       []listing.Record          `json:"jobs"       yaml:"jobs"`
}

func newListCmd() *cobra.Command {
	params := pagination.NewListParams()
	var data dataFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of job listings",
		Long: `Prints one page of ten job listings, optionally filtered by category or
searched across every field. Pages are numbered from 1; the end-of-results
marker is printed on the page where the listings run out.`,
		Example: `  # First page of everything
  joblist list --data jobs.json

  # Third page of internships
  joblist list --data jobs.json --filter Intern --page 3

  # Search as JSON
  joblist list --data jobs.json --search golang --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params.Capture(cmd)
			if err := params.Validate(); err != nil {
				return &UsageError{Err: err}
			}
			mode := outputMode(cmd)
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				mode = tui.OutputModePlain
			}
			return runList(cmd, *params, data, mode)
		},
	}

	params.AddFlags(cmd)
	data.addFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, params pagination.ListParams, data dataFlags, mode tui.OutputMode) error {
	ctx := cmd.Context()
	cfg := config.GetGlobalConfig()

	src, err := data.sources(cmd, cfg)
	if err != nil {
		return &UsageError{Err: err}
	}
	ds, err := loadDataset(ctx, src)
	if err != nil {
		return err
	}

	controller, view, err := openPage(ctx, ds, params)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch cfg.GetOutputFormat(params.Output) {
	case config.OutputJSON:
		return renderJSON(out, newListOutput(controller, view))
	case config.OutputYAML:
		return renderYAML(out, newListOutput(controller, view))
	default:
		palette, styled := stylePalette(ctx, cfg, mode)
		return renderTable(out, view, palette, styled, tui.WriterWidth(out, 0))
	}
}

// openPage applies the selection and walks forward to the requested page,
// exactly as the browser would.
func openPage(
	ctx context.Context,
	ds listing.Dataset,
	params pagination.ListParams,
) (*listing.Controller, listing.ViewState, error) {
	listingLogger := logging.ComponentLogger(*logging.FromContext(ctx), "listing")
	c := listing.New(ds, tui.CardTemplate, listing.WithLogger(listingLogger))

	view := c.View()
	switch params.Mode() {
	case pagination.ModeFilter:
		view = c.Filter(params.Filter)
	case pagination.ModeSearch:
		view = c.Search(params.Search)
	case pagination.ModeAll:
	}

	for range params.Steps() {
		next, err := c.Next()
		if errors.Is(err, listing.ErrNoMorePages) {
			return nil, view, &UsageError{Err: fmt.Errorf("page %d is past the end of the results (last page is %d): %w",
				params.Page, view.Page, err)}
		}
		if err != nil {
			return nil, view, err
		}
		view = next
	}
	return c, view, nil
}

// pageRecords returns the records behind view. Pages consume the result set
// in order, so page N starts at result (N-1)*PageSize.
func pageRecords(c *listing.Controller, view listing.ViewState) []listing.Record {
	results := c.Results()
	start := (view.Page - 1) * listing.PageSize
	records := make([]listing.Record, 0, len(view.Items))
	for i := range view.Items {
		records = append(records, normalizeRecord(results.At(start+i)))
	}
	return records
}

func newListOutput(c *listing.Controller, view listing.ViewState) listOutput {
	return listOutput{
		Pagination: pagination.NewPaginationMeta(view),
		Jobs:       pageRecords(c, view),
	}
}

// normalizeRecord converts json.Number values so YAML prints them as numbers.
func normalizeRecord(rec listing.Record) listing.Record {
	out := make(listing.Record, len(rec))
	for k, v := range rec {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		return map[string]any(normalizeRecord(t))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeValue(e)
		}
		return out
	default:
		return v
	}
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// stylePalette returns the stored theme's palette when output is styled.
func stylePalette(ctx context.Context, cfg *config.Config, mode tui.OutputMode) (theme.Palette, bool) {
	if mode != tui.OutputModeStyled && mode != tui.OutputModeInteractive {
		return theme.Palette{}, false
	}
	current := theme.Light
	if pref, err := openPreference(cfg); err == nil {
		if t, loadErr := pref.Load(); loadErr == nil {
			current = t
		}
	} else {
		logging.FromContext(ctx).Debug().Err(err).Msg("theme preference unavailable")
	}
	return theme.PaletteFor(current), true
}

// renderTable prints the page's cards, the end marker when reached, and a
// summary. Styled cards are fitted to width; zero keeps their natural width.
func renderTable(w io.Writer, view listing.ViewState, palette theme.Palette, styled bool, width int) error {
	var b strings.Builder
	for i, card := range view.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		if styled {
			b.WriteString(tui.StyleCard(palette, card, false, width))
		} else {
			b.WriteString(card)
		}
		b.WriteString("\n")
	}
	if view.EndOfResults {
		if len(view.Items) > 0 {
			b.WriteString("\n")
		}
		marker := listing.EndOfResultsMarker
		if styled {
			marker = palette.EndMarker.Render(marker)
		}
		b.WriteString(marker + "\n")
	}
	summary := pagination.NewPaginationMeta(view).Summary(language.English)
	if styled {
		summary = palette.Subtle.Render(summary)
	}
	b.WriteString("\n" + summary + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
