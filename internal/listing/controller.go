package listing

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// PageSize is the number of records rendered per page.
const PageSize = 10

// EndOfResultsMarker is appended to the container once the results run out.
const EndOfResultsMarker = "That's all for now!"

// Navigation errors.
var (
	ErrNoPreviousPage = errors.New("already on the first page")
	ErrNoMorePages    = errors.New("no more results")
	ErrPageNotCached  = errors.New("page not cached")
)

// PaginationState tells whether the current result set has pages left to render.
type PaginationState int

const (
	// StateHasMore means the current page was filled completely.
	StateHasMore PaginationState = iota
	// StateExhausted means the current page has unused slots.
	StateExhausted
)

// String returns the state name.
func (s PaginationState) String() string {
	switch s {
	case StateHasMore:
		return "has_more"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// RenderFunc renders one record into a container item.
type RenderFunc func(rec Record) string

// Cursor tracks the position of pagination within the ResultSet.
type Cursor struct {
	// Page is the current 1-based page number, 0 before the first render.
	Page int

	// Index is the first ResultSet index not yet rendered.
	Index int

	// Remaining is the number of unused slots on the current page.
	Remaining int
}

// State derives the pagination state from the remaining slots.
func (c Cursor) State() PaginationState {
	if c.Remaining > 0 {
		return StateExhausted
	}
	return StateHasMore
}

// ViewState is a snapshot of what the container and controls should show.
type ViewState struct {
	Page         int
	Items        []string
	ShowPrev     bool
	ShowNext     bool
	EndOfResults bool
	State        PaginationState
	ResultCount  int
	DatasetSize  int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for navigation events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller pages through the active ResultSet of a Dataset.
type Controller struct {
	dataset Dataset
	results ResultSet
	render  RenderFunc
	cache   *PageCache
	cursor  Cursor

	// container is the rendered content of the current page.
	container []string
	showPrev  bool
	showNext  bool
	endMarker bool

	logger zerolog.Logger
}

// New creates a Controller over ds and renders the first page of the full Dataset.
// A nil render joins each record's values with " | ".
func New(ds Dataset, render RenderFunc, opts ...Option) *Controller {
	c := &Controller{
		dataset: ds,
		render:  render,
		cache:   NewPageCache(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.render == nil {
		c.render = func(rec Record) string {
			return strings.Join(rec.Strings(), " | ")
		}
	}

	c.replace(All(ds))
	return c
}

// Filter replaces the ResultSet with the records of the given category
// and shows its first page.
func (c *Controller) Filter(category string) ViewState {
	c.replace(FilterByType(c.dataset, category))
	c.logger.Debug().
		Str("operation", "filter").
		Str("category", category).
		Int("results", c.results.Len()).
		Msg("result set replaced")
	return c.View()
}

// Search replaces the ResultSet with the records matching query
// and shows its first page.
func (c *Controller) Search(query string) ViewState {
	c.replace(Search(c.dataset, query))
	c.logger.Debug().
		Str("operation", "search").
		Str("query", query).
		Int("results", c.results.Len()).
		Msg("result set replaced")
	return c.View()
}

// Next advances to the following page, restoring it from the cache when it
// was visited before. It returns ErrNoMorePages without changing state when
// the current page is exhausted and the next page was never rendered.
func (c *Controller) Next() (ViewState, error) {
	if c.cursor.State() == StateExhausted {
		if _, ok := c.cache.Get(c.cursor.Page + 1); !ok {
			return c.View(), ErrNoMorePages
		}
	}
	c.forward()
	c.logger.Debug().
		Str("operation", "next").
		Int("page", c.cursor.Page).
		Stringer("state", c.cursor.State()).
		Msg("page shown")
	return c.View(), nil
}

// Prev returns to the previous page from the cache.
func (c *Controller) Prev() (ViewState, error) {
	if c.cursor.Page <= 1 {
		return c.View(), ErrNoPreviousPage
	}
	target := c.cursor.Page - 1
	entry, ok := c.cache.Get(target)
	if !ok {
		return c.View(), fmt.Errorf("%w: page %d", ErrPageNotCached, target)
	}

	c.cursor.Page = target
	c.restore(entry)
	c.updateControls()
	c.logger.Debug().
		Str("operation", "prev").
		Int("page", c.cursor.Page).
		Msg("page restored")
	return c.View(), nil
}

// View returns a snapshot of the current page and control visibility.
func (c *Controller) View() ViewState {
	return ViewState{
		Page:         c.cursor.Page,
		Items:        slices.Clone(c.container),
		ShowPrev:     c.showPrev,
		ShowNext:     c.showNext,
		EndOfResults: c.endMarker,
		State:        c.cursor.State(),
		ResultCount:  c.results.Len(),
		DatasetSize:  len(c.dataset),
	}
}

// Cursor returns the current cursor.
func (c *Controller) Cursor() Cursor {
	return c.cursor
}

// Results returns the active ResultSet.
func (c *Controller) Results() ResultSet {
	return c.results
}

// Dataset returns the Dataset the controller was built with.
func (c *Controller) Dataset() Dataset {
	return c.dataset
}

// CachedPages returns the page numbers held in the page cache.
func (c *Controller) CachedPages() []int {
	return c.cache.Pages()
}

// replace installs a new ResultSet, drops all pagination state
// and shows page 1.
func (c *Controller) replace(rs ResultSet) {
	c.results = rs
	c.cache.Invalidate()
	c.cursor = Cursor{}
	c.forward()
}

// forward moves to the next page, rendering and caching it when it is new.
// A new page is only cached when there was unconsumed data to render.
func (c *Controller) forward() {
	c.cursor.Page++
	c.cursor.Remaining = PageSize

	if entry, ok := c.cache.Get(c.cursor.Page); ok {
		c.restore(entry)
	} else {
		c.container = nil
		if c.cursor.Index < c.results.Len() {
			c.fill()
			c.cache.Set(c.cursor.Page, PageEntry{
				Items:  slices.Clone(c.container),
				Length: PageSize - c.cursor.Remaining,
			})
		}
	}
	c.updateControls()
}

// fill renders records into the container until the page is full
// or the ResultSet runs out.
func (c *Controller) fill() {
	for c.cursor.Remaining > 0 && c.cursor.Index < c.results.Len() {
		c.container = append(c.container, c.render(c.results.At(c.cursor.Index)))
		c.cursor.Index++
		c.cursor.Remaining--
	}
}

func (c *Controller) restore(entry PageEntry) {
	c.container = slices.Clone(entry.Items)
	c.cursor.Remaining = PageSize - entry.Length
}

func (c *Controller) updateControls() {
	c.showPrev = c.cursor.Page > 1
	exhausted := c.cursor.State() == StateExhausted
	c.showNext = !exhausted
	c.endMarker = exhausted
}
