package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/placementhub/joblist/internal/listing"
	"github.com/placementhub/joblist/internal/logging"
	"github.com/placementhub/joblist/internal/theme"
	listview "github.com/placementhub/joblist/internal/tui/list"
)

// LoadFunc produces the dataset shown by the browser.
type LoadFunc func(ctx context.Context) (listing.Dataset, error)

// DatasetLoadedMsg is sent when the dataset has been loaded.
type DatasetLoadedMsg struct {
	Dataset listing.Dataset
}

// DatasetErrorMsg is sent when the dataset could not be loaded.
type DatasetErrorMsg struct {
	Err error
}

// BrowseModel is the Bubble Tea model for the job listing browser.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type BrowseModel struct {
	state ViewState
	ctx   context.Context
	load  LoadFunc

	// Listing state; nil until the dataset arrives.
	controller *listing.Controller
	page       listing.ViewState
	categories []string
	category   int

	// Interactive components
	searchInput textinput.Model
	searching   bool
	container   *listview.ContainerModel[string]

	// Theme
	preference *theme.Preference
	palette    theme.Palette

	width  int
	height int

	loadingState *LoadingState

	// status is a one-line notice cleared by the next keypress.
	status string
	err    error
}

// NewBrowseModel creates a browser that loads its dataset with load. The
// theme is read from pref when it is non-nil; otherwise the light theme is
// used and toggles are not persisted.
func NewBrowseModel(ctx context.Context, load LoadFunc, pref *theme.Preference) BrowseModel {
	current := theme.Light
	var status string
	if pref != nil {
		t, err := pref.Load()
		if err != nil {
			logging.FromContext(ctx).Warn().
				Str("component", "tui").
				Err(err).
				Msg("failed to load theme preference, using light")
			status = "Theme preference unavailable: " + err.Error()
		}
		current = t
	}

	m := BrowseModel{
		state:        ViewStateLoading,
		ctx:          ctx,
		load:         load,
		categories:   []string{listing.AllCategories},
		searchInput:  newTextInput(),
		preference:   pref,
		palette:      theme.PaletteFor(current),
		width:        defaultWidth,
		height:       defaultHeight,
		loadingState: NewLoadingState(),
		status:       status,
	}
	m.container = listview.NewContainerModel[string](nil, containerHeight(m.height), m.width, m.cardRenderer())
	return m
}

// Init starts the spinner and the dataset load (Bubble Tea interface).
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(m.loadingState.Init(), loadDatasetCmd(m.ctx, m.load))
}

func loadDatasetCmd(ctx context.Context, load LoadFunc) tea.Cmd {
	return func() tea.Msg {
		if load == nil {
			return DatasetErrorMsg{Err: errors.New("no dataset loader configured")}
		}
		ds, err := load(ctx)
		if err != nil {
			return DatasetErrorMsg{Err: err}
		}
		return DatasetLoadedMsg{Dataset: ds}
	}
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = max(10, m.width/3)
		m.container.SetSize(containerHeight(m.height), m.width)
		m.container.SetRenderFunc(m.cardRenderer())
		return m, nil
	case DatasetLoadedMsg:
		return m.handleDatasetLoaded(msg)
	case DatasetErrorMsg:
		m.state = ViewStateError
		m.err = msg.Err
		logging.FromContext(m.ctx).Error().
			Str("component", "tui").
			Err(msg.Err).
			Msg("dataset load failed")
		return m, nil
	}

	switch m.state {
	case ViewStateLoading:
		return m.handleLoadingUpdate(msg)
	case ViewStateList:
		if m.searching {
			return m.handleSearchInput(msg)
		}
		return m.handleListUpdate(msg)
	case ViewStateError:
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case keyQuit, keyCtrlC, keyEsc, keyEnter:
				m.state = ViewStateQuitting
				return m, tea.Quit
			}
		}
		return m, nil
	case ViewStateQuitting:
		return m, nil
	}
	return m, nil
}

func (m BrowseModel) handleLoadingUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if s := keyMsg.String(); s == keyQuit || s == keyCtrlC {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
		return m, nil
	}
	return m, m.loadingState.Update(msg)
}

func (m BrowseModel) handleDatasetLoaded(msg DatasetLoadedMsg) (tea.Model, tea.Cmd) {
	logger := logging.ComponentLogger(*logging.FromContext(m.ctx), "listing")
	m.controller = listing.New(msg.Dataset, CardTemplate, listing.WithLogger(logger))
	m.categories = listing.Categories(msg.Dataset)
	m.category = 0
	m.state = ViewStateList
	m.show(m.controller.View())

	logging.FromContext(m.ctx).Info().
		Str("component", "tui").
		Int("records", len(msg.Dataset)).
		Int("categories", len(m.categories)-1).
		Msg("dataset loaded")
	return m, nil
}

// handleSearchInput routes keys to the search box. Every edit re-runs the
// search with the box's current value.
func (m BrowseModel) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case keyCtrlC:
			m.state = ViewStateQuitting
			return m, tea.Quit
		case keyEnter, keyEsc:
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if after := m.searchInput.Value(); after != before {
		m.applySearch(after)
	}
	return m, cmd
}

func (m BrowseModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.status = ""

	switch keyMsg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	case keySlash:
		m.searching = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case keyEsc:
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.applySearch("")
		}
		return m, nil
	case keyTab:
		m.cycleCategory(1)
		return m, nil
	case keyShiftTab:
		m.cycleCategory(-1)
		return m, nil
	case keyNext, keyRight:
		m.nextPage()
		return m, nil
	case keyPrev, keyLeft:
		m.prevPage()
		return m, nil
	case keyTheme:
		m.toggleTheme()
		return m, nil
	default:
		m.container.Update(keyMsg)
		return m, nil
	}
}

// applySearch replaces the results with the search matches. A search
// supersedes the category selection, so the selector returns to "All".
func (m *BrowseModel) applySearch(query string) {
	m.category = 0
	m.show(m.controller.Search(query))
}

// cycleCategory moves the selector by delta and filters by the new category.
// A filter supersedes the search, so the search box is cleared.
func (m *BrowseModel) cycleCategory(delta int) {
	n := len(m.categories)
	if n == 0 {
		return
	}
	m.category = ((m.category+delta)%n + n) % n
	m.searchInput.SetValue("")
	m.show(m.controller.Filter(m.categories[m.category]))
}

func (m *BrowseModel) nextPage() {
	if !m.page.ShowNext {
		return
	}
	view, err := m.controller.Next()
	if err != nil {
		m.status = "No more results"
		return
	}
	m.show(view)
}

func (m *BrowseModel) prevPage() {
	if !m.page.ShowPrev {
		return
	}
	view, err := m.controller.Prev()
	if err != nil {
		m.status = "Previous page unavailable"
		return
	}
	m.show(view)
}

func (m *BrowseModel) toggleTheme() {
	next := m.palette.Theme.Toggle()
	if m.preference != nil {
		if err := m.preference.Save(next); err != nil {
			logging.FromContext(m.ctx).Warn().
				Str("component", "tui").
				Err(err).
				Msg("failed to persist theme preference")
			m.status = "Theme not saved: " + err.Error()
		}
	}
	m.palette = theme.PaletteFor(next)
	m.container.SetRenderFunc(m.cardRenderer())
	m.container.SetFooter(m.footer())
}

// show installs a controller snapshot into the container.
func (m *BrowseModel) show(view listing.ViewState) {
	m.page = view
	m.container.SetItems(view.Items, m.footer())
}

func (m BrowseModel) footer() string {
	if !m.page.EndOfResults {
		return ""
	}
	return m.palette.EndMarker.Render(listing.EndOfResultsMarker)
}

func (m BrowseModel) cardRenderer() listview.RenderFunc[string] {
	palette := m.palette
	width := m.width
	return func(card string, selected bool) string {
		return StyleCard(palette, card, selected, width)
	}
}

// Page returns the controller snapshot currently displayed.
func (m BrowseModel) Page() listing.ViewState {
	return m.page
}

// Theme returns the active theme.
func (m BrowseModel) Theme() theme.Theme {
	return m.palette.Theme
}

// Err returns the dataset load error, if any.
func (m BrowseModel) Err() error {
	return m.err
}
