package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState is the browser's top-level state.
type ViewState int

// Browser states.
const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateError
	ViewStateQuitting
)

// Key bindings.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keyEsc      = "esc"
	keySlash    = "/"
	keyTab      = "tab"
	keyShiftTab = "shift+tab"
	keyNext     = "n"
	keyRight    = "right"
	keyPrev     = "p"
	keyLeft     = "left"
	keyTheme    = "t"
)

// Layout defaults used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 100
	defaultHeight = 30

	// borderPadding is the horizontal space taken by a card's border and padding.
	borderPadding = 4

	// chromeLines is the number of lines around the card container:
	// header, search, categories, blank, controls, help.
	chromeLines = 6

	minContainerHeight = 3
)

// LoadingState wraps the spinner shown while the dataset loads.
type LoadingState struct {
	spinner spinner.Model
	message string
}

// NewLoadingState creates a loading indicator.
func NewLoadingState() *LoadingState {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &LoadingState{spinner: s, message: "Loading jobs..."}
}

// Init starts the spinner animation.
func (l *LoadingState) Init() tea.Cmd {
	return l.spinner.Tick
}

// Update advances the spinner.
func (l *LoadingState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

// View renders the spinner and its message.
func (l *LoadingState) View() string {
	return l.spinner.View() + " " + l.message
}

func newTextInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search jobs"
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Width = 40
	return ti
}

func containerHeight(height int) int {
	return max(minContainerHeight, height-chromeLines)
}
