package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// itemGap is the number of blank lines between two items.
const itemGap = 1

// RenderFunc renders an item. The selected parameter indicates whether this
// item is currently selected.
type RenderFunc[T any] func(item T, selected bool) string

// span is the line range [from, to) an item occupies in the rendered content.
type span struct {
	from, to int
}

// ContainerModel is a scrollable container of multi-line items.
type ContainerModel[T any] struct {
	// items contains the items of the current page
	items []T

	// renderFunc renders a single item
	renderFunc RenderFunc[T]

	// footer is rendered after the last item (may be empty)
	footer string

	// selected is the currently selected item index (0-based)
	selected int

	// offset is the first visible line
	offset int

	// height is the viewport height in lines
	height int

	// width is the viewport width in columns
	width int
}

// NewContainerModel creates a container showing items in a viewport of the
// given size.
func NewContainerModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *ContainerModel[T] {
	m := &ContainerModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
	}
	m.updateOffset()
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *ContainerModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *ContainerModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.SetSize(msg.Height, msg.Width)
	}
	return m, nil
}

func (m *ContainerModel[T]) handleKeyMsg(msg tea.KeyMsg) {
	if len(m.items) == 0 {
		return
	}

	switch msg.String() {
	case "up", "k":
		m.SetSelected(m.selected - 1)
	case "down", "j":
		m.SetSelected(m.selected + 1)
	case "pgup":
		m.scroll(-m.height)
	case "pgdown":
		m.scroll(m.height)
	case "home", "g":
		m.SetSelected(0)
	case "end", "G":
		m.SetSelected(len(m.items) - 1)
	}
}

// SetItems replaces the container's contents, e.g. after a page change.
// Selection and scroll position return to the top.
func (m *ContainerModel[T]) SetItems(items []T, footer string) {
	m.items = items
	m.footer = footer
	m.selected = 0
	m.offset = 0
	m.updateOffset()
}

// SetFooter replaces the footer while keeping the selection.
func (m *ContainerModel[T]) SetFooter(footer string) {
	m.footer = footer
	m.updateOffset()
}

// SetRenderFunc swaps the item renderer, e.g. after a theme change.
func (m *ContainerModel[T]) SetRenderFunc(renderFunc RenderFunc[T]) {
	m.renderFunc = renderFunc
	m.updateOffset()
}

// SetSize resizes the viewport.
func (m *ContainerModel[T]) SetSize(height, width int) {
	m.height = height
	m.width = width
	m.updateOffset()
}

// SetSelected sets the selected item index, capping to valid bounds.
func (m *ContainerModel[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		return
	}
	m.selected = max(0, min(index, len(m.items)-1))
	m.updateOffset()
}

// scroll moves the viewport by delta lines without changing the selection.
func (m *ContainerModel[T]) scroll(delta int) {
	lines, _ := m.layout()
	m.offset = clampOffset(m.offset+delta, len(lines), m.height)
}

// layout renders every item and returns the content lines and each item's span.
func (m *ContainerModel[T]) layout() ([]string, []span) {
	var lines []string
	spans := make([]span, 0, len(m.items))
	for i, item := range m.items {
		if i > 0 {
			for range itemGap {
				lines = append(lines, "")
			}
		}
		from := len(lines)
		lines = append(lines, strings.Split(m.renderFunc(item, i == m.selected), "\n")...)
		spans = append(spans, span{from: from, to: len(lines)})
	}
	if m.footer != "" {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(m.footer, "\n")...)
	}
	return lines, spans
}

// updateOffset scrolls the minimum amount needed to bring the selected item
// into view. An item taller than the viewport is aligned to its first line.
func (m *ContainerModel[T]) updateOffset() {
	lines, spans := m.layout()
	if m.height <= 0 || len(spans) == 0 {
		m.offset = clampOffset(m.offset, len(lines), m.height)
		return
	}

	sel := spans[m.selected]
	switch {
	case sel.from < m.offset:
		m.offset = sel.from
	case sel.to > m.offset+m.height:
		m.offset = sel.to - m.height
		if m.offset > sel.from {
			m.offset = sel.from
		}
	}

	// Reveal the footer once the last item is selected.
	if m.selected == len(spans)-1 {
		m.offset = max(m.offset, min(sel.from, len(lines)-m.height))
	}
	m.offset = clampOffset(m.offset, len(lines), m.height)
}

func clampOffset(offset, total, height int) int {
	if height <= 0 || total <= height {
		return 0
	}
	return max(0, min(offset, total-height))
}

// View renders the visible lines.
func (m *ContainerModel[T]) View() string {
	lines, _ := m.layout()
	if len(lines) == 0 {
		return ""
	}
	if m.height <= 0 {
		return strings.Join(lines, "\n")
	}
	end := min(m.offset+m.height, len(lines))
	return strings.Join(lines[m.offset:end], "\n")
}

// ItemCount returns the number of items in the container.
func (m *ContainerModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the currently selected item index.
func (m *ContainerModel[T]) Selected() int {
	return m.selected
}

// Offset returns the first visible line.
func (m *ContainerModel[T]) Offset() int {
	return m.offset
}

// Height returns the viewport height.
func (m *ContainerModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *ContainerModel[T]) Width() int {
	return m.width
}

// GetSelectedItem returns the currently selected item, or nil when empty.
func (m *ContainerModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
