package listview_test

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listview "github.com/placementhub/joblist/internal/tui/list"
)

// threeLineCard renders each item as a three-line card with a selection marker.
func threeLineCard(item string, selected bool) string {
	marker := " "
	if selected {
		marker = ">"
	}
	return fmt.Sprintf("%s%s\n  line 2\n  line 3", marker, item)
}

func cards(n int) []string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("card%d", i)
	}
	return items
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestContainerModel_New(t *testing.T) {
	m := listview.NewContainerModel(cards(5), 6, 80, threeLineCard)

	assert.Equal(t, 5, m.ItemCount())
	assert.Equal(t, 6, m.Height())
	assert.Equal(t, 80, m.Width())
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.Offset())
	assert.True(t, strings.HasPrefix(m.View(), ">card0"))
}

func TestContainerModel_ScrollsToKeepSelectionVisible(t *testing.T) {
	// Items occupy lines [4i, 4i+3); one blank line between them.
	m := listview.NewContainerModel(cards(5), 6, 80, threeLineCard)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.Selected())
	assert.Equal(t, 1, m.Offset(), "scrolls just enough to show card1")
	assert.Contains(t, m.View(), ">card1")

	m.Update(keyRunes('j'))
	m.Update(keyRunes('j'))
	assert.Equal(t, 3, m.Selected())
	assert.Equal(t, 9, m.Offset())

	m.Update(keyRunes('k'))
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.Selected())
	assert.Equal(t, 4, m.Offset(), "scrolls up to the top of card1")

	m.Update(keyRunes('g'))
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.Offset())
}

func TestContainerModel_SelectionBounds(t *testing.T) {
	m := listview.NewContainerModel(cards(3), 20, 80, threeLineCard)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 2, m.Selected())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Selected())

	m.SetSelected(-4)
	assert.Equal(t, 0, m.Selected())
	m.SetSelected(99)
	assert.Equal(t, 2, m.Selected())
	assert.Equal(t, 0, m.Offset(), "everything fits, no scrolling")
}

func TestContainerModel_FooterRevealedOnLastItem(t *testing.T) {
	m := listview.NewContainerModel(cards(5), 6, 80, threeLineCard)
	m.SetItems(cards(5), "END")

	m.SetSelected(4)

	view := m.View()
	assert.Contains(t, view, ">card4")
	assert.True(t, strings.HasSuffix(view, "END"), "footer visible below the last card")
	assert.Len(t, strings.Split(view, "\n"), 6)
}

func TestContainerModel_SetItemsResetsPosition(t *testing.T) {
	m := listview.NewContainerModel(cards(5), 6, 80, threeLineCard)
	m.SetSelected(4)
	require.NotZero(t, m.Offset())

	m.SetItems(cards(2), "")

	assert.Equal(t, 2, m.ItemCount())
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.Offset())
	require.NotNil(t, m.GetSelectedItem())
	assert.Equal(t, "card0", *m.GetSelectedItem())
}

func TestContainerModel_Empty(t *testing.T) {
	m := listview.NewContainerModel[string](nil, 6, 80, threeLineCard)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, "", m.View())
	assert.Nil(t, m.GetSelectedItem())

	m.SetItems(nil, "That's all")
	assert.Equal(t, "That's all", m.View(), "footer alone still renders")
}

func TestContainerModel_PageScroll(t *testing.T) {
	m := listview.NewContainerModel(cards(5), 6, 80, threeLineCard)

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 6, m.Offset())
	assert.Equal(t, 0, m.Selected(), "paging scrolls without moving selection")

	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 13, m.Offset(), "clamped to the last full viewport")

	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 7, m.Offset())
}

func TestContainerModel_WindowResize(t *testing.T) {
	m := listview.NewContainerModel(cards(5), 6, 80, threeLineCard)
	m.SetSelected(4)

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, 40, m.Height())
	assert.Equal(t, 100, m.Width())
	assert.Equal(t, 0, m.Offset(), "everything fits after growing")
}

func TestContainerModel_SetRenderFunc(t *testing.T) {
	m := listview.NewContainerModel(cards(1), 6, 80, threeLineCard)

	m.SetRenderFunc(func(item string, _ bool) string { return strings.ToUpper(item) })

	assert.Equal(t, "CARD0", m.View())
}
