package listing

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// titleRender renders a record as its Title so pages are easy to compare.
func titleRender(rec Record) string {
	title, _ := rec.Field("Title")
	return title
}

// numberedDataset returns n records titled "R0".."R{n-1}".
func numberedDataset(n int) Dataset {
	ds := make(Dataset, n)
	for i := range ds {
		ds[i] = Record{"Type": "Job", "Title": fmt.Sprintf("R%d", i)}
	}
	return ds
}

// collectPages walks forward from page 1 until next is hidden and returns every page.
func collectPages(t *testing.T, c *Controller) [][]string {
	t.Helper()
	pages := [][]string{c.View().Items}
	for c.View().ShowNext {
		v, err := c.Next()
		require.NoError(t, err)
		pages = append(pages, v.Items)
	}
	return pages
}

func TestNew_RendersFirstPage(t *testing.T) {
	c := New(numberedDataset(3), titleRender)
	v := c.View()

	assert.Equal(t, 1, v.Page)
	assert.Equal(t, []string{"R0", "R1", "R2"}, v.Items)
	assert.False(t, v.ShowPrev)
	assert.False(t, v.ShowNext)
	assert.True(t, v.EndOfResults)
	assert.Equal(t, StateExhausted, v.State)
	assert.Equal(t, 3, v.ResultCount)
	assert.Equal(t, 3, v.DatasetSize)
}

func TestController_FilterExample(t *testing.T) {
	c := New(sampleDataset(), titleRender)

	v := c.Filter("Job")

	assert.Equal(t, 1, v.Page)
	assert.Equal(t, []string{"A", "C"}, v.Items)
	assert.False(t, v.ShowNext)
	assert.True(t, v.EndOfResults)
}

func TestController_SearchExample(t *testing.T) {
	c := New(sampleDataset(), titleRender)

	v := c.Search("b")

	assert.Equal(t, []string{"B"}, v.Items)
	assert.Equal(t, []int{1}, c.Results().Positions())
}

func TestController_TwentyFiveRecords(t *testing.T) {
	c := New(numberedDataset(25), titleRender)

	v := c.View()
	require.Len(t, v.Items, 10)
	assert.True(t, v.ShowNext)
	assert.False(t, v.ShowPrev)
	assert.False(t, v.EndOfResults)

	v, err := c.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, v.Page)
	require.Len(t, v.Items, 10)
	assert.Equal(t, "R10", v.Items[0])
	assert.True(t, v.ShowNext)
	assert.True(t, v.ShowPrev)
	page2 := v.Items

	v, err = c.Next()
	require.NoError(t, err)
	assert.Equal(t, 3, v.Page)
	assert.Equal(t, []string{"R20", "R21", "R22", "R23", "R24"}, v.Items)
	assert.False(t, v.ShowNext)
	assert.True(t, v.EndOfResults)
	assert.Equal(t, StateExhausted, v.State)

	indexBefore := c.Cursor().Index
	v, err = c.Prev()
	require.NoError(t, err)
	assert.Equal(t, 2, v.Page)
	assert.Equal(t, page2, v.Items)
	assert.True(t, v.ShowNext)
	assert.False(t, v.EndOfResults)
	assert.Equal(t, indexBefore, c.Cursor().Index, "restoring from cache must not consume records")
	assert.Equal(t, 0, c.Cursor().Remaining)
}

func TestController_ReturnToPartialLastPage(t *testing.T) {
	c := New(numberedDataset(25), titleRender)
	_, err := c.Next()
	require.NoError(t, err)
	_, err = c.Next()
	require.NoError(t, err)
	_, err = c.Prev()
	require.NoError(t, err)

	v, err := c.Next()
	require.NoError(t, err)

	assert.Equal(t, 3, v.Page)
	assert.Len(t, v.Items, 5)
	assert.Equal(t, 5, c.Cursor().Remaining)
	assert.True(t, v.EndOfResults)
	assert.False(t, v.ShowNext)
}

func TestController_ExactlyOnePage(t *testing.T) {
	c := New(numberedDataset(PageSize), titleRender)

	v := c.View()
	require.Len(t, v.Items, PageSize)
	require.True(t, v.ShowNext)

	v, err := c.Next()
	require.NoError(t, err)

	assert.Equal(t, 2, v.Page)
	assert.Empty(t, v.Items)
	assert.False(t, v.ShowNext)
	assert.True(t, v.EndOfResults)
	assert.Equal(t, []int{1}, c.CachedPages(), "no cache entry for the empty page")

	v, err = c.Prev()
	require.NoError(t, err)
	assert.Equal(t, 1, v.Page)
	assert.Len(t, v.Items, PageSize)
}

func TestController_EmptyResultSet(t *testing.T) {
	c := New(sampleDataset(), titleRender)

	v := c.Search("no such thing")

	assert.Equal(t, 1, v.Page)
	assert.Empty(t, v.Items)
	assert.False(t, v.ShowNext)
	assert.False(t, v.ShowPrev)
	assert.True(t, v.EndOfResults)
	assert.Empty(t, c.CachedPages())

	_, err := c.Next()
	assert.ErrorIs(t, err, ErrNoMorePages)
}

func TestController_EmptyDataset(t *testing.T) {
	c := New(nil, nil)
	v := c.View()

	assert.Empty(t, v.Items)
	assert.True(t, v.EndOfResults)
	assert.Equal(t, 0, v.DatasetSize)
}

func TestController_NextWhenExhaustedKeepsState(t *testing.T) {
	c := New(numberedDataset(5), titleRender)
	before := c.View()

	after, err := c.Next()

	require.ErrorIs(t, err, ErrNoMorePages)
	assert.Equal(t, before, after)
	assert.Equal(t, 1, c.Cursor().Page)
}

func TestController_PrevOnFirstPage(t *testing.T) {
	c := New(numberedDataset(25), titleRender)

	_, err := c.Prev()

	assert.ErrorIs(t, err, ErrNoPreviousPage)
	assert.Equal(t, 1, c.Cursor().Page)
}

func TestController_PaginationCoversResultSetOnce(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 20, 25, 99, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			ds := numberedDataset(n)
			c := New(ds, titleRender)

			var all []string
			for _, page := range collectPages(t, c) {
				all = append(all, page...)
			}

			var want []string
			for _, rec := range ds {
				want = append(want, titleRender(rec))
			}
			assert.Equal(t, want, all)
		})
	}
}

func TestController_CacheInvariant(t *testing.T) {
	ds := randomDataset(21, 73)
	c := New(ds, nil)
	c.Filter("Job")

	for c.View().ShowNext {
		_, err := c.Next()
		require.NoError(t, err)

		cached := c.cache.TotalLength()
		assert.LessOrEqual(t, cached, c.Results().Len())
		assert.Equal(t, c.Cursor().Index, cached)
		for _, p := range c.CachedPages() {
			assert.LessOrEqual(t, p, c.Cursor().Page)
		}
	}
}

func TestController_NewResultSetResetsPagination(t *testing.T) {
	c := New(numberedDataset(35), titleRender)
	_, err := c.Next()
	require.NoError(t, err)
	_, err = c.Next()
	require.NoError(t, err)
	require.Len(t, c.CachedPages(), 3)

	v := c.Search("R1")

	assert.Equal(t, 1, v.Page)
	assert.Equal(t, []int{1}, c.CachedPages())
	assert.False(t, v.ShowPrev)
	// R1 and R10..R19
	assert.Equal(t, 11, v.ResultCount)
	assert.Equal(t, "R1", v.Items[0])
}

func TestController_LatestOperationWins(t *testing.T) {
	ds := sampleDataset()
	c := New(ds, titleRender)

	c.Filter("Internship")
	v := c.Search("c")
	assert.Equal(t, []string{"C"}, v.Items, "search does not intersect with the previous filter")

	v = c.Filter("Job")
	assert.Equal(t, []string{"A", "C"}, v.Items, "filter does not intersect with the previous search")

	v = c.Filter(AllCategories)
	assert.Equal(t, []string{"A", "B", "C"}, v.Items)
}

func TestController_ViewReturnsCopies(t *testing.T) {
	c := New(numberedDataset(3), titleRender)

	v := c.View()
	v.Items[0] = "mutated"

	assert.Equal(t, "R0", c.View().Items[0])
}

func TestController_LogsNavigation(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	c := New(numberedDataset(15), titleRender, WithLogger(logger))

	c.Filter("Job")
	_, err := c.Next()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"operation":"filter"`)
	assert.Contains(t, out, `"operation":"next"`)
	assert.Contains(t, out, `"state":"exhausted"`)
}

func TestPaginationState_String(t *testing.T) {
	assert.Equal(t, "has_more", StateHasMore.String())
	assert.Equal(t, "exhausted", StateExhausted.String())
	assert.Equal(t, "unknown", PaginationState(9).String())
}
