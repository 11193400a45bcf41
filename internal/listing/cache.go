package listing

import "sort"

// PageEntry is a rendered page kept for backward navigation.
type PageEntry struct {
	// Items holds the rendered fragment, one string per record.
	Items []string

	// Length is the number of records rendered on the page.
	Length int
}

// PageCache stores rendered pages keyed by 1-based page number.
// It is not safe for concurrent use.
type PageCache struct {
	entries map[int]PageEntry
}

// NewPageCache creates an empty cache.
func NewPageCache() *PageCache {
	return &PageCache{entries: make(map[int]PageEntry)}
}

// Get returns the cached page, or false on miss.
func (c *PageCache) Get(page int) (PageEntry, bool) {
	e, ok := c.entries[page]
	return e, ok
}

// Set stores a page, replacing any existing entry.
func (c *PageCache) Set(page int, entry PageEntry) {
	c.entries[page] = entry
}

// Invalidate drops every cached page.
func (c *PageCache) Invalidate() {
	c.entries = make(map[int]PageEntry)
}

// Len returns the number of cached pages.
func (c *PageCache) Len() int {
	return len(c.entries)
}

// Pages returns the cached page numbers in ascending order.
func (c *PageCache) Pages() []int {
	pages := make([]int, 0, len(c.entries))
	for p := range c.entries {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

// TotalLength returns the number of records rendered across all cached pages.
func (c *PageCache) TotalLength() int {
	total := 0
	for _, e := range c.entries {
		total += e.Length
	}
	return total
}
