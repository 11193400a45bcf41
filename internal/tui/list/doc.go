// Package listview provides the scrollable card container used by the
// joblist browser.
//
// A page holds at most ten cards, but each card spans several terminal
// lines, so the container scrolls by lines while keeping the selected card
// in view. Key features:
//   - Multi-line items with a line-based viewport
//   - Keyboard navigation (up/down, j/k, pgup/pgdn, home/end)
//   - An optional footer rendered after the last item
package listview
