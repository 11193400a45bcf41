// Package listing implements the filter, search and pagination core of the job listing.
//
// A Controller owns an immutable Dataset, the ResultSet produced by the most
// recent filter or search, a page Cursor and a PageCache of rendered pages.
// Key behaviors:
//   - FilterByType and Search are pure functions returning a new ResultSet
//   - A new ResultSet always replaces the previous one and restarts at page 1
//   - Pages hold at most PageSize rendered items; visited pages are cached so
//     backward navigation never re-renders
//   - PaginationState is derived from the remaining slots of the current page
//
// The package has no knowledge of the terminal. Rendering goes through a
// RenderFunc and the visible state is exposed as a ViewState snapshot. A
// Controller is not safe for concurrent use; confine it to one goroutine
// such as the Bubble Tea update loop.
package listing
