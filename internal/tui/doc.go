// Package tui implements the interactive job listing browser.
//
// BrowseModel is a Bubble Tea model that owns a listing.Controller and maps
// terminal input onto it: a search box, a category selector, a scrollable
// container of job cards, and previous/next page controls. Card content is
// produced by CardTemplate when a page is first rendered; the active theme
// palette is applied at display time so cached pages survive a theme
// change.
package tui
