// Package storage provides the local key/value store that keeps small user
// preferences, such as the theme, between sessions.
//
// Each key is stored as a JSON file in a single directory:
//   - Writes go to a temporary file first and are renamed into place
//   - Keys are sanitized so they cannot escape the directory
//   - Access is guarded by a RWMutex so the store is safe for concurrent use
//
// The store deliberately holds only preferences. Listing state (filters,
// search text, pages) is never persisted.
package storage
