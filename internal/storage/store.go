package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// entryFileExtension is the file extension used for stored entries.
const entryFileExtension = ".json"

// Common storage errors.
var (
	ErrNotFound   = errors.New("storage key not found")
	ErrInvalidKey = errors.New("storage key cannot be empty")
)

// LocalStore is a file-backed key/value store.
// Thread-safe for concurrent access.
type LocalStore struct {
	// directory holds one file per key.
	directory string

	// mu protects concurrent access to file operations.
	mu sync.RWMutex
}

// NewLocalStore creates a store rooted at directory, creating it if needed.
func NewLocalStore(directory string) (*LocalStore, error) {
	if directory == "" {
		return nil, errors.New("storage directory cannot be empty")
	}

	if err := os.MkdirAll(directory, 0750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStore{directory: directory}, nil
}

// Get returns the value stored under key.
// Returns ErrNotFound if the key has never been set.
func (s *LocalStore) Get(key string) (string, error) {
	entry, err := s.GetEntry(key)
	if err != nil {
		return "", err
	}
	return entry.Value, nil
}

// GetEntry returns the stored entry for key, including its update time.
func (s *LocalStore) GetEntry(key string) (*Entry, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.keyToFilePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read storage file: %w", err)
	}

	var entry Entry
	if unmarshalErr := json.Unmarshal(data, &entry); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal storage entry: %w", unmarshalErr)
	}

	return &entry, nil
}

// Set stores value under key, overwriting any previous value.
func (s *LocalStore) Set(key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entryData, err := json.MarshalIndent(NewEntry(key, value), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal storage entry: %w", err)
	}

	filePath := s.keyToFilePath(key)

	// Write to temporary file first, then rename for atomicity
	tempPath := filePath + ".tmp"
	if writeErr := os.WriteFile(tempPath, entryData, 0600); writeErr != nil {
		return fmt.Errorf("failed to write storage file: %w", writeErr)
	}

	if renameErr := os.Rename(tempPath, filePath); renameErr != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename storage file: %w", renameErr)
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *LocalStore) Delete(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.keyToFilePath(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete storage file: %w", err)
	}

	return nil
}

// Keys returns the stored keys in sorted order.
func (s *LocalStore) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dirEntries, err := os.ReadDir(s.directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage directory: %w", err)
	}

	var keys []string
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || filepath.Ext(dirEntry.Name()) != entryFileExtension {
			continue
		}

		data, readErr := os.ReadFile(filepath.Join(s.directory, dirEntry.Name()))
		if readErr != nil {
			continue // Skip files we can't read
		}

		var entry Entry
		if unmarshalErr := json.Unmarshal(data, &entry); unmarshalErr != nil {
			continue // Skip invalid entries
		}
		keys = append(keys, entry.Key)
	}

	sort.Strings(keys)
	return keys, nil
}

// Directory returns the storage directory path.
func (s *LocalStore) Directory() string {
	return s.directory
}

// keyToFilePath converts a key to a file path. Keys are query-escaped,
// which is reversible, so distinct keys never share a file and separators
// cannot leave the directory.
func (s *LocalStore) keyToFilePath(key string) string {
	return filepath.Join(s.directory, url.QueryEscape(key)+entryFileExtension)
}
