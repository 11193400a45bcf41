// Package theme holds the light/dark display preference and the lipgloss
// palettes used to draw the listing.
package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/placementhub/joblist/internal/storage"
)

// StorageKey is the local storage key holding the preference.
const StorageKey = "theme"

// Theme is a display preference.
type Theme string

// Supported themes.
const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ErrUnknownTheme is returned by Parse for values other than light or dark.
var ErrUnknownTheme = errors.New("unknown theme")

// Parse converts a user-supplied name into a Theme.
func Parse(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, nil
	case Dark:
		return Dark, nil
	default:
		return "", fmt.Errorf("%w: %q (want light or dark)", ErrUnknownTheme, s)
	}
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// String returns the theme name.
func (t Theme) String() string {
	return string(t)
}

// Store is the subset of storage.LocalStore the preference needs.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Preference reads and writes the theme in local storage.
type Preference struct {
	store Store
}

// NewPreference creates a Preference backed by store.
func NewPreference(store Store) *Preference {
	return &Preference{store: store}
}

// Load returns the stored theme. A missing or unrecognized value yields Light;
// only storage failures are returned as errors.
func (p *Preference) Load() (Theme, error) {
	raw, err := p.store.Get(StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Light, nil
		}
		return Light, fmt.Errorf("loading theme: %w", err)
	}
	t, parseErr := Parse(raw)
	if parseErr != nil {
		return Light, nil //nolint:nilerr // Unrecognized stored values fall back to the default.
	}
	return t, nil
}

// Save stores t.
func (p *Preference) Save(t Theme) error {
	if err := p.store.Set(StorageKey, t.String()); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// Toggle flips the stored theme and returns the new value.
func (p *Preference) Toggle() (Theme, error) {
	current, err := p.Load()
	if err != nil {
		return current, err
	}
	next := current.Toggle()
	if saveErr := p.Save(next); saveErr != nil {
		return current, saveErr
	}
	return next, nil
}

// Reset removes the stored theme so Load returns the default again.
func (p *Preference) Reset() error {
	if err := p.store.Delete(StorageKey); err != nil {
		return fmt.Errorf("resetting theme: %w", err)
	}
	return nil
}
