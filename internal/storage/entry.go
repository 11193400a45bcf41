package storage

import (
	"encoding/json"
	"errors"
	"time"
)

// Entry is a single stored value with its last update time.
type Entry struct {
	// Key is the storage key as given by the caller.
	Key string `json:"key"`

	// Value is the stored string.
	Value string `json:"value"`

	// UpdatedAt is when the value was last written.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewEntry creates an entry stamped with the current time.
func NewEntry(key, value string) *Entry {
	return &Entry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
}

// Age returns the duration since the entry was written.
func (e *Entry) Age() time.Duration {
	return time.Since(e.UpdatedAt)
}

// MarshalJSON implements json.Marshaler for Entry.
// Times are formatted as RFC3339 for readability on disk.
func (e *Entry) MarshalJSON() ([]byte, error) {
	type Alias Entry
	return json.Marshal(&struct {
		*Alias

		UpdatedAt string `json:"updated_at"`
	}{
		Alias:     (*Alias)(e),
		UpdatedAt: e.UpdatedAt.Format(time.RFC3339),
	})
}

// UnmarshalJSON implements json.Unmarshaler for Entry.
func (e *Entry) UnmarshalJSON(data []byte) error {
	if e == nil {
		return errors.New("cannot unmarshal into nil Entry")
	}
	type Alias Entry
	aux := &struct {
		*Alias

		UpdatedAt string `json:"updated_at"`
	}{
		Alias: (*Alias)(e),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.UpdatedAt == "" {
		e.UpdatedAt = time.Time{}
		return nil
	}

	var err error
	e.UpdatedAt, err = time.Parse(time.RFC3339, aux.UpdatedAt)
	return err
}
