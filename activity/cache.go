package activity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// Cache persists raw fetched events to a single JSON file. Each save
// overwrites the file; the cache is never merged with prior contents.
type Cache struct {
	path string
}

// NewCache returns a cache backed by the file at path.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Path returns the file path backing the cache.
func (c *Cache) Path() string {
	return c.path
}

// Save overwrites the cache file with the full pre-format event list.
// Events keep whatever fields the API returned, decoded or not.
func (c *Cache) Save(events []Event) error {
	raws := make([]json.RawMessage, 0, len(events))
	for i, event := range events {
		raw := event.raw
		if raw == nil {
			encoded, err := json.Marshal(event)
			if err != nil {
				return fmt.Errorf("encode event %d: %w", i, err)
			}
			raw = encoded
		}
		raws = append(raws, raw)
	}

	data, err := json.MarshalIndent(raws, "", "  ")
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}
	if err := atomic.WriteFile(c.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}

// Load reads the cached events. A missing file is an empty cache; a file
// that cannot be parsed is an error.
func (c *Cache) Load() ([]Event, error) {
	data, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("parse %s: %w", c.path, err)
	}

	events := make([]Event, 0, len(raws))
	for i, raw := range raws {
		event, err := parseEvent(raw)
		if err != nil {
			return nil, fmt.Errorf("parse event %d: %w", i, err)
		}
		events = append(events, event)
	}
	return events, nil
}
