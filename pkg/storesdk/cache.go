package storesdk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// State is the durable session snapshot: the public identity plus the
// access token. The refresh token is never written here; it exists only
// in the HTTP cookie jar and ages out with the process.
type State struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

// Cache persists session state to a single JSON file so a restarted
// client can rehydrate without a network round trip. The in-memory
// Session remains the source of truth; the cache is advisory and the
// server still verifies every token independently.
type Cache struct {
	path string
	mu   sync.Mutex
}

// NewCache creates a cache backed by the given file path. The file is
// created on first Save.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

// Load reads the cached state. Returns ErrNoCachedSession when the file
// is absent or does not decode to a usable session.
func (c *Cache) Load() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return State{}, ErrNoCachedSession
		}
		return State{}, fmt.Errorf("failed to read session cache: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil || state.AccessToken == "" {
		return State{}, ErrNoCachedSession
	}

	return state, nil
}

// Save writes the state atomically with owner-only permissions; the
// access token is a live credential until it expires.
func (c *Cache) Save(state State) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session cache: %w", err)
	}

	tmp := c.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session cache directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session cache: %w", err)
	}
	if err := os.Rename(tmp, c.path); err != nil {
		return fmt.Errorf("failed to replace session cache: %w", err)
	}

	return nil
}

// Clear removes the cached state. Clearing an absent cache is not an
// error.
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session cache: %w", err)
	}
	return nil
}
