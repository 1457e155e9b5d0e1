package config

import (
	"sync"
)

// Store is a thread-safe holder for the live configuration. The controller
// and overlay read from it on every tick while the settings window, CLI, and
// file watcher replace it.
type Store struct {
	mu  sync.RWMutex
	cfg *Config
}

// NewStore creates a store seeded with the given config.
func NewStore(cfg *Config) *Store {
	if cfg == nil {
		cfg = New()
	}
	return &Store{cfg: cfg}
}

// Get returns the current configuration. Callers must treat the returned
// value as read-only; use Update to change it.
func (s *Store) Get() *Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Replace swaps in a new configuration.
func (s *Store) Replace(cfg *Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

// Update applies fn to a copy of the current config and swaps the copy in.
// Returns the new config so callers can persist it.
func (s *Store) Update(fn func(*Config)) *Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := *s.cfg
	fn(&next)
	s.cfg = &next
	return &next
}
