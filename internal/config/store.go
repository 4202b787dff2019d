package config

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// reloadDebounce coalesces the burst of events an editor emits for one save.
const reloadDebounce = 100 * time.Millisecond

// Store holds the current configuration and swaps it when the backing file
// changes. Readers take a snapshot per wizard pass.
type Store struct {
	mu  sync.RWMutex
	cfg *Config

	debounce time.Duration
	timerMu  sync.Mutex
	timer    *time.Timer
}

// NewStore creates a Store seeded with cfg.
func NewStore(cfg *Config) *Store {
	return &Store{cfg: cfg, debounce: reloadDebounce}
}

// Get returns a copy of the current configuration.
func (s *Store) Get() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.cfg
}

// Set replaces the current configuration.
func (s *Store) Set(cfg *Config) {
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
}

// Watch reloads the store whenever v's config file changes. onReload is
// called after every attempt with the triggering event and the decode error,
// if any; a failed decode keeps the previous configuration.
func (s *Store) Watch(v *viper.Viper, onReload func(fsnotify.Event, error)) {
	v.OnConfigChange(s.changed(v, onReload))
	v.WatchConfig()
}

// changed returns the change handler. Events arriving within the debounce
// window restart it, so a burst produces a single reload with the last event.
func (s *Store) changed(v *viper.Viper, onReload func(fsnotify.Event, error)) func(fsnotify.Event) {
	return func(e fsnotify.Event) {
		s.timerMu.Lock()
		defer s.timerMu.Unlock()

		if s.timer != nil {
			s.timer.Stop()
		}
		s.timer = time.AfterFunc(s.debounce, func() {
			s.reload(v, e, onReload)
		})
	}
}

// reload decodes and validates v. An invalid file is reported through
// onReload and leaves the current configuration in place.
func (s *Store) reload(v *viper.Viper, e fsnotify.Event, onReload func(fsnotify.Event, error)) {
	cfg, err := Load(v)
	if err == nil {
		err = JoinIssues(Validate(cfg))
	}
	if err == nil {
		s.Set(cfg)
	}
	if onReload != nil {
		onReload(e, err)
	}
}
