package config

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Store holds the active configuration. Readers take a snapshot with Current
// and never mutate it; Reload swaps in a freshly loaded value.
type Store struct {
	current atomic.Pointer[Config]
	load    func() (*Config, error)
}

func NewStore(cfg *Config) *Store {
	s := &Store{load: Load}
	s.current.Store(cfg)
	return s
}

func (s *Store) Current() *Config {
	return s.current.Load()
}

// Reload re-reads the environment. The previous configuration stays active
// when the new one fails to load or validate.
func (s *Store) Reload() error {
	return s.ReloadWith(nil)
}

// ReloadWith is Reload with a prepare step that runs on the new configuration
// before it becomes active. An error from prepare also keeps the previous one.
func (s *Store) ReloadWith(prepare func(*Config) error) error {
	cfg, err := s.load()
	if err != nil {
		slog.Error("Configuration reload failed, keeping previous values", "error", err)
		return err
	}

	if prepare != nil {
		if err := prepare(cfg); err != nil {
			slog.Error("Reloaded configuration rejected, keeping previous values", "error", err)
			return fmt.Errorf("apply reloaded configuration: %w", err)
		}
	}

	s.current.Store(cfg)
	slog.Info("Configuration reloaded",
		"suggestion_channel_id", cfg.Suggestion.ChannelID,
		"min_length", cfg.Suggestion.MinLength,
		"cooldown_seconds", cfg.Suggestion.CooldownSeconds,
	)
	return nil
}
