// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads help definitions from a YAML file on disk.
package config

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"

	"github.com/holomush/helpmenu/internal/xdg"
)

// Error codes for store failures.
const (
	CodeConfigLoad = "CONFIG_LOAD"
	CodeWatch      = "CONFIG_WATCH"
)

// Delimiter separates koanf key paths.
const Delimiter = "."

// Store is a help file on disk. Store satisfies help.Source.
//
// The first Load writes the seed when the file is missing or blank. Later
// loads fail on a blank file instead, so a file caught mid-write during a
// watch never replaces loaded definitions with nothing.
type Store struct {
	path   string
	seed   []byte
	logger *slog.Logger

	mu       sync.Mutex
	provider *file.File
	watching bool
	loaded   bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a store for the file at path, seeded with seed.
func NewStore(path string, seed []byte, opts ...Option) *Store {
	s := &Store{
		path:     path,
		seed:     seed,
		logger:   slog.Default(),
		provider: file.Provider(path),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the file location.
func (s *Store) Path() string {
	return s.path
}

// Seed writes the seed when the file does not exist or holds only
// whitespace. It reports whether the file was written.
func (s *Store) Seed() (bool, error) {
	data, err := os.ReadFile(s.path)
	switch {
	case err == nil && len(bytes.TrimSpace(data)) > 0:
		return false, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, oops.In("config").Code(CodeConfigLoad).With("path", s.path).Wrapf(err, "read help file")
	}

	if err := xdg.EnsureDir(filepath.Dir(s.path)); err != nil {
		return false, oops.In("config").Code(CodeConfigLoad).With("path", s.path).Wrap(err)
	}
	if err := os.WriteFile(s.path, s.seed, 0o600); err != nil {
		return false, oops.In("config").Code(CodeConfigLoad).With("path", s.path).Wrapf(err, "write default help file")
	}
	s.logger.Info("wrote default help file", "path", s.path)
	return true, nil
}

// Load parses the file into a new koanf instance, seeding it on first use.
func (s *Store) Load(_ context.Context) (*koanf.Koanf, error) {
	s.mu.Lock()
	first := !s.loaded
	s.mu.Unlock()

	if first {
		if _, err := s.Seed(); err != nil {
			return nil, err
		}
	}

	k := koanf.New(Delimiter)
	if err := k.Load(s.provider, yaml.Parser()); err != nil {
		return nil, oops.In("config").Code(CodeConfigLoad).With("path", s.path).Wrapf(err, "parse help file")
	}
	if len(k.Keys()) == 0 {
		return nil, oops.In("config").Code(CodeConfigLoad).With("path", s.path).Errorf("help file is empty")
	}

	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()
	return k, nil
}

// Watch calls onChange after the file changes on disk. A watch error is
// passed to onChange instead. Only one watch may be active per store.
func (s *Store) Watch(onChange func(err error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watching {
		return oops.In("config").Code(CodeWatch).With("path", s.path).Errorf("help file is already watched")
	}
	err := s.provider.Watch(func(_ any, err error) {
		if err != nil {
			s.logger.Warn("help file watch error", "path", s.path, "error", err)
		} else {
			s.logger.Debug("help file changed", "path", s.path)
		}
		onChange(err)
	})
	if err != nil {
		return oops.In("config").Code(CodeWatch).With("path", s.path).Wrapf(err, "watch help file")
	}
	s.watching = true
	return nil
}

// Close stops an active watch. It is safe to call when not watching.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.watching {
		return nil
	}
	s.watching = false
	if err := s.provider.Unwatch(); err != nil {
		return oops.In("config").Code(CodeWatch).With("path", s.path).Wrapf(err, "stop watching help file")
	}
	return nil
}
