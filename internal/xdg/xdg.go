// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package xdg resolves XDG Base Directory locations for help files.
package xdg

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"
)

// HelpFileName is the file name used for help definitions.
const HelpFileName = "help.yml"

// ConfigDir returns the XDG config directory for app.
// Checks XDG_CONFIG_HOME first, falls back to ~/.config.
func ConfigDir(app string) string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, app)
}

// HelpFile returns the default help file location for app.
func HelpFile(app string) string {
	return filepath.Join(ConfigDir(app), HelpFileName)
}

// EnsureDir creates a directory and all parent directories if they don't exist.
// Directories are created with 0700 permissions.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o700); err != nil {
		return oops.In("xdg").With("path", path).Wrapf(err, "create directory")
	}
	return nil
}
