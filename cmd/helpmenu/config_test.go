// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	registerFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadCLIConfig_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	cfg, err := loadCLIConfig(newFlagSet(t))
	require.NoError(t, err)

	assert.Equal(t, defaultApp, cfg.App)
	assert.Equal(t, filepath.Join("/tmp/xdg-test", defaultApp, "help.yml"), cfg.File)
	assert.Equal(t, defaultTag, cfg.Tag)
	assert.Equal(t, "help", cfg.RootKey)
	assert.Equal(t, defaultSubject, cfg.Subject)
	assert.Empty(t, cfg.Grants)
	assert.Equal(t, colorAuto, cfg.Color)
	assert.Equal(t, defaultLogFormat, cfg.LogFormat)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
}

func TestLoadCLIConfig_Flags(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")

	cfg, err := loadCLIConfig(newFlagSet(t,
		"--app", "other",
		"--tag", "shop",
		"--root-key", "",
		"--grant", "shop.help.*",
		"--grant", "shop.admin",
		"--color", "raw",
	))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/tmp/xdg-test", "other", "help.yml"), cfg.File)
	assert.Equal(t, "shop", cfg.Tag)
	assert.Empty(t, cfg.RootKey)
	assert.Equal(t, []string{"shop.help.*", "shop.admin"}, cfg.Grants)
	assert.Equal(t, colorRaw, cfg.Color)
}

func TestLoadCLIConfig_ExplicitFile(t *testing.T) {
	cfg, err := loadCLIConfig(newFlagSet(t, "--file", "/srv/help.yml"))
	require.NoError(t, err)
	assert.Equal(t, "/srv/help.yml", cfg.File)
}

func TestCLIConfig_Validate(t *testing.T) {
	valid := func() cliConfig {
		return cliConfig{App: "a", Color: colorAuto, LogFormat: "text", LogLevel: "info"}
	}

	tests := []struct {
		name    string
		mutate  func(*cliConfig)
		wantErr bool
	}{
		{"valid", func(*cliConfig) {}, false},
		{"json logs", func(c *cliConfig) { c.LogFormat = "json" }, false},
		{"empty app", func(c *cliConfig) { c.App = "" }, true},
		{"unknown color", func(c *cliConfig) { c.Color = "rainbow" }, true},
		{"unknown log format", func(c *cliConfig) { c.LogFormat = "xml" }, true},
		{"unknown log level", func(c *cliConfig) { c.LogLevel = "loud" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
