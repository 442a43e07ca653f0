// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/holomush/helpmenu/internal/logging"
	"github.com/holomush/helpmenu/internal/xdg"
	"github.com/holomush/helpmenu/pkg/help"
)

// Color modes for console output.
const (
	colorAuto  = "auto"
	colorANSI  = "ansi"
	colorStrip = "strip"
	colorRaw   = "raw"
)

// Default values for persistent flags.
const (
	defaultApp       = "helpmenu"
	defaultTag       = "myplugin"
	defaultSubject   = "console"
	defaultLogFormat = logging.FormatText
	defaultLogLevel  = "warn"
)

// cliConfig holds the persistent flag values shared by every subcommand.
type cliConfig struct {
	App       string   `koanf:"app"`
	File      string   `koanf:"file"`
	Tag       string   `koanf:"tag"`
	RootKey   string   `koanf:"root-key"`
	Subject   string   `koanf:"subject"`
	Grants    []string `koanf:"grant"`
	Color     string   `koanf:"color"`
	LogFormat string   `koanf:"log-format"`
	LogLevel  string   `koanf:"log-level"`
}

// registerFlags adds the persistent flags to fs.
func registerFlags(fs *pflag.FlagSet) {
	fs.String("app", defaultApp, "application name used for the default help file location")
	fs.String("file", "", "help file path (default: XDG_CONFIG_HOME/<app>/help.yml)")
	fs.String("tag", defaultTag, "plugin name shown for {PLUGIN}")
	fs.String("root-key", help.DefaultRootKey, "key holding the home section (empty = document root)")
	fs.String("subject", defaultSubject, "subject whose grants are checked")
	fs.StringSlice("grant", nil, "permission glob granted to the subject (repeatable)")
	fs.String("color", colorAuto, "color output: auto, ansi, strip or raw")
	fs.String("log-format", defaultLogFormat, "log format (json or text)")
	fs.String("log-level", defaultLogLevel, "log level (debug, info, warn or error)")
}

// loadCLIConfig merges flag values, including defaults, into a cliConfig.
func loadCLIConfig(fs *pflag.FlagSet) (*cliConfig, error) {
	k := koanf.New(".")
	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return nil, oops.Code("CONFIG_INVALID").Wrapf(err, "load flags")
	}

	cfg := &cliConfig{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, oops.Code("CONFIG_INVALID").Wrapf(err, "decode flags")
	}
	if cfg.File == "" {
		cfg.File = xdg.HelpFile(cfg.App)
	}
	return cfg, cfg.Validate()
}

// Validate checks that the configuration is valid.
func (cfg *cliConfig) Validate() error {
	if cfg.App == "" {
		return oops.Code("CONFIG_INVALID").Errorf("app is required")
	}
	switch cfg.Color {
	case colorAuto, colorANSI, colorStrip, colorRaw:
	default:
		return oops.Code("CONFIG_INVALID").
			With("color", cfg.Color).
			Errorf("color must be one of auto, ansi, strip or raw, got %q", cfg.Color)
	}
	if cfg.LogFormat != logging.FormatJSON && cfg.LogFormat != logging.FormatText {
		return oops.Code("CONFIG_INVALID").
			With("log-format", cfg.LogFormat).
			Errorf("log-format must be 'json' or 'text', got %q", cfg.LogFormat)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return oops.Code("CONFIG_INVALID").Wrap(err)
	}
	return nil
}
