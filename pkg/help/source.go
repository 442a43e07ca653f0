// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help

import (
	"context"
	_ "embed"
	"errors"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
)

// DefaultConfig is the bundled help file used to seed new installations.
//
//go:embed default_help.yml
var DefaultConfig []byte

// Source supplies help definitions. Load is called on every reload and
// must return a fresh koanf instance each time.
type Source interface {
	Load(ctx context.Context) (*koanf.Koanf, error)
}

// BytesSource is a Source over an in-memory YAML document.
type BytesSource []byte

// Load parses the document.
func (b BytesSource) Load(_ context.Context) (*koanf.Koanf, error) {
	k := koanf.New(PathDelimiter)
	if err := k.Load(rawBytes(b), yaml.Parser()); err != nil {
		return nil, oops.In("help").Code(CodeConfigLoad).Wrapf(err, "parse help definitions")
	}
	return k, nil
}

// rawBytes is a koanf.Provider serving a fixed byte slice.
type rawBytes []byte

func (r rawBytes) ReadBytes() ([]byte, error) {
	return r, nil
}

func (r rawBytes) Read() (map[string]any, error) {
	return nil, errors.New("raw bytes provider does not support Read")
}
