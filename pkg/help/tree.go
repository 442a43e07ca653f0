// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help

import (
	"fmt"

	"github.com/knadh/koanf/v2"
)

// Keys with fixed meaning inside a section definition.
const (
	keyOptions         = "options"
	keyFormat          = "format"
	keyMessages        = "messages"
	keyManagerMessages = "managerMessages"
	keyDefaults        = "defaults"
)

// TreeConfig controls how BuildTree reads section definitions.
type TreeConfig struct {
	// RootKey is the key holding the home section. Empty means the document
	// root, in which case managerMessages and defaults are not sections.
	RootKey string
	// Defaults supplies options and format values a section leaves unset.
	// Nil means DefaultSection().
	Defaults *Section
}

// BuildTree builds the home section and its descendants from k.
// A missing root key yields an empty home section.
func BuildTree(k *koanf.Koanf, cfg TreeConfig) (*Section, error) {
	defaults := cfg.Defaults
	if defaults == nil {
		defaults = DefaultSection()
	}
	b := treeBuilder{k: k, defaults: defaults, rootKey: cfg.RootKey}

	if cfg.RootKey != "" && !k.Exists(cfg.RootKey) {
		return &Section{
			options:  Options{PermMessage: defaults.options.PermMessage},
			format:   defaults.format,
			children: map[string]*Section{},
		}, nil
	}
	return b.build(cfg.RootKey, "", "")
}

type treeBuilder struct {
	k        *koanf.Koanf
	defaults *Section
	rootKey  string
}

// build reads the section stored at key. name and path describe its place
// in the tree, which is independent of where the root key lives.
func (b treeBuilder) build(key, name, path string) (*Section, error) {
	if key != "" {
		if _, ok := b.k.Get(key).(map[string]any); !ok {
			return nil, ErrInvalidSection(key, "section must be a mapping")
		}
	}

	options := readOptions(b.k, key, b.defaults.options)
	format, err := readFormat(b.k, key, b.defaults.format)
	if err != nil {
		return nil, err
	}
	messages, err := readStrings(b.k, joinPath(key, keyMessages))
	if err != nil {
		return nil, err
	}

	s := &Section{
		name:     name,
		path:     path,
		options:  options,
		format:   format,
		messages: messages,
		children: make(map[string]*Section),
	}

	for _, childName := range b.k.MapKeys(key) {
		if b.reserved(key, childName) {
			continue
		}
		childKey := joinPath(key, childName)
		if _, ok := b.k.Get(childKey).(map[string]any); !ok {
			continue
		}
		child, err := b.build(childKey, childName, joinPath(path, childName))
		if err != nil {
			return nil, err
		}
		s.children[childName] = child
	}
	return s, nil
}

func (b treeBuilder) reserved(key, name string) bool {
	switch name {
	case keyOptions, keyFormat, keyMessages:
		return true
	case keyManagerMessages, keyDefaults:
		return key == "" && b.rootKey == ""
	default:
		return false
	}
}

// readDefaults overlays the defaults key of k on top of base.
func readDefaults(k *koanf.Koanf, base *Section) (*Section, error) {
	if !k.Exists(keyDefaults) {
		return base, nil
	}
	options := readOptions(k, keyDefaults, base.options)
	format, err := readFormat(k, keyDefaults, base.format)
	if err != nil {
		return nil, err
	}
	return &Section{options: options, format: format}, nil
}

func readOptions(k *koanf.Koanf, key string, def Options) Options {
	prefix := joinPath(key, keyOptions)
	return Options{
		// permission and description are never inherited
		Permission:  readString(k, joinPath(prefix, "permission"), ""),
		PermMessage: readString(k, joinPath(prefix, "permMessage"), def.PermMessage),
		Description: readString(k, joinPath(prefix, "description"), ""),
	}
}

func readFormat(k *koanf.Koanf, key string, def Format) (Format, error) {
	prefix := joinPath(key, keyFormat)
	f := Format{
		Header:       readString(k, joinPath(prefix, "header"), def.Header),
		Title:        readString(k, joinPath(prefix, "title"), def.Title),
		Footer:       readString(k, joinPath(prefix, "footer"), def.Footer),
		PageNotice:   readString(k, joinPath(prefix, "pageNotice"), def.PageNotice),
		ItemsPerPage: def.ItemsPerPage,
	}
	perPageKey := joinPath(prefix, "itemsPerPage")
	if k.Exists(perPageKey) {
		f.ItemsPerPage = k.Int(perPageKey)
	}
	if f.ItemsPerPage < 1 {
		return Format{}, ErrInvalidSection(perPageKey, fmt.Sprintf("itemsPerPage must be at least 1, got %v", k.Get(perPageKey)))
	}
	return f, nil
}

// readString returns the value at key, or def when the key is absent.
// An explicitly empty value is returned as-is.
func readString(k *koanf.Koanf, key, def string) string {
	if !k.Exists(key) {
		return def
	}
	return k.String(key)
}

// readStrings reads a list of lines. A single scalar is treated as a
// one-line list.
func readStrings(k *koanf.Koanf, key string) ([]string, error) {
	switch v := k.Get(key).(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]string, len(v))
		for i, item := range v {
			out[i] = fmt.Sprint(item)
		}
		return out, nil
	case []string:
		return append([]string(nil), v...), nil
	case map[string]any:
		return nil, ErrInvalidSection(key, "messages must be a list")
	default:
		return []string{fmt.Sprint(v)}, nil
	}
}
