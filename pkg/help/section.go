// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help

import (
	"sort"
	"strings"
)

// PathDelimiter separates section names in a path.
const PathDelimiter = "."

// Options controls who may view a section and how it is listed.
type Options struct {
	Permission  string // required permission; empty means public
	PermMessage string // shown instead of the page when Permission is missing
	Description string // shown next to the section in its parent's listing
}

// Format controls the decoration and size of a section's pages.
type Format struct {
	Header       string
	Title        string
	Footer       string
	PageNotice   string
	ItemsPerPage int
}

// Section is a node in the help tree. Sections are immutable once built.
type Section struct {
	name     string
	path     string
	options  Options
	format   Format
	messages []string
	children map[string]*Section
}

// Name returns the section's key. The home section has an empty name.
func (s *Section) Name() string {
	return s.name
}

// Path returns the dot-joined names from the home section down to s.
// The home section has an empty path.
func (s *Section) Path() string {
	return s.path
}

// Options returns the section's display options.
func (s *Section) Options() Options {
	return s.options
}

// Format returns the section's page format.
func (s *Section) Format() Format {
	return s.format
}

// Messages returns a copy of the section's raw message lines.
func (s *Section) Messages() []string {
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// Child returns the direct child with exactly the given name.
func (s *Section) Child(name string) (*Section, bool) {
	child, ok := s.children[name]
	return child, ok
}

// Children returns the direct children sorted by name.
func (s *Section) Children() []*Section {
	names := make([]string, 0, len(s.children))
	for name := range s.children {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]*Section, len(names))
	for i, name := range names {
		out[i] = s.children[name]
	}
	return out
}

// Resolve walks a dot-delimited path down from s. An empty path resolves to
// s itself. Any missing step fails with an UNKNOWN_SECTION error naming the
// full path.
func (s *Section) Resolve(path string) (*Section, error) {
	if path == "" {
		return s, nil
	}
	cur := s
	for _, name := range strings.Split(path, PathDelimiter) {
		next, ok := cur.Child(name)
		if !ok {
			return nil, ErrUnknownSection(path)
		}
		cur = next
	}
	return cur, nil
}

// Walk visits s and its descendants depth-first, children in name order.
// Walking stops at the first error fn returns.
func (s *Section) Walk(fn func(*Section) error) error {
	if err := fn(s); err != nil {
		return err
	}
	for _, child := range s.Children() {
		if err := child.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of sections in the subtree rooted at s.
func (s *Section) Count() int {
	n := 1
	for _, child := range s.children {
		n += child.Count()
	}
	return n
}

// DefaultFormat is the format applied to sections that do not configure one.
func DefaultFormat() Format {
	return Format{
		Header:       "&8&m--------&r &6{PLUGIN} Help &8&m--------",
		Title:        "&7{PATH} &8(&7{PAGE}&8/&7{MAXPAGES}&8)",
		Footer:       "",
		PageNotice:   "&7Type &6/{LABEL}{COMMAND}{NEXTPAGE} &7for the next page.",
		ItemsPerPage: 8,
	}
}

// DefaultSection returns the parentless template whose options and format
// fill in for values a section leaves unset.
func DefaultSection() *Section {
	return &Section{
		options: Options{PermMessage: DefaultMessages().NoPermission},
		format:  DefaultFormat(),
	}
}

// PageCount returns how many pages items lines fill at perPage lines each.
// There is always at least one page.
func PageCount(items, perPage int) int {
	if perPage < 1 || items <= 0 {
		return 1
	}
	return (items + perPage - 1) / perPage
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + PathDelimiter + name
}
