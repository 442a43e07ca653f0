// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package permission grants dotted permission nodes to subjects and checks
// them, serving as the authorization collaborator for help renders.
//
// Pattern matching uses gobwas/glob with '.' as the segment separator:
//   - '*' matches a single segment (does not cross '.')
//   - '**' matches zero or more segments (crosses '.')
//
// Examples:
//   - "myplugin.help.*" matches "myplugin.help.admin" but NOT "myplugin.help.admin.bans"
//   - "myplugin.**" matches both
//   - "**" matches any permission
package permission

import (
	"sort"
	"sync"

	"github.com/gobwas/glob"
	"github.com/samber/oops"
)

// compiledGrant holds a pattern and its compiled glob.
type compiledGrant struct {
	pattern string
	glob    glob.Glob
}

// Enforcer checks subject permissions.
//
// Enforcer is safe for concurrent use. The zero value is ready to use.
type Enforcer struct {
	grants map[string][]compiledGrant // subject -> compiled grants
	mu     sync.RWMutex
}

// NewEnforcer creates an empty enforcer.
func NewEnforcer() *Enforcer {
	return &Enforcer{grants: make(map[string][]compiledGrant)}
}

// SetGrants replaces the permissions granted to subject. All patterns are
// compiled before any state changes, so a bad pattern leaves the enforcer
// untouched.
func (e *Enforcer) SetGrants(subject string, patterns []string) error {
	if subject == "" {
		return oops.In("permission").Code("INVALID_SUBJECT").Errorf("subject cannot be empty")
	}

	compiled := make([]compiledGrant, len(patterns))
	for i, pattern := range patterns {
		if pattern == "" {
			return oops.In("permission").
				Code("INVALID_PERMISSION_PATTERN").
				With("subject", subject).
				With("index", i).
				Errorf("empty permission pattern")
		}
		g, err := glob.Compile(pattern, '.')
		if err != nil {
			return oops.In("permission").
				Code("INVALID_PERMISSION_PATTERN").
				With("subject", subject).
				With("pattern", pattern).
				Wrap(err)
		}
		compiled[i] = compiledGrant{pattern: pattern, glob: g}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.grants == nil {
		e.grants = make(map[string][]compiledGrant)
	}
	e.grants[subject] = compiled
	return nil
}

// RemoveGrants forgets subject. Unknown subjects are ignored.
func (e *Enforcer) RemoveGrants(subject string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.grants, subject)
}

// Grants returns a copy of the patterns granted to subject, or nil when the
// subject is unknown.
func (e *Enforcer) Grants(subject string) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	grants, ok := e.grants[subject]
	if !ok {
		return nil
	}
	patterns := make([]string, len(grants))
	for i, g := range grants {
		patterns[i] = g.pattern
	}
	return patterns
}

// Subjects returns the known subjects in sorted order.
func (e *Enforcer) Subjects() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	subjects := make([]string, 0, len(e.grants))
	for s := range e.grants {
		subjects = append(subjects, s)
	}
	sort.Strings(subjects)
	return subjects
}

// Check reports whether subject holds permission. Empty permissions, unknown
// subjects and unmatched permissions are all denied.
func (e *Enforcer) Check(subject, permission string) bool {
	if permission == "" {
		return false
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, grant := range e.grants[subject] {
		if grant.glob.Match(permission) {
			return true
		}
	}
	return false
}

// For binds the enforcer to one subject.
func (e *Enforcer) For(subject string) Subject {
	return Subject{enforcer: e, subject: subject}
}

// Subject is an enforcer bound to a single subject. It satisfies
// help.Permissions.
type Subject struct {
	enforcer *Enforcer
	subject  string
}

// Name returns the bound subject.
func (s Subject) Name() string {
	return s.subject
}

// HasPermission reports whether the bound subject holds permission.
func (s Subject) HasPermission(permission string) bool {
	if s.enforcer == nil {
		return false
	}
	return s.enforcer.Check(s.subject, permission)
}
