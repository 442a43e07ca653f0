// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help_test

import (
	"context"
	"sync"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/require"

	"github.com/holomush/helpmenu/pkg/help"
)

const testTag = "myplugin"

// fixtureYAML keeps templates free of color codes so rendered lines can be
// compared directly. Section "a" has eleven messages and one child, twelve
// lines in total.
const fixtureYAML = `
managerMessages:
  invalidPage: "nothing"
  noDescription: "none"
  sectionInfo: "> {SECTION}: {SECDESC}"
  unknownSection: "unknown {SECTION}"
  noPermission: "denied"
defaults:
  format:
    header: "H {PLUGIN}"
    title: "T {PATH} {PAGE}/{MAXPAGES}"
    pageNotice: "N /{LABEL}{COMMAND}{NEXTPAGE}"
    itemsPerPage: 5
help:
  messages:
    - "welcome"
  a:
    options:
      description: "Alpha"
    messages: [a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11]
    b:
      messages:
        - "b1"
  nodesc:
    messages:
      - "x"
  secret:
    options:
      permission: "test.secret"
    messages:
      - "s1"
`

// grants is a Permissions backed by a fixed set.
type grants map[string]bool

func (g grants) HasPermission(permission string) bool {
	return g[permission]
}

// recordingSender collects every SendMessage call.
type recordingSender struct {
	grants
	mu    sync.Mutex
	calls [][]string
}

func (s *recordingSender) SendMessage(lines ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, lines)
}

// sourceFunc adapts a function to help.Source.
type sourceFunc func(ctx context.Context) (*koanf.Koanf, error)

func (f sourceFunc) Load(ctx context.Context) (*koanf.Koanf, error) {
	return f(ctx)
}

// switchSource serves whichever document was set last.
type switchSource struct {
	mu   sync.Mutex
	data string
}

func (s *switchSource) Set(data string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

func (s *switchSource) Load(ctx context.Context) (*koanf.Koanf, error) {
	s.mu.Lock()
	data := s.data
	s.mu.Unlock()
	return help.BytesSource(data).Load(ctx)
}

func loadKoanf(t *testing.T, doc string) *koanf.Koanf {
	t.Helper()
	k, err := help.BytesSource(doc).Load(context.Background())
	require.NoError(t, err)
	return k
}

func newLoadedManager(t *testing.T, doc string, opts ...help.Option) *help.Manager {
	t.Helper()
	m := help.NewManager(testTag, help.BytesSource(doc), opts...)
	require.NoError(t, m.Reload(context.Background()))
	return m
}

func helpRequest(args ...string) help.Request {
	return help.Request{
		Label:   "plugin",
		Command: "help",
		Args:    append([]string{"help"}, args...),
	}
}
