// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/holomush/helpmenu/pkg/chatcolor"
	"github.com/holomush/helpmenu/pkg/errutil"
)

var tracer = otel.Tracer("helpmenu/help")

// DefaultRootKey is the key holding the home section in help files.
const DefaultRootKey = "help"

// Sender is the recipient of a help page: it answers permission checks and
// receives the rendered lines.
type Sender interface {
	Permissions
	SendMessage(lines ...string)
}

// snapshot is one published generation of help state.
type snapshot struct {
	home     *Section
	messages Messages
}

// Manager renders help pages for one plugin.
//
// Manager is safe for concurrent use. Renders read whichever section tree
// was published when they started; Reload publishes a new one atomically.
type Manager struct {
	tag      string
	source   Source
	rootKey  string
	defaults *Section
	messages Messages
	marker   rune
	logger   *slog.Logger

	state    atomic.Pointer[snapshot]
	loaded   atomic.Bool
	reloadMu sync.Mutex
}

// Option configures a Manager during construction.
type Option func(*Manager)

// WithRootKey sets the key holding the home section. Empty uses the whole
// document. Defaults to DefaultRootKey.
func WithRootKey(key string) Option {
	return func(m *Manager) {
		m.rootKey = key
	}
}

// WithDefaults replaces the built-in default section template.
func WithDefaults(s *Section) Option {
	return func(m *Manager) {
		if s != nil {
			m.defaults = s
		}
	}
}

// WithMessages replaces the built-in manager message templates. Values in
// the help file still take precedence.
func WithMessages(msgs Messages) Option {
	return func(m *Manager) {
		m.messages = msgs
	}
}

// WithMarker sets the color code marker character. Defaults to '&'.
func WithMarker(marker rune) Option {
	return func(m *Manager) {
		m.marker = marker
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewManager creates a manager for the plugin named tag. Nothing is loaded
// until Reload is called; until then an empty home section is served.
func NewManager(tag string, source Source, opts ...Option) *Manager {
	m := &Manager{
		tag:      tag,
		source:   source,
		rootKey:  DefaultRootKey,
		defaults: DefaultSection(),
		messages: DefaultMessages(),
		marker:   chatcolor.DefaultMarker,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With("component", "help", "plugin", tag)

	m.state.Store(&snapshot{
		home: &Section{
			options:  m.defaults.options,
			format:   m.defaults.format,
			children: map[string]*Section{},
		},
		messages: m.messages,
	})
	return m
}

// Tag returns the plugin name shown for {PLUGIN}.
func (m *Manager) Tag() string {
	return m.tag
}

// Home returns the home section of the current tree.
func (m *Manager) Home() *Section {
	return m.state.Load().home
}

// Loaded reports whether a reload has succeeded at least once.
func (m *Manager) Loaded() bool {
	return m.loaded.Load()
}

// Messages returns the manager templates of the current tree.
func (m *Manager) Messages() Messages {
	return m.state.Load().messages
}

// Reload loads the help definitions from the source and replaces the
// section tree. On error the previous tree stays in place.
func (m *Manager) Reload(ctx context.Context) error {
	m.reloadMu.Lock()
	defer m.reloadMu.Unlock()

	snap, err := m.load(ctx)
	if err != nil {
		Reloads.WithLabelValues(ReloadFailure).Inc()
		errutil.LogWarn(m.logger, "help reload failed, keeping previous sections", err)
		return err
	}

	m.state.Store(snap)
	m.loaded.Store(true)
	Reloads.WithLabelValues(ReloadSuccess).Inc()
	m.logger.InfoContext(ctx, "help sections reloaded", "sections", snap.home.Count())
	return nil
}

func (m *Manager) load(ctx context.Context) (*snapshot, error) {
	if m.source == nil {
		return nil, oops.In("help").Code(CodeConfigLoad).Errorf("no help source configured")
	}
	k, err := m.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	defaults, err := readDefaults(k, m.defaults)
	if err != nil {
		return nil, err
	}
	messages := readMessages(k, m.messages)

	// a file-level noPermission message replaces the default permMessage
	// unless the file also sets one under defaults
	if k.Exists(keyManagerMessages+".noPermission") && !k.Exists(keyDefaults+"."+keyOptions+".permMessage") {
		d := *defaults
		d.options.PermMessage = messages.NoPermission
		defaults = &d
	}

	home, err := BuildTree(k, TreeConfig{RootKey: m.rootKey, Defaults: defaults})
	if err != nil {
		return nil, err
	}
	return &snapshot{home: home, messages: messages}, nil
}

// Render resolves req against the current tree and returns the page
// without sending it. perms may be nil, in which case every permission
// check fails.
func (m *Manager) Render(ctx context.Context, perms Permissions, req Request) *Page {
	_, span := tracer.Start(ctx, "help.render",
		trace.WithAttributes(
			attribute.String("help.plugin", m.tag),
			attribute.StringSlice("help.args", req.Args),
		),
	)
	defer span.End()

	r := renderer{snap: m.state.Load(), tag: m.tag, marker: m.marker}
	page := r.render(perms, req)

	span.SetAttributes(
		attribute.String("help.status", page.Status),
		attribute.Int("help.page", page.Number),
		attribute.Int("help.pages", page.Pages),
	)
	if page.Section != nil {
		span.SetAttributes(attribute.String("help.section", page.Section.Path()))
	}
	if page.Err != nil {
		m.logger.DebugContext(ctx, "help request not rendered",
			"status", page.Status,
			"error", page.Err,
		)
	}
	Renders.WithLabelValues(page.Status).Inc()
	return page
}

// Handle renders req and sends the lines to sender in one call.
func (m *Manager) Handle(ctx context.Context, sender Sender, req Request) {
	page := m.Render(ctx, sender, req)
	sender.SendMessage(page.Lines...)
}
