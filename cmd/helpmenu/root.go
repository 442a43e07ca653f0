// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"io"
	"log/slog"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/helpmenu/internal/config"
	"github.com/holomush/helpmenu/internal/logging"
	"github.com/holomush/helpmenu/internal/permission"
	"github.com/holomush/helpmenu/pkg/help"
)

// env is the state shared by subcommands once flags are parsed.
type env struct {
	cfg      *cliConfig
	logger   *slog.Logger
	enforcer *permission.Enforcer
}

// NewRootCmd creates the root command for the helpmenu CLI.
func NewRootCmd() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:   "helpmenu",
		Short: "Browse and validate paginated help menus",
		Long: `helpmenu renders hierarchical, paginated help menus defined in a
YAML help file, the way a plugin's /help command shows them to players.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return e.setup(cmd)
		},
	}

	registerFlags(cmd.PersistentFlags())

	cmd.AddCommand(NewRenderCmd(e))
	cmd.AddCommand(NewShellCmd(e))
	cmd.AddCommand(NewTreeCmd(e))
	cmd.AddCommand(NewValidateCmd(e))
	cmd.AddCommand(NewSchemaCmd(e))
	cmd.AddCommand(NewInitCmd(e))

	return cmd
}

func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := loadCLIConfig(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	e.cfg = cfg

	logger, err := logging.Setup(logging.Config{
		Service: "helpmenu",
		Version: version,
		Format:  cfg.LogFormat,
		Level:   cfg.LogLevel,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return oops.Code("LOGGING_SETUP_FAILED").Wrapf(err, "set up logging")
	}
	e.logger = logger

	e.enforcer = permission.NewEnforcer()
	if len(cfg.Grants) > 0 {
		if err := e.enforcer.SetGrants(cfg.Subject, cfg.Grants); err != nil {
			return err
		}
	}
	return nil
}

// store returns the help file store for the configured path.
func (e *env) store() *config.Store {
	return config.NewStore(e.cfg.File, help.DefaultConfig, config.WithLogger(e.logger))
}

// manager creates a manager over src and loads it once.
func (e *env) manager(cmd *cobra.Command, src help.Source) (*help.Manager, error) {
	m := help.NewManager(e.cfg.Tag, src,
		help.WithRootKey(e.cfg.RootKey),
		help.WithLogger(e.logger),
	)
	if err := m.Reload(cmd.Context()); err != nil {
		return nil, err
	}
	return m, nil
}

// sender returns a console sender writing to w as the configured subject.
func (e *env) sender(w io.Writer) *consoleSender {
	return newConsoleSender(w, e.enforcer.For(e.cfg.Subject), e.cfg.Color)
}
