// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/shlex"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
	"github.com/spf13/cobra"

	"github.com/holomush/helpmenu/internal/observability"
	"github.com/holomush/helpmenu/pkg/errutil"
	"github.com/holomush/helpmenu/pkg/help"
)

// Watch reload retry settings. A reload right after a change event can
// see a partially written file.
const (
	reloadRetries = 5
	reloadBackoff = 200 * time.Millisecond
)

const (
	shellPrompt     = "> "
	shutdownTimeout = 5 * time.Second
)

// NewShellCmd creates the shell subcommand.
func NewShellCmd(e *env) *cobra.Command {
	rc := &requestConfig{}
	var (
		watch       bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Browse help pages interactively",
		Long: `Read help arguments line by line and render each page. Lines are
split like a shell would, so quoted words stay together.

Type "reload" to reload the help file and "exit" to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := e.store()
			m, err := e.manager(cmd, store)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				srv := observability.NewServer(metricsAddr, m.Loaded,
					observability.WithRegister(help.RegisterMetrics),
					observability.WithLogger(e.logger),
				)
				if _, err := srv.Start(); err != nil {
					return err
				}
				defer stopServer(srv, e.logger)
			}

			if watch {
				ctx := cmd.Context()
				if err := store.Watch(func(error) {
					reloadWithRetry(ctx, m, e.logger)
				}); err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
			}

			return runShell(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), m, e.sender(cmd.OutOrStdout()), rc)
		},
	}

	rc.register(cmd)
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the help file when it changes")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "metrics/health HTTP address (empty = disabled)")

	return cmd
}

// runShell renders one page per input line until EOF or exit.
func runShell(ctx context.Context, in io.Reader, out io.Writer, m *help.Manager, sender help.Sender, rc *requestConfig) error {
	scanner := bufio.NewScanner(in)
	for {
		_, _ = fmt.Fprint(out, shellPrompt)
		if !scanner.Scan() {
			break
		}

		args, err := shlex.Split(scanner.Text())
		if err != nil {
			_, _ = fmt.Fprintf(out, "cannot parse line: %v\n", err)
			continue
		}

		switch {
		case len(args) == 1 && (args[0] == "exit" || args[0] == "quit"):
			return nil
		case len(args) == 1 && args[0] == "reload":
			if err := m.Reload(ctx); err != nil {
				_, _ = fmt.Fprintf(out, "reload failed: %v\n", err)
				continue
			}
			_, _ = fmt.Fprintf(out, "reloaded %d sections\n", m.Home().Count())
		default:
			m.Handle(ctx, sender, rc.request(args))
		}
	}

	if err := scanner.Err(); err != nil {
		return oops.Code("SHELL_READ_FAILED").Wrapf(err, "read input")
	}
	return nil
}

func stopServer(srv *observability.Server, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		errutil.LogError(logger, "stop metrics server", err)
	}
}

// reloadWithRetry reloads m, retrying failures a few times before giving up.
// The previous sections stay active when every attempt fails.
func reloadWithRetry(ctx context.Context, m *help.Manager, logger *slog.Logger) {
	backoff := retry.WithMaxRetries(reloadRetries, retry.NewConstant(reloadBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := m.Reload(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		errutil.LogError(logger, "help file reload gave up", err, "retries", reloadRetries)
	}
}
