// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/helpmenu/pkg/help"
)

// Default values for render flags.
const (
	defaultLabel   = "plugin"
	defaultCommand = "help"
)

// requestConfig holds the flags that shape a help request.
type requestConfig struct {
	label   string
	command string
	base    string
	set     map[string]string
}

func (rc *requestConfig) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&rc.label, "label", defaultLabel, "command label shown for {LABEL}")
	cmd.Flags().StringVar(&rc.command, "command", defaultCommand, "sub-command words that precede the help arguments")
	cmd.Flags().StringVar(&rc.base, "base", "", "section path the arguments are relative to")
	cmd.Flags().StringToStringVar(&rc.set, "set", nil, "extra placeholder, e.g. --set USER=alice (repeatable)")
}

// request builds a help request from the arguments after the command words.
func (rc *requestConfig) request(args []string) help.Request {
	full := append(strings.Fields(rc.command), args...)
	return help.Request{
		Base:         rc.base,
		Label:        rc.label,
		Command:      rc.command,
		Args:         full,
		Replacements: placeholders(rc.set),
	}
}

// placeholders wraps bare keys in braces.
func placeholders(set map[string]string) map[string]string {
	if len(set) == 0 {
		return nil
	}
	out := make(map[string]string, len(set))
	for k, v := range set {
		if !strings.HasPrefix(k, "{") {
			k = "{" + k + "}"
		}
		out[k] = v
	}
	return out
}

// NewRenderCmd creates the render subcommand.
func NewRenderCmd(e *env) *cobra.Command {
	rc := &requestConfig{}
	var strict bool

	cmd := &cobra.Command{
		Use:   "render [section...] [page]",
		Short: "Render one help page",
		Long: `Render the help page a player would see after typing the given
arguments. Sections are named in order, an integer selects the page.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := e.manager(cmd, e.store())
			if err != nil {
				return err
			}

			page := m.Render(cmd.Context(), e.enforcer.For(e.cfg.Subject), rc.request(args))
			e.sender(cmd.OutOrStdout()).SendMessage(page.Lines...)

			if strict && page.Status != help.StatusOK {
				return oops.Code("RENDER_FAILED").
					With("status", page.Status).
					Errorf("help page not rendered: %s", page.Status)
			}
			return nil
		},
	}

	rc.register(cmd)
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error unless the page rendered normally")

	return cmd
}
