// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/helpmenu/pkg/help"
)

// NewValidateCmd creates the validate subcommand.
func NewValidateCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a help file",
		Long: `Check a help file against the help file JSON Schema and build its
section tree. Defaults to the configured help file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := e.cfg.File
			if len(args) == 1 {
				path = args[0]
			}

			data, err := os.ReadFile(path)
			if err != nil {
				return oops.Code("VALIDATE_FAILED").With("path", path).Wrapf(err, "read help file")
			}
			if err := help.ValidateSchema(data); err != nil {
				cmd.PrintErrf("%s: %s\n", path, help.FormatSchemaError(err))
				return err
			}

			m, err := e.manager(cmd, help.BytesSource(data))
			if err != nil {
				return err
			}
			cmd.Printf("%s: ok, %d sections\n", path, m.Home().Count())
			return nil
		},
	}
}
