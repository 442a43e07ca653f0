// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"os"
	"path/filepath"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/helpmenu/internal/xdg"
	"github.com/holomush/helpmenu/pkg/help"
)

// NewInitCmd creates the init subcommand.
func NewInitCmd(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default help file",
		Long: `Write the bundled default help file to the configured location.
An existing, non-blank file is left alone unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := e.cfg.File
			if force {
				if err := xdg.EnsureDir(filepath.Dir(path)); err != nil {
					return err
				}
				if err := os.WriteFile(path, help.DefaultConfig, 0o600); err != nil {
					return oops.Code("INIT_FAILED").With("path", path).Wrapf(err, "write help file")
				}
				cmd.Printf("wrote %s\n", path)
				return nil
			}

			written, err := e.store().Seed()
			if err != nil {
				return err
			}
			if written {
				cmd.Printf("wrote %s\n", path)
			} else {
				cmd.Printf("%s already exists\n", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing help file")

	return cmd
}
