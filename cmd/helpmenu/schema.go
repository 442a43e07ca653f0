// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/holomush/helpmenu/pkg/help"
)

// NewSchemaCmd creates the schema subcommand.
func NewSchemaCmd(_ *env) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the help file JSON Schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := help.GenerateSchema()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		},
	}
}
