// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/holomush/helpmenu/pkg/help"
)

// NewTreeCmd creates the tree subcommand.
func NewTreeCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the section tree",
		Long: `Print every section of the help file with its permission, page
count and description.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := e.manager(cmd, e.store())
			if err != nil {
				return err
			}
			return printTree(cmd.OutOrStdout(), m)
		},
	}
}

func printTree(w io.Writer, m *help.Manager) error {
	info := m.Messages().SectionInfo
	return m.Home().Walk(func(s *help.Section) error {
		depth := 0
		name := m.Tag()
		if s.Path() != "" {
			depth = strings.Count(s.Path(), help.PathDelimiter) + 1
			name = s.Name()
		}

		items := len(s.Messages())
		if info != "" {
			items += len(s.Children())
		}
		pages := help.PageCount(items, s.Format().ItemsPerPage)

		line := fmt.Sprintf("%s%s (%d %s)", strings.Repeat("  ", depth), name, pages, plural(pages, "page"))
		if perm := s.Options().Permission; perm != "" {
			line += " [" + perm + "]"
		}
		if desc := s.Options().Description; desc != "" {
			line += " - " + desc
		}
		_, err := fmt.Fprintln(w, line)
		return err
	})
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
