// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help

import (
	"strconv"
	"strings"
)

// Invocation is the outcome of parsing help command arguments.
type Invocation struct {
	// Path is the dot-joined section path; empty selects the home section.
	Path string
	// Words are the arguments that make up the command, without the page:
	// the command prefix followed by the consumed path segments.
	Words []string
	// Page is the requested 1-based page. It is not range checked.
	Page int
}

// ParseArgs splits help arguments into a section path and a page number.
//
// args holds everything the sender typed after the command label, including
// the words of command (for example "help"), which are skipped. Arguments
// are then consumed left to right: each one that is not an integer is
// appended to base as a path segment, the first integer becomes the page and
// ends parsing. Without an integer the page is 1. Segments are consumed even
// when no section of that name exists; resolution reports that later.
func ParseArgs(base, command string, args []string) Invocation {
	prefix := strings.Fields(command)
	inv := Invocation{
		Path:  base,
		Words: append([]string(nil), prefix...),
		Page:  1,
	}

	for i := len(prefix); i < len(args); i++ {
		if page, err := strconv.Atoi(args[i]); err == nil {
			inv.Page = page
			break
		}
		inv.Path = joinPath(inv.Path, args[i])
		inv.Words = append(inv.Words, args[i])
	}
	return inv
}

// CommandPlaceholder returns the {COMMAND} value for the invocation: empty
// when there are no words, otherwise the words joined by single spaces and
// surrounded by one space on each side.
func (inv Invocation) CommandPlaceholder() string {
	if len(inv.Words) == 0 {
		return ""
	}
	return " " + strings.Join(inv.Words, " ") + " "
}
