// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/holomush/helpmenu/internal/permission"
	"github.com/holomush/helpmenu/pkg/chatcolor"
)

// consoleSender prints help pages to a terminal or pipe.
type consoleSender struct {
	permission.Subject
	w       io.Writer
	convert func(string) string
}

func newConsoleSender(w io.Writer, subject permission.Subject, mode string) *consoleSender {
	return &consoleSender{
		Subject: subject,
		w:       w,
		convert: converter(resolveColor(mode, w)),
	}
}

// SendMessage writes one line per message.
func (s *consoleSender) SendMessage(lines ...string) {
	for _, line := range lines {
		_, _ = fmt.Fprintln(s.w, s.convert(line))
	}
}

// resolveColor turns auto into ansi for terminals and strip otherwise.
func resolveColor(mode string, w io.Writer) string {
	if mode != colorAuto {
		return mode
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return colorANSI
	}
	return colorStrip
}

func converter(mode string) func(string) string {
	switch mode {
	case colorANSI:
		return chatcolor.ToANSI
	case colorRaw:
		return func(s string) string { return s }
	default:
		return chatcolor.Strip
	}
}
