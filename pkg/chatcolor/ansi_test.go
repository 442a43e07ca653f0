// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package chatcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToANSI(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantANSI string
	}{
		{name: "plain text no codes", input: "hello world", wantANSI: "hello world"},
		{name: "color resets first", input: "§6Gold§r", wantANSI: "\x1b[0m\x1b[33mGold\x1b[0m"},
		{name: "format adds trailing reset", input: "§lBold", wantANSI: "\x1b[1mBold\x1b[0m"},
		{name: "bright color", input: "§cRed", wantANSI: "\x1b[0m\x1b[91mRed\x1b[0m"},
		{name: "reset only", input: "§r", wantANSI: "\x1b[0m"},
		{name: "unknown code preserved", input: "§zx", wantANSI: "§zx"},
		{name: "upper case code", input: "§Nline", wantANSI: "\x1b[4mline\x1b[0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantANSI, ToANSI(tt.input))
		})
	}
}

func TestToANSI_EveryCodeMapped(t *testing.T) {
	for _, c := range Values() {
		assert.Contains(t, codeToANSI, c, "code %q has no ANSI mapping", c.Char())
	}
}
