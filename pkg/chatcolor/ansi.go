// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package chatcolor

import "strings"

// ANSI escape code constants
const (
	ansiReset         = "\x1b[0m"
	ansiBold          = "\x1b[1m"
	ansiItalic        = "\x1b[3m"
	ansiUnderline     = "\x1b[4m"
	ansiBlink         = "\x1b[5m"
	ansiStrikethrough = "\x1b[9m"
)

// codeToANSI maps codes to ANSI escape sequences.
// Dark colors use the normal palette, light colors the bright one.
var codeToANSI = map[Code]string{
	Black:       "\x1b[30m",
	DarkBlue:    "\x1b[34m",
	DarkGreen:   "\x1b[32m",
	DarkAqua:    "\x1b[36m",
	DarkRed:     "\x1b[31m",
	DarkPurple:  "\x1b[35m",
	Gold:        "\x1b[33m",
	Gray:        "\x1b[37m",
	DarkGray:    "\x1b[90m",
	Blue:        "\x1b[94m",
	Green:       "\x1b[92m",
	Aqua:        "\x1b[96m",
	Red:         "\x1b[91m",
	LightPurple: "\x1b[95m",
	Yellow:      "\x1b[93m",
	White:       "\x1b[97m",

	Magic:         ansiBlink,
	Bold:          ansiBold,
	Strikethrough: ansiStrikethrough,
	Underline:     ansiUnderline,
	Italic:        ansiItalic,
	Reset:         ansiReset,
}

// ToANSI renders translated text for a terminal.
//
// A color code also clears active formats, as it does in game clients, so it
// is emitted as a reset followed by the color. When any code was emitted the
// output ends with a reset. Unknown codes are preserved as-is.
func ToANSI(s string) string {
	if !strings.ContainsRune(s, SectionSign) {
		return s
	}

	var result strings.Builder
	styled := false
	runes := []rune(s)

	for i := 0; i < len(runes); i++ {
		if runes[i] == SectionSign && i+1 < len(runes) {
			if code, ok := ByChar(runes[i+1]); ok {
				if code.IsColor() {
					result.WriteString(ansiReset)
				}
				result.WriteString(codeToANSI[code])
				styled = code != Reset
				i++
				continue
			}
		}
		result.WriteRune(runes[i])
	}

	if styled {
		result.WriteString(ansiReset)
	}
	return result.String()
}
