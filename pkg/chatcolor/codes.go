// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package chatcolor

import "strings"

// SectionSign prefixes every code in the host encoding.
const SectionSign = '§'

// DefaultMarker is the marker character authors type in configuration files.
const DefaultMarker = '&'

// Code is a single color or format directive, identified by its code char.
type Code rune

// Color codes.
const (
	Black       Code = '0'
	DarkBlue    Code = '1'
	DarkGreen   Code = '2'
	DarkAqua    Code = '3'
	DarkRed     Code = '4'
	DarkPurple  Code = '5'
	Gold        Code = '6'
	Gray        Code = '7'
	DarkGray    Code = '8'
	Blue        Code = '9'
	Green       Code = 'a'
	Aqua        Code = 'b'
	Red         Code = 'c'
	LightPurple Code = 'd'
	Yellow      Code = 'e'
	White       Code = 'f'
)

// Format codes.
const (
	Magic         Code = 'k'
	Bold          Code = 'l'
	Strikethrough Code = 'm'
	Underline     Code = 'n'
	Italic        Code = 'o'
	Reset         Code = 'r'
)

var codeNames = map[Code]string{
	Black:         "black",
	DarkBlue:      "dark_blue",
	DarkGreen:     "dark_green",
	DarkAqua:      "dark_aqua",
	DarkRed:       "dark_red",
	DarkPurple:    "dark_purple",
	Gold:          "gold",
	Gray:          "gray",
	DarkGray:      "dark_gray",
	Blue:          "blue",
	Green:         "green",
	Aqua:          "aqua",
	Red:           "red",
	LightPurple:   "light_purple",
	Yellow:        "yellow",
	White:         "white",
	Magic:         "magic",
	Bold:          "bold",
	Strikethrough: "strikethrough",
	Underline:     "underline",
	Italic:        "italic",
	Reset:         "reset",
}

// allCodes lists every code in declaration order.
var allCodes = []Code{
	Black, DarkBlue, DarkGreen, DarkAqua, DarkRed, DarkPurple, Gold, Gray,
	DarkGray, Blue, Green, Aqua, Red, LightPurple, Yellow, White,
	Magic, Bold, Strikethrough, Underline, Italic, Reset,
}

// Values returns all known codes, colors first.
// The returned slice is a copy.
func Values() []Code {
	out := make([]Code, len(allCodes))
	copy(out, allCodes)
	return out
}

// ByChar looks up a code by its code char. Upper-case chars are accepted.
func ByChar(c rune) (Code, bool) {
	code := Code(toLower(c))
	if _, ok := codeNames[code]; !ok {
		return 0, false
	}
	return code, true
}

// ByName looks up a code by its lower_snake name, e.g. "dark_red".
func ByName(name string) (Code, bool) {
	name = strings.ToLower(name)
	for code, n := range codeNames {
		if n == name {
			return code, true
		}
	}
	return 0, false
}

// Valid reports whether c is a known code.
func (c Code) Valid() bool {
	_, ok := codeNames[c]
	return ok
}

// Char returns the code character.
func (c Code) Char() rune {
	return rune(c)
}

// Name returns the lower_snake name, or "" for unknown codes.
func (c Code) Name() string {
	return codeNames[c]
}

// IsFormat reports whether c is one of the text format codes
// (magic, bold, strikethrough, underline, italic, reset).
func (c Code) IsFormat() bool {
	switch c {
	case Magic, Bold, Strikethrough, Underline, Italic, Reset:
		return true
	default:
		return false
	}
}

// IsColor reports whether c is a known color code.
func (c Code) IsColor() bool {
	return c.Valid() && !c.IsFormat()
}

// String returns the host encoding of the code, e.g. "§6".
func (c Code) String() string {
	return string([]rune{SectionSign, rune(c)})
}

// marker returns the authoring form of the code using the default marker.
func (c Code) marker() string {
	return string([]rune{DefaultMarker, rune(c)})
}

func toLower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
