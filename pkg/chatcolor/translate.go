// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package chatcolor

import "strings"

// Translate replaces every marker pair (alt followed by a known code char, in
// either case) with the host encoding. The code char is lower-cased.
// A marker followed by anything else is copied unchanged.
func Translate(alt rune, s string) string {
	if !strings.ContainsRune(s, alt) {
		return s
	}
	runes := []rune(s)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] != alt {
			continue
		}
		if code, ok := ByChar(runes[i+1]); ok {
			runes[i] = SectionSign
			runes[i+1] = code.Char()
			i++
		}
	}
	return string(runes)
}

// TranslateAll applies [Translate] to each element. The result has the same
// length and order as ss and never shares its backing array.
func TranslateAll(alt rune, ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = Translate(alt, s)
	}
	return out
}

// Colorize translates the color codes of s and leaves format codes alone.
// Only lower-case "&x" pairs are recognized.
func Colorize(s string) string {
	for _, code := range allCodes {
		if code.IsFormat() {
			continue
		}
		s = replaceCode(s, code)
	}
	return s
}

// Format translates the format codes (bold, italic, underline,
// strikethrough, magic, reset) of s and leaves color codes alone.
func Format(s string) string {
	for _, code := range allCodes {
		if !code.IsFormat() {
			continue
		}
		s = replaceCode(s, code)
	}
	return s
}

// Magicfy translates only the magic (obfuscate) code.
func Magicfy(s string) string {
	return replaceCode(s, Magic)
}

// SingleFormat translates a single code. It fails with an INVALID_ARGUMENT
// error when code is not in the code table.
func SingleFormat(s string, code Code) (string, error) {
	if !code.Valid() {
		return "", ErrInvalidCode(code)
	}
	return replaceCode(s, code), nil
}

// Strip removes translated codes, leaving plain text.
func Strip(s string) string {
	if !strings.ContainsRune(s, SectionSign) {
		return s
	}
	var b strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == SectionSign && i+1 < len(runes) {
			if _, ok := ByChar(runes[i+1]); ok {
				i++
				continue
			}
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

func replaceCode(s string, code Code) string {
	return strings.ReplaceAll(s, code.marker(), code.String())
}
