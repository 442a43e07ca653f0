// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package chatcolor translates marker-prefixed color and format codes into the
// section-sign encoding understood by game clients.
//
// Authors write codes as a marker character followed by a code character,
// for example "&6Gold &lbold". [Translate] rewrites every recognized pair to
// the host encoding ("§6Gold §lbold"). Unrecognized pairs are left alone.
//
// Codes fall into two disjoint categories:
//
//   - colors: 0-9 and a-f
//   - formats: k (magic), l (bold), m (strikethrough), n (underline),
//     o (italic) and r (reset)
//
// [Colorize] and [Format] translate only one category each, so they commute:
// Colorize(Format(s)) == Format(Colorize(s)) for every s.
//
// Translated text can be rendered for terminals with [ToANSI] or reduced to
// plain text with [Strip].
package chatcolor
