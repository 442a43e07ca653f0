// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help

import "github.com/knadh/koanf/v2"

// Messages are the manager-wide templates. Each can be overridden under the
// managerMessages key of the help file.
type Messages struct {
	// InvalidPage replaces the body of a page past the end of a section.
	InvalidPage string
	// NoDescription stands in for {SECDESC} when a child has no description.
	NoDescription string
	// SectionInfo lists one child section; {SECTION} and {SECDESC} are
	// substituted. Empty disables child listings.
	SectionInfo string
	// UnknownSection is sent when a path matches no section; {SECTION} is
	// the attempted path.
	UnknownSection string
	// NoPermission is the permMessage of sections that do not set one.
	NoPermission string
}

// DefaultMessages returns the built-in templates.
func DefaultMessages() Messages {
	return Messages{
		InvalidPage:    "&c&oNothing here.",
		NoDescription:  "&c&oNo description set.",
		SectionInfo:    "&8Section: &6{SECTION} &8- &6{SECDESC}",
		UnknownSection: "&cUnknown help section: &4{SECTION}&c.",
		NoPermission:   "&cYou do not have permission to view this section.",
	}
}

// readMessages overlays managerMessages from k on top of def.
func readMessages(k *koanf.Koanf, def Messages) Messages {
	return Messages{
		InvalidPage:    readString(k, keyManagerMessages+".invalidPage", def.InvalidPage),
		NoDescription:  readString(k, keyManagerMessages+".noDescription", def.NoDescription),
		SectionInfo:    readString(k, keyManagerMessages+".sectionInfo", def.SectionInfo),
		UnknownSection: readString(k, keyManagerMessages+".unknownSection", def.UnknownSection),
		NoPermission:   readString(k, keyManagerMessages+".noPermission", def.NoPermission),
	}
}
