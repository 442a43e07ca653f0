// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help

import (
	"sort"
	"strconv"
	"strings"

	"github.com/holomush/helpmenu/pkg/chatcolor"
)

// Render outcomes, also used as the status metric label.
const (
	StatusOK               = "ok"
	StatusInvalidPage      = "invalid_page"
	StatusUnknownSection   = "unknown_section"
	StatusPermissionDenied = "permission_denied"
)

// noSection is shown for {SECTION} when no path was given.
const noSection = "(none)"

// Permissions answers permission checks for the sender of a help request.
type Permissions interface {
	HasPermission(permission string) bool
}

// Request describes one help command invocation.
type Request struct {
	// Base is a section path the arguments are appended to; empty starts at
	// the home section.
	Base string
	// Label is the command label the sender used, for {LABEL}.
	Label string
	// Command is the sub-command prefix, e.g. "help". Its words are
	// expected at the start of Args and are skipped.
	Command string
	// Args are the arguments after the label.
	Args []string
	// Replacements are extra placeholders. The computed placeholders
	// ({TITLE}, {PATH}, {PLUGIN}, {PAGE}, {MAXPAGES}, {LABEL}, {COMMAND})
	// overwrite entries with the same key.
	Replacements map[string]string
}

// Page is a rendered help response.
type Page struct {
	// Lines are the finished, color-translated lines in display order.
	Lines []string
	// Status is one of the Status* constants.
	Status string
	// Err is the recovered UNKNOWN_SECTION or PERMISSION_DENIED error, if any.
	Err error
	// Section is the resolved section; nil when resolution failed.
	Section *Section
	// Number is the requested page and Pages the section's page count.
	Number int
	Pages  int
}

// renderer produces pages from one snapshot.
type renderer struct {
	snap   *snapshot
	tag    string
	marker rune
}

func (r renderer) render(perms Permissions, req Request) *Page {
	inv := ParseArgs(req.Base, req.Command, req.Args)
	page := &Page{Number: inv.Page, Pages: 1}

	section, err := r.snap.home.Resolve(inv.Path)
	if err != nil {
		shown := inv.Path
		if shown == "" {
			shown = noSection
		}
		page.Status = StatusUnknownSection
		page.Err = err
		page.Lines = []string{r.translate(strings.ReplaceAll(r.snap.messages.UnknownSection, "{SECTION}", shown))}
		return page
	}
	page.Section = section

	if perm := section.options.Permission; perm != "" && (perms == nil || !perms.HasPermission(perm)) {
		page.Status = StatusPermissionDenied
		page.Err = ErrPermissionDenied(section.path, perm)
		page.Lines = []string{r.translate(section.options.PermMessage)}
		return page
	}

	messages := r.collectMessages(section)
	perPage := section.format.ItemsPerPage
	page.Pages = PageCount(len(messages), perPage)

	command := inv.CommandPlaceholder()
	replacer := r.replacer(section, req, command, page.Number, page.Pages)

	lines := make([]string, 0, perPage+4)
	if header := section.format.Header; header != "" {
		lines = append(lines, r.translate(replacer.Replace(header)))
	}
	if title := section.format.Title; title != "" {
		lines = append(lines, r.translate(replacer.Replace(title)))
	}

	// pages outside 1..Pages have no lines
	start := -1
	if page.Number >= 1 && page.Number <= page.Pages {
		start = (page.Number - 1) * perPage
	}

	page.Status = StatusOK
	for i := 0; i < perPage; i++ {
		index := start + i
		if start < 0 || index >= len(messages) {
			if i == 0 {
				page.Status = StatusInvalidPage
				lines = append(lines, r.translate(r.snap.messages.InvalidPage))
			}
			break
		}
		lines = append(lines, r.translate(replacer.Replace(messages[index])))
	}

	if footer := section.format.Footer; footer != "" {
		lines = append(lines, r.translate(replacer.Replace(footer)))
	}

	if page.Number < page.Pages {
		notice := strings.NewReplacer(
			"{NEXTPAGE}", strconv.Itoa(page.Number+1),
			"{COMMAND}", command,
			"{LABEL}", req.Label,
		).Replace(section.format.PageNotice)
		lines = append(lines, r.translate(notice))
	}

	page.Lines = lines
	return page
}

// collectMessages returns the section's lines followed by one listing line
// per child when child listings are enabled.
func (r renderer) collectMessages(section *Section) []string {
	messages := section.Messages()
	info := r.snap.messages.SectionInfo
	if info == "" {
		return messages
	}
	for _, child := range section.Children() {
		desc := child.options.Description
		if desc == "" {
			desc = r.snap.messages.NoDescription
		}
		messages = append(messages, strings.NewReplacer(
			"{SECTION}", child.name,
			"{SECDESC}", desc,
		).Replace(info))
	}
	return messages
}

// replacer builds the placeholder replacer for one render. Caller
// replacements go in first and computed ones overwrite them.
func (r renderer) replacer(section *Section, req Request, command string, number, pages int) *strings.Replacer {
	values := make(map[string]string, len(req.Replacements)+7)
	for k, v := range req.Replacements {
		values[k] = v
	}

	title := section.name
	if title == "" {
		title = r.tag
	}
	path := strings.ReplaceAll(section.path, PathDelimiter, "/")
	if path == "" {
		path = r.tag
	}

	values["{TITLE}"] = title
	values["{PATH}"] = path
	values["{PLUGIN}"] = r.tag
	values["{PAGE}"] = strconv.Itoa(number)
	values["{MAXPAGES}"] = strconv.Itoa(pages)
	values["{LABEL}"] = req.Label
	values["{COMMAND}"] = command

	keys := make([]string, 0, len(values))
	for k := range values {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, values[k])
	}
	return strings.NewReplacer(pairs...)
}

func (r renderer) translate(s string) string {
	return chatcolor.Translate(r.marker, s)
}
