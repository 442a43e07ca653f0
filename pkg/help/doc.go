// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package help renders paginated, hierarchical help menus for plugin commands.
//
// Help menus are defined in YAML. Each section may declare display options,
// page formatting and a list of message lines; any other mapping key is a
// child section:
//
//	help:
//	  messages:
//	    - "&7Welcome to {PLUGIN}."
//	  commands:
//	    options:
//	      description: "Command reference"
//	    messages:
//	      - "&6/{LABEL} warp <name> &7- teleport to a warp"
//	  admin:
//	    options:
//	      permission: myplugin.help.admin
//
// A [Manager] loads the definitions from a [Source], then turns command
// arguments into pages. Leading non-numeric arguments select nested sections
// ("admin bans" selects admin.bans), the first numeric argument selects the
// page. Sections guarded by a permission are only shown to senders holding it.
//
// Rendered lines have placeholders substituted and marker color codes
// translated with package chatcolor before they reach the sender.
//
// # Reloading
//
// [Manager.Reload] builds a complete new section tree and publishes it with a
// single atomic swap, so renders running concurrently keep the tree they
// started with. A failed reload leaves the previous tree in place.
package help
