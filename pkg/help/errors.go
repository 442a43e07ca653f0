// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package help

import "github.com/samber/oops"

// Error codes for help failures.
const (
	CodeUnknownSection   = "UNKNOWN_SECTION"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeInvalidSection   = "INVALID_SECTION"
	CodeConfigLoad       = "CONFIG_LOAD"
)

// ErrUnknownSection creates an error for a path with no matching section.
func ErrUnknownSection(path string) error {
	return oops.In("help").
		Code(CodeUnknownSection).
		With("section", path).
		Errorf("unknown help section: %s", path)
}

// ErrPermissionDenied creates an error for a sender lacking a section's permission.
func ErrPermissionDenied(path, permission string) error {
	return oops.In("help").
		Code(CodePermissionDenied).
		With("section", path).
		With("permission", permission).
		Errorf("permission denied for help section %q", path)
}

// ErrInvalidSection creates an error for a section definition that cannot be built.
func ErrInvalidSection(key, reason string) error {
	return oops.In("help").
		Code(CodeInvalidSection).
		With("key", key).
		Errorf("invalid help section %q: %s", key, reason)
}
