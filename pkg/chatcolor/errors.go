// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package chatcolor

import "github.com/samber/oops"

// CodeInvalidArgument is the oops error code for rejected inputs.
const CodeInvalidArgument = "INVALID_ARGUMENT"

// ErrInvalidCode creates an error for a code that is not in the code table.
func ErrInvalidCode(c Code) error {
	return oops.In("chatcolor").
		Code(CodeInvalidArgument).
		With("code", string(c.Char())).
		Errorf("unknown format code %q", c.Char())
}
