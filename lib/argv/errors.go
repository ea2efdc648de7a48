// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package argv

import (
	"errors"
	"fmt"
)

// ErrMalformedOption matches any [*MalformedOptionError] under errors.Is.
var ErrMalformedOption = errors.New("malformed option")

// MalformedOptionError reports a token that starts with a dash but does
// not follow the option grammar.
type MalformedOptionError struct {
	// Token is the offending token as typed.
	Token string
	// Reason says which rule the token broke.
	Reason string
}

func (e *MalformedOptionError) Error() string {
	return fmt.Sprintf("malformed option %q: %s", e.Token, e.Reason)
}

// Is reports whether target is [ErrMalformedOption].
func (e *MalformedOptionError) Is(target error) bool {
	return target == ErrMalformedOption
}
