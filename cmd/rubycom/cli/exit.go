// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError ends the process with Code and no "error:" line. Commands
// return it after writing their own output, as complete does when there
// is nothing to suggest.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode is the method main looks for.
func (e *ExitError) ExitCode() int {
	return e.Code
}
