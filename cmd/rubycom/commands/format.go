// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"slices"

	"github.com/dannypurcell/rubycom-sub000/lib/config"
)

// outputFormat is a pflag.Value restricted to the configured output
// formats. The zero value means "use the config file's output".
type outputFormat config.Output

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Type() string { return "format" }

func (f *outputFormat) Set(value string) error {
	if !slices.Contains(config.Outputs, config.Output(value)) {
		return fmt.Errorf("must be one of %v", config.Outputs)
	}
	*f = outputFormat(value)
	return nil
}

// or returns f, or fallback when f is unset.
func (f outputFormat) or(fallback config.Output) config.Output {
	if f == "" {
		return fallback
	}
	return config.Output(f)
}
