// Copyright 2026 The Rubycom Authors
// SPDX-License-Identifier: Apache-2.0

package argv

import (
	"regexp"
	"slices"
	"strings"

	"github.com/dannypurcell/rubycom-sub000/lib/literal"
)

// EndOfOptions is the token after which everything is a positional.
const EndOfOptions = "--"

var (
	negationPattern = regexp.MustCompile(`^--?no-(\w+)$`)
	assignPattern   = regexp.MustCompile(`(?s)^--?(\w+)=(.*)$`)
	namePattern     = regexp.MustCompile(`^--?(\w+)$`)
)

// Classified holds the result of classifying a token list.
type Classified struct {
	// Positionals are the undashed tokens, decoded, in input order.
	Positionals []literal.Value

	// Options maps each valued name to its decoded value. A name
	// mentioned more than once maps to the list of all its values.
	Options Bucket[literal.Value]

	// Flags maps each bare or negated name to its boolean.
	Flags Bucket[bool]
}

// Count returns the number of classified entries across all buckets.
func (c *Classified) Count() int {
	return len(c.Positionals) + c.Options.Len() + c.Flags.Len()
}

// Clone returns a copy of c whose buckets can be consumed without
// affecting c.
func (c *Classified) Clone() *Classified {
	return &Classified{
		Positionals: slices.Clone(c.Positionals),
		Options:     c.Options.Clone(),
		Flags:       c.Flags.Clone(),
	}
}

// Classify sorts tokens into positionals, options, and flags. It fails
// only with [*MalformedOptionError].
func Classify(tokens []string) (*Classified, error) {
	classified := &Classified{}

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if token == EndOfOptions {
			for _, rest := range tokens[i+1:] {
				classified.Positionals = append(classified.Positionals, literal.Decode(rest))
			}
			break
		}

		if !isDashed(token) {
			classified.Positionals = append(classified.Positionals, literal.Decode(token))
			continue
		}

		if strings.HasPrefix(token, "---") {
			return nil, &MalformedOptionError{Token: token, Reason: "too many leading dashes"}
		}

		if match := negationPattern.FindStringSubmatch(token); match != nil {
			classified.setFlag(match[1], false)
			continue
		}

		if match := assignPattern.FindStringSubmatch(token); match != nil {
			classified.setOption(match[1], literal.Decode(match[2]))
			continue
		}

		if match := namePattern.FindStringSubmatch(token); match != nil {
			if i+1 < len(tokens) && !isDashed(tokens[i+1]) {
				classified.setOption(match[1], literal.Decode(tokens[i+1]))
				i++
				continue
			}
			classified.setFlag(match[1], true)
			continue
		}

		return nil, &MalformedOptionError{Token: token, Reason: "option names are letters, digits, and underscores"}
	}

	return classified, nil
}

// isDashed reports whether token reads as an option or flag. Negative
// numbers are dashed too; they are positionals only after "--".
func isDashed(token string) bool {
	return strings.HasPrefix(token, "-")
}

func (c *Classified) setFlag(name string, value bool) {
	if existing, ok := c.Options.Get(name); ok {
		c.Options.Set(name, literal.Merge(existing, literal.Bool(value)))
		return
	}
	c.Flags.Set(name, value)
}

func (c *Classified) setOption(name string, value literal.Value) {
	if c.Flags.Has(name) {
		c.Flags.Set(name, truthy(value))
		return
	}
	if existing, ok := c.Options.Get(name); ok {
		c.Options.Set(name, literal.Merge(existing, value))
		return
	}
	c.Options.Set(name, value)
}

// truthy is the boolean a flag takes when it is later given a value.
func truthy(value literal.Value) bool {
	if b, ok := value.AsBool(); ok {
		return b
	}
	return !value.IsNil()
}
