// Package textcase converts strings between upper and lower case using full
// Unicode case mappings, so "straße" upper-cases to "STRASSE".
package textcase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type options struct {
	upper bool
}

// Option adjusts how Format converts its input.
type Option func(*options)

// WithUpper selects upper case when true and lower case when false.
func WithUpper(upper bool) Option {
	return func(o *options) {
		o.upper = upper
	}
}

// Format returns input in upper case unless WithUpper(false) is given.
// No locale tailoring is applied.
func Format(input string, opts ...Option) string {
	o := options{upper: true}
	for _, opt := range opts {
		opt(&o)
	}

	// A Caser keeps state between calls, so each call gets its own.
	if o.upper {
		return cases.Upper(language.Und).String(input)
	}
	return cases.Lower(language.Und).String(input)
}
