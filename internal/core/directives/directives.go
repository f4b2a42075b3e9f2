// Package directives finds lines that inline comments exclude from checking.
//
// Directives are plain, case-sensitive substrings and work inside any
// comment syntax (or none):
//
//	termswap:disable-line   ignore this line
//	termswap:disable-next   ignore the following line
//	termswap:disable        ignore from here ...
//	termswap:enable         ... up to here
//
// A block left open runs to the end of the text
package directives

import (
	"strings"

	"termswap/internal/core/matcher"
)

// Directive tokens
const (
	Prefix      = "termswap:"
	DisableLine = Prefix + "disable-line"
	DisableNext = Prefix + "disable-next"
	Disable     = Prefix + "disable"
	Enable      = Prefix + "enable"
)

// IgnoredLines returns the 1-based line numbers to skip
func IgnoredLines(text string) matcher.LineSet {
	if !strings.Contains(text, Prefix) {
		return nil
	}
	out := matcher.LineSet{}
	inBlock := false
	for i, line := range strings.Split(text, "\n") {
		n := i + 1
		switch {
		case strings.Contains(line, DisableLine):
			out.Add(n)
		case strings.Contains(line, DisableNext):
			out.Add(n + 1)
		// checked after the two above since both contain Disable
		case strings.Contains(line, Disable):
			inBlock = true
			out.Add(n)
		case strings.Contains(line, Enable):
			inBlock = false
			out.Add(n)
		}
		if inBlock {
			out.Add(n)
		}
	}
	return out
}
