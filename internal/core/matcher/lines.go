package matcher

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// LineIndex maps byte offsets to 1-based line and column numbers.
// Columns count runes, not bytes
type LineIndex struct {
	text   string
	starts []int // byte offset of each line start
}

// NewLineIndex precomputes line starts for text, splitting on '\n'
func NewLineIndex(text string) *LineIndex {
	starts := make([]int, 1, strings.Count(text, "\n")+1)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{text: text, starts: starts}
}

// Lines returns the number of lines, counting a trailing empty line
func (li *LineIndex) Lines() int { return len(li.starts) }

// Line returns the 1-based line containing off
func (li *LineIndex) Line(off int) int {
	off = li.clamp(off)
	return sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > off })
}

// Position returns the 1-based line and rune column of off.
// Offsets outside the text are clamped
func (li *LineIndex) Position(off int) (line, col int) {
	off = li.clamp(off)
	line = li.Line(off)
	start := li.starts[line-1]
	return line, utf8.RuneCountInString(li.text[start:off]) + 1
}

// LineText returns line n (1-based) without its newline
func (li *LineIndex) LineText(n int) string {
	if n < 1 || n > len(li.starts) {
		return ""
	}
	start := li.starts[n-1]
	end := len(li.text)
	if n < len(li.starts) {
		end = li.starts[n] - 1
	}
	return li.text[start:end]
}

func (li *LineIndex) clamp(off int) int {
	if off < 0 {
		return 0
	}
	if off > len(li.text) {
		return len(li.text)
	}
	return off
}

// LineSet is a set of 1-based line numbers
type LineSet map[int]struct{}

// Add inserts lines into the set
func (s LineSet) Add(lines ...int) {
	for _, n := range lines {
		s[n] = struct{}{}
	}
}

// Has reports whether line n is in the set. A nil set holds nothing
func (s LineSet) Has(n int) bool {
	_, ok := s[n]
	return ok
}
