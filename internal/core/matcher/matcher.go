package matcher

// Located is a resolved match with its 1-based line and rune column
type Located struct {
	Match
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Stats summarizes what one text would change
type Stats struct {
	Matches int            `json:"matches"`
	Unique  int            `json:"unique"`
	Counts  map[string]int `json:"counts"` // source -> occurrences
}

// BuildIndex compiles terms into an Index. See Build
func BuildIndex(terms map[string]string) (*Index, error) { return Build(terms) }

// FindMatches scans text and resolves the result
func FindMatches(idx *Index, text string) []Match { return Resolve(idx.Scan(text)) }

// ApplyMatches substitutes matches into text. See Apply
func ApplyMatches(text string, matches []Match) string { return Apply(text, matches) }

// FindMatchesWithLines resolves text and attaches line and column to each match
func FindMatchesWithLines(idx *Index, text string) []Located {
	return FindMatchesIgnoring(idx, text, nil)
}

// FindMatchesIgnoring resolves text, then drops matches starting on an ignored line.
// Filtering happens after resolution so suppressed text still shadows its neighbours
func FindMatchesIgnoring(idx *Index, text string, ignored LineSet) []Located {
	ms := FindMatches(idx, text)
	if len(ms) == 0 {
		return nil
	}
	li := NewLineIndex(text)
	out := make([]Located, 0, len(ms))
	for _, m := range ms {
		line, col := li.Position(m.Start)
		if ignored.Has(line) {
			continue
		}
		out = append(out, Located{Match: m, Line: line, Column: col})
	}
	return out
}

// Plain strips position info from located matches
func Plain(ls []Located) []Match {
	out := make([]Match, len(ls))
	for i, l := range ls {
		out[i] = l.Match
	}
	return out
}

// Replace resolves and substitutes in one call, returning the new text and
// the number of replacements made
func Replace(idx *Index, text string) (string, int) {
	ms := FindMatches(idx, text)
	return Apply(text, ms), len(ms)
}

// Has reports whether text contains at least one replaceable term
func Has(idx *Index, text string) bool { return len(FindMatches(idx, text)) > 0 }

// Count returns the number of resolved matches in text
func Count(idx *Index, text string) int { return len(FindMatches(idx, text)) }

// Summarize counts resolved matches per source term
func Summarize(idx *Index, text string) Stats {
	ms := FindMatches(idx, text)
	st := Stats{Matches: len(ms), Counts: make(map[string]int)}
	for _, m := range ms {
		st.Counts[m.Source]++
	}
	st.Unique = len(st.Counts)
	return st
}
