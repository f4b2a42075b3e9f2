package matcher

import (
	"cmp"
	"iter"
	"slices"
	"sort"
	"strings"
)

// Match is a resolved replacement: non-identity, non-overlapping with
// any other Match from the same resolution
type Match struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Source string `json:"source"`
	Target string `json:"target"`
}

type span struct{ start, end int }

// ProtectedRanges is the merged union of identity spans found in one scan.
// Ranges are sorted and disjoint
type ProtectedRanges []span

// NewProtectedRanges collects and merges the spans of identity occurrences
func NewProtectedRanges(occs []Occurrence) ProtectedRanges {
	var spans []span
	for _, o := range occs {
		if o.Identity() && o.End > o.Start {
			spans = append(spans, span{o.Start, o.End})
		}
	}
	if len(spans) == 0 {
		return nil
	}
	slices.SortFunc(spans, func(a, b span) int { return cmp.Compare(a.start, b.start) })

	out := spans[:1]
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if s.start <= last.end {
			last.end = max(last.end, s.end)
			continue
		}
		out = append(out, s)
	}
	return out
}

// Overlaps reports whether any offset in [start, end) is protected
func (p ProtectedRanges) Overlaps(start, end int) bool {
	if len(p) == 0 || end <= start {
		return false
	}
	// first range ending after start; ends grow with starts since ranges are disjoint
	i := sort.Search(len(p), func(i int) bool { return p[i].end > start })
	return i < len(p) && p[i].start < end
}

// Contains reports whether the single offset off is protected
func (p ProtectedRanges) Contains(off int) bool { return p.Overlaps(off, off+1) }

// Resolve turns raw occurrences into the final replacement set.
//
// Candidates are ordered by start, longer first on ties. The walk keeps
// the leftmost candidate that does not overlap an earlier accepted one.
// Non-identity candidates touching a protected range are discarded.
// Identity candidates are accepted for overlap purposes but never emitted
func Resolve(occs iter.Seq[Occurrence]) []Match {
	all := slices.Collect(occs)
	if len(all) == 0 {
		return nil
	}
	slices.SortStableFunc(all, func(a, b Occurrence) int {
		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}
		return cmp.Compare(b.Len(), a.Len())
	})

	protected := NewProtectedRanges(all)

	var out []Match
	lastEnd := -1
	for _, o := range all {
		if o.Start < lastEnd {
			continue
		}
		if !o.Identity() && protected.Overlaps(o.Start, o.End) {
			continue
		}
		lastEnd = o.End
		if !o.Identity() {
			out = append(out, Match{Start: o.Start, End: o.End, Source: o.Source, Target: o.Target})
		}
	}
	return out
}

// Apply substitutes matches into text from right to left so earlier
// offsets stay valid. Matches that fall outside text, overlap an already
// applied match, or whose span no longer holds their source are skipped
func Apply(text string, matches []Match) string {
	if len(matches) == 0 {
		return text
	}
	ms := slices.Clone(matches)
	slices.SortStableFunc(ms, func(a, b Match) int { return cmp.Compare(b.Start, a.Start) })

	parts := make([]string, 0, 2*len(ms)+1)
	cursor := len(text)
	for _, m := range ms {
		if m.Start < 0 || m.Start > m.End || m.End > cursor {
			continue
		}
		if m.Source != "" && text[m.Start:m.End] != m.Source {
			continue
		}
		parts = append(parts, text[m.End:cursor], m.Target)
		cursor = m.Start
	}
	parts = append(parts, text[:cursor])
	slices.Reverse(parts)
	return strings.Join(parts, "")
}
