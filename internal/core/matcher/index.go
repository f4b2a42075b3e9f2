// Package matcher finds term occurrences in text with a single
// Aho-Corasick pass and resolves them into a non-overlapping replacement set.
// Offsets are byte offsets into the scanned string
package matcher

import (
	"iter"
	"sort"
	"unicode/utf8"

	perr "termswap/internal/platform/errors"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Occurrence is one raw hit of a source term, before resolution
// End-Start always equals len(Source)
type Occurrence struct {
	Start  int
	End    int
	Source string
	Target string
}

// Identity reports whether the occurrence maps a term onto itself.
// Identity hits never rewrite text; they protect their span from other terms
func (o Occurrence) Identity() bool { return o.Source == o.Target }

// Len is the byte length of the matched span
func (o Occurrence) Len() int { return o.End - o.Start }

type entry struct {
	source string
	target string
}

// Index is a compiled, immutable pattern index.
// A single Index may be scanned from many goroutines at once
type Index struct {
	ac       aho.AhoCorasick
	entries  []entry // pattern id -> payload
	identity int
}

// Build compiles terms (source -> target) into an Index.
// An empty mapping yields an Index that matches nothing
func Build(terms map[string]string) (*Index, error) {
	sources := make([]string, 0, len(terms))
	for src := range terms {
		if src == "" {
			return nil, perr.WithOp(
				perr.WithField(perr.Configf("term mapping contains an empty source"), "source"),
				"matcher.Build",
			)
		}
		if !utf8.ValidString(src) {
			return nil, perr.WithOp(
				perr.WithField(perr.Configf("term source %q is not valid UTF-8", src), src),
				"matcher.Build",
			)
		}
		sources = append(sources, src)
	}

	// deterministic pattern ids
	sort.Strings(sources)

	x := &Index{entries: make([]entry, len(sources))}
	for i, src := range sources {
		tgt := terms[src]
		x.entries[i] = entry{source: src, target: tgt}
		if src == tgt {
			x.identity++
		}
	}
	if len(sources) == 0 {
		return x, nil
	}

	// StandardMatch is required for overlapping iteration
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		MatchKind: aho.StandardMatch,
		DFA:       true,
	})
	x.ac = builder.Build(sources)
	return x, nil
}

// Scan lazily yields every occurrence of every source term in text,
// including nested and overlapping ones and identity hits.
// Each call starts a fresh pass; the Index is never mutated
func (x *Index) Scan(text string) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		if x == nil || len(x.entries) == 0 || text == "" {
			return
		}
		it := x.ac.IterOverlappingByte([]byte(text))
		for m := it.Next(); m != nil; m = it.Next() {
			e := x.entries[m.Pattern()]
			occ := Occurrence{Start: m.Start(), End: m.End(), Source: e.source, Target: e.target}
			if !yield(occ) {
				return
			}
		}
	}
}

// Len returns the number of compiled terms
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.entries)
}

// IdentityCount returns how many terms map onto themselves
func (x *Index) IdentityCount() int {
	if x == nil {
		return 0
	}
	return x.identity
}

// EverySource reports whether pred holds for every compiled source.
// It is vacuously true for an empty index
func (x *Index) EverySource(pred func(source string) bool) bool {
	if x == nil {
		return true
	}
	for _, e := range x.entries {
		if !pred(e.source) {
			return false
		}
	}
	return true
}

// Lookup returns the target for source, if the term is compiled in
func (x *Index) Lookup(source string) (string, bool) {
	if x == nil {
		return "", false
	}
	i := sort.Search(len(x.entries), func(i int) bool { return x.entries[i].source >= source })
	if i < len(x.entries) && x.entries[i].source == source {
		return x.entries[i].target, true
	}
	return "", false
}
