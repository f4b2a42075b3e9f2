package termpack

import (
	"sort"
)

// FileStats counts terms in one dictionary file
type FileStats struct {
	Name       string         `json:"name"`
	Terms      int            `json:"terms"`
	Categories map[string]int `json:"categories,omitempty"`
}

// SetStats counts terms per file of one builtin set
type SetStats struct {
	Source string      `json:"source"`
	Files  []FileStats `json:"files"`
	Total  int         `json:"total"`
}

// Stats reports per-file term counts for the named builtin sets
func Stats(sources ...string) ([]SetStats, error) {
	files, err := builtinFiles(sources...)
	if err != nil {
		return nil, err
	}
	var out []SetStats
	idx := map[string]int{}
	for _, f := range files {
		i, ok := idx[f.Source]
		if !ok {
			i = len(out)
			idx[f.Source] = i
			out = append(out, SetStats{Source: f.Source})
		}
		st := FileStats{Name: f.Name, Terms: len(f.Entries)}
		for _, e := range f.Entries {
			if e.Category == "" {
				continue
			}
			if st.Categories == nil {
				st.Categories = map[string]int{}
			}
			st.Categories[e.Category]++
		}
		out[i].Files = append(out[i].Files, st)
		out[i].Total += st.Terms
	}
	return out, nil
}

// Conflict is a rewrite whose target is itself rewritten by another term,
// so fixing a text twice would change it again
type Conflict struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Next   string `json:"next"` // what Target would become
}

// Duplicate is a source defined by more than one file
type Duplicate struct {
	Source  string   `json:"source"`
	Files   []string `json:"files"`
	Targets []string `json:"targets"`
}

// Report is the outcome of a dictionary quality check
type Report struct {
	Terms           int         `json:"terms"`
	TargetConflicts []Conflict  `json:"target_conflicts,omitempty"`
	Duplicates      []Duplicate `json:"duplicates,omitempty"`
	Protected       []string    `json:"protected,omitempty"` // identity terms, informational
}

// OK reports whether the check found no problems
func (r Report) OK() bool { return len(r.TargetConflicts) == 0 && len(r.Duplicates) == 0 }

// Check inspects files as they would be merged, in order
func Check(files []File) Report {
	merged := make(Terms, 256)
	origin := map[string][]string{}
	targets := map[string][]string{}
	for _, f := range files {
		label := f.Source + "/" + f.Name
		for src, e := range f.Entries {
			merged[src] = e.Target
			origin[src] = append(origin[src], label)
			targets[src] = append(targets[src], e.Target)
		}
	}

	r := Report{Terms: len(merged)}
	for _, src := range merged.Sources() {
		tgt := merged[src]
		if src == tgt {
			r.Protected = append(r.Protected, src)
			continue
		}
		if next, ok := merged[tgt]; ok && next != tgt {
			r.TargetConflicts = append(r.TargetConflicts, Conflict{Source: src, Target: tgt, Next: next})
		}
		if len(origin[src]) > 1 {
			r.Duplicates = append(r.Duplicates, Duplicate{Source: src, Files: origin[src], Targets: targets[src]})
		}
	}
	// identity entries may be duplicated too
	for _, src := range r.Protected {
		if len(origin[src]) > 1 {
			r.Duplicates = append(r.Duplicates, Duplicate{Source: src, Files: origin[src], Targets: targets[src]})
		}
	}
	sort.Slice(r.Duplicates, func(i, j int) bool { return r.Duplicates[i].Source < r.Duplicates[j].Source })
	return r
}

// Validate checks the dictionary Load(opts) would produce
func Validate(opts Options) (Report, error) {
	var files []File
	if !opts.NoBuiltin {
		b, err := builtinFiles(opts.Sources...)
		if err != nil {
			return Report{}, err
		}
		files = append(files, b...)
	}
	if opts.CustomPath != "" {
		f, err := readFile(opts.CustomPath)
		if err != nil {
			return Report{}, err
		}
		files = append(files, f)
	}
	return Check(files), nil
}
