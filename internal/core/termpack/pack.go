// Package termpack loads term dictionaries (source -> target) from the
// embedded builtin sets and from user files, and reports on their quality
package termpack

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"sort"

	perr "termswap/internal/platform/errors"
)

//go:embed data
var builtin embed.FS

// DefaultSources are the builtin sets loaded when none are named
var DefaultSources = []string{"cn", "hk"}

// Terms maps a source term to its replacement
type Terms map[string]string

// Entry is the extended per-term form accepted in dictionary files
type Entry struct {
	Target   string `json:"target"`
	Category string `json:"category,omitempty"`
}

// File is one parsed dictionary file
type File struct {
	Source  string           // builtin set name, or "custom"
	Name    string           // file name within the set
	Entries map[string]Entry // source -> entry
}

// Terms flattens the file to source -> target
func (f File) Terms() Terms {
	out := make(Terms, len(f.Entries))
	for k, e := range f.Entries {
		out[k] = e.Target
	}
	return out
}

// Sources returns the source terms, sorted
func (t Terms) Sources() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Targets returns the distinct target terms, sorted
func (t Terms) Targets() []string {
	seen := make(map[string]struct{}, len(t))
	out := make([]string, 0, len(t))
	for _, v := range t {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Merge copies src into dst; src wins on conflicts
func Merge(dst, src Terms) {
	for k, v := range src {
		dst[k] = v
	}
}

// Parse decodes one dictionary document.
// Accepted shapes: {"src":"tgt"}, {"terms":{...}} and values of the form {"target":"tgt"}
func Parse(data []byte) (map[string]Entry, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeJSON, "termpack: parse dictionary")
	}
	if inner, ok := top["terms"]; ok && isObject(inner) {
		top = nil
		if err := json.Unmarshal(inner, &top); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeJSON, "termpack: parse terms block")
		}
	}

	out := make(map[string]Entry, len(top))
	for src, raw := range top {
		if src == "" {
			return nil, perr.WithField(perr.Configf("termpack: empty source term"), "source")
		}
		e, err := decodeEntry(raw)
		if err != nil {
			return nil, perr.WithField(err, src)
		}
		out[src] = e
	}
	return out, nil
}

func decodeEntry(raw json.RawMessage) (Entry, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if s == "" {
			return Entry{}, perr.Configf("termpack: empty target")
		}
		return Entry{Target: s}, nil
	}
	if !isObject(raw) {
		return Entry{}, perr.Configf("termpack: term value must be a string or an object with a target")
	}
	var e Entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return Entry{}, perr.Wrap(err, perr.ErrorCodeConfiguration, "termpack: bad term object")
	}
	if e.Target == "" {
		return Entry{}, perr.Configf("termpack: term object has no target")
	}
	return e, nil
}

func isObject(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	return len(b) > 0 && b[0] == '{'
}

// LoadFile reads and parses a user dictionary from disk
func LoadFile(p string) (Terms, error) {
	f, err := readFile(p)
	if err != nil {
		return nil, err
	}
	return f.Terms(), nil
}

func readFile(p string) (File, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return File{}, perr.WithField(perr.NotFoundf("termpack: dictionary %s not found", p), "dict")
		}
		return File{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "termpack: read %s", p)
	}
	entries, err := Parse(data)
	if err != nil {
		return File{}, perr.WithOp(err, "termpack.LoadFile "+p)
	}
	return File{Source: "custom", Name: filepath.Base(p), Entries: entries}, nil
}

// Available lists the builtin set names, sorted
func Available() []string {
	dirs, err := fs.ReadDir(builtin, "data")
	if err != nil {
		return nil
	}
	var out []string
	for _, d := range dirs {
		if d.IsDir() {
			out = append(out, d.Name())
		}
	}
	return out
}

// builtinFiles parses every file of the named sets, sets in the given
// order and files in name order
func builtinFiles(sources ...string) ([]File, error) {
	if len(sources) == 0 {
		sources = DefaultSources
	}
	known := Available()
	var out []File
	for _, src := range sources {
		if !slices.Contains(known, src) {
			return nil, perr.WithField(perr.NotFoundf("termpack: unknown term set %q", src), "source")
		}
		names, err := fs.Glob(builtin, path.Join("data", src, "*.json"))
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "termpack: list %s", src)
		}
		sort.Strings(names)
		for _, n := range names {
			data, err := builtin.ReadFile(n)
			if err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "termpack: read %s", n)
			}
			entries, err := Parse(data)
			if err != nil {
				return nil, perr.WithOp(err, "termpack.builtin "+n)
			}
			out = append(out, File{Source: src, Name: path.Base(n), Entries: entries})
		}
	}
	return out, nil
}

// LoadBuiltin merges the named builtin sets, later files winning
func LoadBuiltin(sources ...string) (Terms, error) {
	files, err := builtinFiles(sources...)
	if err != nil {
		return nil, err
	}
	out := make(Terms, 256)
	for _, f := range files {
		Merge(out, f.Terms())
	}
	return out, nil
}

// Options selects what Load merges
type Options struct {
	Sources    []string // builtin sets; DefaultSources when empty
	CustomPath string   // optional user dictionary, merged last
	NoBuiltin  bool
}

// Load assembles the effective term mapping: builtin sets, then the custom file
func Load(opts Options) (Terms, error) {
	out := make(Terms, 256)
	if !opts.NoBuiltin {
		b, err := LoadBuiltin(opts.Sources...)
		if err != nil {
			return nil, err
		}
		Merge(out, b)
	}
	if opts.CustomPath != "" {
		c, err := LoadFile(opts.CustomPath)
		if err != nil {
			return nil, err
		}
		Merge(out, c)
	}
	return out, nil
}
