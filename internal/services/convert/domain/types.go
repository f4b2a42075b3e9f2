// Package domain defines the types and ports of the convert service
package domain

import "termswap/internal/core/termpack"

// Document is one named text to check or fix
type Document struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Issue is one replaceable term found in a document
type Issue struct {
	Line    int    `json:"line"`   // 1-based
	Column  int    `json:"column"` // 1-based, in runes
	Source  string `json:"source"`
	Target  string `json:"target"`
	Start   int    `json:"start"` // byte offsets into the text
	End     int    `json:"end"`
	Context string `json:"context"`
}

// Result is the outcome for one document
type Result struct {
	Name     string  `json:"name"`
	Issues   []Issue `json:"issues"`
	Fixed    *string `json:"fixed,omitempty"` // set by Fix only
	Modified bool    `json:"modified"`
	Skipped  bool    `json:"skipped"` // no Han text, nothing to do
}

// Summary is the outcome of one batch run
type Summary struct {
	RunID      string   `json:"run_id"`
	Documents  int      `json:"documents"`
	Checked    int      `json:"checked"`
	WithIssues int      `json:"with_issues"`
	Modified   int      `json:"modified"`
	Skipped    int      `json:"skipped"`
	Issues     int      `json:"issues"`
	ElapsedMS  int64    `json:"elapsed_ms"`
	Results    []Result `json:"results"`
}

// TermsInfo describes the loaded dictionary
type TermsInfo struct {
	Loaded    int                 `json:"loaded"`
	Protected int                 `json:"protected"` // identity entries
	Sources   []string            `json:"sources"`
	Custom    string              `json:"custom,omitempty"`
	Sets      []termpack.SetStats `json:"sets"`
}
