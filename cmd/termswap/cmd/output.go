package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"termswap/internal/services/convert/domain"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatIssue renders one issue as path:line:col "src" → "tgt"
func formatIssue(path string, is domain.Issue) string {
	return fmt.Sprintf("%s:%d:%d %q → %q", path, is.Line, is.Column, is.Source, is.Target)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
