package service

import (
	pstrings "termswap/internal/platform/strings"
)

const ellipsis = "..."

// snippet returns text[start:end] with up to n runes of context each side,
// flattened to one line and marked where it was cut
func snippet(text string, start, end, n int) string {
	before := pstrings.LastRunes(text[:start], n)
	after := pstrings.TakeRunes(text[end:], n)

	out := before + text[start:end] + after
	if len(before) < start {
		out = ellipsis + out
	}
	if end+len(after) < len(text) {
		out += ellipsis
	}
	return pstrings.Flatten(out)
}
