package service

import (
	"unicode"

	"golang.org/x/text/runes"
)

var han = runes.In(unicode.Han)

// ContainsHan reports whether text has at least one Han character.
// The service only uses it to skip documents when every dictionary source
// contains Han, since only then can a Han-free text hold no term
func ContainsHan(text string) bool {
	for _, r := range text {
		if han.Contains(r) {
			return true
		}
	}
	return false
}
