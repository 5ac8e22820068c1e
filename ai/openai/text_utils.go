package openai

import (
	"strings"
	"unicode"
)

// scrubString normalizes a classifier label: punctuation and symbols are
// dropped, inner whitespace collapses to single spaces, and the result is
// trimmed. Models occasionally wrap labels in quotes or trailing periods.
func scrubString(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
