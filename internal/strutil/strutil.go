// Package strutil contains small string helpers shared across the
// pipeline.
package strutil

import (
	"strings"
	"unicode"
)

// Title capitalizes the first letter of every word, lowercasing the
// rest. A word starts after any non-letter, so "node.js" becomes
// "Node.Js".
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// Truncate shortens s to limit runes, appending an ellipsis when
// something was cut.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// ContainsAny reports whether s contains at least one of the terms.
func ContainsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
