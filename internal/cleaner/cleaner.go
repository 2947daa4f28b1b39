// Package cleaner strips HTML from text coming back from external
// sources before it enters a JobRecord. Search snippets in particular
// arrive with <b> highlighting and entity escapes.
package cleaner

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Cleaner sanitizes source text using a strict Bluemonday policy.
type Cleaner struct {
	policy *bluemonday.Policy
}

// New creates a cleaner that strips all HTML.
func New() *Cleaner {
	return &Cleaner{policy: bluemonday.StrictPolicy()}
}

// Text removes all markup from s, decodes HTML entities and collapses
// surrounding whitespace.
func (c *Cleaner) Text(s string) string {
	text := c.policy.Sanitize(s)
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, "\n\n\n", "\n\n")
	return strings.TrimSpace(text)
}
