// Package site assembles rendered fragments into the final page.
package site

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultPlaceholder is the token in the page template replaced by fragments.
const DefaultPlaceholder = "<!-- projects -->"

// ErrNoPlaceholder is returned when the page template lacks the placeholder.
var ErrNoPlaceholder = errors.New("template has no placeholder")

// Assemble substitutes the fragments, joined by newlines, for the first
// occurrence of placeholder in page.
func Assemble(page []byte, placeholder string, fragments []string) ([]byte, error) {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	tmpl := string(page)
	if !strings.Contains(tmpl, placeholder) {
		return nil, fmt.Errorf("site: %w: %q", ErrNoPlaceholder, placeholder)
	}
	return []byte(strings.Replace(tmpl, placeholder, strings.Join(fragments, "\n"), 1)), nil
}
