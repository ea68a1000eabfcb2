package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	nonWordRegex        = regexp.MustCompile(`[^\w\s]`)
	multipleSpacesRegex = regexp.MustCompile(`\s+`)
	compactStripRegex   = regexp.MustCompile(`[\s.]`)
)

// Normalize canonicalizes recognized text for comparison: lowercases, strips
// characters outside the word/space class, and collapses runs of whitespace
// (including embedded newlines) into single spaces. Idempotent. Case folding
// and the word class are ASCII-biased; this is a documented limitation of the
// comparison layer, not something corrected silently.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonWordRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// compactNormalize lowercases and removes spaces, newlines, and periods
// entirely. Used for containment checks where recognition may split a value
// across lines ("12\nFL\nOZ" vs "12 FL OZ").
func compactNormalize(s string) string {
	return compactStripRegex.ReplaceAllString(strings.ToLower(s), "")
}
