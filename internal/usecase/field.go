package usecase

import "strings"

// ExtractLabelField reports whether an expected label value (brand name or
// product class) appears in the recognized text. Declared data is mandatory
// context here: with no expected value there is nothing to look for, so the
// result is nil rather than an attempt at open-ended discovery. On success
// the expected value is echoed back verbatim; the extractor asserts "this
// value is present on the label", it does not transcribe what it saw.
func ExtractLabelField(text, expected string) *string {
	if expected == "" {
		return nil
	}

	normExpected := Normalize(expected)
	if normExpected == "" {
		return nil
	}

	if strings.Contains(Normalize(text), normExpected) {
		echo := expected
		return &echo
	}

	// Fall back to the fuzzy cascade before declaring a miss; recognition
	// noise regularly breaks plain containment.
	if FuzzyMatch(expected, text) {
		echo := expected
		return &echo
	}

	return nil
}
