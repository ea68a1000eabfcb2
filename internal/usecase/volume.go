package usecase

import (
	"regexp"
	"strings"
)

// leadingNumberRegex pulls the numeric token out of a declared volume
// expression, e.g. "12" from "12 FL OZ".
var leadingNumberRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)

// volumeUnits are the unit keywords recognized near a bare numeral.
var volumeUnits = []string{"floz", "oz", "ml", "cl", "liter", "liters", "l"}

// tokenWindow is how many tokens on either side of the numeral are searched
// for a unit keyword. Recognition frequently puts the number and the unit on
// separate lines of a label, which breaks plain substring matching.
const tokenWindow = 2

// ExtractVolume checks whether the declared net-contents value appears in the
// recognized text. Volume checking is always hint driven: with no expected
// value there is nothing to look for and the result is nil. On a direct
// containment hit the expected string is echoed back verbatim; only the
// number-plus-nearby-unit fallback synthesizes a new "<number> <unit>" value.
func ExtractVolume(text, expectedVolume string) *string {
	if expectedVolume == "" {
		return nil
	}

	// Direct containment on compacted forms catches values split across
	// lines or spaced differently than declared.
	compactExpected := compactNormalize(expectedVolume)
	if compactExpected != "" && strings.Contains(compactNormalize(text), compactExpected) {
		echo := expectedVolume
		return &echo
	}

	number := leadingNumberRegex.FindString(expectedVolume)
	if number == "" {
		return nil
	}

	// Find the numeral in the text, then look for a unit keyword within a
	// few tokens of it.
	tokens := strings.Fields(text)
	for i, token := range tokens {
		if !strings.Contains(token, number) {
			continue
		}
		lo := i - tokenWindow
		if lo < 0 {
			lo = 0
		}
		hi := i + tokenWindow
		if hi > len(tokens)-1 {
			hi = len(tokens) - 1
		}
		for j := lo; j <= hi; j++ {
			if unit := matchVolumeUnit(tokens, j); unit != "" {
				found := number + " " + unit
				return &found
			}
		}
	}

	return nil
}

// matchVolumeUnit reports the canonical unit for the token at index j, or ""
// when the token is not a unit keyword. A bare "oz" preceded by "fl" is
// widened to "fl oz".
func matchVolumeUnit(tokens []string, j int) string {
	token := strings.ToLower(strings.Trim(tokens[j], ".,;:()"))
	if token == "fl" && j+1 < len(tokens) &&
		strings.ToLower(strings.Trim(tokens[j+1], ".,;:()")) == "oz" {
		return "fl oz"
	}
	for _, unit := range volumeUnits {
		if token != unit {
			continue
		}
		switch unit {
		case "floz":
			return "fl oz"
		case "oz":
			if j > 0 && strings.ToLower(strings.Trim(tokens[j-1], ".,;:()")) == "fl" {
				return "fl oz"
			}
		case "liters":
			return "liter"
		}
		return unit
	}
	return ""
}
