package usecase

import (
	"math"
	"regexp"
	"strconv"
)

// alcoholTolerance absorbs typical recognition noise on decimal points and
// trailing digits without masking a true mismatch (5.0 vs 5.5 still fails).
const alcoholTolerance = 0.1

// toleranceEpsilon guards the float representation at the exact boundary so
// that a difference of 0.1 is inclusive and 0.11 is not.
const toleranceEpsilon = 1e-9

// alcoholPatterns is the ordered list of alcohol-statement patterns. They run
// against the raw text, not the normalized form, because "%" and "/" do not
// survive normalization. Ordering is part of the contract: the first
// candidate that parses and passes the range and tolerance checks wins.
var alcoholPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*abv`),
	regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*alc\s*\.?\s*/\s*vol`),
	regexp.MustCompile(`(?i)alcohol\s+by\s+volume\s*:?\s*(\d+(?:\.\d+)?)`),
	regexp.MustCompile(`(?i)alc\.?\s+(\d+(?:\.\d+)?)\s*%?`),
}

// ExtractAlcoholPercentage scans raw recognized text for an alcohol-content
// statement. Candidates outside (0, 100] are rejected. When expected is
// supplied, only a candidate within the tolerance of the expected value is
// accepted, and the candidate's parsed value is returned, not the expected
// one. With no expected value the first plausible candidate is returned;
// that mode exists for callers without declared data and is explicitly a
// degraded one.
func ExtractAlcoholPercentage(text string, expected *float64) *float64 {
	for _, pattern := range alcoholPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			candidate, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			if candidate <= 0 || candidate > 100 {
				continue
			}
			if expected == nil {
				return &candidate
			}
			if math.Abs(candidate-*expected) <= alcoholTolerance+toleranceEpsilon {
				return &candidate
			}
		}
	}
	return nil
}
