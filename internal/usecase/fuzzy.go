package usecase

import "strings"

const (
	// minSubsetWordLen is the shortest word length that participates in
	// word-subset matching; shorter tokens are too noisy to anchor a match.
	minSubsetWordLen = 3

	// charSimilarityThreshold is the fraction of positions that must match
	// in the character-level comparison.
	charSimilarityThreshold = 0.70

	// charLengthDiffMax gates the character-level comparison to strings of
	// near-equal length. The target is single-glyph misreads in short brand
	// tokens; the false-positive risk grows with length.
	charLengthDiffMax = 2
)

// ocrConfusions maps characters that optical recognition commonly misreads
// for one another. A plain static lookup; confusable checks both directions
// so each pair only needs to be listed once.
var ocrConfusions = map[rune]string{
	'o': "0ce",
	'i': "l1",
	'l': "1",
	'c': "e",
	's': "5",
	'b': "8",
	'z': "2",
	'g': "9",
}

func confusable(a, b rune) bool {
	return strings.ContainsRune(ocrConfusions[a], b) ||
		strings.ContainsRune(ocrConfusions[b], a)
}

// FuzzyMatch reports whether an expected label value and an extracted span
// should be treated as the same despite recognition noise. Checks run
// cheapest first and short-circuit on the first hit:
//
//  1. normalized equality
//  2. normalized containment, either direction
//  3. word-subset: every expected word is a substring of some extracted word
//     (handles "Bourbon Whiskey" inside "Kentucky Straight Bourbon Whiskey")
//  4. the reverse subset when both sides have the same word count
//  5. character-level similarity with the optical-confusion table, for
//     near-equal-length strings only
//
// No single metric fits both long descriptive phrases and short proper nouns
// with misread glyphs, hence the cascade. Not commutative for unequal-length
// inputs; callers pass the declared value first.
func FuzzyMatch(expected, extracted string) bool {
	normExpected := Normalize(expected)
	normExtracted := Normalize(extracted)
	if normExpected == "" || normExtracted == "" {
		return false
	}

	if normExpected == normExtracted {
		return true
	}

	if strings.Contains(normExtracted, normExpected) || strings.Contains(normExpected, normExtracted) {
		return true
	}

	expectedWords := subsetWords(normExpected)
	extractedWords := subsetWords(normExtracted)
	if wordSubset(expectedWords, extractedWords) {
		return true
	}
	if len(expectedWords) == len(extractedWords) && wordSubset(extractedWords, expectedWords) {
		return true
	}

	return charSimilar(normExpected, normExtracted)
}

// subsetWords splits a normalized string into the words that participate in
// subset matching.
func subsetWords(s string) []string {
	var words []string
	for _, word := range strings.Fields(s) {
		if len(word) >= minSubsetWordLen {
			words = append(words, word)
		}
	}
	return words
}

// wordSubset reports whether every needle word is a substring of some
// haystack word.
func wordSubset(needles, haystack []string) bool {
	if len(needles) == 0 {
		return false
	}
	for _, needle := range needles {
		found := false
		for _, h := range haystack {
			if strings.Contains(h, needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// charSimilar walks two strings position by position, counting a position as
// matching when the characters are equal or optically confusable. Only
// applies when the lengths differ by at most charLengthDiffMax; the match
// ratio uses the longer length so missing tail characters count against it.
func charSimilar(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	shorter, longer := len(ra), len(rb)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	if longer == 0 || longer-shorter > charLengthDiffMax {
		return false
	}

	matches := 0
	for i := 0; i < shorter; i++ {
		if ra[i] == rb[i] || confusable(ra[i], rb[i]) {
			matches++
		}
	}
	return float64(matches)/float64(longer) >= charSimilarityThreshold
}
