package usecase

import (
	"regexp"

	"github.com/labelproof/backend/internal/domain"
)

// warningPatterns is the ordered list of government-warning phrases: the
// mandatory statement first, then partial phrases and non-English variants
// found on international packaging. The list is deliberately permissive
// (recall over precision) since a hit only ever adds information to the
// report; it never fails a label on its own.
var warningPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)government\s+warning`),
	regexp.MustCompile(`(?i)surgeon\s+general`),
	regexp.MustCompile(`(?i)women\s+should\s+not\s+drink`),
	regexp.MustCompile(`(?i)risk\s+of\s+birth\s+defects`),
	regexp.MustCompile(`(?i)impairs?\s+(?:your\s+)?ability`),
	regexp.MustCompile(`(?i)drive\s+a\s+car\s+or\s+operate\s+machinery`),
	regexp.MustCompile(`(?i)may\s+cause\s+health\s+problems`),
	regexp.MustCompile(`(?i)advertencia`),
	regexp.MustCompile(`(?i)avertissement`),
	regexp.MustCompile(`(?i)warnhinweis`),
	regexp.MustCompile(`(?i)consumo\s+de\s+alcohol`),
}

// CheckGovernmentWarning tests recognized text for a government warning
// statement and reports the first matching pattern's span. Pure detection:
// no declared data is involved.
func CheckGovernmentWarning(text string) domain.WarningOutcome {
	for _, pattern := range warningPatterns {
		if snippet := pattern.FindString(text); snippet != "" {
			return domain.WarningOutcome{Found: true, MatchedSnippet: &snippet}
		}
	}
	return domain.WarningOutcome{Found: false}
}
