package usecase

import (
	"log"
	"strconv"

	"github.com/labelproof/backend/internal/domain"
)

// VerificationConfig holds configuration for the verification service
type VerificationConfig struct {
	// RequireGovernmentWarning makes a missing warning statement fail the
	// overall verdict. The default (false) treats warning detection as
	// informational only. This is the single policy switch for the
	// behavior; it is fixed at construction, never per call.
	RequireGovernmentWarning bool
	EnableDebugLogging       bool
}

// VerificationService checks declared label data against recognized text and
// produces a field-by-field report with an overall pass/fail verdict.
type VerificationService struct {
	requireGovernmentWarning bool
	enableDebugLogging       bool
}

// NewVerificationService creates a new verification service with the given configuration
func NewVerificationService(config VerificationConfig) *VerificationService {
	return &VerificationService{
		requireGovernmentWarning: config.RequireGovernmentWarning,
		enableDebugLogging:       config.EnableDebugLogging,
	}
}

// VerifyLabel runs every field extractor exactly once against the recognized
// text and assembles the report. All fields are always evaluated; a mismatch
// is recorded in the result, never returned as an error, and nothing short
// circuits on the first problem. The recognition text and confidence are
// copied through unchanged for audit.
func (s *VerificationService) VerifyLabel(
	declared *domain.DeclaredData,
	recognized *domain.RecognizedText,
) *domain.VerificationResult {
	text := recognized.Text

	result := &domain.VerificationResult{
		SourceText:       recognized.Text,
		SourceConfidence: recognized.Confidence,
	}

	brandValue := ExtractLabelField(text, declared.BrandName)
	result.BrandName = domain.FieldOutcome{
		Matched:        brandValue != nil,
		ExtractedValue: brandValue,
		ExpectedValue:  declared.BrandName,
	}

	classValue := ExtractLabelField(text, declared.ProductClass)
	result.ProductClass = domain.FieldOutcome{
		Matched:        classValue != nil,
		ExtractedValue: classValue,
		ExpectedValue:  declared.ProductClass,
	}

	if declared.AlcoholPercent != nil {
		alcoholValue := ExtractAlcoholPercentage(text, declared.AlcoholPercent)
		result.AlcoholContent = &domain.AlcoholOutcome{
			Matched:        alcoholValue != nil,
			ExtractedValue: alcoholValue,
			ExpectedValue:  *declared.AlcoholPercent,
		}
	}

	if declared.NetContents != "" {
		volumeValue := ExtractVolume(text, declared.NetContents)
		result.NetContents = &domain.FieldOutcome{
			Matched:        volumeValue != nil,
			ExtractedValue: volumeValue,
			ExpectedValue:  declared.NetContents,
		}
	}

	result.GovernmentWarning = CheckGovernmentWarning(text)

	result.OverallMatch = s.computeOverallMatch(result)

	if s.enableDebugLogging {
		log.Printf("[VERIFY] brand=%v class=%v alcohol=%s volume=%s warning=%v overall=%v",
			result.BrandName.Matched,
			result.ProductClass.Matched,
			alcoholState(result.AlcoholContent),
			fieldState(result.NetContents),
			result.GovernmentWarning.Found,
			result.OverallMatch)
	}

	return result
}

// computeOverallMatch is true iff every present field outcome matched.
// Absent optional fields never block a pass. A missing government warning
// only blocks when the service was built with RequireGovernmentWarning.
func (s *VerificationService) computeOverallMatch(result *domain.VerificationResult) bool {
	if !result.BrandName.Matched || !result.ProductClass.Matched {
		return false
	}
	if result.AlcoholContent != nil && !result.AlcoholContent.Matched {
		return false
	}
	if result.NetContents != nil && !result.NetContents.Matched {
		return false
	}
	if s.requireGovernmentWarning && !result.GovernmentWarning.Found {
		return false
	}
	return true
}

// alcoholState and fieldState render an optional outcome for the debug log:
// "absent" when the field was not declared, otherwise the match result.
func alcoholState(o *domain.AlcoholOutcome) string {
	if o == nil {
		return "absent"
	}
	return strconv.FormatBool(o.Matched)
}

func fieldState(o *domain.FieldOutcome) string {
	if o == nil {
		return "absent"
	}
	return strconv.FormatBool(o.Matched)
}
