package domain

// DeclaredData is the user-submitted label metadata to be verified against
// the label photograph. Brand name and product class are mandatory; alcohol
// content and net contents are optional. The delivery layer validates these
// invariants before verification runs, so the core treats them as given.
type DeclaredData struct {
	BrandName      string   `json:"brandName" binding:"required"`
	ProductClass   string   `json:"productClass" binding:"required"`
	AlcoholPercent *float64 `json:"alcoholPercent,omitempty"` // 0-100 when present
	NetContents    string   `json:"netContents,omitempty"`    // free-form, e.g. "12 FL OZ"
}

// RecognizedText is the output of a text-recognition provider: the raw text
// read from the label image plus the provider's confidence in it.
type RecognizedText struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"` // 0..1
}

// FieldOutcome is the per-field verdict for a string-valued label field.
// ExtractedValue is nil when the field could not be located in the text.
type FieldOutcome struct {
	Matched        bool    `json:"matched"`
	ExtractedValue *string `json:"extractedValue"`
	ExpectedValue  string  `json:"expectedValue"`
}

// AlcoholOutcome is the verdict for the numeric alcohol-content field.
type AlcoholOutcome struct {
	Matched        bool     `json:"matched"`
	ExtractedValue *float64 `json:"extractedValue"`
	ExpectedValue  float64  `json:"expectedValue"`
}

// WarningOutcome reports whether a government warning statement was detected
// on the label, and the snippet that triggered the detection.
type WarningOutcome struct {
	Found          bool    `json:"found"`
	MatchedSnippet *string `json:"matchedSnippet,omitempty"`
}

// VerificationResult is the complete field-by-field report for one label
// check. AlcoholContent and NetContents are nil when the corresponding
// declared field was not supplied; absent fields never block OverallMatch.
// SourceText and SourceConfidence carry the recognition output through
// unchanged for audit and display.
type VerificationResult struct {
	BrandName         FieldOutcome    `json:"brandName"`
	ProductClass      FieldOutcome    `json:"productClass"`
	AlcoholContent    *AlcoholOutcome `json:"alcoholContent,omitempty"`
	NetContents       *FieldOutcome   `json:"netContents,omitempty"`
	GovernmentWarning WarningOutcome  `json:"governmentWarning"`
	OverallMatch      bool            `json:"overallMatch"`
	SourceText        string          `json:"sourceText"`
	SourceConfidence  float64         `json:"sourceConfidence"`
}
