package recognition

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"

	"github.com/labelproof/backend/internal/domain"
)

// TesseractEngine recognizes label text locally through the gosseract
// Tesseract binding. It satisfies the same TextRecognizer contract as the
// remote client, so deployments without a provider API key can still verify
// labels.
type TesseractEngine struct {
	languages     []string
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine constructs a Tesseract-backed recognizer. languages are
// Tesseract trained-data hints (e.g. "eng", "spa"); empty means the engine
// default.
func NewTesseractEngine(languages []string) *TesseractEngine {
	return &TesseractEngine{
		languages:     languages,
		clientFactory: gosseract.NewClient,
	}
}

// Recognize runs OCR on the image payload. Confidence is the mean word
// confidence reported by Tesseract, scaled to 0..1.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte) (*domain.RecognizedText, error) {
	if len(image) == 0 {
		return nil, domain.ErrInvalidImage
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	client := e.clientFactory()
	defer client.Close()

	if err := client.SetImageFromBytes(image); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidImage, err)
	}
	if len(e.languages) > 0 {
		if err := client.SetLanguage(e.languages...); err != nil {
			return nil, fmt.Errorf("%w: set languages: %v", domain.ErrRecognitionFailed, err)
		}
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecognitionFailed, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrNoTextFound
	}

	return &domain.RecognizedText{
		Text:       text,
		Confidence: meanWordConfidence(client),
	}, nil
}

// meanWordConfidence averages Tesseract's per-word confidence values. Zero
// when the engine reports no word boxes.
func meanWordConfidence(client *gosseract.Client) float64 {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}
	var sum float64
	for _, box := range boxes {
		sum += box.Confidence / 100.0
	}
	return sum / float64(len(boxes))
}
