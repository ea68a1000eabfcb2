package domain

import (
	"context"
	"time"
)

// TextRecognizer defines the interface for extracting text from an encoded
// image payload. Implementations may call a remote provider or run a local
// OCR engine; callers only ever see text plus confidence or a sentinel error.
type TextRecognizer interface {
	Recognize(ctx context.Context, image []byte) (*RecognizedText, error)
}

// RecognitionCache defines the interface for caching recognition results,
// keyed by a digest of the image payload.
type RecognitionCache interface {
	Get(ctx context.Context, key string) (*RecognizedText, error)
	Set(ctx context.Context, key string, value *RecognizedText, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
