package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/labelproof/backend/internal/domain"
)

// LabelServiceConfig holds configuration for the label service
type LabelServiceConfig struct {
	CacheTTL                 time.Duration
	RequireGovernmentWarning bool
	EnableDebugLogging       bool
}

// LabelService handles label verification with recognition-result caching
type LabelService struct {
	cache              domain.RecognitionCache
	recognizer         domain.TextRecognizer
	verifier           *VerificationService
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewLabelService creates a new label service with dependencies
func NewLabelService(
	cache domain.RecognitionCache,
	recognizer domain.TextRecognizer,
	config LabelServiceConfig,
) *LabelService {
	verifier := NewVerificationService(VerificationConfig{
		RequireGovernmentWarning: config.RequireGovernmentWarning,
		EnableDebugLogging:       config.EnableDebugLogging,
	})

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &LabelService{
		cache:              cache,
		recognizer:         recognizer,
		verifier:           verifier,
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// VerifyLabelImage recognizes text in the label image and verifies the
// declared data against it.
// Flow: digest image -> check cache -> recognize -> cache -> verify
// Recognition failures resolve here; the verifier only ever sees a
// successfully recognized text.
func (s *LabelService) VerifyLabelImage(
	ctx context.Context,
	declared *domain.DeclaredData,
	image []byte,
) (*domain.VerificationResult, error) {
	if declared == nil || declared.BrandName == "" || declared.ProductClass == "" {
		return nil, domain.ErrInvalidRequest
	}
	if len(image) == 0 {
		return nil, domain.ErrInvalidImage
	}

	recognized, err := s.recognizeWithCache(ctx, image)
	if err != nil {
		return nil, err
	}

	return s.verifier.VerifyLabel(declared, recognized), nil
}

// recognizeWithCache returns a cached recognition result for the image when
// one exists, calling the recognizer and caching on a miss.
func (s *LabelService) recognizeWithCache(ctx context.Context, image []byte) (*domain.RecognizedText, error) {
	key := imageDigest(image)

	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		if s.enableDebugLogging {
			log.Printf("[RECOGNIZE] cache hit for %s", key[:24])
		}
		return cached, nil
	}

	recognized, err := s.recognizer.Recognize(ctx, image)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, recognized, s.cacheTTL); err != nil && s.enableDebugLogging {
		// Caching is best effort; a failed write never fails the request.
		log.Printf("[RECOGNIZE] cache write failed for %s: %v", key[:24], err)
	}

	return recognized, nil
}

// imageDigest keys the recognition cache by payload content, so the same
// image never hits the provider twice within the TTL.
func imageDigest(image []byte) string {
	sum := sha256.Sum256(image)
	return fmt.Sprintf("recognition:%s", hex.EncodeToString(sum[:]))
}
