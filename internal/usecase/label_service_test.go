package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labelproof/backend/internal/domain"
)

// fakeRecognizer returns a canned result and counts invocations.
type fakeRecognizer struct {
	result *domain.RecognizedText
	err    error
	calls  int
}

func (f *fakeRecognizer) Recognize(ctx context.Context, image []byte) (*domain.RecognizedText, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakeCache is a minimal in-memory RecognitionCache without TTL handling.
type fakeCache struct {
	data map[string]*domain.RecognizedText
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]*domain.RecognizedText)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (*domain.RecognizedText, error) {
	if value, ok := f.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (f *fakeCache) Set(ctx context.Context, key string, value *domain.RecognizedText, ttl time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := f.data[key]
	return ok, nil
}

func TestVerifyLabelImage(t *testing.T) {
	ctx := context.Background()
	declared := &domain.DeclaredData{
		BrandName:      "Budweiser",
		ProductClass:   "Beer",
		AlcoholPercent: floatPtr(5.0),
		NetContents:    "12 FL OZ",
	}
	image := []byte("fake-image-bytes")

	t.Run("recognizes and verifies", func(t *testing.T) {
		recognizer := &fakeRecognizer{result: &domain.RecognizedText{
			Text:       "Budweiser Premium Beer 5.0% ABV 12 FL OZ Government Warning",
			Confidence: 0.9,
		}}
		svc := NewLabelService(newFakeCache(), recognizer, LabelServiceConfig{})

		result, err := svc.VerifyLabelImage(ctx, declared, image)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.OverallMatch {
			t.Error("OverallMatch = false, want true")
		}
		if recognizer.calls != 1 {
			t.Errorf("recognizer calls = %d, want 1", recognizer.calls)
		}
	})

	t.Run("repeated image served from cache", func(t *testing.T) {
		recognizer := &fakeRecognizer{result: &domain.RecognizedText{Text: "Budweiser Beer", Confidence: 0.8}}
		svc := NewLabelService(newFakeCache(), recognizer, LabelServiceConfig{})

		if _, err := svc.VerifyLabelImage(ctx, declared, image); err != nil {
			t.Fatalf("first call error: %v", err)
		}
		if _, err := svc.VerifyLabelImage(ctx, declared, image); err != nil {
			t.Fatalf("second call error: %v", err)
		}
		if recognizer.calls != 1 {
			t.Errorf("recognizer calls = %d, want 1 (second call cached)", recognizer.calls)
		}
	})

	t.Run("different images get distinct cache entries", func(t *testing.T) {
		recognizer := &fakeRecognizer{result: &domain.RecognizedText{Text: "Budweiser Beer", Confidence: 0.8}}
		svc := NewLabelService(newFakeCache(), recognizer, LabelServiceConfig{})

		svc.VerifyLabelImage(ctx, declared, []byte("image-a"))
		svc.VerifyLabelImage(ctx, declared, []byte("image-b"))
		if recognizer.calls != 2 {
			t.Errorf("recognizer calls = %d, want 2", recognizer.calls)
		}
	})

	t.Run("rejects missing declared data", func(t *testing.T) {
		svc := NewLabelService(newFakeCache(), &fakeRecognizer{}, LabelServiceConfig{})

		if _, err := svc.VerifyLabelImage(ctx, nil, image); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest", err)
		}
		bad := &domain.DeclaredData{ProductClass: "Beer"}
		if _, err := svc.VerifyLabelImage(ctx, bad, image); !errors.Is(err, domain.ErrInvalidRequest) {
			t.Errorf("error = %v, want ErrInvalidRequest for empty brand", err)
		}
	})

	t.Run("rejects empty image", func(t *testing.T) {
		svc := NewLabelService(newFakeCache(), &fakeRecognizer{}, LabelServiceConfig{})
		if _, err := svc.VerifyLabelImage(ctx, declared, nil); !errors.Is(err, domain.ErrInvalidImage) {
			t.Errorf("error = %v, want ErrInvalidImage", err)
		}
	})

	t.Run("propagates recognition failure", func(t *testing.T) {
		recognizer := &fakeRecognizer{err: domain.ErrNoTextFound}
		svc := NewLabelService(newFakeCache(), recognizer, LabelServiceConfig{})

		_, err := svc.VerifyLabelImage(ctx, declared, image)
		if !errors.Is(err, domain.ErrNoTextFound) {
			t.Errorf("error = %v, want ErrNoTextFound", err)
		}
	})
}

func TestImageDigest(t *testing.T) {
	t.Run("stable for identical payloads", func(t *testing.T) {
		if imageDigest([]byte("abc")) != imageDigest([]byte("abc")) {
			t.Error("digest not stable for identical payloads")
		}
	})

	t.Run("distinct for different payloads", func(t *testing.T) {
		if imageDigest([]byte("abc")) == imageDigest([]byte("abd")) {
			t.Error("digest collision for different payloads")
		}
	})
}
