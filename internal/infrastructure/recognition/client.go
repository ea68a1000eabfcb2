package recognition

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/labelproof/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Failure kinds reported by the recognition provider
const (
	failureKindInvalidImage      = "INVALID_IMAGE"
	failureKindNoTextFound       = "NO_TEXT_FOUND"
	failureKindRecognitionFailed = "RECOGNITION_FAILED"
)

// Client handles communication with the remote text-recognition API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// recognizeResponse is the provider's success payload
type recognizeResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// recognizeFailure is the provider's tagged failure payload
type recognizeFailure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// NewClient creates a new recognition API client. requestsPerHour caps the
// outbound rate; zero or negative falls back to the provider's documented
// limit of 3600 requests per hour.
func NewClient(apiKey, baseURL string, requestsPerHour int) *Client {
	if requestsPerHour <= 0 {
		requestsPerHour = 3600
	}
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerHour)/3600.0), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables or disables request logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// exponentialBackoff returns the wait before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * 500 * time.Millisecond
}

// Recognize submits an image payload and returns the recognized text.
// Transient failures are retried up to 3 times with backoff; tagged provider
// failures map to domain sentinel errors, and only RECOGNITION_FAILED counts
// as transient.
func (c *Client) Recognize(ctx context.Context, image []byte) (*domain.RecognizedText, error) {
	if len(image) == 0 {
		return nil, domain.ErrInvalidImage
	}

	endpoint := fmt.Sprintf("%s/v1/recognize", c.baseURL)
	params := url.Values{}
	params.Add("api_key", c.apiKey)
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(image))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/octet-stream")
		req.Header.Set("User-Agent", "LabelProof/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if c.debug {
				log.Printf("[RECOGNITION] request error (attempt %d): %v", attempt, err)
			}
			lastErr = fmt.Errorf("%w: %v", domain.ErrRecognitionAPIFailure, err)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			failureErr, retryable := mapFailure(resp.StatusCode, body)
			if c.debug {
				log.Printf("[RECOGNITION] API error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			if !retryable {
				return nil, failureErr
			}
			lastErr = failureErr
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var recognized recognizeResponse
		if err := json.Unmarshal(body, &recognized); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		if c.debug {
			log.Printf("[RECOGNITION] recognized %d chars (confidence %.2f)", len(recognized.Text), recognized.Confidence)
		}

		return &domain.RecognizedText{
			Text:       recognized.Text,
			Confidence: clampConfidence(recognized.Confidence),
		}, nil
	}

	return nil, lastErr
}

// mapFailure converts a provider error response into a domain error and
// reports whether the failure is worth retrying.
func mapFailure(status int, body []byte) (error, bool) {
	var failure recognizeFailure
	if err := json.Unmarshal(body, &failure); err == nil && failure.Kind != "" {
		switch failure.Kind {
		case failureKindInvalidImage:
			return fmt.Errorf("%w: %s", domain.ErrInvalidImage, failure.Message), false
		case failureKindNoTextFound:
			return fmt.Errorf("%w: %s", domain.ErrNoTextFound, failure.Message), false
		case failureKindRecognitionFailed:
			return fmt.Errorf("%w: %s", domain.ErrRecognitionFailed, failure.Message), true
		}
	}
	return fmt.Errorf("%w: status %d", domain.ErrRecognitionAPIFailure, status), status >= http.StatusInternalServerError
}

// clampConfidence keeps provider confidence inside [0, 1]
func clampConfidence(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}
