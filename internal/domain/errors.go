package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrInvalidImage is returned when the provider cannot process the image payload
	ErrInvalidImage = errors.New("image could not be processed")

	// ErrNoTextFound is returned when the provider finds no text in the image
	ErrNoTextFound = errors.New("no text found in image")

	// ErrRecognitionFailed is returned when the recognition engine itself fails
	ErrRecognitionFailed = errors.New("text recognition failed")

	// ErrRecognitionAPIFailure is returned when the recognition API request fails
	ErrRecognitionAPIFailure = errors.New("recognition API request failed")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
