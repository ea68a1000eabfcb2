package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCORSMiddleware(t *testing.T) {
	t.Run("sets headers for allowed origin", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"http://localhost:3000"}))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Access-Control-Allow-Origin = %q, want http://localhost:3000", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("Access-Control-Allow-Credentials = %q, want true", got)
		}
	})

	t.Run("omits headers for disallowed origin", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"http://localhost:3000"}))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Access-Control-Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("supports wildcard suffix origins", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"https://app.labelproof.*"}))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "https://app.labelproof.io")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.labelproof.io" {
			t.Errorf("Access-Control-Allow-Origin = %q, want the wildcard-matched origin", got)
		}
	})

	t.Run("answers preflight with no content", func(t *testing.T) {
		router := gin.New()
		router.Use(CORSMiddleware([]string{"http://localhost:3000"}))
		router.POST("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		req, _ := http.NewRequest("OPTIONS", "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Status = %d, want %d", w.Code, http.StatusNoContent)
		}
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates an id when none supplied", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestIDMiddleware())
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		req, _ := http.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Header().Get("X-Request-ID") == "" {
			t.Error("X-Request-ID header is empty, want generated id")
		}
	})

	t.Run("echoes a client-supplied id", func(t *testing.T) {
		router := gin.New()
		router.Use(RequestIDMiddleware())
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		req, _ := http.NewRequest("GET", "/test", nil)
		req.Header.Set("X-Request-ID", "client-id-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "client-id-123" {
			t.Errorf("X-Request-ID = %q, want client-id-123", got)
		}
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows requests within the limit", func(t *testing.T) {
		router := gin.New()
		router.Use(RateLimitMiddleware(60))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 5; i++ {
			req, _ := http.NewRequest("GET", "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d: Status = %d, want %d", i, w.Code, http.StatusOK)
			}
		}
	})

	t.Run("rejects requests over the burst", func(t *testing.T) {
		// Burst equals the per-minute limit; exceed it to trip the limiter.
		router := gin.New()
		router.Use(RateLimitMiddleware(2))
		router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

		var lastCode int
		for i := 0; i < 4; i++ {
			req, _ := http.NewRequest("GET", "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			lastCode = w.Code
		}

		if lastCode != http.StatusTooManyRequests {
			t.Errorf("Status = %d, want %d after exceeding burst", lastCode, http.StatusTooManyRequests)
		}
	})
}
