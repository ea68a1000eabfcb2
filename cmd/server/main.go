package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labelproof/backend/config"
	httpDelivery "github.com/labelproof/backend/internal/delivery/http"
	"github.com/labelproof/backend/internal/domain"
	"github.com/labelproof/backend/internal/infrastructure/cache"
	"github.com/labelproof/backend/internal/infrastructure/recognition"
	"github.com/labelproof/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting LabelProof Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Recognition provider: %s", cfg.Recognition.Provider)

	// Initialize infrastructure dependencies
	recognitionCache := cache.NewMemoryCache()
	log.Printf("Recognition cache TTL: %s", cfg.Cache.TTL)

	var recognizer domain.TextRecognizer
	switch cfg.Recognition.Provider {
	case config.ProviderTesseract:
		recognizer = recognition.NewTesseractEngine(cfg.Recognition.Languages)
		log.Printf("Tesseract languages: %v", cfg.Recognition.Languages)
	default:
		client := recognition.NewClient(cfg.Recognition.APIKey, cfg.Recognition.BaseURL, cfg.RateLimit.Provider)
		if cfg.Server.Environment == "development" {
			client.SetDebug(true)
			log.Printf("Recognition client debug mode enabled")
		}
		log.Printf("Recognition API configured: %s", cfg.Recognition.BaseURL)
		recognizer = client
	}

	// Initialize usecase layer
	labelService := usecase.NewLabelService(
		recognitionCache,
		recognizer,
		usecase.LabelServiceConfig{
			CacheTTL:                 cfg.Cache.TTL,
			RequireGovernmentWarning: cfg.Verification.RequireWarning,
			EnableDebugLogging:       cfg.Verification.EnableDebugLogging,
		},
	)

	log.Printf("Verification: require_warning=%v, debug=%v",
		cfg.Verification.RequireWarning,
		cfg.Verification.EnableDebugLogging)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(labelService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
