package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/labelproof/backend/internal/domain"
	"github.com/labelproof/backend/internal/usecase"
)

// maxImageBytes caps uploaded label photos. Phone camera output is well
// under this.
const maxImageBytes = 10 << 20

// Handler holds dependencies for HTTP handlers
type Handler struct {
	labelService *usecase.LabelService
}

// NewHandler creates a new HTTP handler
func NewHandler(labelService *usecase.LabelService) *Handler {
	return &Handler{labelService: labelService}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "labelproof-backend",
		"version": "1.0.0",
	})
}

// VerifyLabel handles label verification requests: a multipart form carrying
// the label photograph under "image" plus the declared product fields.
func (h *Handler) VerifyLabel(c *gin.Context) {
	if h.labelService == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "label service not configured",
		})
		return
	}

	declared, err := parseDeclaredData(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "image exceeds the 10MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read image file"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read image file"})
		return
	}

	result, err := h.labelService.VerifyLabelImage(c.Request.Context(), declared, image)
	if err != nil {
		status, message := statusForError(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseDeclaredData reads and validates the declared label fields from the
// multipart form. The core assumes these invariants hold, so they are
// enforced here and nowhere downstream.
func parseDeclaredData(c *gin.Context) (*domain.DeclaredData, error) {
	declared := &domain.DeclaredData{
		BrandName:    c.PostForm("brandName"),
		ProductClass: c.PostForm("productClass"),
		NetContents:  c.PostForm("netContents"),
	}

	if declared.BrandName == "" {
		return nil, errors.New("brandName is required")
	}
	if declared.ProductClass == "" {
		return nil, errors.New("productClass is required")
	}

	if raw := c.PostForm("alcoholPercent"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("alcoholPercent must be a number")
		}
		if value < 0 || value > 100 {
			return nil, errors.New("alcoholPercent must be between 0 and 100")
		}
		declared.AlcoholPercent = &value
	}

	return declared, nil
}

// statusForError maps service errors to HTTP responses. Recognition
// failures never carry a verification result; they resolve before the
// verifier runs.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request parameters"
	case errors.Is(err, domain.ErrInvalidImage):
		return http.StatusBadRequest, "image could not be processed"
	case errors.Is(err, domain.ErrNoTextFound):
		return http.StatusUnprocessableEntity, "no text could be recognized in the image"
	case errors.Is(err, domain.ErrRecognitionFailed), errors.Is(err, domain.ErrRecognitionAPIFailure):
		return http.StatusBadGateway, "text recognition is currently unavailable"
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests, "rate limit exceeded"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
