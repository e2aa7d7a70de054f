package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopsage/backend/internal/domain"
	"github.com/shopsage/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recommendationService *usecase.RecommendationService
	catalog               domain.CatalogRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(service *usecase.RecommendationService, catalog domain.CatalogRepository) *Handler {
	return &Handler{
		recommendationService: service,
		catalog:               catalog,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "shopsage-backend",
		"version": "1.0.0",
	})
}

// GetCatalog returns the full product catalog
func (h *Handler) GetCatalog(c *gin.Context) {
	products := h.catalog.GetAll()
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// Recommend handles product recommendation requests
func (h *Handler) Recommend(c *gin.Context) {
	var request domain.RecommendRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_error",
			"message": "Please describe what you are looking for.",
		})
		return
	}

	result, err := h.recommendationService.Recommend(c.Request.Context(), &request)
	if err != nil {
		status, code, message := mapError(err)
		c.JSON(status, gin.H{
			"error":   code,
			"message": message,
		})
		return
	}

	c.JSON(http.StatusOK, result)
}

// mapError translates domain errors to HTTP responses. Network failures and
// unusable AI output are deliberately collapsed into one generic message.
func mapError(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		return http.StatusBadRequest, "validation_error",
			"Please describe what you are looking for."
	case errors.Is(err, domain.ErrMissingAPIKey):
		return http.StatusServiceUnavailable, "configuration_error",
			"Recommendations are not available right now. Please contact support."
	default:
		return http.StatusBadGateway, "operation_error",
			"Something went wrong while fetching recommendations. Please try again."
	}
}
