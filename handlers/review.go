package handlers

import (
	"net/http"

	"careconnect/models"
	"careconnect/services/review"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the review endpoints.
type ReviewHandler struct {
	Service review.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: svc}
}

// SubmitReview handles POST /api/reviews. Seeker only; the booking must be completed.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var req review.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	rev, err := h.Service.SubmitReview(c.GetString("userID"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// ListProviderReviews handles GET /api/reviews/provider/:id.
func (h *ReviewHandler) ListProviderReviews(c *gin.Context) {
	reviews, err := h.Service.ListProviderReviews(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}
