package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub-api/middleware"
	"foodhub-api/response"
	"foodhub-api/services"
)

type ReviewHandler struct {
	reviews *services.ReviewService
}

func NewReviewHandler(reviews *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create writes a review for a provider the caller has ordered from
func (h *ReviewHandler) Create(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	var in services.CreateReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	review, err := h.reviews.Create(c.Request.Context(), ident.UserID, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Review created successfully", review)
}

// ListByProvider returns a provider's reviews with aggregates (public)
func (h *ReviewHandler) ListByProvider(c *gin.Context) {
	providerID, ok := parseID(c, "providerId")
	if !ok {
		return
	}
	result, err := h.reviews.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Reviews retrieved successfully", result)
}

// ListMine returns the calling customer's reviews
func (h *ReviewHandler) ListMine(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	reviews, err := h.reviews.ListMine(c.Request.Context(), ident.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Reviews retrieved successfully", reviews)
}

// Update edits the caller's own review
func (h *ReviewHandler) Update(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.UpdateReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	review, err := h.reviews.Update(c.Request.Context(), ident.UserID, id, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Review updated successfully", review)
}

// Delete removes the caller's own review
func (h *ReviewHandler) Delete(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.reviews.Delete(c.Request.Context(), ident.UserID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Review deleted successfully", nil)
}
