package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub-api/response"
	"foodhub-api/services"
)

type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Dashboard returns the aggregate platform counts
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.admin.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// ListUsers returns all users, optionally filtered by role and status
func (h *AdminHandler) ListUsers(c *gin.Context) {
	filters := services.UserFilters{
		Role:     c.Query("role"),
		IsActive: parseBoolQuery(c, "is_active"),
	}
	users, err := h.admin.ListUsers(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved successfully", users)
}

// PendingProviders lists providers awaiting approval
func (h *AdminHandler) PendingProviders(c *gin.Context) {
	providers, err := h.admin.PendingProviders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Pending providers retrieved successfully", providers)
}

type approveProviderRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

// ApproveProvider sets a provider's approval flag
func (h *AdminHandler) ApproveProvider(c *gin.Context) {
	providerID, ok := parseID(c, "providerId")
	if !ok {
		return
	}
	var req approveProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	provider, err := h.admin.ApproveProvider(c.Request.Context(), providerID, *req.IsApproved)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Provider approval updated successfully", provider)
}

type updateUserStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// UpdateUserStatus toggles a user's active flag
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	var req updateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}
	user, err := h.admin.UpdateUserStatus(c.Request.Context(), userID, *req.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User status updated successfully", user)
}

// DeleteUser removes a non-admin user
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	if err := h.admin.DeleteUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}
