package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub-api/middleware"
	"foodhub-api/response"
	"foodhub-api/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register creates a user with its customer or provider profile
func (h *AuthHandler) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	user, err := h.auth.Register(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "User registered successfully", user)
}

// Login verifies credentials and issues a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	result, err := h.auth.Login(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Login successful", result)
}

// Logout deletes the presented session
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), middleware.GetToken(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// GetProfile returns the caller's own profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	profile, err := h.auth.GetProfile(c.Request.Context(), ident.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile updates the caller's own profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	var in services.UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	profile, err := h.auth.UpdateProfile(c.Request.Context(), ident.UserID, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated successfully", profile)
}
