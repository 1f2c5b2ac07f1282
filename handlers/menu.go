package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub-api/middleware"
	"foodhub-api/response"
	"foodhub-api/services"
)

type MenuHandler struct {
	menus *services.MenuService
}

func NewMenuHandler(menus *services.MenuService) *MenuHandler {
	return &MenuHandler{menus: menus}
}

// ListAll is the public catalogue browse endpoint
func (h *MenuHandler) ListAll(c *gin.Context) {
	filters := services.MenuFilters{
		Category:    c.Query("category"),
		IsAvailable: parseBoolQuery(c, "is_available"),
		Limit:       parseIntQuery(c, "limit"),
		Offset:      parseIntQuery(c, "offset"),
	}
	menus, err := h.menus.ListAll(c.Request.Context(), filters)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Menus retrieved successfully", menus)
}

// GetByID returns one menu item (public)
func (h *MenuHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	menu, err := h.menus.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Menu item retrieved successfully", menu)
}

// ListByProvider returns a provider's catalogue (public)
func (h *MenuHandler) ListByProvider(c *gin.Context) {
	providerID, ok := parseID(c, "providerId")
	if !ok {
		return
	}
	filters := services.MenuFilters{
		Category:    c.Query("category"),
		IsAvailable: parseBoolQuery(c, "is_available"),
	}
	menus, err := h.menus.ListByProvider(c.Request.Context(), providerID, filters)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Menus retrieved successfully", menus)
}

// ListMine returns the calling provider's catalogue
func (h *MenuHandler) ListMine(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	menus, err := h.menus.ListMine(c.Request.Context(), ident.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Menus retrieved successfully", menus)
}

// Create adds a menu item to the caller's catalogue
func (h *MenuHandler) Create(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	var in services.CreateMenuInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	menu, err := h.menus.Create(c.Request.Context(), ident.UserID, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Menu item created successfully", menu)
}

// Update edits a menu item owned by the caller
func (h *MenuHandler) Update(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.UpdateMenuInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	menu, err := h.menus.Update(c.Request.Context(), ident.UserID, id, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Menu item updated successfully", menu)
}

// Delete removes a menu item owned by the caller
func (h *MenuHandler) Delete(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.menus.Delete(c.Request.Context(), ident.UserID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Menu item deleted successfully", nil)
}
