package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodhub-api/middleware"
	"foodhub-api/response"
	"foodhub-api/services"
)

type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create places an order for the calling customer
func (h *OrderHandler) Create(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	var in services.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	order, err := h.orders.Create(c.Request.Context(), ident.UserID, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Order created successfully", order)
}

// ListMine lists the caller's orders, role-scoped
func (h *OrderHandler) ListMine(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	orders, err := h.orders.ListMine(c.Request.Context(), *ident, c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Orders retrieved successfully", orders)
}

// GetByID returns one order's full graph
func (h *OrderHandler) GetByID(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.GetByID(c.Request.Context(), *ident, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Order retrieved successfully", order)
}

// UpdateStatus transitions an order (provider endpoint)
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var in services.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.BindError(c, err)
		return
	}
	order, err := h.orders.UpdateStatus(c.Request.Context(), *ident, id, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Order status updated successfully", order)
}

// Cancel cancels the calling customer's own order
func (h *OrderHandler) Cancel(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.orders.Cancel(c.Request.Context(), ident.UserID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Order cancelled successfully", order)
}
