package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"foodhub-api/handlers"
	"foodhub-api/middleware"
	"foodhub-api/models"
	"foodhub-api/services"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth    *handlers.AuthHandler
	Menus   *handlers.MenuHandler
	Orders  *handlers.OrderHandler
	Reviews *handlers.ReviewHandler
	Admin   *handlers.AdminHandler

	// AuthService backs the session middleware
	AuthService *services.AuthService
}

// Setup registers all API routes.
func Setup(r *gin.Engine, h Handlers) {
	authed := middleware.AuthRequired(h.AuthService)

	started := time.Now()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "FoodHub API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(started).Seconds(),
		})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Route not found",
			"path":    c.Request.URL.Path,
		})
	})

	// Auth
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", authed, h.Auth.Logout)
		auth.GET("/profile", authed, h.Auth.GetProfile)
		auth.PATCH("/profile", authed, h.Auth.UpdateProfile)
	}

	// Catalogue
	menus := r.Group("/api/menus")
	{
		// Public browse
		menus.GET("", h.Menus.ListAll)
		menus.GET("/:id", h.Menus.GetByID)
		menus.GET("/provider/:providerId", h.Menus.ListByProvider)

		// Provider management
		provider := menus.Group("", authed, middleware.RoleRequired(models.RoleProvider))
		{
			provider.GET("/my/menus", h.Menus.ListMine)
			provider.POST("", h.Menus.Create)
			provider.PATCH("/:id", h.Menus.Update)
			provider.DELETE("/:id", h.Menus.Delete)
		}
	}

	// Orders
	orders := r.Group("/api/orders", authed)
	{
		orders.POST("", middleware.RoleRequired(models.RoleCustomer), h.Orders.Create)
		orders.GET("/my-orders", h.Orders.ListMine)
		orders.GET("/:id", h.Orders.GetByID)
		orders.PATCH("/:id/status", middleware.RoleRequired(models.RoleProvider), h.Orders.UpdateStatus)
		orders.POST("/:id/cancel", middleware.RoleRequired(models.RoleCustomer), h.Orders.Cancel)
	}

	// Reviews
	reviews := r.Group("/api/reviews")
	{
		reviews.GET("/provider/:providerId", h.Reviews.ListByProvider)

		customer := reviews.Group("", authed, middleware.RoleRequired(models.RoleCustomer))
		{
			customer.POST("", h.Reviews.Create)
			customer.GET("/my", h.Reviews.ListMine)
			customer.PATCH("/:id", h.Reviews.Update)
			customer.DELETE("/:id", h.Reviews.Delete)
		}
	}

	// Admin
	admin := r.Group("/api/admin", authed, middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/dashboard", h.Admin.Dashboard)
		admin.GET("/users", h.Admin.ListUsers)
		admin.GET("/providers/pending", h.Admin.PendingProviders)
		admin.PATCH("/providers/:providerId/approve", h.Admin.ApproveProvider)
		admin.PATCH("/users/:userId/status", h.Admin.UpdateUserStatus)
		admin.DELETE("/users/:userId", h.Admin.DeleteUser)
	}
}
