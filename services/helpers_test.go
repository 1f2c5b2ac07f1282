package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"foodhub-api/config"
	"foodhub-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDB(":memory:")
	require.NoError(t, err)
	return db
}

func newTestLogger() zerolog.Logger {
	return zerolog.Nop()
}

func seedUser(t *testing.T, db *gorm.DB, role models.Role, email string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Name:         "Test " + string(role),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) (*models.User, *models.Customer) {
	t.Helper()
	user := seedUser(t, db, models.RoleCustomer, email)
	customer := &models.Customer{UserID: user.ID, DeliveryAddress: "12 Main Street"}
	require.NoError(t, db.Create(customer).Error)
	return user, customer
}

func seedProvider(t *testing.T, db *gorm.DB, email string, approved bool) (*models.User, *models.Provider) {
	t.Helper()
	user := seedUser(t, db, models.RoleProvider, email)
	provider := &models.Provider{
		UserID:     user.ID,
		ShopName:   "Test Shop",
		Address:    "34 Market Road",
		IsApproved: approved,
	}
	require.NoError(t, db.Create(provider).Error)
	return user, provider
}

func seedMenu(t *testing.T, db *gorm.DB, providerID uint, name string, price float64) *models.Menu {
	t.Helper()
	menu := &models.Menu{
		ProviderID:  providerID,
		Name:        name,
		Price:       price,
		Category:    "mains",
		IsAvailable: true,
	}
	require.NoError(t, db.Create(menu).Error)
	return menu
}

func seedOrder(t *testing.T, db *gorm.DB, customerID, providerID uint, status models.OrderStatus) *models.Order {
	t.Helper()
	order := &models.Order{
		CustomerID:      customerID,
		ProviderID:      providerID,
		Status:          status,
		TotalAmount:     10,
		DeliveryAddress: "12 Main Street",
	}
	require.NoError(t, db.Create(order).Error)
	return order
}
