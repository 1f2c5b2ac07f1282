package models

import "time"

// Role defines allowed roles in the system
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleProvider Role = "PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash  string    `json:"-" gorm:"not null"`
	Role          Role      `json:"role" gorm:"not null;default:'CUSTOMER'"`
	Phone         string    `json:"phone"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	EmailVerified bool      `json:"email_verified" gorm:"default:false"`
	Customer      *Customer `json:"customer,omitempty" gorm:"foreignKey:UserID"`
	Provider      *Provider `json:"provider,omitempty" gorm:"foreignKey:UserID"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Customer is the buyer-side profile, 1:1 with a CUSTOMER user.
type Customer struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User            *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DeliveryAddress string    `json:"delivery_address"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Provider is the seller-side profile, 1:1 with a PROVIDER user.
// Catalogue management and order placement are gated on IsApproved.
type Provider struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User        *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ShopName    string    `json:"shop_name" gorm:"not null"`
	Address     string    `json:"address" gorm:"not null"`
	Description string    `json:"description"`
	IsApproved  bool      `json:"is_approved" gorm:"default:false"`
	Menus       []Menu    `json:"menus,omitempty" gorm:"foreignKey:ProviderID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
