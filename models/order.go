package models

import "time"

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusPreparing OrderStatus = "PREPARING"
	StatusReady     OrderStatus = "READY"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCancelled OrderStatus = "CANCELLED"
)

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	CustomerID      uint        `json:"customer_id" gorm:"not null"`
	Customer        *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderID      uint        `json:"provider_id" gorm:"not null"`
	Provider        *Provider   `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Status          OrderStatus `json:"status" gorm:"not null;default:'PENDING'"`
	TotalAmount     float64     `json:"total_amount"`
	DeliveryAddress string      `json:"delivery_address" gorm:"not null"`
	SpecialNotes    string      `json:"special_notes"`
	Items           []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	OrderID  uint    `json:"order_id" gorm:"not null"`
	MenuID   uint    `json:"menu_id" gorm:"not null"`
	Menu     *Menu   `json:"menu,omitempty" gorm:"foreignKey:MenuID"`
	Quantity int     `json:"quantity" gorm:"not null"`
	Price    float64 `json:"price" gorm:"not null"` // snapshot price at time of order
}
