package models

import "time"

type Menu struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProviderID  uint      `json:"provider_id" gorm:"not null"`
	Provider    *Provider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Price       float64   `json:"price" gorm:"not null"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
