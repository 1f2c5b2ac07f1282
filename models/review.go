package models

import "time"

// Review is written once per (customer, provider) pair, and only after a
// delivered order between the two.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"not null;uniqueIndex:idx_reviews_customer_provider"`
	Customer   *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderID uint      `json:"provider_id" gorm:"not null;uniqueIndex:idx_reviews_customer_provider"`
	Provider   *Provider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
