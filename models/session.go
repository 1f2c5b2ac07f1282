package models

import "time"

// Session maps an opaque bearer token to a user. A token is valid only
// while a matching row exists and ExpiresAt is in the future. Nothing in
// the token itself is verifiable.
type Session struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"uniqueIndex;not null"`
	UserID    uint      `json:"user_id" gorm:"not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
