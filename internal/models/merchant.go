package models

import "time"

// Merchant is an API consumer allowed to redeem tokens against the charge
// endpoint. The API key is stored only as a bcrypt hash.
type Merchant struct {
	ID         uint   `gorm:"primarykey"`
	Name       string `gorm:"not null"`
	KeyID      string `gorm:"uniqueIndex;not null"`
	APIKeyHash string `gorm:"not null"`
	Status     string `gorm:"default:'active'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
