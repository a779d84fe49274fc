package models

import "time"

// TokenRecord is the metadata row kept for every issued token. The PAN
// itself never lands here; only the masked display form and the issuer
// fingerprint do.
type TokenRecord struct {
	ID           uint   `gorm:"primarykey"`
	Fingerprint  string `gorm:"index"`
	Brand        string `gorm:"not null"`
	MaskedNumber string `gorm:"not null"`
	ExpiresAt    int64  `gorm:"not null"`
	CreatedAt    time.Time
}
