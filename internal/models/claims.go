package models

import "github.com/golang-jwt/jwt/v5"

// MerchantClaims are the JWT claims carried by merchant access tokens.
type MerchantClaims struct {
	jwt.RegisteredClaims
	MerchantID uint   `json:"merchant_id"`
	Name       string `json:"name"`
}
