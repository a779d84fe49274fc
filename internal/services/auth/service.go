// Package auth exchanges merchant API keys for short-lived access tokens
// used on the charge endpoint.
package auth

import (
	"errors"
	"time"

	"github.com/shreyas11111/Reusable-Payment-Component/internal/models"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid merchant credentials")
	ErrMerchantInactive   = errors.New("merchant is not active")
)

// accessTokenTTL bounds how long a merchant token stays usable.
const accessTokenTTL = time.Hour

type Service interface {
	Authenticate(keyID, apiKey string) (string, error)
}

type service struct {
	merchants repositories.MerchantRepository
	jwtSecret string
}

func NewService(merchants repositories.MerchantRepository, jwtSecret string) Service {
	return &service{merchants: merchants, jwtSecret: jwtSecret}
}

// Authenticate verifies a merchant key pair and mints a signed access
// token. Lookup misses and bad keys collapse into one error so callers
// cannot probe for valid key IDs.
func (s *service) Authenticate(keyID, apiKey string) (string, error) {
	merchant, err := s.merchants.GetByKeyID(keyID)
	if err != nil {
		if errors.Is(err, repositories.ErrMerchantNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if merchant.Status != "active" {
		return "", ErrMerchantInactive
	}
	if bcrypt.CompareHashAndPassword([]byte(merchant.APIKeyHash), []byte(apiKey)) != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := models.MerchantClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "payment-component-api",
			Subject:   merchant.KeyID,
		},
		MerchantID: merchant.ID,
		Name:       merchant.Name,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(s.jwtSecret))
}

// HashAPIKey is used when provisioning merchants.
func HashAPIKey(apiKey string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(apiKey), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
