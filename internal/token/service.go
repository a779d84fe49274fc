package token

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shreyas11111/Reusable-Payment-Component/internal/card"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/models"
)

// TTL is how long an issued token stays redeemable.
const TTL = 15 * time.Minute

// Token is a successful tokenization result. ExpiresAt is a millisecond
// epoch timestamp.
type Token struct {
	Value     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// CardPayload is the canonical encoded form of a validated submission.
// The wire field names match the token format existing clients consume.
type CardPayload struct {
	Number      string `json:"number"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVC         string `json:"cvc"`
	PostalCode  string `json:"postalCode"`
}

// Service is the pipeline entry point. It re-validates every field of a
// submission authoritatively and, only when all of them pass, encodes the
// card data into a token.
type Service struct {
	codec *Codec
}

func NewService(codec *Codec) *Service {
	return &Service{codec: codec}
}

// Codec exposes the service's codec so callers can decode what they mint.
func (s *Service) Codec() *Codec {
	return s.codec
}

// CreateToken validates the fields in the order a user sees them and
// stops at the first failure, so the caller always gets one unambiguous
// error. The postal code is only judged when the integration enables it
// and the submission carries one.
func (s *Service) CreateToken(data models.CardData, postalCodeEnabled bool, locale string) (*Token, *PaymentError) {
	if res := card.ValidateNumber(data.Number); !res.Valid {
		return nil, &PaymentError{
			Code:    CodeInvalidCardNumber,
			Message: primaryMessage(res.Errors, "Invalid card number"),
			Field:   "number",
		}
	}

	if res := card.ValidateExpiry(data.ExpiryMonth, data.ExpiryYear); !res.Valid {
		code := CodeInvalidExpiry
		if hasExpiredMessage(res.Errors) {
			code = CodeExpiredCard
		}
		return nil, &PaymentError{
			Code:    code,
			Message: primaryMessage(res.Errors, "Invalid expiry"),
			Field:   "expiry",
		}
	}

	brand := card.DetectBrand(data.Number)
	if res := card.ValidateCVC(data.CVC, brand); !res.Valid {
		return nil, &PaymentError{
			Code:    CodeInvalidCVC,
			Message: primaryMessage(res.Errors, "Invalid CVC"),
			Field:   "cvc",
		}
	}

	if postalCodeEnabled && data.PostalCode != "" {
		if res := card.ValidatePostalCode(data.PostalCode, locale); !res.Valid {
			return nil, &PaymentError{
				Code:    CodeInvalidPostal,
				Message: primaryMessage(res.Errors, "Invalid postal code"),
				Field:   "postalCode",
			}
		}
	}

	timestamp := s.codec.now().UnixMilli()
	plaintext, _ := json.Marshal(CardPayload{
		Number:      card.DigitsOnly(data.Number),
		ExpiryMonth: data.ExpiryMonth,
		ExpiryYear:  data.ExpiryYear,
		CVC:         data.CVC,
		PostalCode:  data.PostalCode,
	})
	payload := models.TokenPayload{
		EncryptedData: s.codec.EncodePayload(string(plaintext)),
		Nonce:         s.codec.Nonce(),
		Timestamp:     timestamp,
		Fingerprint:   s.codec.Fingerprint(data.Number),
	}

	return &Token{
		Value:     s.codec.EncodeToken(payload),
		ExpiresAt: timestamp + TTL.Milliseconds(),
	}, nil
}

// IsExpired reports whether a token's redeem-by time has passed. Pure
// comparison; nothing is mutated or collected.
func (s *Service) IsExpired(expiresAt int64) bool {
	return s.codec.now().UnixMilli() > expiresAt
}

func primaryMessage(errs []string, fallback string) string {
	if len(errs) > 0 {
		return errs[0]
	}
	return fallback
}

func hasExpiredMessage(errs []string) bool {
	for _, msg := range errs {
		if strings.Contains(msg, "expired") {
			return true
		}
	}
	return false
}
