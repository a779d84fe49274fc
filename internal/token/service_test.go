package token

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/shreyas11111/Reusable-Payment-Component/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentExpiry() (string, string) {
	now := time.Now()
	return fmt.Sprintf("%02d", int(now.Month())), fmt.Sprintf("%02d", (now.Year()+1)%100)
}

func validCard() models.CardData {
	month, year := currentExpiry()
	return models.CardData{
		Number:      "4242 4242 4242 4242",
		ExpiryMonth: month,
		ExpiryYear:  year,
		CVC:         "123",
		PostalCode:  "12345",
	}
}

func TestCreateToken(t *testing.T) {
	service := NewService(NewCodec())

	t.Run("round trip recovers the payload", func(t *testing.T) {
		tok, perr := service.CreateToken(validCard(), true, "en-US")
		require.Nil(t, perr)
		require.NotNil(t, tok)

		payload := service.Codec().DecodeToken(tok.Value)
		require.NotNil(t, payload)
		assert.Equal(t, service.Codec().Fingerprint("4242424242424242"), payload.Fingerprint)
		assert.Len(t, payload.Nonce, 32)
		assert.Equal(t, payload.Timestamp+TTL.Milliseconds(), tok.ExpiresAt)

		plain, err := service.Codec().DecodePayload(payload.EncryptedData)
		require.NoError(t, err)
		var card CardPayload
		require.NoError(t, json.Unmarshal([]byte(plain), &card))
		assert.Equal(t, "4242424242424242", card.Number)
		assert.Equal(t, "123", card.CVC)
		assert.Equal(t, "12345", card.PostalCode)
	})

	t.Run("fresh nonce per token", func(t *testing.T) {
		first, perr := service.CreateToken(validCard(), true, "en-US")
		require.Nil(t, perr)
		second, perr := service.CreateToken(validCard(), true, "en-US")
		require.Nil(t, perr)

		codec := service.Codec()
		assert.NotEqual(t, codec.DecodeToken(first.Value).Nonce, codec.DecodeToken(second.Value).Nonce)
	})

	t.Run("timestamps never go backwards", func(t *testing.T) {
		var last int64
		for i := 0; i < 5; i++ {
			tok, perr := service.CreateToken(validCard(), true, "en-US")
			require.Nil(t, perr)
			payload := service.Codec().DecodeToken(tok.Value)
			assert.GreaterOrEqual(t, payload.Timestamp, last)
			last = payload.Timestamp
		}
	})
}

func TestCreateTokenErrors(t *testing.T) {
	service := NewService(NewCodec())
	month, year := currentExpiry()

	tests := []struct {
		name      string
		mutate    func(*models.CardData)
		wantCode  ErrorCode
		wantField string
	}{
		{
			name:      "bad card number",
			mutate:    func(d *models.CardData) { d.Number = "4242424242424241" },
			wantCode:  CodeInvalidCardNumber,
			wantField: "number",
		},
		{
			name:      "incomplete card number",
			mutate:    func(d *models.CardData) { d.Number = "4242" },
			wantCode:  CodeInvalidCardNumber,
			wantField: "number",
		},
		{
			name:      "bad month",
			mutate:    func(d *models.CardData) { d.ExpiryMonth = "13" },
			wantCode:  CodeInvalidExpiry,
			wantField: "expiry",
		},
		{
			name:      "expired card",
			mutate:    func(d *models.CardData) { d.ExpiryYear = "20" },
			wantCode:  CodeExpiredCard,
			wantField: "expiry",
		},
		{
			name:      "wrong cvc length",
			mutate:    func(d *models.CardData) { d.CVC = "12" },
			wantCode:  CodeInvalidCVC,
			wantField: "cvc",
		},
		{
			name:      "bad postal code",
			mutate:    func(d *models.CardData) { d.PostalCode = "1234" },
			wantCode:  CodeInvalidPostal,
			wantField: "postalCode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validCard()
			data.ExpiryMonth, data.ExpiryYear = month, year
			tt.mutate(&data)

			tok, perr := service.CreateToken(data, true, "en-US")
			assert.Nil(t, tok)
			require.NotNil(t, perr)
			assert.Equal(t, tt.wantCode, perr.Code)
			assert.Equal(t, tt.wantField, perr.Field)
			assert.NotEmpty(t, perr.Message)
		})
	}

	t.Run("stops at the first failing field", func(t *testing.T) {
		data := validCard()
		data.Number = "4242424242424241"
		data.CVC = "1"

		_, perr := service.CreateToken(data, true, "en-US")
		require.NotNil(t, perr)
		assert.Equal(t, CodeInvalidCardNumber, perr.Code)
		assert.Equal(t, "number", perr.Field)
	})

	t.Run("postal code skipped when disabled", func(t *testing.T) {
		data := validCard()
		data.PostalCode = "nonsense postal!"

		tok, perr := service.CreateToken(data, false, "en-US")
		assert.Nil(t, perr)
		assert.NotNil(t, tok)
	})

	t.Run("postal code skipped when absent", func(t *testing.T) {
		data := validCard()
		data.PostalCode = ""

		tok, perr := service.CreateToken(data, true, "en-US")
		assert.Nil(t, perr)
		assert.NotNil(t, tok)
	})
}

func TestIsExpired(t *testing.T) {
	base := time.Date(2026, time.June, 15, 12, 0, 0, 0, time.UTC)
	clock := base
	service := NewService(NewCodecWith(nil, func() time.Time { return clock }))

	tok, perr := service.CreateToken(validCard(), true, "en-US")
	require.Nil(t, perr)

	assert.False(t, service.IsExpired(tok.ExpiresAt), "fresh token must not be expired")

	clock = base.Add(TTL - time.Second)
	assert.False(t, service.IsExpired(tok.ExpiresAt))

	clock = base.Add(TTL + time.Second)
	assert.True(t, service.IsExpired(tok.ExpiresAt))
}
