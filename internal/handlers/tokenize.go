// Package handlers wires the HTTP surface to the tokenize and charge
// services.
package handlers

import (
	"log"

	"github.com/shreyas11111/Reusable-Payment-Component/internal/card"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/models"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/repositories"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/token"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// defaultLocale governs postal-code rules when the client states none.
const defaultLocale = "en-US"

type TokenizeHandler struct {
	tokens        *token.Service
	records       repositories.TokenRecordRepository
	postalEnabled bool
}

func NewTokenizeHandler(tokens *token.Service, records repositories.TokenRecordRepository, postalEnabled bool) *TokenizeHandler {
	return &TokenizeHandler{
		tokens:        tokens,
		records:       records,
		postalEnabled: postalEnabled,
	}
}

type tokenizeRequest struct {
	models.CardData
	Locale string `json:"locale"`
}

// Tokenize validates a card submission and returns an opaque token with
// its expiry, or the first validation error with its stable code.
func (h *TokenizeHandler) Tokenize(c *fiber.Ctx) error {
	var req tokenizeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	locale := req.Locale
	if locale == "" {
		locale = defaultLocale
	}

	tok, perr := h.tokens.CreateToken(req.CardData, h.postalEnabled, locale)
	if perr != nil {
		return response.ValidationError(c, perr)
	}

	record := &models.TokenRecord{
		Fingerprint:  h.tokens.Codec().Fingerprint(req.Number),
		Brand:        string(card.DetectBrand(req.Number)),
		MaskedNumber: card.MaskNumber(req.Number),
		ExpiresAt:    tok.ExpiresAt,
	}
	if err := h.records.Create(record); err != nil {
		// The token is already minted; a missing audit row must not fail
		// the call.
		log.Printf("failed to record issued token: %v", err)
	}

	return response.Success(c, "Card tokenized successfully", tok)
}
