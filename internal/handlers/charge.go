package handlers

import (
	"github.com/shreyas11111/Reusable-Payment-Component/internal/services/charge"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ChargeHandler struct {
	charges *charge.Service
}

func NewChargeHandler(charges *charge.Service) *ChargeHandler {
	return &ChargeHandler{charges: charges}
}

type chargeRequest struct {
	Token    string `json:"token"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Charge redeems a token for a payment. Amounts are in the currency's
// minor unit.
func (h *ChargeHandler) Charge(c *fiber.Ctx) error {
	var req chargeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if req.Token == "" {
		return response.BadRequest(c, "Token is required")
	}
	if req.Amount <= 0 {
		return response.BadRequest(c, "Amount must be positive")
	}
	if len(req.Currency) != 3 {
		return response.BadRequest(c, "Currency must be a 3-letter code")
	}

	outcome := h.charges.Charge(c.Context(), req.Token, req.Amount, req.Currency)
	if !outcome.Success {
		return c.Status(fiber.StatusPaymentRequired).JSON(outcome)
	}
	return c.JSON(outcome)
}
