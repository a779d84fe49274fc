package handlers

import (
	"errors"

	"github.com/shreyas11111/Reusable-Payment-Component/internal/services/auth"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type authRequest struct {
	KeyID  string `json:"key_id"`
	APIKey string `json:"api_key"`
}

// Token exchanges a merchant key pair for a bearer token.
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var req authRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if req.KeyID == "" || req.APIKey == "" {
		return response.BadRequest(c, "key_id and api_key are required")
	}

	accessToken, err := h.authService.Authenticate(req.KeyID, req.APIKey)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) || errors.Is(err, auth.ErrMerchantInactive) {
			return response.Unauthorized(c)
		}
		return response.ServerError(c, "Authentication failed")
	}

	return response.Success(c, "Authenticated", fiber.Map{
		"access_token": accessToken,
	})
}
