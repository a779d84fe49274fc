// Package middleware provides HTTP middleware for the fiber app,
// currently merchant authentication on the charge route.
package middleware

import (
	"log"
	"strings"

	"github.com/shreyas11111/Reusable-Payment-Component/internal/config"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// RequireMerchant validates the bearer token minted by the auth service
// and stores the merchant claims in the request context.
func RequireMerchant() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		parsed, err := jwt.ParseWithClaims(tokenString, &models.MerchantClaims{}, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(config.GetEnv("JWT_SECRET", "payment-component")), nil
		})
		if err != nil || !parsed.Valid {
			log.Printf("merchant token rejected: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		claims, ok := parsed.Claims.(*models.MerchantClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
		}

		c.Locals("merchant", claims)
		return c.Next()
	}
}
