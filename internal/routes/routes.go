// Package routes defines the API routing configuration. It wires
// repositories into services and services into handlers, then attaches
// the handlers to their routes.
package routes

import (
	"github.com/shreyas11111/Reusable-Payment-Component/internal/config"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/handlers"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/middleware"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/repositories"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/repositories/cache"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/services/auth"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/services/charge"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/token"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	recordRepo := repositories.NewTokenRecordRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)
	consumedStore := cache.NewConsumedTokenStore(repositories.RedisClient)

	tokenService := token.NewService(token.NewCodec())
	authService := auth.NewService(merchantRepo, config.GetEnv("JWT_SECRET", "payment-component"))
	chargeService := charge.NewService(tokenService, consumedStore, config.GetEnv("STRIPE_SECRET_KEY", ""))

	postalEnabled := config.GetBoolEnv("POSTAL_CODE_ENABLED", true)
	tokenizeHandler := handlers.NewTokenizeHandler(tokenService, recordRepo, postalEnabled)
	chargeHandler := handlers.NewChargeHandler(chargeService)
	authHandler := handlers.NewAuthHandler(authService)

	app.Get("/health", handlers.HealthCheck)

	api := app.Group("/api")
	api.Post("/tokenize", tokenizeHandler.Tokenize)
	api.Post("/auth/token", authHandler.Token)
	api.Post("/charge", middleware.RequireMerchant(), chargeHandler.Charge)
}
