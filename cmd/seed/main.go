// Package main provisions a merchant account: it hashes the supplied API
// key and stores the merchant row the auth service authenticates against.
package main

import (
	"log"
	"os"

	"github.com/shreyas11111/Reusable-Payment-Component/internal/config"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/models"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/repositories"
	"github.com/shreyas11111/Reusable-Payment-Component/internal/services/auth"

	"github.com/google/uuid"
)

func main() {
	config.LoadEnv()

	merchantName := os.Getenv("MERCHANT_NAME")
	merchantKey := os.Getenv("MERCHANT_API_KEY")
	if merchantName == "" || merchantKey == "" {
		log.Fatal("MERCHANT_NAME and MERCHANT_API_KEY must be set in environment")
	}

	if err := repositories.InitDB(); err != nil {
		log.Fatal("Failed to initialize databases:", err)
	}
	defer func() {
		if repositories.DB != nil {
			if sqlDB, err := repositories.DB.DB(); err == nil {
				sqlDB.Close()
			}
		}
		if repositories.RedisClient != nil {
			repositories.RedisClient.Close()
		}
	}()

	hash, err := auth.HashAPIKey(merchantKey)
	if err != nil {
		log.Fatal("Failed to hash API key:", err)
	}

	merchant := models.Merchant{
		Name:       merchantName,
		KeyID:      "mk_" + uuid.NewString(),
		APIKeyHash: hash,
		Status:     "active",
	}
	if err := repositories.DB.Create(&merchant).Error; err != nil {
		log.Fatal("Failed to create merchant:", err)
	}

	log.Printf("Merchant %q created with key id %s", merchant.Name, merchant.KeyID)
}
