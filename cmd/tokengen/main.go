// Command tokengen prints a signed bearer token for a user id.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"shareit-backend/internal/config"
	"shareit-backend/internal/security"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	userID := flag.Int64("user", 0, "User id to issue the token for")
	ttl := flag.Duration("ttl", 0, "Token lifetime (defaults to auth.token_ttl_minutes)")
	flag.Parse()

	_ = godotenv.Load()

	if *userID <= 0 {
		fmt.Fprintln(os.Stderr, "usage: tokengen -user <id> [-config path] [-ttl 1h]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("auth.jwt_secret (or JWT_SECRET) must be set to issue tokens")
	}

	lifetime := *ttl
	if lifetime == 0 {
		lifetime = time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	}

	token, err := security.NewTokenManager(cfg.Auth.JWTSecret, lifetime).GenerateAccessToken(*userID)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
