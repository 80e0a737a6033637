// Package main is the entry point for the pos-terminal application.
package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/cafechain/pos-terminal/config"
	"github.com/cafechain/pos-terminal/internal/app"
)

func main() {
	// Local development reads a .env file; in production the environment
	// comes from the deployment.
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
