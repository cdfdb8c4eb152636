package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"qualifygym/internal/common"
	"qualifygym/internal/config"
	"qualifygym/internal/di"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadConfig(config.ImageService)
	logger := common.NewLogger(cfg)

	logger.Info("initializing image service")
	app, err := di.InitImageApplication(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	if err := app.Start(context.Background()); err != nil {
		logger.Error("image service stopped with error", "error", err)
		os.Exit(1)
	}
}
