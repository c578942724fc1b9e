package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/JonMunkholm/permute/internal/cli"
	"github.com/JonMunkholm/permute/internal/config"
	"github.com/JonMunkholm/permute/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	// Optional .env file; real environment variables win
	envLoaded := godotenv.Load() == nil

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	slog.Debug("configuration loaded", "config", cfg.String(), "dotenv", envLoaded)

	if err := cli.Execute(context.Background(), cfg); err != nil {
		os.Exit(1)
	}
}
