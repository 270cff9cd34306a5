package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Sortedsinghal/URE-HR/internal/config"
	"github.com/Sortedsinghal/URE-HR/internal/metrics"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}
	if cfg.ClickHouseDSN == "" {
		logger.Fatal("CLICKHOUSE_DSN is not set")
	}

	ctx := context.Background()

	conn, err := metrics.Connect(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to connect to ClickHouse", zap.Error(err))
	}
	defer conn.Close()

	migrator := metrics.NewMigrator(conn, logger)
	if err := migrator.Up(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	logger.Info("All migrations completed successfully")
}
