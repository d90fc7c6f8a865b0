package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"invoice-dashboard-backend/internal/server"
	"invoice-dashboard-backend/internal/storage/sqlite"
	"invoice-dashboard-backend/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, relying on system env")
	}

	// Setup structured logging
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/invoices.db")
	addr := ":" + getEnv("PORT", "8080")

	// Initialize SQLite storage. The store is the process-wide connection
	// pool: opened once here, injected into the server, closed at exit.
	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	if getEnv("SEED_DEMO", "") == "1" {
		if err := store.Seed(context.Background()); err != nil {
			slog.Error("Failed to seed demo data", "error", err)
			os.Exit(1)
		}
		slog.Info("Demo data seeded")
	}

	srv := server.New(store)
	slog.Info("Server starting", "address", addr)
	if err := srv.Run(addr); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
