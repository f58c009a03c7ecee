package main

import (
	"context" // Context for seeding
	"flag"    // Command line flags

	"ecommerce/internal/config"  // Custom import path (Config)
	"ecommerce/internal/storage" // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	seed := flag.Bool("seed", false, "insert the initial catalog when it is empty") // Optional catalog seed
	flag.Parse()

	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.LogLevel)

	db, err := storage.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err) // Log fatal error if connection fails
	}
	if err := storage.Migrate(db); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err) // Log fatal error if migration fails
	}
	if *seed {
		if _, err := storage.Seed(context.Background(), db); err != nil {
			logrus.Fatalf("failed to seed catalog: %v", err)
		}
	}
}
