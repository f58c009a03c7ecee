package main

import (
	"context" // context package is needed for Redis operations
	"time"    // Redis ping timeout

	"ecommerce/internal/api"        // Custom package for API handlers
	"ecommerce/internal/config"     // Custom package for configuration
	"ecommerce/internal/events"     // Kafka event publishing
	"ecommerce/internal/middleware" // Custom package for middleware
	"ecommerce/internal/service"    // Business services
	"ecommerce/internal/storage"    // GORM repositories
	"ecommerce/internal/utils"      // Cache and password helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine readable logs in production
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	logrus.SetLevel(cfg.LogLevel)

	// Connect to the database
	db, err := storage.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup the cache, Redis is optional
	var cache utils.Cache = utils.NopCache{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})

		// Test Redis connection
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_, err = redisClient.Ping(ctx).Result()
		cancel()
		if err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		cache = utils.NewRedisCache(redisClient)
	} else {
		logrus.Warn("REDIS_ADDR not set, caching disabled")
	}

	// Setup the event publisher, Kafka is optional
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.KafkaAddr != "" {
		publisher = events.NewKafkaPublisher(cfg.KafkaAddr)
		logrus.WithField("brokers", cfg.KafkaAddr).Info("Publishing cart and order events")
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logrus.Errorf("kafka close error: %v", err)
		}
	}()

	// Repositories and services
	users := storage.NewUserRepository(db)   // User persistence
	items := storage.NewItemRepository(db)   // Catalog persistence
	carts := storage.NewCartRepository(db)   // Cart persistence
	orders := storage.NewOrderRepository(db) // Order persistence
	services := api.Services{
		Users:  service.NewUserService(users, utils.NewBcryptEncoder(cfg.BcryptCost)),
		Items:  service.NewItemService(items, cache, cfg.CacheTTL),
		Carts:  service.NewCartService(users, items, carts),
		Orders: service.NewOrderService(users, orders, cache, cfg.CacheTTL),
		Events: publisher,
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestIDMiddleware(), middleware.LoggerMiddleware(logrus.StandardLogger()))

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	api.RegisterRoutes(r, services, db) // Mount all endpoints

	logrus.WithField("port", cfg.AppPort).Info("Server running") // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Errorf("server stopped: %v", err)
	}
}
