package config

import (
	"fmt"     // DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // Cache TTL

	"github.com/joho/godotenv"   // For loading .env files
	"github.com/sirupsen/logrus" // Log level parsing
	"golang.org/x/crypto/bcrypt" // Default hashing cost
)

// Config holds the application configuration
type Config struct {
	AppPort    string        // Application port
	DBDriver   string        // Database driver: mysql, postgres or sqlite
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	SQLitePath string        // SQLite file, used when DBDriver is sqlite
	RedisAddr  string        // Redis server address, empty disables caching
	RedisPass  string        // Redis password
	RedisDB    int           // Redis database number
	KafkaAddr  string        // Comma separated Kafka brokers, empty disables events
	CacheTTL   time.Duration // Lifetime of cached catalog and order listings
	BcryptCost int           // bcrypt work factor for password hashes
	LogLevel   logrus.Level  // Minimum log level
	IsProd     bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:    getEnv("APP_PORT", "8080"),                   // Application port
		DBDriver:   getEnv("DB_DRIVER", "mysql"),                 // Database driver
		DBUser:     os.Getenv("DB_USER"),                         // Database user
		DBPassword: os.Getenv("DB_PASSWORD"),                     // Database password
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),               // Database host
		DBPort:     os.Getenv("DB_PORT"),                         // Database port, driver default when empty
		DBName:     getEnv("DB_NAME", "ecommerce"),               // Database name
		SQLitePath: getEnv("SQLITE_PATH", "ecommerce.db"),        // SQLite file
		RedisAddr:  os.Getenv("REDIS_ADDR"),                      // Redis server address
		RedisPass:  os.Getenv("REDIS_PASS"),                      // Redis password
		RedisDB:    getEnvInt("REDIS_DB", 0),                     // Redis database number
		KafkaAddr:  os.Getenv("KAFKA_ADDRESS"),                   // Kafka brokers
		CacheTTL:   getEnvDuration("CACHE_TTL", 60*time.Second),  // Cache lifetime
		BcryptCost: getEnvInt("BCRYPT_COST", bcrypt.DefaultCost), // bcrypt work factor
		LogLevel:   getEnvLevel("LOG_LEVEL", logrus.InfoLevel),   // Minimum log level
		IsProd:     os.Getenv("IS_PROD") == "true",               // Is production environment
	}
}

// DSN builds the Data Source Name for the configured driver
func (c *Config) DSN() string {
	switch c.DBDriver {
	case "postgres":
		port := c.DBPort
		if port == "" {
			port = "5432" // PostgreSQL default port
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, port)
	case "sqlite":
		return c.SQLitePath // File path or :memory:
	default:
		port := c.DBPort
		if port == "" {
			port = "3306" // MySQL default port
		}
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?parseTime=true"
	}
}

// getEnv returns the variable or def when it is unset
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvInt returns the variable as int or def when it is unset or malformed
func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

// getEnvDuration accepts Go durations ("90s") or plain seconds ("90")
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return def
}

// getEnvLevel parses a logrus level name
func getEnvLevel(key string, def logrus.Level) logrus.Level {
	lvl, err := logrus.ParseLevel(os.Getenv(key))
	if err != nil {
		return def
	}
	return lvl
}
