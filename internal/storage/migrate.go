package storage

import (
	"context" // Context for seeding
	"time"    // Pool timings

	"github.com/glebarez/sqlite"    // Pure Go SQLite driver for GORM
	"github.com/go-faster/errors"   // Error wrapping
	"github.com/shopspring/decimal" // Exact money amounts
	"github.com/sirupsen/logrus"    // Logrus for structured logging
	"gorm.io/driver/mysql"          // MySQL driver for GORM
	"gorm.io/driver/postgres"       // PostgreSQL driver for GORM
	"gorm.io/gorm"                  // GORM ORM library
	"gorm.io/gorm/logger"           // GORM logger levels
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Open connects to the database selected by driver
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector // Driver specific dialector
	switch driver {
	case DriverMySQL, "":
		dialector = mysql.Open(dsn)
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Warn),          // Only slow queries and errors
		NowFunc: func() time.Time { return time.Now().UTC() }, // Store timestamps in UTC
	})
	if err != nil {
		return nil, errors.Wrapf(err, "connect %s", driver)
	}

	sqlDB, err := db.DB() // Underlying connection pool
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	if driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(1) // A single writer, also keeps :memory: databases alive
	} else {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(models()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}

// seedItems is the initial catalog
var seedItems = []itemModel{
	{Name: "Round Widget", Description: "A widget that is round", Price: decimal.RequireFromString("2.99")},
	{Name: "Square Widget", Description: "A widget that is square", Price: decimal.RequireFromString("1.99")},
}

// Seed inserts the initial catalog when the items table is empty and reports how many rows it added
func Seed(ctx context.Context, db *gorm.DB) (int, error) {
	var count int64 // Existing catalog size
	if err := db.WithContext(ctx).Model(&itemModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "count items")
	}
	if count > 0 {
		logrus.WithField("items", count).Info("Catalog already seeded") // Nothing to do
		return 0, nil
	}
	items := make([]itemModel, len(seedItems)) // Copy so the template keeps zero IDs
	copy(items, seedItems)
	if err := db.WithContext(ctx).Create(&items).Error; err != nil {
		return 0, errors.Wrap(err, "seed items")
	}
	logrus.WithField("items", len(items)).Info("Catalog seeded") // Log seeding
	return len(items), nil
}
