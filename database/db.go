package database

import (
	"fmt"
	"time"

	"github.com/ttra33507-star/c4web/config"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the database configured in cfg and migrates the given
// models. Postgres connections are retried because the database container
// usually comes up after the application does.
func Connect(cfg *config.Config, logger *zap.Logger, models ...interface{}) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch cfg.DBDriver {
	case config.DriverPostgres:
		dsn := cfg.PostgresDSN()
		maxRetries := 10
		for i := 1; i <= maxRetries; i++ {
			db, err = gorm.Open(postgres.Open(dsn), gormCfg)
			if err == nil {
				break
			}
			logger.Warn("Failed to connect to database, retrying...",
				zap.Int("attempt", i),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
			time.Sleep(5 * time.Second)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", maxRetries, err)
		}
	case config.DriverSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database %s: %w", cfg.SQLitePath, err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	logger.Info("Database connection established",
		zap.String("driver", cfg.DBDriver),
	)
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Failed to get database handle for close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database connection", zap.Error(err))
	}
}
