package repository

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PoolConfig tunes the underlying sql.DB connection pool.
type PoolConfig struct {
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

// DefaultPoolConfig mirrors the pool settings used in production.
var DefaultPoolConfig = PoolConfig{MaxIdleConns: 10, MaxOpenConns: 100}

// NewDB initializes a GORM DB connection using the provided DSN.
// It returns a *gorm.DB instance or an error.
func NewDB(dsn string) (*gorm.DB, error) {
	return Open(mysql.Open(dsn), DefaultPoolConfig)
}

// Open connects GORM through the given dialector and applies pool settings.
// Driver errors are translated so unique-key violations surface as
// gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector, pool PoolConfig) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	return db, nil
}
