package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"impact-log/internal/auth"
	"impact-log/internal/config"
	"impact-log/internal/logging"
	"impact-log/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
)

// Open connects to Postgres, retrying while the server comes up, and applies pool limits.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	// simple protocol keeps transaction-mode poolers (PgBouncer) happy
	dialector := postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseURL,
		PreferSimpleProtocol: true,
	})

	for i := 1; i <= maxAttempts; i++ {
		slog.Info("connecting to database", "source", "database", "attempt", i, "max_attempts", maxAttempts)

		db, err = gorm.Open(dialector, &gorm.Config{
			TranslateError: true,
			Logger:         logging.GormLogger(),
		})
		if err == nil {
			break
		}

		slog.Warn("database connection failed", "source", "database", "error", err.Error())
		time.Sleep(retryBackoff)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
	}

	if err := ConfigurePool(db, cfg); err != nil {
		return nil, err
	}

	slog.Info("connected to database", "source", "database")
	return db, nil
}

func ConfigurePool(db *gorm.DB, cfg *config.Config) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)
	return nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Account{},
		&models.ImpactLog{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// EnsureAdmin creates an admin account with the given credentials unless one
// with that email already exists. It reports whether an account was created.
func EnsureAdmin(ctx context.Context, db *gorm.DB, hasher *auth.Hasher, email, password, name string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return false, errors.New("admin email and password are required")
	}

	var count int64
	if err := db.WithContext(ctx).Model(&models.Account{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return false, fmt.Errorf("hash admin password: %w", err)
	}

	admin := models.Account{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}

	slog.Info("created admin account", "source", "database", "email", email)
	return true, nil
}
