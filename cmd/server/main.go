package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"impact-log/internal/auth"
	"impact-log/internal/config"
	"impact-log/internal/database"
	"impact-log/internal/logging"
	"impact-log/internal/server"
	"impact-log/internal/store"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	logging.Setup(os.Stdout, cfg.LogLevel)

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}
	hasher := auth.NewHasher(cfg.BcryptCost)

	switch cmd {
	case "migrate":
		if err := database.Migrate(db); err != nil {
			log.Fatalf("%v", err)
		}
		slog.Info("migrations applied", "source", "main")
	case "create-admin":
		if err := createAdmin(db, hasher, cfg); err != nil {
			log.Fatalf("%v", err)
		}
	case "serve":
		if err := serve(db, hasher, cfg); err != nil {
			log.Fatalf("server error: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "usage: %s [serve|migrate|create-admin]\n", os.Args[0])
		os.Exit(2)
	}
}

func createAdmin(db *gorm.DB, hasher *auth.Hasher, cfg *config.Config) error {
	if err := database.Migrate(db); err != nil {
		return err
	}
	created, err := database.EnsureAdmin(context.Background(), db, hasher, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName)
	if err != nil {
		return err
	}
	if !created {
		slog.Info("admin account already exists", "source", "main", "email", logging.MaskEmail(cfg.AdminEmail))
	}
	return nil
}

func serve(db *gorm.DB, hasher *auth.Hasher, cfg *config.Config) error {
	if err := database.Migrate(db); err != nil {
		return err
	}

	// seed an admin only when credentials are configured
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if _, err := database.EnsureAdmin(context.Background(), db, hasher, cfg.AdminEmail, cfg.AdminPassword, cfg.AdminName); err != nil {
			slog.Error("admin seeding failed", "source", "main", "error", err.Error())
		}
	}

	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTAlgorithm, cfg.JWTExpiry)
	if err != nil {
		return err
	}

	r := server.NewRouter(cfg, store.New(db), hasher, tokens)
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "source", "main", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down", "source", "main")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	return nil
}
