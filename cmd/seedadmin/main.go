package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/business-site-service/internal/auth"
	"github.com/spec-kit/business-site-service/internal/config"
	"github.com/spec-kit/business-site-service/internal/domain"
	"github.com/spec-kit/business-site-service/internal/observability"
	"github.com/spec-kit/business-site-service/internal/persistence"
	"github.com/spec-kit/business-site-service/internal/repository"
)

// Seeds the initial OWNER admin account. Run once, out of band:
//
//	SEED_ADMIN_EMAIL=owner@example.com SEED_ADMIN_PASSWORD=... go run ./cmd/seedadmin
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	username := os.Getenv("SEED_ADMIN_USERNAME")
	if username == "" {
		username = "owner"
	}
	if email == "" || password == "" {
		logger.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD are required")
	}

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	admins := repository.NewAdminRepository(pg.PoolHandle())

	hash, err := auth.HashPassword(password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	existing, err := admins.GetByEmail(ctx, email)
	switch {
	case err == nil:
		existing.Username = username
		existing.PasswordHash = hash
		existing.Role = domain.AdminRoleOwner
		existing.Active = true
		if err := admins.Update(ctx, existing); err != nil {
			logger.Fatal("failed to update admin", zap.Error(err))
		}
		logger.Info("admin account updated", zap.String("email", existing.Email))
	case errors.Is(err, pgx.ErrNoRows):
		admin := &domain.AdminAccount{
			Username:     username,
			Email:        email,
			PasswordHash: hash,
			Role:         domain.AdminRoleOwner,
			Active:       true,
		}
		if err := admins.Create(ctx, admin); err != nil {
			logger.Fatal("failed to create admin", zap.Error(err))
		}
		logger.Info("admin account created", zap.String("email", admin.Email))
	default:
		logger.Fatal("failed to look up admin", zap.Error(err))
	}
}
