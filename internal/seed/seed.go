package seed

import (
	"context"
	"fmt"

	"github.com/wilsonXeem/clong-backend/internal/app/models"
	"github.com/wilsonXeem/clong-backend/internal/app/repositories"
	"github.com/wilsonXeem/clong-backend/internal/config"
	"github.com/wilsonXeem/clong-backend/internal/pkg/auth"
	"github.com/wilsonXeem/clong-backend/internal/pkg/logger"
)

// EnsureAdmin creates the configured admin account when it does not
// exist yet. It is safe to call on every start.
func EnsureAdmin(ctx context.Context, userRepo *repositories.UserRepository, cfg *config.Config) error {
	if cfg.Admin.Password == "" {
		logger.Warn().Msg("No admin password configured, skipping admin seed")
		return nil
	}

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:     cfg.Admin.Email,
		Password:  hashed,
		FirstName: "Admin",
		LastName:  "User",
		Role:      models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info().Str("email", admin.Email).Msg("Admin account created")
	return nil
}
