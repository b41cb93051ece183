// Package seeder creates the bootstrap admin account at startup so a fresh
// deployment has a way to log in.
package seeder

import (
	"context"
	"log/slog"

	"admingate/internal/admin/models"
	"admingate/internal/admin/service"
	"admingate/internal/platform/config"
	dErrors "admingate/pkg/domain-errors"
)

// Seed registers the configured bootstrap admin. Registration goes through
// the service so the credential mode applies to the seeded password too.
// An already-existing account is not an error; restarts are expected.
func Seed(ctx context.Context, svc *service.Service, seed config.Seed, logger *slog.Logger) error {
	if !seed.Enabled() {
		return nil
	}

	_, err := svc.Register(ctx, &models.RegisterRequest{
		Name:     seed.Name,
		Email:    seed.Email,
		Password: seed.Password,
	})
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeConflict) {
			logger.InfoContext(ctx, "seed admin already exists",
				"email", seed.Email,
			)
			return nil
		}
		return err
	}

	logger.InfoContext(ctx, "seed admin created",
		"email", seed.Email,
	)
	return nil
}
