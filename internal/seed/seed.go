package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/tahsin/lingora/internal/app/models"
	appRepos "github.com/tahsin/lingora/internal/app/repositories"
	"github.com/tahsin/lingora/internal/config"
	"github.com/tahsin/lingora/internal/pkg/apperrors"
)

// CreateDefaultData populates the instructor showcase and the bootstrap admin
// account. Both steps are idempotent; errors are collected so a partial seed
// does not block startup.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	instructorRepo := appRepos.NewInstructorRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	var finalErr error

	// --- Instructor showcase --- //
	count, err := instructorRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting instructor profiles")
		finalErr = errors.Join(finalErr, err)
	} else if count == 0 {
		lgr.Info().Msg("Seeding default instructor profiles...")

		defaults := []*appModels.Instructor{
			{Name: "Maria Keller", Email: "maria.keller@lingora.app", ClassesTaught: 4, StudentsEnrolled: 120},
			{Name: "Jun Tanaka", Email: "jun.tanaka@lingora.app", ClassesTaught: 3, StudentsEnrolled: 95},
			{Name: "Lucia Romero", Email: "lucia.romero@lingora.app", ClassesTaught: 5, StudentsEnrolled: 82},
		}

		for _, instructor := range defaults {
			if _, err := instructorRepo.Create(ctx, instructor); err != nil {
				lgr.Error().Err(err).Str("email", instructor.Email).Msg("Error seeding instructor profile")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- Bootstrap admin --- //
	if cfg.Seed.AdminEmail == "" {
		return finalErr
	}

	user, err := userRepo.GetByEmail(ctx, cfg.Seed.AdminEmail)
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Creating bootstrap admin user...")
		admin := &appModels.User{
			Email: cfg.Seed.AdminEmail,
			Name:  "Administrator",
			Role:  appModels.RoleAdmin,
		}
		if _, err := userRepo.Create(ctx, admin); err != nil {
			lgr.Error().Err(err).Msg("Error creating bootstrap admin user")
			finalErr = errors.Join(finalErr, err)
		}
	case err != nil:
		lgr.Error().Err(err).Msg("Error checking bootstrap admin user")
		finalErr = errors.Join(finalErr, err)
	case user.Role != appModels.RoleAdmin:
		lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Promoting bootstrap admin user...")
		if _, err := userRepo.UpdateRole(ctx, user.ID, appModels.RoleAdmin); err != nil {
			lgr.Error().Err(err).Msg("Error promoting bootstrap admin user")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
