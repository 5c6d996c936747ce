package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tahsin/lingora/internal/app/controllers"
	appMigrations "github.com/tahsin/lingora/internal/app/migrations"
	appRepos "github.com/tahsin/lingora/internal/app/repositories"
	appRoutes "github.com/tahsin/lingora/internal/app/routes"
	appServices "github.com/tahsin/lingora/internal/app/services"
	"github.com/tahsin/lingora/internal/config"
	"github.com/tahsin/lingora/internal/db"
	appMiddleware "github.com/tahsin/lingora/internal/middleware"
	pkgAuth "github.com/tahsin/lingora/internal/pkg/auth"
	"github.com/tahsin/lingora/internal/pkg/helpers"
	"github.com/tahsin/lingora/internal/pkg/logger"
	"github.com/tahsin/lingora/internal/pkg/payments"
	"github.com/tahsin/lingora/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService          appServices.UserService
	ClassService         appServices.ClassService
	InstructorService    appServices.InstructorService
	CartService          appServices.CartService
	PaymentService       appServices.PaymentService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	ClassController      *appControllers.ClassController
	InstructorController *appControllers.InstructorController
	CartController       *appControllers.CartController
	PaymentController    *appControllers.PaymentController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	PaymentGateway       payments.IntentCreator
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), cfg, dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.PaymentGateway = payments.NewStripeGateway(cfg.Payment.SecretKey, cfg.Payment.Currency)

	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository)
	deps.InstructorService = appServices.NewInstructorService(deps.Repos.InstructorRepository)
	deps.CartService = appServices.NewCartService(deps.Repos.CartRepository)
	deps.PaymentService = appServices.NewPaymentService(
		deps.Repos.PaymentRepository,
		deps.Repos.CartRepository,
		deps.PaymentGateway,
		lgr,
	)

	// Role checks read the user store at request time so promotions take
	// effect without reissuing tokens.
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.JWTService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)
	deps.InstructorController = appControllers.NewInstructorController(deps.InstructorService)
	deps.CartController = appControllers.NewCartController(deps.CartService)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ClassController,
		deps.InstructorController,
		deps.CartController,
		deps.PaymentController,
		deps.AuthMiddleware,
	)

	return router
}
