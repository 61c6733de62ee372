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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/wilsonXeem/clong-backend/docs" // generated swagger docs
	appAuth "github.com/wilsonXeem/clong-backend/internal/app/auth"
	appControllers "github.com/wilsonXeem/clong-backend/internal/app/controllers"
	appMigrations "github.com/wilsonXeem/clong-backend/internal/app/migrations"
	appRepos "github.com/wilsonXeem/clong-backend/internal/app/repositories"
	appRoutes "github.com/wilsonXeem/clong-backend/internal/app/routes"
	appServices "github.com/wilsonXeem/clong-backend/internal/app/services"
	"github.com/wilsonXeem/clong-backend/internal/config"
	"github.com/wilsonXeem/clong-backend/internal/db"
	appMiddleware "github.com/wilsonXeem/clong-backend/internal/middleware"
	pkgAuth "github.com/wilsonXeem/clong-backend/internal/pkg/auth"
	"github.com/wilsonXeem/clong-backend/internal/pkg/helpers"
	"github.com/wilsonXeem/clong-backend/internal/pkg/imagehost"
	"github.com/wilsonXeem/clong-backend/internal/pkg/logger"
	"github.com/wilsonXeem/clong-backend/internal/seed"
)

// Public endpoints that accept unauthenticated writes share one limiter.
const (
	publicRateLimit = 5.0 / 60.0 // per second, 5 requests a minute
	publicRateBurst = 5
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos        *appRepos.Repositories
	Services     *appServices.Services
	Controllers  *appRoutes.Controllers
	AuthMW       *appMiddleware.AuthMiddleware
	RateLimiter  *appMiddleware.RateLimiter
	JWTService   *pkgAuth.JWTService
	AuthzService *appAuth.AuthorizationService
	Uploader     imagehost.Uploader
	Logger       zerolog.Logger
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
// seeds the admin account.
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
	lgr.Info().Msg("Database connection established")

	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	userRepo := appRepos.NewUserRepository(dbPool)
	if err := seed.EnsureAdmin(context.Background(), userRepo, cfg); err != nil {
		// startup continues without the seed account
		lgr.Error().Err(err).Msg("Failed to seed admin account")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, controllers and
// shared middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	uploader, err := buildUploader(cfg, lgr)
	if err != nil {
		return nil, err
	}
	deps.Uploader = uploader

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.Expiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})
	deps.AuthzService = appAuth.NewAuthorizationService()

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.Uploader, deps.AuthzService, lgr)

	deps.AuthMW = appMiddleware.NewAuthMiddleware(deps.JWTService)
	deps.RateLimiter = appMiddleware.NewRateLimiter(publicRateLimit, publicRateBurst)

	deps.Controllers = &appRoutes.Controllers{
		User:      appControllers.NewUserController(deps.Services.UserService),
		Program:   appControllers.NewProgramController(deps.Services.ProgramService),
		Donation:  appControllers.NewDonationController(deps.Services.DonationService),
		Event:     appControllers.NewEventController(deps.Services.EventService),
		Article:   appControllers.NewArticleController(deps.Services.ArticleService),
		Story:     appControllers.NewStoryController(deps.Services.StoryService),
		Resource:  appControllers.NewResourceController(deps.Services.ResourceService),
		Volunteer: appControllers.NewVolunteerController(deps.Services.VolunteerService),
		Outreach:  appControllers.NewOutreachController(deps.Services.OutreachService),
		Upload:    appControllers.NewUploadController(deps.Uploader),
	}

	return deps, nil
}

// buildUploader selects the image host: Cloudinary when credentials are
// configured, local disk otherwise.
func buildUploader(cfg *config.Config, lgr zerolog.Logger) (imagehost.Uploader, error) {
	if cfg.HasCloudinary() {
		lgr.Info().Str("cloud", cfg.Cloudinary.CloudName).Msg("Using Cloudinary image host")
		return imagehost.NewCloudinary(imagehost.CloudinaryConfig{
			CloudName: cfg.Cloudinary.CloudName,
			APIKey:    cfg.Cloudinary.APIKey,
			APISecret: cfg.Cloudinary.APISecret,
		}), nil
	}

	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	local, err := imagehost.NewLocalStorage(cfg.Storage.LocalPath, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize local storage")
		return nil, fmt.Errorf("failed to initialize local storage: %w", err)
	}
	lgr.Info().Str("path", cfg.Storage.LocalPath).Msg("Using local image storage")
	return local, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/api-docs/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMW, deps.RateLimiter)

	if !cfg.HasCloudinary() {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return router
}
