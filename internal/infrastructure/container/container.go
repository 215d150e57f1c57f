package container

import (
	"fmt"
	"time"

	"github.com/amora-app/amora-backend/internal/config"
	"github.com/amora-app/amora-backend/internal/delivery/http"
	"github.com/amora-app/amora-backend/internal/delivery/http/handler"
	"github.com/amora-app/amora-backend/internal/delivery/http/middleware"
	"github.com/amora-app/amora-backend/internal/infrastructure/database"
	"github.com/amora-app/amora-backend/internal/infrastructure/server"
	"github.com/amora-app/amora-backend/internal/logging"
	"github.com/amora-app/amora-backend/internal/repository/postgres"
	redisrepo "github.com/amora-app/amora-backend/internal/repository/redis"
	"github.com/amora-app/amora-backend/internal/usecase/auth"
	"github.com/amora-app/amora-backend/internal/usecase/feed"
	"github.com/amora-app/amora-backend/internal/usecase/match"
	"github.com/amora-app/amora-backend/internal/usecase/moderation"
	"github.com/amora-app/amora-backend/internal/usecase/profile"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger logging.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container.
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logging.New(cfg.Logging.Level)

	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	likeRepo := postgres.NewLikeRepository(db)
	matchRepo := postgres.NewMatchRepository(db)
	blockRepo := postgres.NewBlockRepository(db)
	reportRepo := postgres.NewReportRepository(db)
	sessionRepo := redisrepo.NewSessionRepository(redisClient)

	// Use cases
	authUseCase := auth.NewAuthUseCase(
		userRepo,
		sessionRepo,
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryMinutes)*time.Minute,
	)
	profileUseCase := profile.NewProfileUseCase(profileRepo, userRepo)
	matchUseCase := match.NewMatchUseCase(likeRepo, matchRepo, profileRepo, log)
	feedUseCase := feed.NewFeedUseCase(profileRepo, blockRepo)
	moderationUseCase := moderation.NewModerationUseCase(blockRepo, reportRepo, userRepo, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authUseCase)
	profileHandler := handler.NewProfileHandler(profileUseCase)
	feedHandler := handler.NewFeedHandler(feedUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	moderationHandler := handler.NewModerationHandler(moderationUseCase)

	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	router := http.NewRouter(
		authHandler,
		profileHandler,
		feedHandler,
		matchHandler,
		moderationHandler,
		authMiddleware,
	)

	srv := server.NewServer(&cfg.Server, router.Setup())

	return &Container{
		Config: cfg,
		Logger: log,
		DB:     db,
		Redis:  redisClient,
		Server: srv,
	}, nil
}

// Close closes all connections.
func (c *Container) Close() error {
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			return fmt.Errorf("failed to close redis: %w", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
