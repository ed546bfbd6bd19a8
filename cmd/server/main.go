// @title         troubleshoot API
// @version       1.0
// @description   Botivate troubleshooting assistant: single-turn answers over caller-supplied or stored conversation history.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer JWT. Accepted as "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/pkg/errors"

	_ "github.com/botivate/troubleshoot/docs"

	// internal imports
	"github.com/botivate/troubleshoot/api/http"
	"github.com/botivate/troubleshoot/api/http/handlers"
	"github.com/botivate/troubleshoot/pkg/config"
	"github.com/botivate/troubleshoot/pkg/conversation"
	"github.com/botivate/troubleshoot/pkg/health"
	"github.com/botivate/troubleshoot/pkg/health/checkers"
	"github.com/botivate/troubleshoot/pkg/llm/provider"
	"github.com/botivate/troubleshoot/pkg/logging"
	"github.com/botivate/troubleshoot/pkg/repository/memory"
	pgrepo "github.com/botivate/troubleshoot/pkg/repository/postgres"
	redisrepo "github.com/botivate/troubleshoot/pkg/repository/redis"
	"github.com/botivate/troubleshoot/pkg/security/jwt"
	"github.com/botivate/troubleshoot/pkg/storage/postgres"
	redisstore "github.com/botivate/troubleshoot/pkg/storage/redis"
	"github.com/botivate/troubleshoot/pkg/support"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	if err := cfg.Validate(); err != nil {
		// a missing credential only degrades answers to the fallback text
		logger.Warn().Err(err).Msg("configuration incomplete")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	model, err := provider.New(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("init llm provider")
	}
	logger.Info().Str("provider", cfg.LLMProvider).Str("model", model.Model()).Msg("completion client ready")
	turns := support.NewHandler(model, logger)

	repo, storeChecker, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("store", cfg.Store).Msg("open conversation store")
	}
	defer closeStore()

	convUC := conversation.NewService(repo, turns)
	readiness := health.NewService(storeChecker, checkers.NewCredentialChecker(cfg.LLMProvider, cfg.APIKey()))
	if err := readiness.Ready(ctx); err != nil {
		logger.Warn().Err(err).Msg("starting unready")
	}

	// JWT auth middleware for conversation routes
	var authMW fiber.Handler
	if cfg.JWTSecret != "" {
		authMW = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	} else {
		logger.Warn().Msg("JWT_SECRET not set; conversation routes are unauthenticated")
	}

	app := fiber.New(fiber.Config{AppName: "troubleshoot", DisableStartupMessage: true})
	app.Use(recover.New())

	// Register routes
	http.Register(app,
		handlers.NewHealthHandler(readiness),
		handlers.NewTroubleshootHandler(turns),
		handlers.NewConversationHandler(convUC, logger),
		authMW,
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("shutdown")
		}
	}()

	// Start server
	logger.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

// openStore connects the configured conversation backend. The returned
// checker is nil for the in-memory store.
func openStore(ctx context.Context, cfg config.Config) (conversation.Repository, health.Checker, func(), error) {
	switch cfg.Store {
	case config.StorePostgres:
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "postgres connect")
		}
		repo, err := pgrepo.NewConversationRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, nil, errors.Wrap(err, "init conversation repo")
		}
		return repo, checkers.NewPostgresChecker(pool), pool.Close, nil
	case config.StoreRedis:
		client, err := redisstore.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, nil, errors.Wrap(err, "redis connect")
		}
		ttl := time.Duration(cfg.ConversationTTLMinutes) * time.Minute
		return redisrepo.NewConversationRepository(client, ttl), checkers.NewRedisChecker(client), func() { _ = client.Close() }, nil
	case config.StoreMemory, "":
		return memory.NewConversationRepository(), nil, func() {}, nil
	default:
		return nil, nil, nil, errors.Errorf("unknown STORE %q", cfg.Store)
	}
}
