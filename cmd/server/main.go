package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/multivion/auth-api/internal/auth"
	"github.com/multivion/auth-api/internal/config"
	"github.com/multivion/auth-api/internal/handler"
	"github.com/multivion/auth-api/internal/mailer"
	"github.com/multivion/auth-api/internal/repository"
	"github.com/multivion/auth-api/internal/usecase"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.New(&logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	clientOpts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(clientOpts)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping MongoDB")
	}

	db := client.Database(cfg.MongoDatabase)
	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.JWTIssuer, cfg.JWTIssuer)
	m := mailer.NewMailer(&logger)

	authUsecase := usecase.NewAuthUsecase(userRepo, jwtAuth, m, cfg)
	passwordResetUsecase := usecase.NewPasswordResetUsecase(userRepo, m, cfg)

	router := handler.NewRouter(&logger, cfg, authUsecase, passwordResetUsecase)

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", cfg.Addr).Msg("starting auth server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("failed to start auth server")
		}
	}()

	<-ctx.Done()

	logger.Info().Msg("shutting down auth server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shut down auth server gracefully")
	}
}
