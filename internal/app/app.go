package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fsferdows/dhaka17-portal/internal/assistant"
	"github.com/fsferdows/dhaka17-portal/internal/auth"
	"github.com/fsferdows/dhaka17-portal/internal/config"
	"github.com/fsferdows/dhaka17-portal/internal/fixture"
	authsvc "github.com/fsferdows/dhaka17-portal/internal/service/auth"
	centersvc "github.com/fsferdows/dhaka17-portal/internal/service/center"
	"github.com/fsferdows/dhaka17-portal/internal/service/lookup"
	profilesvc "github.com/fsferdows/dhaka17-portal/internal/service/profile"
	"github.com/fsferdows/dhaka17-portal/internal/session"
	"github.com/fsferdows/dhaka17-portal/internal/store"
	"github.com/fsferdows/dhaka17-portal/internal/transport/middleware"
	"github.com/fsferdows/dhaka17-portal/internal/transport/rest"
	"github.com/fsferdows/dhaka17-portal/internal/voice"
)

// Run is the application entry point. It loads configuration, wires the
// stores and services, and serves the portal API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting portal",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	st, err := store.New(fixture.Load())
	if err != nil {
		return fmt.Errorf("load election data: %w", err)
	}

	sessions, err := session.Open(cfg.Session.Path, logger)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}

	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, sessions, jwt, cfg.Auth)
	lookupService := lookup.NewService(logger, st)
	profileService := profilesvc.NewService(logger, sessions, st)
	centerService := centersvc.NewService(logger, st)
	relay := assistant.NewRelay(logger, st, cfg.Assistant)
	hub := voice.NewHub()

	handlers := rest.Handlers{
		Auth:      rest.NewAuthHandler(authService, logger),
		Directory: rest.NewDirectoryHandler(lookupService, logger),
		Voters:    rest.NewVotersHandler(lookupService, logger),
		Profile:   rest.NewProfileHandler(profileService, logger),
		Admin:     rest.NewAdminHandler(centerService, logger),
		Assistant: rest.NewAssistantHandler(relay, logger),
		Voice:     rest.NewVoiceHandler(cfg.Voice, st, hub, logger),
		Health:    rest.NewHealthHandler(sessions, BuildVersion()),
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(authService),
	)(rest.NewRouter(handlers))

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
