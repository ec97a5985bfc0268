package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/fuzumoe/alarm-service/configs"
	"github.com/fuzumoe/alarm-service/internal/handler"
	"github.com/fuzumoe/alarm-service/internal/i18n"
	"github.com/fuzumoe/alarm-service/internal/logger"
	"github.com/fuzumoe/alarm-service/internal/middleware"
	"github.com/fuzumoe/alarm-service/internal/pagination"
	"github.com/fuzumoe/alarm-service/internal/repository"
	"github.com/fuzumoe/alarm-service/internal/response"
	"github.com/fuzumoe/alarm-service/internal/server"
	"github.com/fuzumoe/alarm-service/internal/service"
)

const serviceName = "alarm-service"

// hookable functions for dependency injection
var (
	LoadConfig = configs.Load
	NewLogger  = logger.New
	NewDB      = repository.NewDB
	MigrateDB  = repository.Migrate
)

// Run starts the service and blocks until SIGINT or SIGTERM.
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return RunContext(ctx)
}

// RunContext loads config, opens the DB, runs migrations and serves HTTP
// until ctx is done, then shuts down gracefully.
func RunContext(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config load error: %w", err)
	}

	log, err := NewLogger(logger.Config{Level: cfg.LogLevel, Env: cfg.AppEnv, ServiceName: serviceName})
	if err != nil {
		return fmt.Errorf("logger init error: %w", err)
	}

	db, err := NewDB(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}

	if err := MigrateDB(db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	router, sessions, err := Build(cfg, db, log)
	if err != nil {
		return fmt.Errorf("build error: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return serve(ctx, srv, sessions, cfg, log)
}

// Build wires repositories, services and handlers into a router.
func Build(cfg *configs.Config, db *gorm.DB, log zerolog.Logger) (*gin.Engine, service.SessionService, error) {
	bundle, err := i18n.New(cfg.DefaultLocale)
	if err != nil {
		return nil, nil, err
	}

	userRepo := repository.NewUserRepo(db)
	sessionRepo := repository.NewSessionRepo(db)

	calc := pagination.NewCalculator(pagination.Defaults{
		Size:      cfg.PageSizeDefault,
		PageCount: cfg.PageCountDefault,
	})
	userService := service.NewUserService(userRepo, log)
	listingService := service.NewUserListingService(userRepo, calc, log)
	sessionService := service.NewSessionService(userRepo, sessionRepo, cfg.SessionSecret, cfg.SessionLifetime, log)
	healthService := service.NewHealthService(db, sessionRepo, serviceName)

	resp := response.NewWriter(bundle, log)
	userHandler := handler.NewUserHandler(userService, listingService, resp)
	authHandler := handler.NewAuthHandler(sessionService, handler.SessionCookie{
		Name:   cfg.SessionCookie,
		MaxAge: cfg.SessionLifetime,
		Secure: cfg.AppEnv == "prod",
	}, resp)

	router := server.NewRouter(cfg.ServerMode, log, bundle, server.Routes{
		Health: handler.NewHealthHandler(healthService),
		Public: []server.RouteRegistrar{
			server.RouteFunc(userHandler.RegisterPublicRoutes),
			server.RouteFunc(authHandler.RegisterPublicRoutes),
		},
		Protected: []server.RouteRegistrar{
			server.RouteFunc(userHandler.RegisterProtectedRoutes),
		},
		Auth: middleware.SessionAuth(sessionService, cfg.SessionCookie, resp),
	})
	return router, sessionService, nil
}

func serve(ctx context.Context, srv *http.Server, sessions service.SessionService, cfg *configs.Config, log zerolog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go cleanupSessions(cleanupCtx, sessions, cfg.SessionCleanup, log)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

// cleanupSessions removes expired sessions every interval until ctx is
// done. A non-positive interval disables the sweep.
func cleanupSessions(ctx context.Context, sessions service.SessionService, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := sessions.CleanupExpired(ctx); err != nil {
				log.Warn().Err(err).Msg("session cleanup failed")
			}
		}
	}
}
