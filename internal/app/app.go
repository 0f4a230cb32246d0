package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/casedesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/casedesk-backend/internal/config"
	"github.com/heartmarshall/casedesk-backend/internal/scheduler"
	"github.com/heartmarshall/casedesk-backend/internal/telemetry"
	"github.com/heartmarshall/casedesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/casedesk-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, migrates and
// connects to the database, then serves HTTP and runs the background jobs
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting casedesk",
		slog.String("version", BuildVersion()),
		slog.String("environment", cfg.Server.Environment),
		slog.String("stage_scheme", cfg.Workflow.StageScheme),
	)

	shutdownTelemetry, err := telemetry.Init(ctx, cfg.Telemetry, "casedesk-server", Version)
	if err != nil {
		return fmt.Errorf("init telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(flushCtx); err != nil {
			logger.Warn("telemetry shutdown", slog.String("error", err.Error()))
		}
	}()

	if cfg.Database.AutoMigrate {
		n, err := postgres.Migrate(ctx, cfg.Database.DSN, logger)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations up to date", slog.Int("applied", n))
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	svc := NewServices(cfg, pool, logger)
	if cfg.Mail.VerifyOnStart {
		svc.Mailer.VerifyPrimary(ctx)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, svc, pool, logger, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	runner := scheduler.NewRunner(logger,
		scheduler.Job{Name: "deadline-monitor", Interval: cfg.Jobs.DeadlineInterval, Run: svc.Deadlines.Run},
		scheduler.Job{Name: "notification-refresh", Interval: cfg.Jobs.NotificationInterval, Run: svc.Notifications.RefreshAll},
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return runner.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	svc.Cases.Wait()
	logger.Info("stopped")
	return err
}

// NewHandler assembles the HTTP API on top of svc.
func NewHandler(cfg *config.Config, svc *Services, pool *pgxpool.Pool, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	production := cfg.Server.IsProduction()
	return rest.NewRouter(rest.RouterDeps{
		Logger:        logger,
		Verifier:      svc.Tokens,
		Tasks:         svc.Cases,
		CORS:          cfg.CORS,
		Limiter:       limiter,
		AuthRate:      cfg.Server.AuthRatePerMinute,
		Health:        rest.NewHealthHandler(pool, svc.Mailer, BuildVersion()),
		Auth:          rest.NewAuthHandler(svc.Auth, logger, production),
		Cases:         rest.NewCaseHandler(svc.Cases, logger, production),
		Notifications: rest.NewNotificationHandler(svc.Notifications, logger, production),
		Admin:         rest.NewAdminHandler(svc.Cases, svc.Cooldowns, logger, production),
	})
}
