package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	kitchencfg "github.com/Skotchmaster/kitchen_control/internal/config"
	"github.com/Skotchmaster/kitchen_control/internal/models"
	"github.com/Skotchmaster/kitchen_control/internal/httpserver"
	"github.com/Skotchmaster/kitchen_control/internal/repo"
	"github.com/Skotchmaster/kitchen_control/internal/service"
	pkgconfig "github.com/Skotchmaster/kitchen_control/pkg/config"
	pkgdb "github.com/Skotchmaster/kitchen_control/pkg/db"
	"github.com/Skotchmaster/kitchen_control/pkg/events"
	"github.com/Skotchmaster/kitchen_control/pkg/logging"
	"github.com/Skotchmaster/kitchen_control/pkg/metrics"
	loggingmw "github.com/Skotchmaster/kitchen_control/pkg/middleware/logging"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the order HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			pkgconfig.LoadEnvFile(envFile)

			cfg, err := kitchencfg.Load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}
}

func newEcho(logger *slog.Logger, db *gorm.DB, pub events.Publisher, m *metrics.ServerMetrics) *echo.Echo {
	svc := service.NewOrderService(repo.NewGormRepo(db), pub, service.WithCounter(m))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(m.Middleware())
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		OrderHandler: &httpserver.OrderHTTP{Svc: svc},
		DB:           db,
		Metrics:      m,
	})
	return e
}

func runServe(ctx context.Context, cfg kitchencfg.ServiceConfig) error {
	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := pkgdb.Open(openCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		return fmt.Errorf("db open: %w", err)
	}
	defer func() {
		if err := pkgdb.Close(db); err != nil {
			logger.Error("db_close_error", "error", err)
		}
	}()

	if cfg.DBAutoMigrate {
		if err := pkgdb.Migrate(ctx, db, models.All()...); err != nil {
			return err
		}
		logger.Info("migrate_success")
	}

	pub := events.New(cfg.KafkaBrokers, cfg.OrderEventsTopic)
	defer func() {
		if err := pub.Close(); err != nil {
			logger.Error("publisher_close_error", "error", err)
		}
	}()

	e := newEcho(logger, db, pub, metrics.NewServerMetrics(cfg.ServiceName))

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	logger.Info("server_stopped")
	return err
}
