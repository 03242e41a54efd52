package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	kitchencfg "github.com/Skotchmaster/kitchen_control/internal/config"
	"github.com/Skotchmaster/kitchen_control/internal/models"
	pkgconfig "github.com/Skotchmaster/kitchen_control/pkg/config"
	pkgdb "github.com/Skotchmaster/kitchen_control/pkg/db"
	"github.com/Skotchmaster/kitchen_control/pkg/logging"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			pkgconfig.LoadEnvFile(envFile)

			cfg, err := kitchencfg.Load()
			if err != nil {
				return err
			}
			return runMigrate(cmd.Context(), cfg)
		},
	}
}

func runMigrate(ctx context.Context, cfg kitchencfg.ServiceConfig) error {
	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	db, err := pkgdb.Open(openCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		return fmt.Errorf("db open: %w", err)
	}
	defer func() { _ = pkgdb.Close(db) }()

	if err := pkgdb.Migrate(ctx, db, models.All()...); err != nil {
		return err
	}

	logger.Info("migrate_success")
	return nil
}
