package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/unilab/labdash/internal/gateway"
	"github.com/unilab/labdash/internal/shared/infrastructure/config"
	"github.com/unilab/labdash/pkg/migration"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "labdash",
		Short:         "Laboratory inventory dashboard backend",
		Long:          "labdash serves the lab inventory dashboard: list pages over the lab API, change monitors, notifications and report exports.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server and the change monitors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg.Log, os.Stderr)
			slog.SetDefault(logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := buildApp(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer a.Close()

			a.StartBackground(ctx)
			return gateway.NewServer(cfg.Server.Port, a.Handler()).Start(ctx)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the postgres preference schema",
	}
	cmd.AddCommand(
		migrateSubCmd("up", "Apply pending migrations", func(r *migration.Runner, cmd *cobra.Command) error {
			return r.Up()
		}),
		migrateSubCmd("down", "Roll back the last migration", func(r *migration.Runner, cmd *cobra.Command) error {
			return r.Down()
		}),
		migrateSubCmd("version", "Print the current schema version", func(r *migration.Runner, cmd *cobra.Command) error {
			v, dirty, err := r.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d dirty=%t\n", v, dirty)
			return nil
		}),
	)
	return cmd
}

func migrateSubCmd(use, short string, run func(*migration.Runner, *cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg.Log, cmd.ErrOrStderr())
			runner := migration.NewRunner(migration.Config{
				MigrationsPath: cfg.Preferences.MigrationsPath,
				DatabaseURL:    cfg.Database.URL(),
				Logger:         logger,
			})
			if err := run(runner, cmd); err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}
			return nil
		},
	}
}
