// Package cli holds the operator commands of the lending service.
package cli

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/book-network/lending/internal/queue"
	"github.com/Astemirdum/book-network/lending/internal/repository"
	"github.com/Astemirdum/book-network/lending/internal/service"
	"github.com/Astemirdum/book-network/lending/migrations"
	"github.com/Astemirdum/book-network/pkg/auth"
	"github.com/Astemirdum/book-network/pkg/logger"
	"github.com/Astemirdum/book-network/pkg/postgres"
)

type env struct {
	Database postgres.DB
	Log      logger.Log
}

type rootFlags struct {
	debug bool
}

func (r *rootFlags) connect(ctx context.Context) (*pgxpool.Pool, *zap.Logger, error) {
	var e env
	if err := envconfig.Process("", &e); err != nil {
		return nil, nil, errors.Wrap(err, "envconfig")
	}
	if r.debug {
		e.Log.LogLevel = zapcore.DebugLevel
	}
	log := logger.NewLogger(e.Log, "lendingctl")
	pool, err := pgxpool.New(ctx, e.Database.DSN())
	if err != nil {
		return nil, nil, errors.Wrap(err, "pgxpool.New")
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, errors.Wrap(err, "ping")
	}
	return pool, log, nil
}

func NewRootCmd() *cobra.Command {
	rt := &rootFlags{}
	root := &cobra.Command{
		Use:           "lendingctl",
		Short:         "Operator tasks for the lending service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&rt.debug, "debug", false, "enable debug logging")
	root.AddCommand(newMigrateCmd(rt), newSeedRolesCmd(rt))
	return root
}

func newMigrateCmd(rt *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate {up|down|status}",
		Short:     "Apply, roll back or inspect schema migrations",
		ValidArgs: []string{"up", "down", "status"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, log, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()
			if err := postgres.Migrate(pool, migrations.MigrationFiles, args[0]); err != nil {
				return err
			}
			log.Info("migrate done", zap.String("command", args[0]))
			return nil
		},
	}
}

func newSeedRolesCmd(rt *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-roles [name...]",
		Short: "Create the given roles if missing (default USER)",
		RunE: func(cmd *cobra.Command, args []string) error {
			roles := rolesOrDefault(args)
			pool, log, err := rt.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			repo, err := repository.NewRepository(pool, log)
			if err != nil {
				return err
			}
			svc := service.NewService(repo, queue.NewNoopEnqueuer(), log)
			if err := svc.SeedRoles(cmd.Context(), roles); err != nil {
				return err
			}
			existing, err := repo.ListRoles(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range existing {
				cmd.Println(r.ID, r.Name)
			}
			return nil
		},
	}
}

func rolesOrDefault(args []string) []string {
	if len(args) == 0 {
		return []string{auth.RoleUser}
	}
	return args
}
