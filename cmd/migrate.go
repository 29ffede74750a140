package main

import (
	"context"
	"database/sql"
	"fmt"

	root "civic"
	"civic/internal/config"
	"civic/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const migrationsDir = "migrations"

func setupGoose() error {
	goose.SetBaseFS(root.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}

	return nil
}

// migrateRiver brings the river queue tables to the latest version. It is a
// no-op when they are already there.
func migrateRiver(ctx context.Context, db *sql.DB) (int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if current >= latest {
		return current, nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		return 0, fmt.Errorf("could not migrate river queue database: %w", err)
	}

	return latest, nil
}

// migrateCommand constructs the 'migrate' command. Without a subcommand it
// applies the goose migrations of the service tables and then the river queue
// migrations; 'status' and 'down' only touch the goose migrations.
func migrateCommand(cfg *config.Config) *cobra.Command {
	withDB := func(run func(ctx context.Context, db *sql.DB) error) func(*cobra.Command, []string) {
		return func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := setupGoose(); err != nil {
				logger.Fatal(ctx, "could not set up goose", zap.Error(err))
			}
			if err := run(ctx, strg.DB.(*sql.DB)); err != nil { //nolint: forcetypeassert
				logger.Fatal(ctx, "migration failed", zap.Error(err))
			}
		}
	}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: withDB(func(ctx context.Context, db *sql.DB) error {
			if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
				return fmt.Errorf("could not migrate pgsql: %w", err)
			}

			version, err := migrateRiver(ctx, db)
			if err != nil {
				return err
			}
			logger.Info(ctx, "database is up to date", zap.Int("riverVersion", version))

			return nil
		}),
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Prints the state of every service migration",
			Run: withDB(func(ctx context.Context, db *sql.DB) error {
				return goose.StatusContext(ctx, db, migrationsDir) //nolint: wrapcheck
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Rolls back the most recent service migration",
			Run: withDB(func(ctx context.Context, db *sql.DB) error {
				return goose.DownContext(ctx, db, migrationsDir) //nolint: wrapcheck
			}),
		},
	)

	return cmd
}
