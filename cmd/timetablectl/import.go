package main

import (
	"fmt"
	"os"

	"github.com/Freeeeeet/timetable_bot/internal/app"
	"github.com/Freeeeeet/timetable_bot/internal/catalog"
	"github.com/Freeeeeet/timetable_bot/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the catalog stored in Postgres with a catalog file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger(cmd)
		defer logger.Sync()

		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			dsn = os.Getenv("DB_DSN")
		}
		if dsn == "" {
			return fmt.Errorf("--dsn or DB_DSN is required")
		}

		src, err := fileSource(cmd)
		if err != nil {
			return err
		}
		raw, err := src.Load(ctx)
		if err != nil {
			return err
		}
		rows, dropped, err := catalog.Normalize(raw)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return fmt.Errorf("%w: no courses in file", catalog.ErrCatalogLoad)
		}

		pool, err := pgxpool.New(ctx, dsn)
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer pool.Close()

		if migrations, _ := cmd.Flags().GetString("migrations"); migrations != "" {
			migrator, err := app.NewMigrator(pool, migrations, logger)
			if err != nil {
				return err
			}
			defer migrator.Close()
			if err := migrator.Run(ctx); err != nil {
				return err
			}
		}

		repo := repository.NewCourseRepository(pool, logger)
		n, err := repo.ReplaceAll(ctx, rows)
		if err != nil {
			return err
		}

		logger.Info("Catalog imported", zap.Int64("courses", n), zap.Int("dropped_rows", dropped))
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d courses (%d rows dropped)\n", n, dropped)
		return nil
	},
}

func init() {
	importCmd.Flags().String("dsn", "", "Postgres DSN (defaults to DB_DSN)")
	importCmd.Flags().String("migrations", "migrations", "Apply migrations from this directory first; empty to skip")
}
