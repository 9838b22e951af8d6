package main

import (
	"errors"

	pg "cat-collector/internal/adapters/storage/postgres"
	"cat-collector/internal/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Aplica el schema Postgres embebido (idempotente)",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cfg.DatabaseDSN == "" {
			return errors.New("DB_DSN is required for migrate")
		}
		log := newLogger(cfg)

		db, err := pg.Open(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := pg.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		log.Info("schema applied", nil)
		return nil
	},
}
