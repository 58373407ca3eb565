package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"photoGallery/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Creates or upgrades the photos table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		log := setupLogger(cfg.Env)

		store, err := openStore(&cfg.Database)
		if err != nil {
			return err
		}
		defer store.Close()

		if err = store.Migrate(cmd.Context()); err != nil {
			return err
		}

		log.Info("database migrated", slog.String("driver", cfg.Database.Driver))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
