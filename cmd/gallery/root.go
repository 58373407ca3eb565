package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"photoGallery/internal/config"
	"photoGallery/internal/gallery"
	"photoGallery/internal/lib/logger/handlers/slogpretty"
	"photoGallery/internal/storage/postgres"
	"photoGallery/internal/storage/sqlite"
)

var (
	cfgPath string

	rootCmd = &cobra.Command{
		Use:          "gallery",
		Short:        "Photo gallery server",
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to the config file (defaults to $CONFIG_PATH, then the environment)")
}

type photoStore interface {
	gallery.Store
	Migrate(ctx context.Context) error
	Close() error
}

func openStore(cfg *config.Database) (photoStore, error) {
	switch cfg.Driver {
	case "postgres":
		s, err := postgres.InitDB(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "sqlite":
		s, err := sqlite.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case config.EnvLocal:
		log = setupPrettySlog()
	case config.EnvDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
