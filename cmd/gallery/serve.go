package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"photoGallery/internal/auth"
	"photoGallery/internal/config"
	"photoGallery/internal/events"
	"photoGallery/internal/filestore"
	"photoGallery/internal/gallery"
	"photoGallery/internal/http-server/router"
	"photoGallery/internal/janitor"
	"photoGallery/internal/kafka/consumer"
	"photoGallery/internal/kafka/producer"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/processor"
	"photoGallery/internal/session"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		return serve(cmd.Context(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type fileStore interface {
	gallery.FileStore
	janitor.FileRemover
}

func openFiles(cfg *config.Storage) (fileStore, error) {
	if cfg.Type == "s3" {
		s, err := filestore.NewS3(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return filestore.NewDisk(cfg.PublicDir, cfg.URLPrefix), nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	log := setupLogger(cfg.Env)

	log.Info("starting photo gallery", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	store, err := openStore(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close database", sl.Err(err))
		}
	}()

	if err = store.Migrate(ctx); err != nil {
		log.Error("failed to migrate database", sl.Err(err))
		return err
	}

	files, err := openFiles(&cfg.Storage)
	if err != nil {
		log.Error("failed to init file storage", sl.Err(err))
		return err
	}

	var publisher gallery.EventPublisher = events.Nop{}

	if cfg.Kafka.Enabled {
		kafkaProducer, err := producer.NewProducer(&cfg.Kafka, log)
		if err != nil {
			log.Error("failed to create kafka producer", sl.Err(err))
			return err
		}
		defer kafkaProducer.Close()

		kafkaConsumer, err := consumer.NewConsumer(&cfg.Kafka, log)
		if err != nil {
			log.Error("failed to create kafka consumer", sl.Err(err))
			return err
		}
		defer kafkaConsumer.Close()

		publisher = events.NewPublisher(log, kafkaProducer)

		go kafkaConsumer.ReadMessages(ctx, janitor.New(log, files).ProcessMessage)
	}

	media := processor.NewImageProcessor(log, processor.Options{
		FullWidth:   cfg.Media.FullWidth,
		ThumbWidth:  cfg.Media.ThumbWidth,
		JPEGQuality: cfg.Media.JPEGQuality,
	})

	photos := gallery.New(log, store, files, media, publisher, gallery.Options{MaxFiles: cfg.Upload.MaxFiles})

	if cfg.Admin.PasswordHash == "" {
		log.Warn("admin.password_hash is empty, login is disabled")
	}

	handler := router.New(
		log,
		cfg,
		photos,
		session.New(log, cfg.Session, cfg.SecureCookies()),
		auth.NewPasswordVerifier(cfg.Admin.PasswordHash),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err = <-serverErr:
		log.Error("failed to start server", sl.Err(err))
		return err
	case <-ctx.Done():
	}

	log.Info("application stopping")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop server", sl.Err(err))
		return err
	}

	log.Info("application stopped")

	return nil
}
