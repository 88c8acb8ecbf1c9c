package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "photoGallery/docs"
	"photoGallery/internal/archive"
	"photoGallery/internal/config"
	"photoGallery/internal/http-server/handlers/album/createAlbum"
	"photoGallery/internal/http-server/handlers/album/deleteAlbum"
	"photoGallery/internal/http-server/handlers/album/getAlbum"
	"photoGallery/internal/http-server/handlers/album/listAlbums"
	"photoGallery/internal/http-server/handlers/album/renameAlbum"
	"photoGallery/internal/http-server/handlers/download/downloadAlbum"
	"photoGallery/internal/http-server/handlers/download/downloadAlbums"
	"photoGallery/internal/http-server/handlers/health"
	"photoGallery/internal/http-server/handlers/photo/addPhotos"
	"photoGallery/internal/http-server/handlers/upload/bulkUpload"
	"photoGallery/internal/http-server/middleware/mwlogger"
	"photoGallery/internal/ingest"
	"photoGallery/internal/kafka/producer"
	"photoGallery/internal/lib/logger/handlers/slogpretty"
	"photoGallery/internal/lib/logger/sl"
	"photoGallery/internal/storage/jsonstore"
	"photoGallery/internal/thumbnail"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// @title        Photo Gallery API
// @version      1.0
// @description  Password-gated photo gallery backend: albums, light/max uploads, thumbnails and ZIP downloads.
// @BasePath     /
func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("starting gallery server", slog.String("env", cfg.Env))
	log.Debug("debug messages are enabled")

	storage, err := jsonstore.New(cfg.Storage.MetadataPath, cfg.Storage.UploadsRoot, cfg.Storage.ThumbnailRoot)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	var events producer.ProducerIface = producer.Nop{}
	if cfg.Kafka.Enabled {
		events, err = producer.NewProducer(&cfg.Kafka, log)
		if err != nil {
			log.Error("failed to create kafka producer", sl.Err(err))
			os.Exit(1)
		}
	}

	thumbs := thumbnail.New(cfg.Storage.ThumbnailRoot, cfg.Thumbnail.Size, cfg.Thumbnail.Quality)
	pipeline := ingest.New(log, storage, thumbs, events, cfg.Upload)
	archiver := archive.New(
		log,
		cfg.Storage.UploadsRoot,
		cfg.Archive.FolderPrefix,
		cfg.Archive.LightLabel,
		cfg.Archive.MaxLabel,
		cfg.Archive.CompressionLevel,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/api/health", health.New())

	router.Route("/api/albums", func(r chi.Router) {
		r.Get("/", listAlbums.New(log, storage))
		r.Post("/", createAlbum.New(log, storage))
		r.Get("/{id}", getAlbum.New(log, storage))
		r.Put("/{id}", renameAlbum.New(log, storage))
		r.Delete("/{id}", deleteAlbum.New(log, storage, events))
		r.Post("/{id}/photos", addPhotos.New(log, pipeline))
		r.Get("/{id}/download", downloadAlbum.New(log, storage, archiver))
	})

	router.Post("/api/upload", bulkUpload.New(log, pipeline))
	router.Post("/api/download-multiple", downloadAlbums.New(log, storage, archiver))

	router.Handle("/uploads/albums/*", http.StripPrefix("/uploads/albums/", http.FileServer(http.Dir(cfg.Storage.UploadsRoot))))
	router.Handle("/uploads/thumbnails/*", http.StripPrefix("/uploads/thumbnails/", http.FileServer(http.Dir(cfg.Storage.ThumbnailRoot))))

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", sl.Err(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shut down server", sl.Err(err))
	}

	if err = events.Close(); err != nil {
		log.Error("failed to close event producer", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
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
