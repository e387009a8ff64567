package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/merseybathrooms/jobtracker/internal/audit"
	"github.com/merseybathrooms/jobtracker/internal/config"
	dbpkg "github.com/merseybathrooms/jobtracker/internal/db"
	"github.com/merseybathrooms/jobtracker/internal/imaging"
	"github.com/merseybathrooms/jobtracker/internal/routes"
	"github.com/merseybathrooms/jobtracker/internal/storage"
)

func main() {

	cfg := config.Load()

	db, err := dbpkg.Open(cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer func() {
		if err := dbpkg.Close(db); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	// ======================================================
	// PHOTO UPLOADS
	// ======================================================
	store, err := storage.NewS3Store(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to configure object store: %v", err)
	}

	var cache storage.KeyCache = storage.NewMemoryCache()
	if cfg.RedisURL != "" {
		redisCache, err := storage.NewRedisCache(cfg.RedisURL, 7*24*time.Hour)
		if err != nil {
			log.Fatalf("failed to configure redis: %v", err)
		}
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(pingCtx); err != nil {
			log.Printf("redis unreachable, upload cache degraded: %v", err)
		}
		cancel()
		defer redisCache.Close()
		cache = redisCache
	}

	var proc storage.Processor
	if cfg.Photos.Convert {
		proc = imaging.NewNormalizer(cfg.Photos)
	}

	uploader := storage.NewUploader(store, cache, proc, storage.Options{
		Concurrency: cfg.Storage.Concurrency,
		Retries:     cfg.Storage.Retries,
		Backoff:     cfg.Storage.Backoff,
	})

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	defer auditDispatcher.Close()

	// ======================================================
	// HTTP
	// ======================================================
	r := routes.NewEngine(cfg)
	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Uploader: uploader,
		Audit:    auditDispatcher,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", cfg.Addr())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
}
