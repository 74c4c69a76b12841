package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marcos-nsantos/image-toolbox/internal/adapter/handler"
	"github.com/marcos-nsantos/image-toolbox/internal/adapter/watcher"
	"github.com/marcos-nsantos/image-toolbox/internal/domain/entity"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/config"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/imageproc"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/observability"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/server"
	"github.com/marcos-nsantos/image-toolbox/internal/infrastructure/storage"
	"github.com/marcos-nsantos/image-toolbox/internal/usecase/artifact"
	"github.com/marcos-nsantos/image-toolbox/internal/usecase/ingest"
	"github.com/marcos-nsantos/image-toolbox/internal/usecase/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Metrics
	var (
		metrics  *observability.Metrics
		registry *prometheus.Registry
	)
	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = observability.NewMetrics(registry)
	}

	// Storage
	store := storage.NewMemoryStore(cfg.Storage)
	artifacts := artifact.NewManager(store, metrics, logger)

	var disk *storage.DiskDownloader
	if cfg.Storage.DownloadDir != "" {
		disk, err = storage.NewDiskDownloader(cfg.Storage.DownloadDir, logger)
		if err != nil {
			logger.Fatal("failed to prepare download directory", zap.Error(err))
		}
	}

	// Engines
	resampler, err := imageproc.NewResampler(cfg.Resize.Backend, cfg.Resize.Filter)
	if err != nil {
		logger.Fatal("failed to create resampler", zap.Error(err))
	}
	decoder := imageproc.NewDecoder(cfg.Upload.MaxPixels)
	compressor := imageproc.NewCompressor(cfg.Compress, resampler)
	resizer := imageproc.NewResizer(cfg.Resize, resampler)

	// Use cases
	ingestSvc := ingest.NewService(decoder, cfg.Upload.MaxBytes, logger)
	sessionSvc := session.NewService(ingestSvc, compressor, resizer, artifacts, metrics, logger, session.Options{
		Tool:           entity.Tool(cfg.Session.DefaultTool),
		DefaultQuality: cfg.Session.DefaultQuality,
		AspectLocked:   cfg.Session.AspectLocked,
		AutoApply:      cfg.Session.AutoApply,
		MaxEdge:        cfg.Resize.MaxEdge,
	})

	// Handlers
	var saver handler.DiskSaver
	if disk != nil {
		saver = disk
	}
	sessionHandler := handler.NewSessionHandler(sessionSvc, saver, cfg.Upload.MaxBytes)
	artifactHandler := handler.NewArtifactHandler(artifacts)

	// Router
	routerCfg := server.RouterConfig{
		SessionHandler:  sessionHandler,
		ArtifactHandler: artifactHandler,
		Logger:          logger,
		Environment:     cfg.Server.Environment,
	}
	if registry != nil {
		routerCfg.Gatherer = registry
	}
	router := server.NewRouter(routerCfg)

	// Server
	srv := server.NewServer(server.ServerConfig{
		Addr:            cfg.Server.Addr(),
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx)
	})

	if cfg.Watch.Dir != "" {
		inbox := watcher.NewInbox(cfg.Watch.Dir, cfg.Watch.Settle, cfg.Upload.MaxBytes, sessionSvc, logger)
		g.Go(func() error {
			return inbox.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("shutdown with error", zap.Error(err))
	}

	sessionSvc.End(context.Background())
	logger.Info("server stopped", zap.Int("live_handles", artifacts.Live()))
}
