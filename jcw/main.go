package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jcw/jcw/config"
	"jcw/jcw/controllers"
	"jcw/jcw/routes"
	"jcw/jcw/services/activity"
	"jcw/jcw/services/indexer"
	"jcw/jcw/services/templates"
	"jcw/jcw/services/tenant"
	"jcw/jcw/sources/psql"
	"jcw/jcw/sources/psql/dao"
	"jcw/jcw/sources/storage"
	"jcw/jcw/utils/logging"

	"go.uber.org/zap"
)

func contentSource(cfg config.Config) (indexer.Source, error) {
	if cfg.ContentSource == "html" {
		return indexer.NewHTMLSource(cfg.SiteBaseURL, nil), nil
	}
	return indexer.NewCatalogSource()
}

func main() {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	defer logging.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	src, err := contentSource(cfg)
	if err != nil {
		logging.ErrorLogger.Error("content source error", zap.Error(err))
		os.Exit(1)
	}
	var opts []indexer.Option
	if cfg.MinIOEnabled() {
		minioClient, err := storage.NewMinIOClient(ctx, cfg)
		if err != nil {
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
			os.Exit(1)
		}
		opts = append(opts, indexer.WithSnapshots(minioClient))
	}
	ix := indexer.New(src, opts...)

	var activityDAO *dao.ActivityDAO
	if cfg.DatabaseEnabled() {
		db, err := psql.NewDatabase(ctx, cfg)
		if err != nil {
			logging.ErrorLogger.Error("database connection error", zap.Error(err))
			os.Exit(1)
		}
		defer db.Close()
		activityDAO = dao.NewActivityDAO(db.DB)
	}
	rec := activity.NewRecorder(activityDAO)

	resolver := tenant.NewResolver(tenant.NewClient(cfg.APIBaseURL, nil), cfg.TenantHostSuffixes, cfg.TenantReservedKeys)
	router := routes.NewRouter(cfg, routes.Controllers{
		Health:    controllers.NewHealthController(ix),
		Assistant: controllers.NewAssistantController(ix, rec),
		Tenant:    controllers.NewTenantController(resolver, rec, cfg.SiteBaseURL),
		Auth:      controllers.NewAuthController(cfg, rec),
		Templates: controllers.NewTemplatesController(templates.NewClient(cfg.APIBaseURL, nil), rec),
		Activity:  controllers.NewActivityController(rec),
	})

	// warm the index so the first question does not pay for it
	go func() {
		warmCtx, warmCancel := context.WithTimeout(context.Background(), time.Minute)
		defer warmCancel()
		if err := ix.EnsureFresh(warmCtx); err != nil {
			logging.ErrorLogger.Error("initial content index failed", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logging.AppLogger.Info("server listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.Bool("database", cfg.DatabaseEnabled()),
			zap.Bool("snapshots", cfg.MinIOEnabled()),
			zap.String("content_source", cfg.ContentSource),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}
