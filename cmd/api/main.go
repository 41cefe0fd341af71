package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/config"
	apphttp "bookcatalog/internal/http"
	"bookcatalog/internal/httpx"
	"bookcatalog/internal/logger"
	"bookcatalog/internal/metrics"
	"bookcatalog/internal/session"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFormat, os.Stderr); err != nil {
		logrus.Fatalf("logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, closeSrc := mustOpenSource(ctx, cfg)
	defer closeSrc()

	svc := catalog.NewService(src, cfg.PageSize)
	if err := svc.Load(ctx); err != nil {
		logrus.Fatalf("cannot load catalog: %v", err)
	}

	sessions := session.NewStore(cfg.SessionTTL)
	go sessions.Run(ctx, time.Minute)

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rateLimiter.Run(ctx)

	router := apphttp.NewRouter(apphttp.NewCatalogHandler(svc, sessions), svc)
	handler := httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
		rateLimiter.Middleware,
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		metrics.Middleware,
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logrus.WithError(err).Warn("graceful shutdown failed")
		}
	}()

	logrus.WithFields(logrus.Fields{
		"addr":      cfg.Addr,
		"source":    cfg.DatasetSource,
		"page_size": cfg.PageSize,
	}).Info("starting server")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logrus.Fatalf("server error: %v", err)
	}
	logrus.Info("server stopped")
}

func mustOpenSource(ctx context.Context, cfg config.Config) (catalog.Source, func()) {
	switch cfg.DatasetSource {
	case config.SourcePostgres:
		pool := mustOpenDB(ctx, cfg.DatabaseDSN)
		return catalog.NewPostgresSource(pool), pool.Close
	case config.SourceFile:
		return catalog.NewYAMLSource(cfg.DatasetPath), func() {}
	default:
		return catalog.NewYAMLSource(""), func() {}
	}
}

func mustOpenDB(ctx context.Context, dsn string) *pgxpool.Pool {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logrus.Fatalf("cannot create db pool: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		logrus.Fatalf("cannot ping database (%s): %v", config.RedactDSN(dsn), err)
	}
	logrus.Info("database connection OK")
	return pool
}
