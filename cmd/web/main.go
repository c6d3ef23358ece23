package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"julmar.cl/web/internal/catalog"
	"julmar.cl/web/internal/cms"
	"julmar.cl/web/internal/config"
	"julmar.cl/web/internal/handlers"
	"julmar.cl/web/internal/i18n"
	"julmar.cl/web/internal/metrics"
	"julmar.cl/web/internal/observability"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config", os.Getenv("JULMAR_CONFIG_FILE"), "optional config file (yaml, toml or json)")
	flag.Parse()

	cfg, err := config.Load(config.WithFile(configFile))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server exited", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	srv, err := newServer(cfg, logger)
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	logger.Info("web listening",
		zap.String("addr", httpSrv.Addr),
		zap.Bool("dev", cfg.Site.Dev),
		zap.Int("machines", srv.catalog.Len()),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		logger.Info("web stopped")
		return nil
	})
	return g.Wait()
}

// newServer wires every dependency of the HTTP handlers. The catalog is
// validated up front so a broken data file never reaches production.
func newServer(cfg config.Config, logger *zap.Logger) (*server, error) {
	c, err := catalog.Load(cfg.Catalog.File)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	bundle, err := i18n.Load(os.DirFS(cfg.Paths.Locales), "es", []string{"es", "en"})
	if err != nil {
		return nil, err
	}

	cacheOpts := []cms.Option{cms.WithFallbackLang(bundle.Fallback())}
	if cfg.Site.Dev {
		cacheOpts = append(cacheOpts, cms.WithCacheTTL(0))
	}

	views, err := newRenderer(cfg.Paths.Templates, cfg.Site.Dev, bundle)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &server{
		site:      handlers.SiteFromConfig(cfg),
		publicDir: cfg.Paths.Public,
		catalog:   c,
		bundle:    bundle,
		content:   cms.NewStore(os.DirFS(cfg.Paths.Content), cacheOpts...),
		views:     views,
		metrics:   metrics.New(),
		logger:    logger,
		now:       time.Now,
	}, nil
}
