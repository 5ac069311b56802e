package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	intauth "github.com/gotnoskillz412/option22/internal/auth"
	"github.com/gotnoskillz412/option22/internal/cache"
	"github.com/gotnoskillz412/option22/internal/config"
	"github.com/gotnoskillz412/option22/internal/domain/repository"
	"github.com/gotnoskillz412/option22/internal/email"
	httpx "github.com/gotnoskillz412/option22/internal/http"
	"github.com/gotnoskillz412/option22/internal/http/handlers"
	"github.com/gotnoskillz412/option22/internal/http/middlewares"
	"github.com/gotnoskillz412/option22/internal/infra/cachefactory"
	jwtx "github.com/gotnoskillz412/option22/internal/jwt"
	"github.com/gotnoskillz412/option22/internal/observability/logger"
	"github.com/gotnoskillz412/option22/internal/store/mem"
	"github.com/gotnoskillz412/option22/internal/store/pg"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runServe(cfg)
		},
	}
}

func runServe(cfg *config.Config) error {
	logger.Init(logger.Config{
		Env:         cfg.App.Env,
		Level:       "info",
		ServiceName: "option22",
	})
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, pool, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	if pool != nil {
		defer pool.Close()
	}

	cacheClient, err := cachefactory.Open(cache.Config{
		Kind:       cfg.Cache.Kind,
		Addr:       cfg.Cache.Redis.Addr,
		Password:   cfg.Cache.Redis.Password,
		DB:         cfg.Cache.Redis.DB,
		Prefix:     cfg.Cache.Redis.Prefix,
		DefaultTTL: cfg.MemoryCacheTTL(),
	})
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer cacheClient.Close()

	issuer, err := jwtx.NewIssuer(cfg.JWT.Secret, cfg.AccessTTL())
	if err != nil {
		return err
	}
	blacklist := intauth.NewBlacklist(cacheClient, cfg.BlacklistTTL())

	var contact *email.ContactService
	if cfg.SMTP.Host != "" && cfg.SMTP.To != "" {
		contact = email.NewContactService(email.FromConfig(email.SMTPConfig{
			Host:      cfg.SMTP.Host,
			Port:      cfg.SMTP.Port,
			Username:  cfg.SMTP.Username,
			Password:  cfg.SMTP.Password,
			FromEmail: cfg.SMTP.From,
			TLSMode:   cfg.SMTP.TLS,
		}), cfg.SMTP.To)
	}

	metricsHandler, err := middlewares.RegisterMetrics(middlewares.MetricsConfig{
		Pool: func() *pgxpool.Pool { return pool },
	})
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	router := httpx.NewRouter(httpx.RouterDeps{
		Store:     store,
		Issuer:    issuer,
		Blacklist: blacklist,
		Contact:   contact,
		Metrics:   metricsHandler,
		Health:    handlers.NewHealthHandler(cacheClient),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return httpx.Serve(gctx, cfg.Server.Addr, router)
	})
	return g.Wait()
}

// openStore abre el backend configurado. Con postgres devuelve también
// el pool para exponer sus stats y cerrarlo al salir.
func openStore(ctx context.Context, cfg *config.Config) (*repository.Store, *pgxpool.Pool, error) {
	if cfg.Storage.Driver != "postgres" {
		return mem.New(), nil, nil
	}

	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := pg.Open(openCtx, pg.Config{
		DSN:             cfg.Storage.DSN,
		MaxConns:        int32(cfg.Storage.Postgres.MaxConns),
		ConnMaxLifetime: cfg.PostgresConnMaxLifetime(),
	})
	if err != nil {
		return nil, nil, err
	}
	return pg.New(pool), pool, nil
}
