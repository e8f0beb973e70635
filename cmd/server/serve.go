package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"

	"github.com/Skotchmaster/mock_ecom/internal/cache"
	"github.com/Skotchmaster/mock_ecom/internal/httpserver"
	"github.com/Skotchmaster/mock_ecom/internal/mykafka"
	"github.com/Skotchmaster/mock_ecom/internal/seed"
	"github.com/Skotchmaster/mock_ecom/internal/service"
	"github.com/Skotchmaster/mock_ecom/pkg/config"
	"github.com/Skotchmaster/mock_ecom/pkg/logging"
	loggingmw "github.com/Skotchmaster/mock_ecom/pkg/middleware/logging"
	"github.com/Skotchmaster/mock_ecom/pkg/middleware/metrics"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg := config.Load()
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")
	config.MustOneOf(cfg.StoreDriver, "STORE_DRIVER", config.StoreSQL, config.StoreMongo)
	config.MustOneOf(cfg.CheckoutScope, "CHECKOUT_SCOPE", config.CheckoutScopeAll, config.CheckoutScopeUser)

	l := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)

	initCtx, cancel := context.WithTimeout(parent, 15*time.Second)
	store, err := openStore(initCtx, cfg, l)
	if err != nil {
		cancel()
		return fmt.Errorf("store init: %w", err)
	}
	added, err := seed.Run(initCtx, store)
	cancel()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if added > 0 {
		l.Info("catalog seeded", "products", added)
	}

	var events mykafka.Publisher = mykafka.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		prod, err := mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			return err
		}
		defer prod.Close()
		events = prod
		l.Info("kafka producer ready", "brokers", cfg.KafkaBrokers)
	}

	var catalogCache cache.Cache = cache.Noop{}
	if cfg.RedisAddr != "" {
		rc := cache.NewRedis(cfg.RedisAddr, cfg.ServiceName+":")
		defer rc.Close()
		pingCtx, cancel := context.WithTimeout(parent, 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			l.Warn("redis unavailable, catalog cache disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			catalogCache = rc
		}
		cancel()
	}

	authSvc := &service.AuthService{
		Users:     store,
		Events:    events,
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}
	catalogSvc := &service.CatalogService{Repo: store, Cache: catalogCache, CacheTTL: cfg.CatalogCacheTTL}
	cartSvc := &service.CartService{Repo: store, Catalog: store, Events: events}
	checkoutSvc := &service.CheckoutService{Catalog: store, Cart: store, Events: events}
	paymentSvc := &service.PaymentService{Events: events}

	m := metrics.New(cfg.ServiceName)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpserver.ErrorHandler

	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(m.Middleware())
	e.Use(loggingmw.RequestLogger(l))
	corsCfg := middleware.DefaultCORSConfig
	if len(cfg.CORSOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORSOrigins
	}
	e.Use(middleware.CORSWithConfig(corsCfg))

	httpserver.Register(e, &httpserver.Deps{
		Auth:    &httpserver.AuthHTTP{Svc: authSvc},
		Catalog: &httpserver.CatalogHTTP{Svc: catalogSvc},
		Cart:    &httpserver.CartHTTP{Svc: cartSvc, Auth: authSvc},
		Checkout: &httpserver.CheckoutHTTP{
			Svc:      checkoutSvc,
			Payments: paymentSvc,
			Auth:     authSvc,
			Scope:    cfg.CheckoutScope,
		},
		Ready:   store.Ping,
		Metrics: m.Handler(),
	})

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	errCh := make(chan error, 1)
	go func() {
		l.Info("starting http server", "addr", addr, "store", cfg.StoreDriver, "checkout_scope", cfg.CheckoutScope)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("echo start: %w", err)
		}
	}
	l.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		l.Error("echo shutdown", "error", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		l.Error("store close", "error", err)
	}

	l.Info("server stopped")
	return nil
}
