// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal service packages.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	adminhandler "admingate/internal/admin/handler"
	adminmetrics "admingate/internal/admin/metrics"
	"admingate/internal/admin/service"
	"admingate/internal/admin/store"
	"admingate/internal/admin/tracer"
	"admingate/internal/jwttoken"
	"admingate/internal/platform/config"
	"admingate/internal/platform/database"
	"admingate/internal/platform/health"
	"admingate/internal/platform/logger"
	"admingate/internal/platform/metrics"
	"admingate/internal/seeder"
	httptransport "admingate/internal/transport/http"
	"admingate/migrations"
)

const (
	tokenIssuer     = "admingate"
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	log.Info("initializing admingate",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"token_ttl", cfg.TokenTTL.String(),
	)

	pool, err := database.Open(database.Config{
		URL:             cfg.DatabaseURL,
		MaxOpenConns:    database.DefaultConfig().MaxOpenConns,
		MaxIdleConns:    database.DefaultConfig().MaxIdleConns,
		ConnMaxLifetime: database.DefaultConfig().ConnMaxLifetime,
	})
	if err != nil {
		log.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close() //nolint:errcheck

	var adminStore store.Store
	if pool != nil {
		if err := database.Migrate(context.Background(), pool.DB(), migrations.FS); err != nil {
			log.Error("schema migration failed", "error", err)
			os.Exit(1)
		}
		adminStore = store.NewPostgres(pool.DB())
		log.Info("using postgres account store")
	} else {
		adminStore = store.NewInMemoryStore()
		log.Info("no DATABASE_URL set, using in-memory account store")
	}

	tokens := jwttoken.NewService(cfg.JWTSigningKey, tokenIssuer, cfg.TokenTTL)
	authMetrics := adminmetrics.New()

	// Span export relies on the process-global OTel provider, configured by
	// the deployment environment. Development runs stay noop.
	var tr tracer.Tracer = tracer.NewNoop()
	if cfg.Environment == "production" {
		tr = tracer.NewOTel()
	}

	svc := service.New(adminStore, tokens,
		service.WithLogger(log),
		service.WithMetrics(authMetrics),
		service.WithTracer(tr),
		service.WithCredentialMode(service.CredentialMode(cfg.CredentialMode)),
	)

	if err := seeder.Seed(context.Background(), svc, config.SeedFromEnv(), log); err != nil {
		log.Error("seeding bootstrap admin failed", "error", err)
		os.Exit(1)
	}

	healthHandler := health.New(cfg.Environment)
	if pool != nil {
		healthHandler.RegisterCheck("database", func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return pool.Health(ctx)
		})
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Admin:       adminhandler.New(svc, log),
		Verifier:    tokens,
		Health:      healthHandler,
		HTTPMetrics: metrics.NewHTTP(),
		AuthMetrics: authMetrics,
		CORSOrigins: cfg.CORSAllowedOrigins,
		Logger:      log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}
