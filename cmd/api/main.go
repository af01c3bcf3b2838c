package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/questforge/questledger-backend/api/routes"
	"github.com/questforge/questledger-backend/internal/items"
	"github.com/questforge/questledger-backend/internal/mastery"
	"github.com/questforge/questledger-backend/internal/templates"
	"github.com/questforge/questledger-backend/internal/treasury"
	"github.com/questforge/questledger-backend/pkg/config"
	"github.com/questforge/questledger-backend/pkg/db"
	"github.com/questforge/questledger-backend/pkg/logger"
	"github.com/questforge/questledger-backend/pkg/metrics"
	"github.com/questforge/questledger-backend/pkg/migrate"
	"github.com/questforge/questledger-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, idempotent replay disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	itemMetrics := metrics.NewItemMetrics(registry)

	templatesRepo := templates.NewRepository(dbClient.DB())
	masteryRepo := mastery.NewRepository(dbClient.DB())
	treasuryRepo := treasury.NewRepository(dbClient.DB())

	templatesService, err := templates.NewService(templatesRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create templates service", err)
		os.Exit(1)
	}

	masteryService, err := mastery.NewService(mastery.ServiceParams{
		Repo:   masteryRepo,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create mastery service", err)
		os.Exit(1)
	}

	treasuryService, err := treasury.NewService(treasuryRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create treasury service", err)
		os.Exit(1)
	}

	itemsService, err := items.NewService(items.ServiceParams{
		Tx:        dbClient,
		Repo:      items.NewRepository(dbClient.DB()),
		Templates: templatesRepo,
		Mastery:   items.NewMasteryLedger(masteryRepo),
		Treasury:  items.NewTreasuryLedger(treasuryRepo),
		Metrics:   itemMetrics,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create items service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:    cfg,
			Logger:    logg,
			DB:        dbClient,
			Redis:     redisClient,
			Registry:  registry,
			Items:     itemsService,
			Templates: templatesService,
			Mastery:   masteryService,
			Treasury:  treasuryService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
