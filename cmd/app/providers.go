package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/ecolife/ecolife-api/internal/domain/brand"
	"github.com/ecolife/ecolife-api/internal/domain/garden"
	"github.com/ecolife/ecolife-api/internal/infra/brandrepo"
	"github.com/ecolife/ecolife-api/internal/infra/brandstore"
	"github.com/ecolife/ecolife-api/internal/infra/config"
	"github.com/ecolife/ecolife-api/internal/infra/gardenstore"
)

const recentLookupCapacity = 256

func provideBrandConfig(cfg *config.Config) brand.Config {
	return brand.Config{
		TrendingLimit: cfg.Brand.TrendingLimit,
		RecentLimit:   cfg.Brand.RecentLimit,
	}
}

func provideGardenConfig(cfg *config.Config) garden.Config {
	return garden.Config{
		Secret:     cfg.Garden.SessionSecret,
		SessionTTL: cfg.Garden.SessionTTL,
		MaxPlants:  cfg.Garden.MaxPlants,
	}
}

func provideGardenStore() garden.Store {
	return gardenstore.NewMemoryStore()
}

func provideLookupRepository(cfg *config.Config, logger *slog.Logger) (brand.LookupRepository, func()) {
	fallback := brandrepo.NewMemoryRepository(recentLookupCapacity)
	noop := func() {}
	dsn := strings.TrimSpace(cfg.Brand.Postgres.DSN)
	if dsn == "" {
		logger.Info("brand postgres dsn not set, using memory repository")
		return fallback, noop
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback, noop
	}
	if cfg.Brand.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Brand.Postgres.MaxConns
	}
	if cfg.Brand.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Brand.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback, noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	repo := brandrepo.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("brand schema migration failed, using memory repository", "error", err)
		pool.Close()
		return fallback, noop
	}
	logger.Info("brand postgres repository enabled")
	return repo, pool.Close
}

func provideTrendStore(cfg *config.Config, logger *slog.Logger) (brand.TrendStore, func()) {
	noop := func() {}
	if !cfg.Brand.Redis.Enabled {
		return brandstore.NewMemoryStore(), noop
	}
	opt, err := buildValkeyOptions(cfg.Brand.Redis.Addr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
		return brandstore.NewMemoryStore(), noop
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory store", "error", err)
		return brandstore.NewMemoryStore(), noop
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory store", "error", err)
		client.Close()
		return brandstore.NewMemoryStore(), noop
	}
	logger.Info("brand valkey store enabled", "addr", cfg.Brand.Redis.Addr)
	return brandstore.NewValkeyStore(client, cfg.Brand.Redis.Prefix), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
