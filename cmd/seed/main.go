package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"wishcart/internal/cache"
	"wishcart/internal/config"
	"wishcart/internal/db"
	"wishcart/internal/logger"
	"wishcart/internal/model"
	"wishcart/internal/repository"
	"wishcart/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.Setup(cfg.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN, log)
	if err != nil {
		return err
	}
	defer db.CloseWithLog(gormDB, log)
	log.Info("connected to database", "driver", cfg.DBDriver)

	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	log.Info("loading products", "source", cfg.SeedSource)
	data, err := readSource(ctx, &http.Client{Timeout: 30 * time.Second}, cfg.SeedSource)
	if err != nil {
		return err
	}
	products, skipped, err := parseProducts(data)
	if err != nil {
		return err
	}
	if skipped > 0 {
		log.Warn("skipped products without a name", "count", skipped)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	seeded, err := seedProducts(ctx, repository.NewProductRepository(gormDB), cacheClient, products)
	if err != nil {
		return err
	}
	log.Info("seed completed", "products", seeded)
	return nil
}

// seedProducts upserts every product and drops its cached copy so the API
// serves the new values right away.
func seedProducts(ctx context.Context, repo repository.ProductRepository, cacheClient *cache.Client, products []model.Product) (int, error) {
	for i := range products {
		product := &products[i]
		if err := repo.Upsert(ctx, product); err != nil {
			return i, fmt.Errorf("upsert product %s: %w", product.ID, err)
		}
		_ = cacheClient.Delete(ctx, service.ProductCacheKey(product.ID))
	}
	return len(products), nil
}
