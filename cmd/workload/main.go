package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go.uber.org/zap"

	"Bookstore/internal/client"
	"Bookstore/internal/inventory"
	"Bookstore/internal/workload"
	"Bookstore/pkg/kit"
)

func main() {
	log := kit.NewLogger("workload", getenv("LOG_LEVEL", "info"))
	defer func() { _ = log.Sync() }()

	cfg := workload.DefaultConfig()
	cfg.Workers = getint(log, "WORKLOAD_WORKERS", cfg.Workers)
	cfg.WarmupRuns = getint(log, "WORKLOAD_WARMUP_RUNS", cfg.WarmupRuns)
	cfg.Runs = getint(log, "WORKLOAD_RUNS", cfg.Runs)

	var (
		stock inventory.StockManager
		shop  inventory.BookStore
	)
	if server := getenv("WORKLOAD_SERVER", ""); server != "" {
		stock = client.NewStockManagerClient(server)
		shop = client.NewBookStoreClient(server)
		log.Info("driving remote bookstore", zap.String("server", server))
	} else {
		store := inventory.NewStoreWithOptions(inventory.Options{Log: log.Named("inventory")})
		stock, shop = store, store
		log.Info("driving local bookstore")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := workload.Run(ctx, cfg, stock, shop, log); err != nil {
		log.Fatal("workload failed", zap.Error(err))
	}
}

func getint(log *zap.Logger, k string, def int) int {
	raw := getenv(k, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatal("bad "+k, zap.String("value", raw), zap.Error(err))
	}
	return v
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
