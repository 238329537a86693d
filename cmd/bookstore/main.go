package main

import (
	"context"
	"os"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"Bookstore/internal/api"
	"Bookstore/internal/inventory"
	"Bookstore/pkg/kit"
)

func main() {
	service := "bookstore"
	log := kit.NewLogger(service, getenv("LOG_LEVEL", "info"))
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8081")
	metricsToken := getenv("METRICS_TOKEN", "")

	strict, err := strconv.ParseBool(getenv("STRICT_EDITOR_PICKS", "false"))
	if err != nil {
		log.Fatal("bad STRICT_EDITOR_PICKS", zap.Error(err))
	}
	perMin, err := strconv.Atoi(getenv("RATE_LIMIT_PER_MIN", "0"))
	if err != nil {
		log.Fatal("bad RATE_LIMIT_PER_MIN", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store := inventory.NewStoreWithOptions(inventory.Options{
		Log:               log.Named("inventory"),
		Metrics:           inventory.NewMetrics(reg),
		StrictEditorPicks: strict,
	})

	h := api.NewHandler(api.NewServer(store, log), api.HTTPDeps{
		Log:                  log,
		Service:              service,
		Registry:             reg,
		MetricsEnabled:       true,
		MetricsToken:         metricsToken,
		CustomerWritesPerMin: perMin,
	})

	if err := kit.RunHTTPServer(context.Background(), ":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
