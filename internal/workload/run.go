// Package workload drives a bookstore with a concurrent mix of stock manager
// and customer interactions and reports throughput and latency. It works
// against anything implementing the inventory interfaces, either an
// in-process store or the HTTP clients.
package workload

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"Bookstore/internal/inventory"
)

// Seed adds cfg.InitialBooks generated books and flags the first
// cfg.InitialEditorPicks of them as editor picks.
func Seed(cfg Config, gen *Generator, stock inventory.StockManager) error {
	books, err := gen.NextStockBooks(cfg.InitialBooks)
	if err != nil {
		return err
	}
	for i := range books[:cfg.InitialEditorPicks] {
		books[i].EditorPick = true
	}
	if err := stock.AddBooks(books); err != nil {
		return fmt.Errorf("seed books: %w", err)
	}
	return nil
}

// Run seeds the store, runs cfg.Workers workers to completion and returns
// their combined report.
func Run(ctx context.Context, cfg Config, stock inventory.StockManager, shop inventory.BookStore, log *zap.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	runID := uuid.NewString()
	log = log.With(zap.String("run_id", runID))

	if err := Seed(cfg, NewGenerator(seed), stock); err != nil {
		return Report{}, err
	}
	log.Info("workload seeded",
		zap.Int("books", cfg.InitialBooks),
		zap.Int("editor_picks", cfg.InitialEditorPicks),
		zap.Int("workers", cfg.Workers),
	)

	results := make([]Result, cfg.Workers)
	g, gctx := errgroup.WithContext(ctx)
	for i := range cfg.Workers {
		w := &worker{
			cfg:   cfg,
			stock: stock,
			shop:  shop,
			gen:   NewGenerator(seed + uint64(i) + 1),
		}
		g.Go(func() error {
			res, err := w.run(gctx)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	rep := NewReport(runID, results)
	rep.Log(log)
	return rep, nil
}
