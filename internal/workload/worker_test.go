package workload

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Bookstore/internal/inventory"
)

func newTestWorker(t *testing.T) (*worker, *inventory.Store) {
	t.Helper()

	store := inventory.NewStore()
	require.NoError(t, store.AddBooks([]inventory.StockBook{
		{ISBN: 1, Title: "a", Author: "a", PriceCents: 100, Copies: 1, EditorPick: true},
		{ISBN: 2, Title: "b", Author: "b", PriceCents: 100, Copies: 50, EditorPick: true},
		{ISBN: 3, Title: "c", Author: "c", PriceCents: 100, Copies: 7},
	}))

	cfg := DefaultConfig()
	cfg.BooksToAdd = 4
	cfg.BooksWithLeastCopies = 2
	cfg.CopiesToAdd = 10
	cfg.EditorPicksToGet = 10
	cfg.BooksToBuy = 2
	cfg.CopiesToBuy = 1

	return &worker{cfg: cfg, stock: store, shop: store, gen: NewGenerator(3)}, store
}

func TestWorker_AddNewBooks(t *testing.T) {
	w, store := newTestWorker(t)

	require.NoError(t, w.interact(0))
	assert.Equal(t, 7, store.Size())
	assert.Zero(t, w.customerRuns)
}

func TestWorker_ReplenishScarce(t *testing.T) {
	w, store := newTestWorker(t)

	require.NoError(t, w.interact(w.cfg.PercentRareStockManager))

	books, err := store.ReadByKeys([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 11, books[0].Copies)
	assert.Equal(t, 50, books[1].Copies)
	assert.Equal(t, 17, books[2].Copies)
}

func TestWorker_BuyEditorPicks(t *testing.T) {
	w, store := newTestWorker(t)

	require.NoError(t, w.interact(99.9))
	assert.Equal(t, 1, w.customerRuns)

	books, err := store.ReadByKeys([]int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 0, books[0].Copies)
	assert.Equal(t, 49, books[1].Copies)
	assert.Equal(t, 7, books[2].Copies)

	// Book 1 is sold out now, so the next purchase records a miss.
	err = w.interact(99.9)
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)
	books, err = store.ReadByKeys([]int{1})
	require.NoError(t, err)
	assert.Equal(t, 1, books[0].SaleMisses)
}

func TestWorker_RunCountsMeasuredRunsOnly(t *testing.T) {
	w, _ := newTestWorker(t)
	w.cfg.WarmupRuns = 20
	w.cfg.Runs = 30

	res, err := w.run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, res.Total)
	assert.LessOrEqual(t, res.Successful, res.Total)
	assert.LessOrEqual(t, res.CustomerRuns, res.Total)
	assert.Positive(t, res.Elapsed)
}

func TestWorker_RunStopsOnCancel(t *testing.T) {
	w, _ := newTestWorker(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := w.run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
