package workload

import (
	"cmp"
	"context"
	"slices"
	"time"

	"Bookstore/internal/inventory"
)

// Result is one worker's tally for the measured runs.
type Result struct {
	Successful   int
	Total        int
	CustomerRuns int
	Elapsed      time.Duration
}

type worker struct {
	cfg   Config
	stock inventory.StockManager
	shop  inventory.BookStore
	gen   *Generator

	customerRuns int
}

func (w *worker) run(ctx context.Context) (Result, error) {
	for range w.cfg.WarmupRuns {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		_ = w.interact(w.gen.percent())
	}

	w.customerRuns = 0
	res := Result{Total: w.cfg.Runs}

	start := time.Now()
	for range w.cfg.Runs {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if w.interact(w.gen.percent()) == nil {
			res.Successful++
		}
	}
	res.Elapsed = time.Since(start)
	res.CustomerRuns = w.customerRuns
	return res, nil
}

// interact runs the interaction that roll falls into.
func (w *worker) interact(roll float64) error {
	rare := w.cfg.PercentRareStockManager
	frequent := rare + w.cfg.PercentFrequentStockManager

	switch {
	case roll < rare:
		return w.addNewBooks()
	case roll < frequent:
		return w.replenishScarce()
	default:
		w.customerRuns++
		return w.buyEditorPicks()
	}
}

func (w *worker) addNewBooks() error {
	existing, err := w.stock.ReadAll()
	if err != nil {
		return err
	}
	have := make(map[int]struct{}, len(existing))
	for _, b := range existing {
		have[b.ISBN] = struct{}{}
	}

	books, err := w.gen.NextStockBooks(w.cfg.BooksToAdd)
	if err != nil {
		return err
	}
	books = slices.DeleteFunc(books, func(b inventory.StockBook) bool {
		_, ok := have[b.ISBN]
		return ok
	})
	return w.stock.AddBooks(books)
}

func (w *worker) replenishScarce() error {
	books, err := w.stock.ReadAll()
	if err != nil {
		return err
	}
	slices.SortFunc(books, func(a, b inventory.StockBook) int {
		return cmp.Compare(a.Copies, b.Copies)
	})

	k := min(w.cfg.BooksWithLeastCopies, len(books))
	copies := make([]inventory.BookCopy, 0, k)
	for _, b := range books[:k] {
		copies = append(copies, inventory.BookCopy{ISBN: b.ISBN, Copies: w.cfg.CopiesToAdd})
	}
	return w.stock.AddCopies(copies)
}

func (w *worker) buyEditorPicks() error {
	picks, err := w.shop.EditorPicks(w.cfg.EditorPicksToGet)
	if err != nil {
		return err
	}

	isbns := make([]int, 0, len(picks))
	for _, b := range picks {
		isbns = append(isbns, b.ISBN)
	}
	chosen, err := w.gen.Sample(isbns, min(w.cfg.BooksToBuy, len(isbns)))
	if err != nil {
		return err
	}

	order := make([]inventory.BookCopy, 0, len(chosen))
	for _, isbn := range chosen {
		order = append(order, inventory.BookCopy{ISBN: isbn, Copies: w.cfg.CopiesToBuy})
	}
	return w.shop.Purchase(order)
}
