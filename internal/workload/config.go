package workload

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid workload config")

// Config drives one workload run. Percentages are out of 100; whatever the
// two stock manager percentages leave over goes to customer interactions.
type Config struct {
	Workers    int
	WarmupRuns int
	Runs       int

	PercentRareStockManager     float64
	PercentFrequentStockManager float64

	// Seeding before the run starts.
	InitialBooks       int
	InitialEditorPicks int

	// Rare stock manager interaction: add BooksToAdd new titles.
	BooksToAdd int

	// Frequent stock manager interaction: add CopiesToAdd copies to each of
	// the BooksWithLeastCopies books with the fewest copies.
	BooksWithLeastCopies int
	CopiesToAdd          int

	// Customer interaction: fetch EditorPicksToGet picks and buy CopiesToBuy
	// copies of BooksToBuy of them.
	EditorPicksToGet int
	BooksToBuy       int
	CopiesToBuy      int

	// Seed fixes the random streams. Zero picks a random seed.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		Workers:    60,
		WarmupRuns: 100,
		Runs:       500,

		PercentRareStockManager:     10,
		PercentFrequentStockManager: 30,

		InitialBooks:       100,
		InitialEditorPicks: 25,

		BooksToAdd:           5,
		BooksWithLeastCopies: 5,
		CopiesToAdd:          10,

		EditorPicksToGet: 10,
		BooksToBuy:       5,
		CopiesToBuy:      1,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be positive", ErrInvalidConfig)
	case c.Runs <= 0:
		return fmt.Errorf("%w: runs must be positive", ErrInvalidConfig)
	case c.WarmupRuns < 0:
		return fmt.Errorf("%w: warmup runs must be >= 0", ErrInvalidConfig)
	case c.PercentRareStockManager < 0 || c.PercentFrequentStockManager < 0:
		return fmt.Errorf("%w: percentages must be >= 0", ErrInvalidConfig)
	case c.PercentRareStockManager+c.PercentFrequentStockManager > 100:
		return fmt.Errorf("%w: stock manager percentages exceed 100", ErrInvalidConfig)
	case c.InitialEditorPicks > c.InitialBooks:
		return fmt.Errorf("%w: more initial editor picks than initial books", ErrInvalidConfig)
	}

	for name, v := range map[string]int{
		"initial books":           c.InitialBooks,
		"initial editor picks":    c.InitialEditorPicks,
		"books to add":            c.BooksToAdd,
		"books with least copies": c.BooksWithLeastCopies,
		"copies to add":           c.CopiesToAdd,
		"editor picks to get":     c.EditorPicksToGet,
		"books to buy":            c.BooksToBuy,
		"copies to buy":           c.CopiesToBuy,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must be >= 0", ErrInvalidConfig, name)
		}
	}

	// Zero-copy requests are rejected by the store, so every such run would
	// count as a failure.
	if c.PercentFrequentStockManager > 0 && c.CopiesToAdd < 1 {
		return fmt.Errorf("%w: copies to add must be at least 1", ErrInvalidConfig)
	}
	if c.customerPercent() > 0 && c.CopiesToBuy < 1 {
		return fmt.Errorf("%w: copies to buy must be at least 1", ErrInvalidConfig)
	}
	return nil
}

func (c Config) customerPercent() float64 {
	return 100 - c.PercentRareStockManager - c.PercentFrequentStockManager
}
