package workload

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"

	"Bookstore/internal/inventory"
)

const (
	maxGeneratedBooks = math.MaxInt32 / 8
	maxCopies         = 100
	maxPriceCents     = 100_000
)

// Generator produces random books and ISBN samples. It is not safe for
// concurrent use; each worker owns one.
type Generator struct {
	rnd *rand.Rand
}

func NewGenerator(seed uint64) *Generator {
	return &Generator{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NextStockBooks returns n books with distinct random ISBNs, 1 to 100 copies
// each and no ratings, misses or editor pick flag.
func (g *Generator) NextStockBooks(n int) ([]inventory.StockBook, error) {
	if n < 0 || n >= maxGeneratedBooks {
		return nil, fmt.Errorf("book count %d out of range", n)
	}

	seen := make(map[int]struct{}, n)
	out := make([]inventory.StockBook, 0, n)
	for len(out) < n {
		isbn := g.rnd.IntN(math.MaxInt32-1) + 1
		if _, dup := seen[isbn]; dup {
			continue
		}
		seen[isbn] = struct{}{}

		tag := strconv.FormatInt(int64(isbn), 36)
		out = append(out, inventory.StockBook{
			ISBN:       isbn,
			Title:      "Title_" + tag,
			Author:     "Author_" + tag,
			PriceCents: g.rnd.Int64N(maxPriceCents),
			Copies:     g.rnd.IntN(maxCopies) + 1,
		})
	}
	return out, nil
}

// Sample draws n distinct ISBNs from isbns without replacement. isbns is not
// modified.
func (g *Generator) Sample(isbns []int, n int) ([]int, error) {
	if n < 0 || n > len(isbns) {
		return nil, fmt.Errorf("cannot sample %d of %d isbns", n, len(isbns))
	}

	pool := append([]int(nil), isbns...)
	out := make([]int, 0, n)
	for range n {
		i := g.rnd.IntN(len(pool))
		out = append(out, pool[i])
		last := len(pool) - 1
		pool[i] = pool[last]
		pool = pool[:last]
	}
	return out, nil
}

// percent returns a uniform value in [0, 100).
func (g *Generator) percent() float64 {
	return g.rnd.Float64() * 100
}
