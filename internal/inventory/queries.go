package inventory

import (
	"cmp"
	"fmt"
	"slices"
)

// EditorPicks returns up to n randomly chosen books flagged as editor picks,
// without repeats.
func (s *Store) EditorPicks(n int) ([]Book, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: number of picks must be non-negative, got %d", ErrInvalidArgument, n)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Each snapshot is taken under the same read lock that saw the flag.
	var candidates []Book
	for _, isbn := range s.items.keys() {
		it, _ := s.items.get(isbn)
		it.read(func(r *record) {
			if r.editorPick {
				candidates = append(candidates, r.book())
			}
		})
	}

	if len(candidates) < n && s.strict {
		return nil, fmt.Errorf("%w: asked for %d picks, only %d available", ErrInvalidArgument, n, len(candidates))
	}

	if len(candidates) > n {
		return sample(candidates, n, s.intn), nil
	}
	return candidates, nil
}

// sample draws n distinct elements from pool. pool is reordered in place:
// every draw swaps the chosen element with the last live one and shrinks the
// live range.
func sample[T any](pool []T, n int, intn func(int) int) []T {
	out := make([]T, 0, n)
	live := len(pool)
	for len(out) < n {
		i := intn(live)
		out = append(out, pool[i])
		live--
		pool[i], pool[live] = pool[live], pool[i]
	}
	return out
}

type rated struct {
	book  Book
	count int64
}

// TopRated returns the n books with the highest average rating. Ties go to
// the lower ISBN; books nobody rated rank after every rated book.
func (s *Store) TopRated(n int) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n < 0 || n > s.items.len() {
		return nil, fmt.Errorf("%w: n must be between 0 and %d, got %d", ErrInvalidArgument, s.items.len(), n)
	}

	all := make([]rated, 0, s.items.len())
	for _, isbn := range s.items.keys() {
		it, _ := s.items.get(isbn)
		it.read(func(r *record) {
			all = append(all, rated{book: r.book(), count: r.ratingCount})
		})
	}

	slices.SortFunc(all, compareRated)

	out := make([]Book, 0, n)
	for _, r := range all[:n] {
		out = append(out, r.book)
	}
	return out, nil
}

func compareRated(a, b rated) int {
	if (a.count > 0) != (b.count > 0) {
		if a.count > 0 {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(b.book.AverageRating, a.book.AverageRating); c != 0 {
		return c
	}
	return cmp.Compare(a.book.ISBN, b.book.ISBN)
}

// InDemand returns every book with at least one recorded sale miss, ordered
// by ISBN.
func (s *Store) InDemand() ([]StockBook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []StockBook
	for _, isbn := range s.items.keys() {
		b := s.snapshot(isbn)
		if b.InDemand() {
			out = append(out, b)
		}
	}
	return out, nil
}

// Rate records one rating per entry.
func (s *Store) Rate(ratings []BookRating) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range ratings {
		if err := s.validateISBN(r.ISBN); err != nil {
			return err
		}
		if r.Rating < MinRating || r.Rating > MaxRating {
			return fmt.Errorf("%w: rating %d for isbn %d is outside [%d, %d]",
				ErrValidation, r.Rating, r.ISBN, MinRating, MaxRating)
		}
	}

	for _, rt := range ratings {
		it, _ := s.items.get(rt.ISBN)
		it.write(func(r *record) {
			r.ratingTotal += int64(rt.Rating)
			r.ratingCount++
		})
	}
	return nil
}
