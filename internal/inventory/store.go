// Package inventory holds the bookstore's in-memory catalog.
//
// Every operation takes the store's structural lock first: write mode for
// calls that insert or remove ISBNs, read mode for everything else. Calls
// that only touch book contents then lock the affected books one by one,
// so operations on disjoint books run in parallel. Purchase and AddCopies
// hold several book locks at once; they acquire them in ascending ISBN
// order.
package inventory

import (
	"fmt"
	"maps"
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type Options struct {
	Log     *zap.Logger
	Metrics *Metrics

	// StrictEditorPicks makes EditorPicks(n) fail when fewer than n books
	// are flagged instead of returning all of them.
	StrictEditorPicks bool

	// IntN draws a uniform integer in [0, n). Defaults to math/rand/v2.
	IntN func(n int) int
}

type Store struct {
	mu    sync.RWMutex
	items *itemTable

	log     *zap.Logger
	metrics *Metrics
	strict  bool
	intn    func(int) int
}

var (
	_ StockManager = (*Store)(nil)
	_ BookStore    = (*Store)(nil)
)

func NewStore() *Store {
	return NewStoreWithOptions(Options{})
}

func NewStoreWithOptions(opts Options) *Store {
	s := &Store{
		items:   newItemTable(),
		log:     opts.Log,
		metrics: opts.Metrics,
		strict:  opts.StrictEditorPicks,
		intn:    opts.IntN,
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.intn == nil {
		s.intn = rand.IntN
	}
	return s
}

// Size returns the number of books in the catalog.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items.len()
}

// AddBooks inserts a batch of new books. Either every book is inserted or,
// if any of them fails validation, none is.
func (s *Store) AddBooks(books []StockBook) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[int]struct{}, len(books))
	for _, b := range books {
		if err := validateNewBook(b); err != nil {
			return err
		}
		if _, dup := seen[b.ISBN]; dup || s.items.has(b.ISBN) {
			return fmt.Errorf("%w: %d", ErrDuplicateKey, b.ISBN)
		}
		seen[b.ISBN] = struct{}{}
	}

	for _, b := range books {
		s.items.insert(newRecord(b))
	}

	s.metrics.books(s.items.len())
	s.log.Debug("books added", zap.Int("count", len(books)), zap.Int("catalog_size", s.items.len()))
	return nil
}

func validateNewBook(b StockBook) error {
	switch {
	case b.ISBN <= 0:
		return invalidISBN(b.ISBN)
	case strings.TrimSpace(b.Title) == "":
		return fmt.Errorf("%w: isbn %d has an empty title", ErrValidation, b.ISBN)
	case strings.TrimSpace(b.Author) == "":
		return fmt.Errorf("%w: isbn %d has an empty author", ErrValidation, b.ISBN)
	case b.Copies < 1 || b.Copies > MaxCopiesPerCall:
		return fmt.Errorf("%w: isbn %d copies must be in [1, %d], got %d", ErrValidation, b.ISBN, MaxCopiesPerCall, b.Copies)
	case b.PriceCents < 0:
		return fmt.Errorf("%w: isbn %d has negative price %d", ErrValidation, b.ISBN, b.PriceCents)
	}
	return nil
}

// AddCopies replenishes existing books. Repeated ISBNs add up. The affected
// books stay locked together while the batch is checked and applied, so
// either every count lands or none does.
func (s *Store) AddCopies(copies []BookCopy) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.validateCopies(copies); err != nil {
		return err
	}

	add := make(map[int]int, len(copies))
	for _, c := range copies {
		add[c.ISBN] += c.Copies
	}
	isbns := slices.Sorted(maps.Keys(add))

	locked := s.items.lockAscending(isbns)
	defer unlockAll(locked)

	for i, isbn := range isbns {
		if have := locked[i].rec.copies; have > math.MaxInt-add[isbn] {
			return fmt.Errorf("%w: isbn %d cannot hold %d more copies", ErrValidation, isbn, add[isbn])
		}
	}

	total := 0
	for i, isbn := range isbns {
		locked[i].rec.copies += add[isbn]
		total += add[isbn]
	}

	s.metrics.replenished(total)
	return nil
}

// validateCopies checks ISBNs and counts of a copy batch. Callers hold the
// structural lock.
func (s *Store) validateCopies(copies []BookCopy) error {
	for _, c := range copies {
		if err := s.validateISBN(c.ISBN); err != nil {
			return err
		}
		if c.Copies < 1 || c.Copies > MaxCopiesPerCall {
			return fmt.Errorf("%w: isbn %d copies must be in [1, %d], got %d",
				ErrValidation, c.ISBN, MaxCopiesPerCall, c.Copies)
		}
	}
	return nil
}

func (s *Store) validateISBN(isbn int) error {
	if isbn <= 0 {
		return invalidISBN(isbn)
	}
	if !s.items.has(isbn) {
		return notFound(isbn)
	}
	return nil
}

func (s *Store) validateISBNs(isbns []int) error {
	for _, isbn := range isbns {
		if err := s.validateISBN(isbn); err != nil {
			return err
		}
	}
	return nil
}

// ReadAll returns a snapshot of every book, ordered by ISBN. Each snapshot is
// consistent on its own; books are read one after another, not atomically
// as a group.
func (s *Store) ReadAll() ([]StockBook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := s.items.keys()
	out := make([]StockBook, 0, len(keys))
	for _, isbn := range keys {
		out = append(out, s.snapshot(isbn))
	}
	return out, nil
}

// ReadByKeys returns snapshots of the requested books in request order.
func (s *Store) ReadByKeys(isbns []int) ([]StockBook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.validateISBNs(isbns); err != nil {
		return nil, err
	}

	out := make([]StockBook, 0, len(isbns))
	for _, isbn := range isbns {
		out = append(out, s.snapshot(isbn))
	}
	return out, nil
}

// Books is the customer counterpart of ReadByKeys.
func (s *Store) Books(isbns []int) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.validateISBNs(isbns); err != nil {
		return nil, err
	}

	out := make([]Book, 0, len(isbns))
	for _, isbn := range isbns {
		it, _ := s.items.get(isbn)
		it.read(func(r *record) { out = append(out, r.book()) })
	}
	return out, nil
}

func (s *Store) snapshot(isbn int) StockBook {
	var b StockBook
	it, _ := s.items.get(isbn)
	it.read(func(r *record) { b = r.stockBook() })
	return b
}

func (s *Store) SetEditorPicks(picks []EditorPick) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range picks {
		if err := s.validateISBN(p.ISBN); err != nil {
			return err
		}
	}

	for _, p := range picks {
		it, _ := s.items.get(p.ISBN)
		it.write(func(r *record) { r.editorPick = p.EditorPick })
	}
	return nil
}

// RemoveBooks drops the given books and their locks. Nothing is removed if
// any ISBN is unknown.
func (s *Store) RemoveBooks(isbns []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.validateISBNs(isbns); err != nil {
		return err
	}

	for _, isbn := range isbns {
		s.items.remove(isbn)
	}

	s.metrics.books(s.items.len())
	s.log.Debug("books removed", zap.Int("count", len(isbns)), zap.Int("catalog_size", s.items.len()))
	return nil
}

func (s *Store) RemoveAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items.clear()

	s.metrics.books(0)
	s.log.Debug("catalog cleared")
	return nil
}
