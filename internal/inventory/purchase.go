package inventory

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// Purchase buys every requested copy or none of them.
//
// All requested books are write-locked for the duration of the check, in
// ascending ISBN order regardless of the order of copies. If any book is
// short, the shortfall is added to that book's sale misses, no copies are
// taken from any book and a *ShortageError is returned. Sale misses only
// ever grow, saturating at math.MaxInt; a later successful purchase leaves
// them as they are.
func (s *Store) Purchase(copies []BookCopy) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.validatePurchase(copies); err != nil {
		s.metrics.purchase(outcomeRejected)
		return err
	}

	ordered := slices.Clone(copies)
	slices.SortFunc(ordered, func(a, b BookCopy) int { return cmp.Compare(a.ISBN, b.ISBN) })

	isbns := make([]int, 0, len(ordered))
	for _, c := range ordered {
		isbns = append(isbns, c.ISBN)
	}
	locked := s.items.lockAscending(isbns)
	defer unlockAll(locked)

	var short map[int]int
	for i, c := range ordered {
		if have := locked[i].rec.copies; have < c.Copies {
			if short == nil {
				short = make(map[int]int)
			}
			short[c.ISBN] = c.Copies - have
		}
	}

	if len(short) > 0 {
		missed := 0
		for i, c := range ordered {
			if n, ok := short[c.ISBN]; ok {
				locked[i].rec.saleMisses = addSaturating(locked[i].rec.saleMisses, n)
				missed += n
			}
		}
		s.metrics.purchase(outcomeShort)
		s.metrics.missed(missed)
		s.log.Debug("sale miss recorded", zap.Int("books", len(short)), zap.Int("copies", missed))
		return &ShortageError{Shortfalls: short}
	}

	for i, c := range ordered {
		locked[i].rec.copies -= c.Copies
	}
	s.metrics.purchase(outcomeOK)
	return nil
}

// validatePurchase rejects unknown ISBNs, non-positive counts and repeated
// ISBNs. A repeated ISBN would make Purchase lock the same book twice.
func (s *Store) validatePurchase(copies []BookCopy) error {
	if err := s.validateCopies(copies); err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(copies))
	for _, c := range copies {
		if _, dup := seen[c.ISBN]; dup {
			return fmt.Errorf("%w: isbn %d requested more than once", ErrValidation, c.ISBN)
		}
		seen[c.ISBN] = struct{}{}
	}
	return nil
}
