package inventory

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrDuplicateKey      = errors.New("isbn already exists")
	ErrNotFound          = errors.New("isbn not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// ShortageError is returned by Purchase when at least one requested book
// did not have enough copies. Shortfalls maps ISBN to the number of copies
// missing; those amounts have already been added to the books' sale misses.
type ShortageError struct {
	Shortfalls map[int]int
}

func (e *ShortageError) Error() string {
	keys := make([]int, 0, len(e.Shortfalls))
	for k := range e.Shortfalls {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%d short by %d", k, e.Shortfalls[k]))
	}
	return fmt.Sprintf("%s: %s", ErrInsufficientStock, strings.Join(parts, ", "))
}

func (e *ShortageError) Unwrap() error { return ErrInsufficientStock }

func invalidISBN(isbn int) error {
	return fmt.Errorf("%w: isbn %d must be positive", ErrValidation, isbn)
}

func notFound(isbn int) error {
	return fmt.Errorf("%w: %d", ErrNotFound, isbn)
}
