package inventory

import (
	"math"
	"slices"
	"sync"
)

// item pairs a record with the reader/writer lock that guards its fields.
// Items are reached through the table by ISBN only, so dropping an entry
// from the table is enough to retire both the record and its lock.
type item struct {
	mu  sync.RWMutex
	rec record
}

// itemTable is the per-book lock table. The map itself is not synchronized:
// it is mutated only under the store's structural lock in write mode and
// read under it in read mode.
type itemTable struct {
	m map[int]*item
}

func newItemTable() *itemTable {
	return &itemTable{m: make(map[int]*item)}
}

func (t *itemTable) insert(r record) {
	t.m[r.isbn] = &item{rec: r}
}

func (t *itemTable) get(isbn int) (*item, bool) {
	it, ok := t.m[isbn]
	return it, ok
}

func (t *itemTable) has(isbn int) bool {
	_, ok := t.m[isbn]
	return ok
}

func (t *itemTable) remove(isbn int) {
	delete(t.m, isbn)
}

func (t *itemTable) clear() {
	t.m = make(map[int]*item)
}

func (t *itemTable) len() int { return len(t.m) }

// keys returns every ISBN in ascending order.
func (t *itemTable) keys() []int {
	out := make([]int, 0, len(t.m))
	for k := range t.m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// read runs fn with the item's read lock held.
func (it *item) read(fn func(r *record)) {
	it.mu.RLock()
	defer it.mu.RUnlock()
	fn(&it.rec)
}

// write runs fn with the item's write lock held.
func (it *item) write(fn func(r *record)) {
	it.mu.Lock()
	defer it.mu.Unlock()
	fn(&it.rec)
}

// lockAscending write-locks the items for isbns, which must be sorted and
// distinct, and returns them in the same order. Every caller that holds more
// than one item lock goes through here, so item locks are always taken in
// ascending ISBN order.
func (t *itemTable) lockAscending(isbns []int) []*item {
	locked := make([]*item, 0, len(isbns))
	for _, isbn := range isbns {
		it := t.m[isbn]
		it.mu.Lock()
		locked = append(locked, it)
	}
	return locked
}

func unlockAll(locked []*item) {
	for i := len(locked) - 1; i >= 0; i-- {
		locked[i].mu.Unlock()
	}
}

// addSaturating returns a+b for non-negative b, capped at math.MaxInt.
func addSaturating(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
