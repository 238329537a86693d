package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample_SwapRemove(t *testing.T) {
	pool := []int{10, 20, 30, 40}

	got := sample(pool, 3, func(int) int { return 0 })
	assert.Equal(t, []int{10, 40, 30}, got)
}

func TestSample_Distinct(t *testing.T) {
	pool := []int{1, 2, 3, 4, 5, 6}
	draws := []int{5, 2, 2, 0}
	i := 0

	got := sample(pool, 4, func(n int) int {
		d := draws[i] % n
		i++
		return d
	})

	assert.Len(t, got, 4)
	seen := map[int]bool{}
	for _, v := range got {
		assert.False(t, seen[v])
		seen[v] = true
	}
}

func TestItemTable(t *testing.T) {
	tbl := newItemTable()
	tbl.insert(record{isbn: 3})
	tbl.insert(record{isbn: 1})
	tbl.insert(record{isbn: 2})

	assert.Equal(t, []int{1, 2, 3}, tbl.keys())
	assert.True(t, tbl.has(2))

	tbl.remove(2)
	_, ok := tbl.get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, tbl.len())

	tbl.clear()
	assert.Zero(t, tbl.len())
}
