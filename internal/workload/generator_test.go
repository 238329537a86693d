package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_NextStockBooks(t *testing.T) {
	g := NewGenerator(7)

	books, err := g.NextStockBooks(200)
	require.NoError(t, err)
	require.Len(t, books, 200)

	seen := map[int]bool{}
	for _, b := range books {
		assert.Positive(t, b.ISBN)
		assert.False(t, seen[b.ISBN], "duplicate isbn %d", b.ISBN)
		seen[b.ISBN] = true

		assert.GreaterOrEqual(t, b.Copies, 1)
		assert.LessOrEqual(t, b.Copies, maxCopies)
		assert.GreaterOrEqual(t, b.PriceCents, int64(0))
		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Author)
		assert.Zero(t, b.SaleMisses)
		assert.Zero(t, b.RatingCount)
		assert.False(t, b.EditorPick)
	}

	_, err = g.NextStockBooks(-1)
	assert.Error(t, err)
}

func TestGenerator_SameSeedSameBooks(t *testing.T) {
	a, err := NewGenerator(42).NextStockBooks(10)
	require.NoError(t, err)
	b, err := NewGenerator(42).NextStockBooks(10)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerator_Sample(t *testing.T) {
	g := NewGenerator(1)
	isbns := []int{10, 20, 30, 40, 50}

	got, err := g.Sample(isbns, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Subset(t, isbns, got)
	assert.Len(t, map[int]bool{got[0]: true, got[1]: true, got[2]: true}, 3)
	assert.Equal(t, []int{10, 20, 30, 40, 50}, isbns)

	all, err := g.Sample(isbns, len(isbns))
	require.NoError(t, err)
	assert.ElementsMatch(t, isbns, all)

	none, err := g.Sample(isbns, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = g.Sample(isbns, 6)
	assert.Error(t, err)
	_, err = g.Sample(isbns, -1)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"no runs", func(c *Config) { c.Runs = 0 }},
		{"negative warmup", func(c *Config) { c.WarmupRuns = -1 }},
		{"negative percent", func(c *Config) { c.PercentRareStockManager = -5 }},
		{"percent over 100", func(c *Config) { c.PercentRareStockManager, c.PercentFrequentStockManager = 60, 50 }},
		{"too many picks", func(c *Config) { c.InitialEditorPicks = c.InitialBooks + 1 }},
		{"negative buy", func(c *Config) { c.BooksToBuy = -1 }},
		{"zero copies to add", func(c *Config) { c.CopiesToAdd = 0 }},
		{"zero copies to buy", func(c *Config) { c.CopiesToBuy = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mut(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestConfig_Validate_ZeroCopiesForUnusedInteraction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PercentFrequentStockManager = 0
	cfg.CopiesToAdd = 0
	require.NoError(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.PercentRareStockManager, cfg.PercentFrequentStockManager = 40, 60
	cfg.CopiesToBuy = 0
	require.NoError(t, cfg.Validate())
}
