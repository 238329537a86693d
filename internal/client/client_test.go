package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"Bookstore/internal/api"
	"Bookstore/internal/client"
	"Bookstore/internal/inventory"
)

func newClients(t *testing.T) (*client.StockManagerClient, *client.BookStoreClient) {
	t.Helper()

	store := inventory.NewStore()
	ts := httptest.NewServer(api.NewHandler(api.NewServer(store, zap.NewNop()), api.HTTPDeps{}))
	t.Cleanup(ts.Close)

	return client.NewStockManagerClient(ts.URL + "/"), client.NewBookStoreClient(ts.URL)
}

func seed(t *testing.T, sm *client.StockManagerClient) {
	t.Helper()
	require.NoError(t, sm.AddBooks([]inventory.StockBook{
		{ISBN: 1, Title: "Dune", Author: "Frank Herbert", PriceCents: 1299, Copies: 3, EditorPick: true},
		{ISBN: 2, Title: "Emma", Author: "Jane Austen", PriceCents: 899, Copies: 1},
	}))
}

func TestClient_StockManagerRoundTrip(t *testing.T) {
	sm, _ := newClients(t)
	seed(t, sm)

	require.NoError(t, sm.AddCopies([]inventory.BookCopy{{ISBN: 2, Copies: 4}}))
	require.NoError(t, sm.SetEditorPicks([]inventory.EditorPick{{ISBN: 2, EditorPick: true}}))

	all, err := sm.ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, 1, all[0].ISBN)
	assert.Equal(t, 5, all[1].Copies)
	assert.True(t, all[1].EditorPick)

	got, err := sm.ReadByKeys([]int{2, 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ISBN)
	assert.Equal(t, 1, got[1].ISBN)

	require.NoError(t, sm.RemoveBooks([]int{1}))
	all, err = sm.ReadAll()
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, sm.RemoveAll())
	all, err = sm.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestClient_ErrorsMapToSentinels(t *testing.T) {
	sm, bs := newClients(t)
	seed(t, sm)

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{"duplicate isbn", func() error {
			return sm.AddBooks([]inventory.StockBook{{ISBN: 1, Title: "x", Author: "y", PriceCents: 1}})
		}, inventory.ErrDuplicateKey},
		{"unknown isbn", func() error {
			_, err := sm.ReadByKeys([]int{404})
			return err
		}, inventory.ErrNotFound},
		{"invalid isbn", func() error {
			return sm.AddCopies([]inventory.BookCopy{{ISBN: -1, Copies: 1}})
		}, inventory.ErrValidation},
		{"bad count", func() error {
			_, err := bs.TopRated(-1)
			return err
		}, inventory.ErrInvalidArgument},
		{"rating out of range", func() error {
			return bs.Rate([]inventory.BookRating{{ISBN: 1, Rating: 9}})
		}, inventory.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestClient_PurchaseShortage(t *testing.T) {
	sm, bs := newClients(t)
	seed(t, sm)

	err := bs.Purchase([]inventory.BookCopy{{ISBN: 1, Copies: 2}, {ISBN: 2, Copies: 3}})
	require.Error(t, err)

	var short *inventory.ShortageError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, map[int]int{2: 2}, short.Shortfalls)
	assert.ErrorIs(t, err, inventory.ErrInsufficientStock)

	books, err := sm.ReadByKeys([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, books[0].Copies)
	assert.Equal(t, 1, books[1].Copies)
	assert.Equal(t, 2, books[1].SaleMisses)

	demand, err := sm.InDemand()
	require.NoError(t, err)
	require.Len(t, demand, 1)
	assert.Equal(t, 2, demand[0].ISBN)
}

func TestClient_CustomerQueries(t *testing.T) {
	sm, bs := newClients(t)
	seed(t, sm)

	require.NoError(t, bs.Purchase([]inventory.BookCopy{{ISBN: 1, Copies: 1}}))
	require.NoError(t, bs.Rate([]inventory.BookRating{{ISBN: 2, Rating: 4}, {ISBN: 1, Rating: 2}}))

	books, err := bs.Books([]int{1})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Title)
	assert.InDelta(t, 2.0, books[0].AverageRating, 1e-9)

	picks, err := bs.EditorPicks(5)
	require.NoError(t, err)
	require.Len(t, picks, 1)
	assert.Equal(t, 1, picks[0].ISBN)

	top, err := bs.TopRated(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, 2, top[0].ISBN)
	assert.Equal(t, 1, top[1].ISBN)
}

func TestClient_Unavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := client.NewBookStoreClient(url).TopRated(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrUnavailable)
}

func TestClient_BadStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(ts.Close)

	err := client.NewStockManagerClient(ts.URL).RemoveAll()
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrBadStatus)
}
