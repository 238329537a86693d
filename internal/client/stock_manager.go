package client

import (
	"net/http"
	"net/url"

	"Bookstore/internal/api"
	"Bookstore/internal/inventory"
)

type StockManagerClient struct {
	conn
}

var _ inventory.StockManager = (*StockManagerClient)(nil)

func NewStockManagerClient(baseURL string) *StockManagerClient {
	return &StockManagerClient{conn: newConn(baseURL)}
}

func (c *StockManagerClient) AddBooks(books []inventory.StockBook) error {
	return c.do(http.MethodPost, "/stock/books", api.BooksRequest{Books: books}, nil)
}

func (c *StockManagerClient) AddCopies(copies []inventory.BookCopy) error {
	return c.do(http.MethodPost, "/stock/copies", api.CopiesRequest{Copies: copies}, nil)
}

func (c *StockManagerClient) ReadAll() ([]inventory.StockBook, error) {
	var out []inventory.StockBook
	if err := c.do(http.MethodGet, "/stock/books", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *StockManagerClient) ReadByKeys(isbns []int) ([]inventory.StockBook, error) {
	var out []inventory.StockBook
	path := "/stock/books?keys=" + url.QueryEscape(joinISBNs(isbns))
	if err := c.do(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *StockManagerClient) SetEditorPicks(picks []inventory.EditorPick) error {
	return c.do(http.MethodPut, "/stock/editor-picks", api.EditorPicksRequest{Picks: picks}, nil)
}

func (c *StockManagerClient) RemoveBooks(isbns []int) error {
	return c.do(http.MethodPost, "/stock/books/remove", api.ISBNsRequest{ISBNs: isbns}, nil)
}

func (c *StockManagerClient) RemoveAll() error {
	return c.do(http.MethodDelete, "/stock/books", nil, nil)
}

func (c *StockManagerClient) InDemand() ([]inventory.StockBook, error) {
	var out []inventory.StockBook
	if err := c.do(http.MethodGet, "/stock/in-demand", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
