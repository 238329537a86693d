package client

import (
	"net/http"
	"net/url"
	"strconv"

	"Bookstore/internal/api"
	"Bookstore/internal/inventory"
)

type BookStoreClient struct {
	conn
}

var _ inventory.BookStore = (*BookStoreClient)(nil)

func NewBookStoreClient(baseURL string) *BookStoreClient {
	return &BookStoreClient{conn: newConn(baseURL)}
}

func (c *BookStoreClient) Purchase(copies []inventory.BookCopy) error {
	return c.do(http.MethodPost, "/purchases", api.CopiesRequest{Copies: copies}, nil)
}

func (c *BookStoreClient) Books(isbns []int) ([]inventory.Book, error) {
	return c.books("/books?keys=" + url.QueryEscape(joinISBNs(isbns)))
}

func (c *BookStoreClient) EditorPicks(n int) ([]inventory.Book, error) {
	return c.books("/editor-picks?n=" + strconv.Itoa(n))
}

func (c *BookStoreClient) TopRated(n int) ([]inventory.Book, error) {
	return c.books("/top-rated?n=" + strconv.Itoa(n))
}

func (c *BookStoreClient) Rate(ratings []inventory.BookRating) error {
	return c.do(http.MethodPost, "/ratings", api.RatingsRequest{Ratings: ratings}, nil)
}

func (c *BookStoreClient) books(path string) ([]inventory.Book, error) {
	var out []inventory.Book
	if err := c.do(http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
