// Package client talks to a bookstore server over HTTP. StockManagerClient
// and BookStoreClient implement the same interfaces as *inventory.Store and
// map error responses back onto the inventory error values.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"Bookstore/internal/api"
	"Bookstore/internal/inventory"
	"Bookstore/pkg/kit"
)

var (
	ErrUnavailable = errors.New("bookstore unavailable")
	ErrBadStatus   = errors.New("bookstore bad status")
)

const defaultTimeout = 3 * time.Second

type conn struct {
	BaseURL string
	Client  *http.Client
	Timeout time.Duration
}

func newConn(baseURL string) conn {
	return conn{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     30 * time.Second,
			},
		},
		Timeout: defaultTimeout,
	}
}

// do sends body as JSON (when non-nil) and decodes a 2xx response into out
// (when non-nil).
func (c conn) do(method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Timeout)
	defer cancel()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	var body struct {
		kit.ErrorResponse
		Details json.RawMessage `json:"details"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, kit.MaxBodyBytes)).Decode(&body); err != nil {
		return fmt.Errorf("%w: status=%d", ErrBadStatus, resp.StatusCode)
	}

	switch body.Code {
	case api.CodeInsufficientStock:
		var d api.ShortageDetails
		if err := json.Unmarshal(body.Details, &d); err != nil {
			return fmt.Errorf("%w: %s", inventory.ErrInsufficientStock, body.Error)
		}
		return &inventory.ShortageError{Shortfalls: d.Shortfalls}
	case api.CodeDuplicateISBN:
		return remote(inventory.ErrDuplicateKey, body.Error)
	case api.CodeNotFound:
		return remote(inventory.ErrNotFound, body.Error)
	case api.CodeValidation:
		return remote(inventory.ErrValidation, body.Error)
	case api.CodeInvalidArgument:
		return remote(inventory.ErrInvalidArgument, body.Error)
	}
	return fmt.Errorf("%w: status=%d: %s", ErrBadStatus, resp.StatusCode, body.Error)
}

// remote wraps sentinel with the server's message, which already starts with
// the sentinel's text.
func remote(sentinel error, msg string) error {
	return fmt.Errorf("%w%s", sentinel, strings.TrimPrefix(msg, sentinel.Error()))
}

func joinISBNs(isbns []int) string {
	parts := make([]string, 0, len(isbns))
	for _, isbn := range isbns {
		parts = append(parts, strconv.Itoa(isbn))
	}
	return strings.Join(parts, ",")
}
