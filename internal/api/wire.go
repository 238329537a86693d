package api

import "Bookstore/internal/inventory"

// Request bodies shared by the server and internal/client.

type BooksRequest struct {
	Books []inventory.StockBook `json:"books"`
}

type CopiesRequest struct {
	Copies []inventory.BookCopy `json:"copies"`
}

type EditorPicksRequest struct {
	Picks []inventory.EditorPick `json:"picks"`
}

type ISBNsRequest struct {
	ISBNs []int `json:"isbns"`
}

type RatingsRequest struct {
	Ratings []inventory.BookRating `json:"ratings"`
}

// ShortageDetails is the details payload of an insufficient_stock error.
type ShortageDetails struct {
	Shortfalls map[int]int `json:"shortfalls"`
}

// Error codes carried in kit.ErrorResponse.Code.
const (
	CodeBadRequest        = "bad_request"
	CodeValidation        = "validation"
	CodeDuplicateISBN     = "duplicate_isbn"
	CodeNotFound          = "not_found"
	CodeInsufficientStock = "insufficient_stock"
	CodeInvalidArgument   = "invalid_argument"
	CodeInternal          = "internal"
)
