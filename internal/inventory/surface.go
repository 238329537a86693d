package inventory

// StockManager is the administrative surface of the store.
type StockManager interface {
	AddBooks(books []StockBook) error
	AddCopies(copies []BookCopy) error
	ReadAll() ([]StockBook, error)
	ReadByKeys(isbns []int) ([]StockBook, error)
	SetEditorPicks(picks []EditorPick) error
	RemoveBooks(isbns []int) error
	RemoveAll() error
	InDemand() ([]StockBook, error)
}

// BookStore is the customer surface of the store.
type BookStore interface {
	Purchase(copies []BookCopy) error
	Books(isbns []int) ([]Book, error)
	EditorPicks(n int) ([]Book, error)
	TopRated(n int) ([]Book, error)
	Rate(ratings []BookRating) error
}
