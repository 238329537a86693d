package inventory

// Rating bounds accepted by Rate.
const (
	MinRating = 0
	MaxRating = 5
)

// MaxCopiesPerCall bounds a single copy count passed to AddBooks, AddCopies
// or Purchase.
const MaxCopiesPerCall = 1 << 20

// StockBook is an immutable snapshot of one catalog entry as seen by the
// stock manager. Values are copied out of the store; mutating one never
// affects the catalog.
type StockBook struct {
	ISBN        int    `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	PriceCents  int64  `json:"price_cents"`
	Copies      int    `json:"copies"`
	SaleMisses  int    `json:"sale_misses"`
	RatingTotal int64  `json:"rating_total"`
	RatingCount int64  `json:"rating_count"`
	EditorPick  bool   `json:"editor_pick"`
}

// AverageRating returns RatingTotal/RatingCount, or 0 for a book nobody rated.
func (b StockBook) AverageRating() float64 {
	if b.RatingCount == 0 {
		return 0
	}
	return float64(b.RatingTotal) / float64(b.RatingCount)
}

func (b StockBook) InDemand() bool { return b.SaleMisses > 0 }

// Book is the customer view of a catalog entry: no stock counters.
type Book struct {
	ISBN          int     `json:"isbn"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	PriceCents    int64   `json:"price_cents"`
	AverageRating float64 `json:"average_rating"`
}

// BookCopy is a (ISBN, count) pair used by Replenish and Purchase.
type BookCopy struct {
	ISBN   int `json:"isbn"`
	Copies int `json:"copies"`
}

type EditorPick struct {
	ISBN       int  `json:"isbn"`
	EditorPick bool `json:"editor_pick"`
}

type BookRating struct {
	ISBN   int `json:"isbn"`
	Rating int `json:"rating"`
}

// record is the mutable entry owned by the store. It is only touched while
// the item lock guarding it is held.
type record struct {
	isbn       int
	title      string
	author     string
	priceCents int64

	copies      int
	saleMisses  int
	ratingTotal int64
	ratingCount int64
	editorPick  bool
}

func newRecord(b StockBook) record {
	return record{
		isbn:       b.ISBN,
		title:      b.Title,
		author:     b.Author,
		priceCents: b.PriceCents,
		copies:     b.Copies,
		editorPick: b.EditorPick,
	}
}

func (r *record) stockBook() StockBook {
	return StockBook{
		ISBN:        r.isbn,
		Title:       r.title,
		Author:      r.author,
		PriceCents:  r.priceCents,
		Copies:      r.copies,
		SaleMisses:  r.saleMisses,
		RatingTotal: r.ratingTotal,
		RatingCount: r.ratingCount,
		EditorPick:  r.editorPick,
	}
}

func (r *record) book() Book {
	return Book{
		ISBN:          r.isbn,
		Title:         r.title,
		Author:        r.author,
		PriceCents:    r.priceCents,
		AverageRating: r.stockBook().AverageRating(),
	}
}
