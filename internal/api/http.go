package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"Bookstore/internal/inventory"
	"Bookstore/pkg/kit"
)

type Server struct {
	Stock inventory.StockManager
	Shop  inventory.BookStore
	Log   *zap.Logger
}

// NewServer exposes one store through both surfaces.
func NewServer(store *inventory.Store, log *zap.Logger) *Server {
	return &Server{Stock: store, Shop: store, Log: log}
}

func (s *Server) stockRoutes(r chi.Router) {
	r.Post("/books", s.addBooks)
	r.Get("/books", s.stockBooks)
	r.Delete("/books", s.removeAll)
	r.Post("/books/remove", s.removeBooks)
	r.Post("/copies", s.addCopies)
	r.Put("/editor-picks", s.setEditorPicks)
	r.Get("/in-demand", s.inDemand)
}

func (s *Server) customerRoutes(r chi.Router, limiter *kit.IPRateLimiter) {
	r.With(limiter.Middleware).Post("/purchases", s.purchase)
	r.With(limiter.Middleware).Post("/ratings", s.rate)
	r.Get("/books", s.books)
	r.Get("/editor-picks", s.editorPicks)
	r.Get("/top-rated", s.topRated)
}

func (s *Server) addBooks(w http.ResponseWriter, r *http.Request) {
	var req BooksRequest
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, r, "bad json", err)
		return
	}

	if err := s.Stock.AddBooks(req.Books); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) stockBooks(w http.ResponseWriter, r *http.Request) {
	if !r.URL.Query().Has("keys") {
		books, err := s.Stock.ReadAll()
		if err != nil {
			s.writeStoreError(w, r, err)
			return
		}
		kit.WriteJSON(w, http.StatusOK, nonNil(books))
		return
	}

	isbns, err := parseISBNs(r.URL.Query().Get("keys"))
	if err != nil {
		badRequest(w, r, "bad keys", err)
		return
	}

	books, err := s.Stock.ReadByKeys(isbns)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, nonNil(books))
}

func (s *Server) addCopies(w http.ResponseWriter, r *http.Request) {
	var req CopiesRequest
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, r, "bad json", err)
		return
	}

	if err := s.Stock.AddCopies(req.Copies); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) setEditorPicks(w http.ResponseWriter, r *http.Request) {
	var req EditorPicksRequest
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, r, "bad json", err)
		return
	}

	if err := s.Stock.SetEditorPicks(req.Picks); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeBooks(w http.ResponseWriter, r *http.Request) {
	var req ISBNsRequest
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, r, "bad json", err)
		return
	}

	if err := s.Stock.RemoveBooks(req.ISBNs); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) removeAll(w http.ResponseWriter, r *http.Request) {
	if err := s.Stock.RemoveAll(); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.Log.Info("catalog cleared", zap.String("remote", r.RemoteAddr))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) inDemand(w http.ResponseWriter, r *http.Request) {
	books, err := s.Stock.InDemand()
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, nonNil(books))
}

func (s *Server) purchase(w http.ResponseWriter, r *http.Request) {
	var req CopiesRequest
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, r, "bad json", err)
		return
	}

	if err := s.Shop.Purchase(req.Copies); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) rate(w http.ResponseWriter, r *http.Request) {
	var req RatingsRequest
	if err := kit.DecodeJSON(w, r, &req); err != nil {
		badRequest(w, r, "bad json", err)
		return
	}

	if err := s.Shop.Rate(req.Ratings); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) books(w http.ResponseWriter, r *http.Request) {
	isbns, err := parseISBNs(r.URL.Query().Get("keys"))
	if err != nil {
		badRequest(w, r, "bad keys", err)
		return
	}

	books, err := s.Shop.Books(isbns)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, nonNil(books))
}

func (s *Server) editorPicks(w http.ResponseWriter, r *http.Request) {
	n, err := parseCount(r)
	if err != nil {
		badRequest(w, r, "bad n", err)
		return
	}

	books, err := s.Shop.EditorPicks(n)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, nonNil(books))
}

func (s *Server) topRated(w http.ResponseWriter, r *http.Request) {
	n, err := parseCount(r)
	if err != nil {
		badRequest(w, r, "bad n", err)
		return
	}

	books, err := s.Shop.TopRated(n)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, nonNil(books))
}

// parseISBNs parses a comma separated ISBN list. An empty string is an empty
// list.
func parseISBNs(raw string) ([]int, error) {
	if strings.TrimSpace(raw) == "" {
		return []int{}, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseCount(r *http.Request) (int, error) {
	return strconv.Atoi(r.URL.Query().Get("n"))
}

func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
