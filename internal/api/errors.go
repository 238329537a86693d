package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"Bookstore/internal/inventory"
	"Bookstore/pkg/kit"
)

func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	var short *inventory.ShortageError

	switch {
	case errors.As(err, &short):
		kit.WriteCodedError(w, r, http.StatusConflict, CodeInsufficientStock, err.Error(),
			ShortageDetails{Shortfalls: short.Shortfalls})
	case errors.Is(err, inventory.ErrDuplicateKey):
		kit.WriteCodedError(w, r, http.StatusConflict, CodeDuplicateISBN, err.Error(), nil)
	case errors.Is(err, inventory.ErrNotFound):
		kit.WriteCodedError(w, r, http.StatusNotFound, CodeNotFound, err.Error(), nil)
	case errors.Is(err, inventory.ErrValidation):
		kit.WriteCodedError(w, r, http.StatusBadRequest, CodeValidation, err.Error(), nil)
	case errors.Is(err, inventory.ErrInvalidArgument):
		kit.WriteCodedError(w, r, http.StatusBadRequest, CodeInvalidArgument, err.Error(), nil)
	default:
		s.Log.Error("store call failed", zap.Error(err), zap.String("path", r.URL.Path))
		kit.WriteCodedError(w, r, http.StatusInternalServerError, CodeInternal, "server error", nil)
	}
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string, err error) {
	var details any
	if err != nil {
		details = map[string]any{"cause": err.Error()}
	}
	kit.WriteCodedError(w, r, http.StatusBadRequest, CodeBadRequest, msg, details)
}
