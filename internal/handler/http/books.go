package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"bookshelf/internal/logger"
	"bookshelf/internal/utils"
	"bookshelf/models"
)

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.listBooks").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	books, err := h.services.BookService.List(r.Context(), userID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.getBook").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookID, err := bookIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getBook").Msg("invalid book id")
		http.Error(w, "invalid book id", http.StatusBadRequest)
		return
	}

	// an absent book is not an error: the response body is a JSON null
	book, err := h.services.BookService.Get(r.Context(), userID, bookID)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.createBook").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var create models.BookCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Err(err).Str("func", "*Handler.createBook").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.Create(r.Context(), userID, create)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusCreated)
}

func (h *Handler) editBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.editBook").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookID, err := bookIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.editBook").Msg("invalid book id")
		http.Error(w, "invalid book id", http.StatusBadRequest)
		return
	}

	var update models.BookUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.editBook").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	book, err := h.services.BookService.Edit(r.Context(), userID, bookID, update)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Str("func", "*Handler.deleteBook").Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookID, err := bookIDFromURL(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteBook").Msg("invalid book id")
		http.Error(w, "invalid book id", http.StatusBadRequest)
		return
	}

	if err := h.services.BookService.Delete(r.Context(), userID, bookID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// bookIDFromURL parses the {id} URL parameter of a /books route.
func bookIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
