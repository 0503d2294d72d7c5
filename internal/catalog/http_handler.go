package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"bookshelf/internal/httpx"

	"github.com/rs/zerolog"
)

// BasePath is the mount point of the catalog routes.
const BasePath = "/beoks"

// ErrorKey names the message field of catalog error bodies.
const ErrorKey = "error"

type HTTPHandler struct {
	service *Service
	log     zerolog.Logger
}

func NewHTTPHandler(service *Service, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Register mounts the catalog routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET "+BasePath, h.List)
	mux.HandleFunc("POST "+BasePath, h.Create)
	mux.HandleFunc("GET "+BasePath+"/{id}", h.Get)
	mux.HandleFunc("DELETE "+BasePath+"/{id}", h.Delete)
}

type createRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category" validate:"oneof=Fiction Comedy Technical"`
	IsAvailable *bool  `json:"isAvailable"`
	IsVerified  *bool  `json:"isVerified"`
}

// List handles GET /beoks
// @Summary List catalog books
// @Produce json
// @Success 200 {array} Book
// @Router /beoks [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Create handles POST /beoks
// @Summary Add a book to the catalog
// @Accept json
// @Produce json
// @Success 201 {object} Book
// @Failure 400 {object} map[string]string
// @Router /beoks [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, httpx.DecodeStatus(err), ErrorKey, "Invalid JSON body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); details != nil {
		httpx.Error(w, http.StatusBadRequest, ErrorKey, "Category must be one of: "+CategoryList(), details)
		return
	}

	in := NewBook{
		Title:       req.Title,
		Category:    Category(req.Category),
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		in.IsAvailable = *req.IsAvailable
	}
	if req.IsVerified != nil {
		in.IsVerified = *req.IsVerified
	}

	book, err := h.service.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, ErrInvalidCategory) {
			httpx.Error(w, http.StatusBadRequest, ErrorKey, "Category must be one of: "+CategoryList(), nil)
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.log.Info().Int("id", book.ID).Str("category", string(book.Category)).Msg("book created")
	httpx.JSON(w, http.StatusCreated, book)
}

// Get handles GET /beoks/{id}
// @Summary Get a catalog book
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} Book
// @Failure 404 {object} map[string]string
// @Router /beoks/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}

	book, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.notFound(w)
			return
		}
		h.internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, book)
}

// Delete handles DELETE /beoks/{id} and answers with the removed book.
// @Summary Remove a catalog book
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} Book
// @Failure 404 {object} map[string]string
// @Router /beoks/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}

	book, err := h.service.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			h.notFound(w)
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.log.Info().Int("id", book.ID).Msg("book deleted")
	httpx.JSON(w, http.StatusOK, book)
}

// pathID parses {id}. Anything that is not an integer cannot match a book.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	return id, err == nil
}

func (h *HTTPHandler) notFound(w http.ResponseWriter) {
	httpx.Error(w, http.StatusNotFound, ErrorKey, "Book not found", nil)
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("catalog request failed")
	httpx.Error(w, http.StatusInternalServerError, ErrorKey, "Internal server error", nil)
}
