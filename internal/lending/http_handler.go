package lending

import (
	"errors"
	"net/http"
	"strconv"

	"bookshelf/internal/httpx"

	"github.com/rs/zerolog"
)

const (
	BasePath = "/api/books"
	ErrorKey = "message"
)

type HTTPHandler struct {
	service *Service
	log     zerolog.Logger
}

func NewHTTPHandler(service *Service, log zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, log: log}
}

// Register mounts the lending routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET "+BasePath, h.List)
	mux.HandleFunc("POST "+BasePath, h.Create)
	mux.HandleFunc("GET "+BasePath+"/{id}", h.Get)
	mux.HandleFunc("PATCH "+BasePath+"/{id}", h.Update)
	mux.HandleFunc("DELETE "+BasePath+"/{id}", h.Delete)
}

type createRequest struct {
	Title        string   `json:"title" validate:"required"`
	Author       string   `json:"author" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	IsAvailable  *bool    `json:"isAvailable"`
	IsVerified   *bool    `json:"isVerified"`
	BorrowedDays *float64 `json:"borrowedDays"`
}

type updateRequest struct {
	IsAvailable  Field[bool]     `json:"isAvailable"`
	IsVerified   Field[*bool]    `json:"isVerified"`
	BorrowedDays Field[*float64] `json:"borrowedDays"`
}

// List handles GET /api/books
// @Summary List lending books
// @Produce json
// @Success 200 {array} Book
// @Router /api/books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.List(r.Context())
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, books)
}

// Get handles GET /api/books/{id}
// @Summary Get a lending book
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} Book
// @Failure 404 {object} map[string]string
// @Router /api/books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}

	book, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, book)
}

// Create handles POST /api/books
// @Summary Add a lending book
// @Accept json
// @Produce json
// @Success 201 {object} Book
// @Failure 400 {object} map[string]string
// @Router /api/books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, httpx.DecodeStatus(err), ErrorKey, "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); details != nil {
		httpx.Error(w, http.StatusBadRequest, ErrorKey, "Missing required fields", details)
		return
	}

	in := NewBook{
		Title:        req.Title,
		Author:       req.Author,
		Category:     req.Category,
		IsAvailable:  true,
		IsVerified:   req.IsVerified,
		BorrowedDays: req.BorrowedDays,
	}
	if req.IsAvailable != nil {
		in.IsAvailable = *req.IsAvailable
	}

	book, err := h.service.Create(r.Context(), in)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			httpx.Error(w, http.StatusBadRequest, ErrorKey, "Missing required fields", nil)
			return
		}
		h.internalError(w, r, err)
		return
	}

	h.log.Info().Int("id", book.ID).Str("author", book.Author).Msg("book created")
	httpx.JSON(w, http.StatusCreated, book)
}

// Update handles PATCH /api/books/{id}. Only isAvailable, isVerified and
// borrowedDays can change; keys absent from the body keep their value.
// @Summary Update lending state
// @Accept json
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} Book
// @Failure 404 {object} map[string]string
// @Router /api/books/{id} [patch]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}

	var req updateRequest
	if err := httpx.DecodeJSON(r, &req); err != nil && !errors.Is(err, httpx.ErrEmptyBody) {
		httpx.Error(w, httpx.DecodeStatus(err), ErrorKey, "Invalid JSON body", nil)
		return
	}
	if req.IsAvailable.Null {
		httpx.Error(w, http.StatusBadRequest, ErrorKey, "isAvailable must be a boolean", []httpx.ErrorDetail{
			{Field: "isAvailable", Message: "isAvailable cannot be null"},
		})
		return
	}

	book, err := h.service.Update(r.Context(), id, Update{
		IsAvailable:  req.IsAvailable,
		IsVerified:   req.IsVerified,
		BorrowedDays: req.BorrowedDays,
	})
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}

	h.log.Info().Int("id", book.ID).Msg("book updated")
	httpx.JSON(w, http.StatusOK, book)
}

// Delete handles DELETE /api/books/{id}
// @Summary Remove a lending book
// @Param id path int true "Book ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.notFound(w)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.writeLookupError(w, r, err)
		return
	}

	h.log.Info().Int("id", id).Msg("book deleted")
	httpx.NoContent(w)
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	return id, err == nil
}

func (h *HTTPHandler) writeLookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrNotFound) {
		h.notFound(w)
		return
	}
	h.internalError(w, r, err)
}

func (h *HTTPHandler) notFound(w http.ResponseWriter) {
	httpx.Error(w, http.StatusNotFound, ErrorKey, "Book not found", nil)
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("lending request failed")
	httpx.Error(w, http.StatusInternalServerError, ErrorKey, "Internal server error", nil)
}
