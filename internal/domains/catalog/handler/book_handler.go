package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookstore-search/internal/domains/catalog"
	"bookstore-search/internal/domains/search/model"
	"bookstore-search/internal/shared/response"
)

type BookHandler struct {
	books catalog.BookCatalog
}

func NewBookHandler(books catalog.BookCatalog) *BookHandler {
	return &BookHandler{
		books: books,
	}
}

// GetByID - GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "Invalid book id")
		return
	}

	book, err := h.books.FetchOne(c.Request.Context(), id)
	if err != nil {
		switch model.ToHTTPStatus(err) {
		case http.StatusNotFound:
			response.NotFound(c, "The specified book does not exist")
		default:
			log.Error().Err(err).Int64("book_id", id).Msg("Book lookup failed")
			response.ServiceUnavailable(c, "Books service temporarily unavailable")
		}
		return
	}

	response.OK(c, book)
}
