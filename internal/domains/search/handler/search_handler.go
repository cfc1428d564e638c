package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bookstore-search/internal/domains/search/model"
	"bookstore-search/internal/domains/search/service"
	"bookstore-search/internal/shared/response"
)

type SearchHandler struct {
	service service.ServiceInterface
}

func NewSearchHandler(svc service.ServiceInterface) *SearchHandler {
	return &SearchHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// GET /search?q=&category=&price_min=&price_max=&rating_min=&sort=&page=&limit=
// ════════════════════════════════════════════════════════════════

func (h *SearchHandler) Search(c *gin.Context) {
	q := service.NormalizeQuery(c.Request.URL.Query(), model.SearchLimits)

	result, err := h.service.Search(c.Request.Context(), q)
	if err != nil {
		handleSearchError(c, err, "Search service temporarily unavailable")
		return
	}

	response.OK(c, result)
}

// ════════════════════════════════════════════════════════════════
// GET /search/books - same filters, no required parameter
// ════════════════════════════════════════════════════════════════

func (h *SearchHandler) SearchBooks(c *gin.Context) {
	q := service.NormalizeQuery(c.Request.URL.Query(), model.SearchLimits)

	result, err := h.service.SearchBooks(c.Request.Context(), q)
	if err != nil {
		handleSearchError(c, err, "Books search service temporarily unavailable")
		return
	}

	response.OK(c, result)
}

// ════════════════════════════════════════════════════════════════
// GET /search/authors?q=&sort=&page=&limit=
// ════════════════════════════════════════════════════════════════

func (h *SearchHandler) SearchAuthors(c *gin.Context) {
	q := service.NormalizeQuery(c.Request.URL.Query(), model.SearchLimits)

	result, err := h.service.SearchAuthors(c.Request.Context(), q)
	if err != nil {
		handleSearchError(c, err, "Authors search service temporarily unavailable")
		return
	}

	response.OK(c, result)
}

// ════════════════════════════════════════════════════════════════
// GET /search/suggestions?q=&limit=
// ════════════════════════════════════════════════════════════════

func (h *SearchHandler) Suggestions(c *gin.Context) {
	q := service.NormalizeQuery(c.Request.URL.Query(), model.SuggestionLimits)

	suggestions, err := h.service.Suggest(c.Request.Context(), q.Text, q.Limit)
	if err != nil {
		handleSearchError(c, err, "Suggestions service temporarily unavailable")
		return
	}

	response.OK(c, model.SuggestionsResponse{Suggestions: suggestions})
}

// ════════════════════════════════════════════════════════════════
// GET /search/popular
// ════════════════════════════════════════════════════════════════

func (h *SearchHandler) Popular(c *gin.Context) {
	response.OK(c, model.PopularSearchesResponse{PopularSearches: h.service.Popular()})
}

// handleSearchError writes the error envelope. Upstream failures always get the
// scoped generic message, never the upstream detail.
func handleSearchError(c *gin.Context, err error, unavailableMessage string) {
	status := model.ToHTTPStatus(err)

	var message string
	switch status {
	case http.StatusBadRequest, http.StatusNotFound:
		message = err.Error()
	case http.StatusServiceUnavailable:
		message = unavailableMessage
	default:
		message = "Internal server error"
	}

	log.Warn().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Msg("Search request failed")

	response.ErrorResponse(c, status, message)
}
