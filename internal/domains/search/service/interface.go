package service

import (
	"context"

	"bookstore-search/internal/domains/search/model"
)

// ServiceInterface - search, suggestion and popular-search operations
type ServiceInterface interface {
	// Search runs the combined book + author search.
	// Errors: *model.ValidationError when both text and category are empty,
	// model.ErrUpstreamUnavailable when either catalog fails.
	Search(ctx context.Context, q model.SearchQuery) (*model.CombinedSearchResponse, error)

	// SearchBooks runs the book-only search. An empty query matches every book.
	SearchBooks(ctx context.Context, q model.SearchQuery) (*model.BookSearchResponse, error)

	// SearchAuthors runs the author-only search.
	// Errors: *model.ValidationError when the text is empty.
	SearchAuthors(ctx context.Context, q model.SearchQuery) (*model.AuthorSearchResponse, error)

	// Suggest returns at most limit autocomplete entries. Texts shorter than
	// MinSuggestionLength return an empty list without touching the catalogs.
	Suggest(ctx context.Context, text string, limit int) ([]model.Suggestion, error)

	// Popular returns the popular searches table.
	Popular() []model.PopularSearch
}
