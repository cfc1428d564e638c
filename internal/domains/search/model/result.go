package model

import "github.com/shopspring/decimal"

// Pagination - page window metadata
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

// PageResult is one page of an ordered result list.
// Total counts the filtered list before it was sliced.
type PageResult[T any] struct {
	Items      []T
	Total      int
	Pagination Pagination
}

// Filters - filter block echoed in book and combined responses
type Filters struct {
	Category  string           `json:"category"`
	PriceMin  *decimal.Decimal `json:"price_min"`
	PriceMax  *decimal.Decimal `json:"price_max"`
	RatingMin *decimal.Decimal `json:"rating_min"`
	Sort      Sort             `json:"sort"`
}

// ============ RESPONSES ============

// CombinedSearchResponse - GET /search
type CombinedSearchResponse struct {
	Books        []BookRecord   `json:"books"`
	Authors      []AuthorRecord `json:"authors"`
	TotalBooks   int            `json:"total_books"`
	TotalAuthors int            `json:"total_authors"`
	Query        string         `json:"query"`
	Filters      Filters        `json:"filters"`
	Pagination   Pagination     `json:"pagination"`
}

// BookSearchResponse - GET /search/books
type BookSearchResponse struct {
	Books      []BookRecord `json:"books"`
	Total      int          `json:"total"`
	Query      string       `json:"query"`
	Filters    Filters      `json:"filters"`
	Pagination Pagination   `json:"pagination"`
}

// AuthorSearchResponse - GET /search/authors
type AuthorSearchResponse struct {
	Authors    []AuthorRecord `json:"authors"`
	Total      int            `json:"total"`
	Query      string         `json:"query"`
	Pagination Pagination     `json:"pagination"`
}

// SuggestionType tells which catalog a suggestion came from
type SuggestionType string

const (
	SuggestionBook   SuggestionType = "book"
	SuggestionAuthor SuggestionType = "author"
)

// HighlightOpen and HighlightClose wrap every matched fragment of a suggestion.
const (
	HighlightOpen  = "<strong>"
	HighlightClose = "</strong>"
)

// Suggestion - autocomplete entry
type Suggestion struct {
	Type      SuggestionType `json:"type"`
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Highlight string         `json:"highlight"`
}

// SuggestionsResponse - GET /search/suggestions
type SuggestionsResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}
