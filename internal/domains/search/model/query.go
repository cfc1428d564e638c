package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Sort selects the ordering strategy of a result list
type Sort string

const (
	SortTitleAsc   Sort = "title_asc"
	SortTitleDesc  Sort = "title_desc"
	SortPriceAsc   Sort = "price_asc"
	SortPriceDesc  Sort = "price_desc"
	SortRatingDesc Sort = "rating_desc"
	SortRelevance  Sort = "relevance"
)

// ParseSort maps a raw sort parameter to a Sort. Unknown or empty values mean relevance.
func ParseSort(raw string) Sort {
	switch s := Sort(raw); s {
	case SortTitleAsc, SortTitleDesc, SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return s
	default:
		return SortRelevance
	}
}

// LimitPolicy bounds the page size of one endpoint family
type LimitPolicy struct {
	Default int
	Max     int
}

var (
	// SearchLimits applies to the combined, book and author searches.
	SearchLimits = LimitPolicy{Default: 10, Max: 50}
	// SuggestionLimits applies to autocomplete.
	SuggestionLimits = LimitPolicy{Default: 5, Max: 10}
)

// SearchQuery is the normalized form of the request parameters.
// It is built once per request and never changed afterwards.
type SearchQuery struct {
	Text      string
	Category  string
	PriceMin  *decimal.Decimal
	PriceMax  *decimal.Decimal
	RatingMin *decimal.Decimal
	Sort      Sort
	Page      int
	Limit     int
}

// Offset of the first item of the requested page
func (q SearchQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Filters echoes the applied filters back to the client
func (q SearchQuery) Filters() Filters {
	return Filters{
		Category:  q.Category,
		PriceMin:  q.PriceMin,
		PriceMax:  q.PriceMax,
		RatingMin: q.RatingMin,
		Sort:      q.Sort,
	}
}

// ValidateCombined checks the rules of the combined and the book search:
// a text or a category is required.
func (q SearchQuery) ValidateCombined() error {
	err := validation.Validate(q.Text,
		validation.When(q.Category == "",
			validation.Required.Error("Query or category parameter is required"),
		),
	)
	if err != nil {
		return NewValidationError("q", err.Error())
	}
	return nil
}

// ValidateAuthors checks the rules of the author search: the text is required.
func (q SearchQuery) ValidateAuthors() error {
	err := validation.Validate(q.Text,
		validation.Required.Error("Query parameter is required"),
	)
	if err != nil {
		return NewValidationError("q", err.Error())
	}
	return nil
}
