package service

import (
	"bookstore-search/internal/domains/search/model"
)

// AssembleCombined shapes the combined response. The shared pagination block
// is computed from the larger of the two totals.
func AssembleCombined(books model.PageResult[model.BookRecord], authors model.PageResult[model.AuthorRecord], q model.SearchQuery) *model.CombinedSearchResponse {
	return &model.CombinedSearchResponse{
		Books:        books.Items,
		Authors:      authors.Items,
		TotalBooks:   books.Total,
		TotalAuthors: authors.Total,
		Query:        q.Text,
		Filters:      q.Filters(),
		Pagination: model.Pagination{
			Page:       q.Page,
			Limit:      q.Limit,
			TotalPages: TotalPages(max(books.Total, authors.Total), q.Limit),
		},
	}
}

func AssembleBooks(books model.PageResult[model.BookRecord], q model.SearchQuery) *model.BookSearchResponse {
	return &model.BookSearchResponse{
		Books:      books.Items,
		Total:      books.Total,
		Query:      q.Text,
		Filters:    q.Filters(),
		Pagination: books.Pagination,
	}
}

func AssembleAuthors(authors model.PageResult[model.AuthorRecord], q model.SearchQuery) *model.AuthorSearchResponse {
	return &model.AuthorSearchResponse{
		Authors:    authors.Items,
		Total:      authors.Total,
		Query:      q.Text,
		Pagination: authors.Pagination,
	}
}
