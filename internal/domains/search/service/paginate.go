package service

import (
	"bookstore-search/internal/domains/search/model"
)

// Paginate returns items[(page-1)*limit : (page-1)*limit+limit], clipped to the slice.
// A page past the end yields an empty, non-nil slice.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 || limit < 1 {
		return []T{}
	}
	offset := (page - 1) * limit
	if offset >= len(items) {
		return []T{}
	}
	end := min(offset+limit, len(items))

	window := make([]T, end-offset)
	copy(window, items[offset:end])
	return window
}

// TotalPages = max(1, ceil(total / limit))
func TotalPages(total, limit int) int {
	if limit < 1 {
		return 1
	}
	return max(1, (total+limit-1)/limit)
}

// PageOf slices an ordered list and records its pre-slice total.
func PageOf[T any](items []T, q model.SearchQuery) model.PageResult[T] {
	return model.PageResult[T]{
		Items: Paginate(items, q.Page, q.Limit),
		Total: len(items),
		Pagination: model.Pagination{
			Page:       q.Page,
			Limit:      q.Limit,
			TotalPages: TotalPages(len(items), q.Limit),
		},
	}
}
