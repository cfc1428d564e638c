package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-search/internal/domains/search/model"
)

func TestPaginate_WindowSize(t *testing.T) {
	for total := 0; total <= 25; total++ {
		items := make([]int, total)
		for i := range items {
			items[i] = i
		}

		for limit := 1; limit <= 7; limit++ {
			for page := 1; page <= 6; page++ {
				got := Paginate(items, page, limit)

				want := max(0, min(limit, total-(page-1)*limit))
				require.Len(t, got, want, "total=%d page=%d limit=%d", total, page, limit)
				for i, v := range got {
					assert.Equal(t, (page-1)*limit+i, v)
				}
			}
		}
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	got := Paginate([]string{"a", "b"}, 5, 10)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestPaginate_ReturnsCopy(t *testing.T) {
	items := []string{"a", "b", "c"}

	got := Paginate(items, 1, 2)
	got[0] = "changed"

	assert.Equal(t, "a", items[0])
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 1},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{101, 50, 3},
		{7, 1, 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestPageOf(t *testing.T) {
	books := titled("a", "b", "c", "d", "e")
	q := model.SearchQuery{Page: 2, Limit: 2}

	page := PageOf(books, q)

	assert.Equal(t, []string{"c", "d"}, titles(page.Items))
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, model.Pagination{Page: 2, Limit: 2, TotalPages: 3}, page.Pagination)
}
