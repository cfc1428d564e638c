package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookstore-search/internal/domains/search/model"
)

func TestFilterBooks(t *testing.T) {
	tests := []struct {
		name    string
		query   model.SearchQuery
		wantIDs []int64
	}{
		{"no criteria keeps all", model.SearchQuery{}, []int64{1, 2, 3, 4}},
		{"text matches title author or description", model.SearchQuery{Text: "king"}, []int64{2, 3, 4}},
		{"text is case insensitive", model.SearchQuery{Text: "HARRY"}, []int64{1}},
		{"category substring", model.SearchQuery{Category: "fiction"}, []int64{3, 4}},
		{"text and category", model.SearchQuery{Text: "king", Category: "horror"}, []int64{2, 4}},
		{"price min excludes missing price", model.SearchQuery{PriceMin: dec("10")}, []int64{1, 2}},
		{"price min is inclusive", model.SearchQuery{PriceMin: dec("15.5")}, []int64{1, 2}},
		{"price max excludes missing price", model.SearchQuery{PriceMax: dec("16")}, []int64{2, 4}},
		{"price range", model.SearchQuery{PriceMin: dec("9"), PriceMax: dec("15.5")}, []int64{2, 4}},
		{"rating min excludes missing rating", model.SearchQuery{RatingMin: dec("4.5")}, []int64{1, 3}},
		{"nothing matches", model.SearchQuery{Text: "cookbook"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBooks(testBooks(), tt.query)
			assert.Equal(t, tt.wantIDs, bookIDs(got))
		})
	}
}

func TestFilterBooks_PriceBoundExcludesBookWithoutPrice(t *testing.T) {
	books := []model.BookRecord{
		{ID: 1, Title: "Free Sample"},
		{ID: 2, Title: "Priced", Price: dec("0")},
	}

	got := FilterBooks(books, model.SearchQuery{PriceMin: dec("0")})

	assert.Equal(t, []int64{2}, bookIDs(got))
}

func TestFilterBooks_Idempotent(t *testing.T) {
	queries := []model.SearchQuery{
		{Text: "king"},
		{Category: "horror", PriceMax: dec("20")},
		{RatingMin: dec("4")},
	}

	for _, q := range queries {
		once := FilterBooks(testBooks(), q)
		twice := FilterBooks(once, q)
		assert.Equal(t, once, twice)
	}
}

func TestFilterBooks_DoesNotMutateInput(t *testing.T) {
	books := testBooks()
	before := testBooks()

	_ = FilterBooks(books, model.SearchQuery{Text: "king", PriceMin: dec("10")})

	assert.Equal(t, before, books)
}

func TestFilterAuthors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantIDs []int64
	}{
		{"empty text keeps all", "", []int64{1, 2, 3}},
		{"name or bio", "king", []int64{1, 2}},
		{"case insensitive name", "POE", []int64{2}},
		{"no match", "tolkien", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAuthors(testAuthors(), model.SearchQuery{Text: tt.text})
			assert.Equal(t, tt.wantIDs, authorIDs(got))
		})
	}
}
