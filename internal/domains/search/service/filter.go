package service

import (
	"bookstore-search/internal/domains/search/model"
)

// FilterBooks keeps the books matching every criterion of q, in input order.
// A criterion that is absent does not constrain.
func FilterBooks(books []model.BookRecord, q model.SearchQuery) []model.BookRecord {
	result := make([]model.BookRecord, 0, len(books))
	for _, book := range books {
		if matchBook(book, q) {
			result = append(result, book)
		}
	}
	return result
}

// FilterAuthors keeps the authors whose name or bio contains the text. Empty text keeps all.
func FilterAuthors(authors []model.AuthorRecord, q model.SearchQuery) []model.AuthorRecord {
	result := make([]model.AuthorRecord, 0, len(authors))
	for _, author := range authors {
		if matchAuthor(author, q) {
			result = append(result, author)
		}
	}
	return result
}

func matchBook(book model.BookRecord, q model.SearchQuery) bool {
	if q.Text != "" &&
		!containsFold(book.Title, q.Text) &&
		!containsFold(book.Author, q.Text) &&
		!containsFold(book.Description, q.Text) {
		return false
	}

	if q.Category != "" && !containsFold(book.Category, q.Category) {
		return false
	}

	// Bounds exclude books without a price or rating.
	price, hasPrice := book.PriceValue()
	if q.PriceMin != nil && (!hasPrice || price.LessThan(*q.PriceMin)) {
		return false
	}
	if q.PriceMax != nil && (!hasPrice || price.GreaterThan(*q.PriceMax)) {
		return false
	}

	rating, hasRating := book.RatingValue()
	if q.RatingMin != nil && (!hasRating || rating.LessThan(*q.RatingMin)) {
		return false
	}

	return true
}

func matchAuthor(author model.AuthorRecord, q model.SearchQuery) bool {
	if q.Text == "" {
		return true
	}
	return containsFold(author.Name, q.Text) || containsFold(author.Bio, q.Text)
}
