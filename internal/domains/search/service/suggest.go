package service

import (
	"bookstore-search/internal/domains/search/model"
)

// MinSuggestionLength is the shortest text (in bytes) that produces suggestions.
const MinSuggestionLength = 2

// BuildSuggestions scans books then authors in catalog order and emits one entry per record
// whose title or name contains text. The combined list is cut to the first limit entries.
func BuildSuggestions(books []model.BookRecord, authors []model.AuthorRecord, text string, limit int) []model.Suggestion {
	suggestions := make([]model.Suggestion, 0, limit)
	if len(text) < MinSuggestionLength || limit < 1 {
		return suggestions
	}

	for _, book := range books {
		if containsFold(book.Title, text) {
			suggestions = append(suggestions, newSuggestion(model.SuggestionBook, book.ID, book.Title, text))
		}
	}
	for _, author := range authors {
		if containsFold(author.Name, text) {
			suggestions = append(suggestions, newSuggestion(model.SuggestionAuthor, author.ID, author.Name, text))
		}
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

func newSuggestion(typ model.SuggestionType, id int64, title, text string) model.Suggestion {
	return model.Suggestion{
		Type:      typ,
		ID:        id,
		Title:     title,
		Highlight: highlightFold(title, text, model.HighlightOpen, model.HighlightClose),
	}
}
