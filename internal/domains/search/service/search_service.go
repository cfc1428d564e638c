package service

import (
	"context"
	"slices"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"bookstore-search/internal/domains/catalog"
	"bookstore-search/internal/domains/search/model"
)

// SearchService - Implements ServiceInterface
type SearchService struct {
	books   catalog.BookCatalog
	authors catalog.AuthorCatalog
	popular []model.PopularSearch
}

// NewService - Constructor with DI. popular is copied and never changed afterwards.
func NewService(books catalog.BookCatalog, authors catalog.AuthorCatalog, popular []model.PopularSearch) ServiceInterface {
	return &SearchService{
		books:   books,
		authors: authors,
		popular: slices.Clone(popular),
	}
}

func (s *SearchService) Search(ctx context.Context, q model.SearchQuery) (*model.CombinedSearchResponse, error) {
	if err := q.ValidateCombined(); err != nil {
		return nil, err
	}

	books, authors, err := s.fetchBoth(ctx)
	if err != nil {
		return nil, err
	}

	bookPage := PageOf(SortRecords(FilterBooks(books, q), q), q)
	authorPage := PageOf(SortRecords(FilterAuthors(authors, q), q), q)

	log.Debug().
		Str("query", q.Text).
		Int("total_books", bookPage.Total).
		Int("total_authors", authorPage.Total).
		Msg("combined search")

	return AssembleCombined(bookPage, authorPage, q), nil
}

func (s *SearchService) SearchBooks(ctx context.Context, q model.SearchQuery) (*model.BookSearchResponse, error) {
	books, err := s.books.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	return AssembleBooks(PageOf(SortRecords(FilterBooks(books, q), q), q), q), nil
}

func (s *SearchService) SearchAuthors(ctx context.Context, q model.SearchQuery) (*model.AuthorSearchResponse, error) {
	if err := q.ValidateAuthors(); err != nil {
		return nil, err
	}

	authors, err := s.authors.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	return AssembleAuthors(PageOf(SortRecords(FilterAuthors(authors, q), q), q), q), nil
}

func (s *SearchService) Suggest(ctx context.Context, text string, limit int) ([]model.Suggestion, error) {
	if len(text) < MinSuggestionLength {
		return []model.Suggestion{}, nil
	}

	books, authors, err := s.fetchBoth(ctx)
	if err != nil {
		return nil, err
	}

	return BuildSuggestions(books, authors, text, limit), nil
}

func (s *SearchService) Popular() []model.PopularSearch {
	return slices.Clone(s.popular)
}

// fetchBoth loads both catalogs concurrently. The first failure cancels the other fetch
// and fails the whole call.
func (s *SearchService) fetchBoth(ctx context.Context) ([]model.BookRecord, []model.AuthorRecord, error) {
	var (
		books   []model.BookRecord
		authors []model.AuthorRecord
	)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		books, err = s.books.FetchAll(gctx)
		return err
	})
	group.Go(func() error {
		var err error
		authors, err = s.authors.FetchAll(gctx)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}
	return books, authors, nil
}
