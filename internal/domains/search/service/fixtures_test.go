package service

import (
	"context"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"bookstore-search/internal/domains/search/model"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testBooks() []model.BookRecord {
	return []model.BookRecord{
		{ID: 1, Title: "Harry Potter", Author: "J.K. Rowling", Description: "Wizard school", Category: "Fantasy", Price: dec("20"), Rating: dec("4.8")},
		{ID: 2, Title: "The Shining", Author: "Stephen King", Category: "Horror", Price: dec("15.5"), Rating: dec("4.2")},
		{ID: 3, Title: "Dune", Author: "Frank Herbert", Description: "Spice and king-making", Category: "Science Fiction", Rating: dec("4.5")},
		{ID: 4, Title: "It", Author: "Stephen King", Category: "Horror Fiction", Price: dec("9")},
	}
}

func testAuthors() []model.AuthorRecord {
	return []model.AuthorRecord{
		{ID: 1, Name: "Stephen King", Bio: "American author of horror"},
		{ID: 2, Name: "Edgar Allan Poe", Bio: "Poet and king of the macabre"},
		{ID: 3, Name: "Agatha Christie"},
	}
}

func bookIDs(books []model.BookRecord) []int64 {
	ids := make([]int64, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}

func authorIDs(authors []model.AuthorRecord) []int64 {
	ids := make([]int64, len(authors))
	for i, a := range authors {
		ids[i] = a.ID
	}
	return ids
}

// fakeBooks is an in-memory BookCatalog counting its calls
type fakeBooks struct {
	books []model.BookRecord
	err   error
	block bool
	calls atomic.Int32
}

func (f *fakeBooks) FetchAll(ctx context.Context) ([]model.BookRecord, error) {
	f.calls.Add(1)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.books, nil
}

func (f *fakeBooks) FetchOne(_ context.Context, id int64) (*model.BookRecord, error) {
	f.calls.Add(1)
	for _, b := range f.books {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, model.ErrNotFound
}

// fakeAuthors is an in-memory AuthorCatalog counting its calls
type fakeAuthors struct {
	authors []model.AuthorRecord
	err     error
	calls   atomic.Int32
}

func (f *fakeAuthors) FetchAll(_ context.Context) ([]model.AuthorRecord, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return f.authors, nil
}
