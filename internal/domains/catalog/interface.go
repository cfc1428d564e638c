package catalog

import (
	"context"

	"bookstore-search/internal/domains/search/model"
)

// =====================================================
// CATALOG INTERFACES
// =====================================================

// BookCatalog is the upstream books service
type BookCatalog interface {
	// FetchAll returns every book in catalog order.
	// Errors wrap model.ErrUpstreamUnavailable.
	FetchAll(ctx context.Context) ([]model.BookRecord, error)

	// FetchOne returns a single book.
	// Errors: model.ErrNotFound, model.ErrUpstreamUnavailable
	FetchOne(ctx context.Context, id int64) (*model.BookRecord, error)
}

// AuthorCatalog is the upstream authors service
type AuthorCatalog interface {
	// FetchAll returns every author in catalog order.
	// Errors wrap model.ErrUpstreamUnavailable.
	FetchAll(ctx context.Context) ([]model.AuthorRecord, error)
}
