package model

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Prices and ratings go back to clients as JSON numbers, the way the catalogs send them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Record is the capability shared by every catalog entity the engines work on.
// Sort and filter code only talk to records through it.
type Record interface {
	// DisplayName is the title of a book or the name of an author.
	DisplayName() string
	// PriceValue reports the price and whether the record carries one.
	PriceValue() (decimal.Decimal, bool)
	// RatingValue reports the rating and whether the record carries one.
	RatingValue() (decimal.Decimal, bool)
}

// ============ ENTITIES ============

// BookRecord - book as returned by the books catalog
type BookRecord struct {
	ID          int64            `json:"id"`
	Title       string           `json:"title"`
	Author      string           `json:"author,omitempty"`
	Description string           `json:"description,omitempty"`
	Category    string           `json:"category,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Rating      *decimal.Decimal `json:"rating,omitempty"`
}

func (b BookRecord) DisplayName() string { return b.Title }

func (b BookRecord) PriceValue() (decimal.Decimal, bool) {
	if b.Price == nil {
		return decimal.Zero, false
	}
	return *b.Price, true
}

func (b BookRecord) RatingValue() (decimal.Decimal, bool) {
	if b.Rating == nil {
		return decimal.Zero, false
	}
	return *b.Rating, true
}

// AuthorRecord - author as returned by the authors catalog
type AuthorRecord struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio,omitempty"`
}

func (a AuthorRecord) DisplayName() string { return a.Name }

// Authors carry neither price nor rating.
func (a AuthorRecord) PriceValue() (decimal.Decimal, bool)  { return decimal.Zero, false }
func (a AuthorRecord) RatingValue() (decimal.Decimal, bool) { return decimal.Zero, false }
