package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"bookstore-search/internal/domains/search/model"
)

// SortRecords returns a new slice ordered by q.Sort. The input is not modified.
//
// All strategies are stable: records with equal keys keep their relative order.
//
//	title_asc / title_desc  case-insensitive display name
//	price_asc               missing price sorts as +infinity
//	price_desc              missing price sorts as 0
//	rating_desc             missing rating sorts as 0
//	relevance               first match position of q.Text in the display name,
//	                        no match after every match, empty text keeps input order
func SortRecords[T model.Record](records []T, q model.SearchQuery) []T {
	sorted := slices.Clone(records)
	if len(sorted) < 2 {
		return sorted
	}

	switch q.Sort {
	case model.SortTitleAsc:
		slices.SortStableFunc(sorted, func(a, b T) int {
			return compareTitles(a, b)
		})
	case model.SortTitleDesc:
		slices.SortStableFunc(sorted, func(a, b T) int {
			return compareTitles(b, a)
		})
	case model.SortPriceAsc:
		slices.SortStableFunc(sorted, func(a, b T) int {
			pa, okA := a.PriceValue()
			pb, okB := b.PriceValue()
			return compareMissingLast(pa, okA, pb, okB)
		})
	case model.SortPriceDesc:
		slices.SortStableFunc(sorted, func(a, b T) int {
			return valueOrZero(b.PriceValue()).Cmp(valueOrZero(a.PriceValue()))
		})
	case model.SortRatingDesc:
		slices.SortStableFunc(sorted, func(a, b T) int {
			return valueOrZero(b.RatingValue()).Cmp(valueOrZero(a.RatingValue()))
		})
	default:
		if q.Text == "" {
			return sorted
		}
		slices.SortStableFunc(sorted, func(a, b T) int {
			return comparePositions(
				positionFold(a.DisplayName(), q.Text),
				positionFold(b.DisplayName(), q.Text),
			)
		})
	}

	return sorted
}

func compareTitles(a, b model.Record) int {
	return strings.Compare(strings.ToLower(a.DisplayName()), strings.ToLower(b.DisplayName()))
}

func compareMissingLast(a decimal.Decimal, okA bool, b decimal.Decimal, okB bool) int {
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	default:
		return a.Cmp(b)
	}
}

func valueOrZero(d decimal.Decimal, ok bool) decimal.Decimal {
	if !ok {
		return decimal.Zero
	}
	return d
}

// comparePositions orders match offsets ascending, -1 (no match) last.
func comparePositions(a, b int) int {
	switch {
	case a < 0 && b < 0:
		return 0
	case a < 0:
		return 1
	case b < 0:
		return -1
	default:
		return cmp.Compare(a, b)
	}
}
