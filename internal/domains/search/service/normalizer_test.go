package service

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-search/internal/domains/search/model"
)

func TestNormalizeQuery_Defaults(t *testing.T) {
	q := NormalizeQuery(url.Values{}, model.SearchLimits)

	assert.Equal(t, "", q.Text)
	assert.Equal(t, "", q.Category)
	assert.Nil(t, q.PriceMin)
	assert.Nil(t, q.PriceMax)
	assert.Nil(t, q.RatingMin)
	assert.Equal(t, model.SortRelevance, q.Sort)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}

func TestNormalizeQuery_PageAndLimit(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		policy    model.LimitPolicy
		wantPage  int
		wantLimit int
	}{
		{"explicit values", "page=3&limit=7", model.SearchLimits, 3, 7},
		{"page zero", "page=0", model.SearchLimits, 1, 10},
		{"negative page", "page=-4", model.SearchLimits, 1, 10},
		{"non numeric page", "page=abc", model.SearchLimits, 1, 10},
		{"limit above max", "limit=100", model.SearchLimits, 1, 50},
		{"limit zero", "limit=0", model.SearchLimits, 1, 1},
		{"non numeric limit", "limit=abc", model.SearchLimits, 1, 1},
		{"empty limit", "limit=", model.SearchLimits, 1, 1},
		{"leading digits", "limit=12abc&page=2x", model.SearchLimits, 2, 12},
		{"huge page", "page=99999999999999999999", model.SearchLimits, 2147483647, 10},
		{"suggestion default", "", model.SuggestionLimits, 1, 5},
		{"suggestion max", "limit=20", model.SuggestionLimits, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)

			q := NormalizeQuery(params, tt.policy)
			assert.Equal(t, tt.wantPage, q.Page)
			assert.Equal(t, tt.wantLimit, q.Limit)
		})
	}
}

func TestNormalizeQuery_Filters(t *testing.T) {
	params, err := url.ParseQuery("q=king&category=Horror&price_min=10.5&price_max=abc&rating_min=&sort=price_desc")
	require.NoError(t, err)

	q := NormalizeQuery(params, model.SearchLimits)

	assert.Equal(t, "king", q.Text)
	assert.Equal(t, "Horror", q.Category)
	require.NotNil(t, q.PriceMin)
	assert.Equal(t, "10.5", q.PriceMin.String())
	assert.Nil(t, q.PriceMax, "non numeric bound is absent")
	assert.Nil(t, q.RatingMin, "empty bound is absent")
	assert.Equal(t, model.SortPriceDesc, q.Sort)
}

func TestNormalizeQuery_UnknownSort(t *testing.T) {
	q := NormalizeQuery(url.Values{"sort": {"popularity"}}, model.SearchLimits)
	assert.Equal(t, model.SortRelevance, q.Sort)
}

func TestLeadingInt(t *testing.T) {
	tests := map[string]int{
		"42":  42,
		"  7": 7,
		"+3":  3,
		"-2":  -2,
		"5.9": 5,
		"x5":  0,
		"":    0,
		"-":   0,
	}

	for raw, want := range tests {
		assert.Equal(t, want, leadingInt(raw), "leadingInt(%q)", raw)
	}
	assert.Equal(t, -2147483648, leadingInt("-9999999999999999999999"))
}
