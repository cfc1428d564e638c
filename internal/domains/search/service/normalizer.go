package service

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"bookstore-search/internal/domains/search/model"
)

// NormalizeQuery turns raw request parameters into a SearchQuery.
//
// Rules:
// - page = max(1, int(page)), default 1
// - limit = min(policy.Max, max(1, int(limit))), default policy.Default
// - price_min, price_max, rating_min stay nil unless given as numbers
// - unknown sort values fall back to relevance
//
// A present but non-numeric page or limit reads as its leading integer (0 when none).
func NormalizeQuery(params url.Values, policy model.LimitPolicy) model.SearchQuery {
	page := 1
	if params.Has("page") {
		page = leadingInt(params.Get("page"))
	}

	limit := policy.Default
	if params.Has("limit") {
		limit = leadingInt(params.Get("limit"))
	}

	return model.SearchQuery{
		Text:      params.Get("q"),
		Category:  params.Get("category"),
		PriceMin:  optionalDecimal(params, "price_min"),
		PriceMax:  optionalDecimal(params, "price_max"),
		RatingMin: optionalDecimal(params, "rating_min"),
		Sort:      model.ParseSort(params.Get("sort")),
		Page:      max(1, page),
		Limit:     min(policy.Max, max(1, limit)),
	}
}

func optionalDecimal(params url.Values, key string) *decimal.Decimal {
	raw := strings.TrimSpace(params.Get(key))
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		log.Debug().Str("param", key).Str("value", raw).Msg("ignoring non-numeric filter")
		return nil
	}
	return &d
}

// leadingInt parses the optional sign and digits at the start of raw.
func leadingInt(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			if s[0] == '-' {
				return math.MinInt32
			}
			return math.MaxInt32
		}
		return 0
	}
	return n
}
