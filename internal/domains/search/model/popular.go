package model

// PopularSearch - one row of the popular searches table
type PopularSearch struct {
	Query string `json:"query" yaml:"query"`
	Count int    `json:"count" yaml:"count"`
}

// PopularSearchesResponse - GET /search/popular
type PopularSearchesResponse struct {
	PopularSearches []PopularSearch `json:"popular_searches"`
}

// DefaultPopularSearches is the built-in table, ranked by count.
func DefaultPopularSearches() []PopularSearch {
	return []PopularSearch{
		{Query: "Harry Potter", Count: 1250},
		{Query: "Stephen King", Count: 980},
		{Query: "Science Fiction", Count: 756},
		{Query: "Mystery", Count: 645},
		{Query: "Romance", Count: 532},
		{Query: "Fantasy", Count: 489},
		{Query: "History", Count: 421},
		{Query: "Biography", Count: 387},
		{Query: "Programming", Count: 298},
		{Query: "Psychology", Count: 234},
	}
}
