package service

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"bookstore-search/internal/domains/search/model"
)

// LoadPopularSearches reads the popular searches table from a YAML file:
//
//	popular_searches:
//	  - query: Harry Potter
//	    count: 1250
//
// An empty path returns the built-in table. Rows are ranked by count, highest first.
func LoadPopularSearches(path string) ([]model.PopularSearch, error) {
	if path == "" {
		return model.DefaultPopularSearches(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read popular searches: %w", err)
	}

	var file struct {
		PopularSearches []model.PopularSearch `yaml:"popular_searches"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse popular searches: %w", err)
	}

	for i, row := range file.PopularSearches {
		if row.Query == "" {
			return nil, fmt.Errorf("popular searches row %d: query is required", i+1)
		}
	}

	table := slices.Clone(file.PopularSearches)
	slices.SortStableFunc(table, func(a, b model.PopularSearch) int {
		return b.Count - a.Count
	})
	return table, nil
}
