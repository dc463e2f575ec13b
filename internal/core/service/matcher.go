package service

import (
	"strings"

	"github.com/niksmo/recommender/internal/core/domain"
)

// textMatches reports whether needle is a substring of haystack
// under lowercase normalization. An empty needle always matches.
func textMatches(haystack, needle string) bool {
	return strings.Contains(
		strings.ToLower(haystack), strings.ToLower(needle),
	)
}

func productMatchesKeyword(p domain.Product, keyword string) bool {
	if textMatches(p.Name, keyword) || textMatches(p.Category, keyword) {
		return true
	}
	for _, tag := range p.Tags {
		if textMatches(tag, keyword) {
			return true
		}
	}
	return false
}

// productInCategory compares exactly: callers select the category
// from the catalog's own enumerated list.
func productInCategory(p domain.Product, category string) bool {
	return p.Category == category
}

func productInPriceRange(p domain.Product, minPrice, maxPrice float64) bool {
	return p.Price >= minPrice && p.Price <= maxPrice
}

// tagOverlapCount counts tags present in both products' tag sets.
// Tags compare by exact equality, case included, unlike keyword
// matching which folds case.
func tagOverlapCount(a, b domain.Product) int {
	if len(a.Tags) == 0 || len(b.Tags) == 0 {
		return 0
	}

	set := make(map[string]struct{}, len(a.Tags))
	for _, t := range a.Tags {
		set[t] = struct{}{}
	}

	var n int
	for _, t := range b.Tags {
		if _, ok := set[t]; ok {
			n++
		}
	}
	return n
}
