package service

import (
	"github.com/niksmo/recommender/internal/core/domain"
	"github.com/niksmo/recommender/internal/core/port"
)

var _ port.DemographicRecommender = (*Service)(nil)
var _ port.CategoryRecommender = (*Service)(nil)
var _ port.KeywordRecommender = (*Service)(nil)
var _ port.ProductSuggester = (*Service)(nil)
var _ port.ProductLister = (*Service)(nil)

// DefaultMaxSuggestions bounds the combined suggestion list of
// SearchWithSuggestions.
const DefaultMaxSuggestions = 10

// Service composes matching, scoring and ranking over one
// catalog snapshot. The catalog is read-only, so Service is
// safe to call from concurrent requests.
type Service struct {
	catalog        port.CatalogProvider
	maxSuggestions int
}

func New(catalog port.CatalogProvider, maxSuggestions int) Service {
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	return Service{catalog, maxSuggestions}
}

// RecommendByDemographics scores every product with its
// preference weight and returns the top count.
func (s Service) RecommendByDemographics(
	ageRange, gender string, count int,
) []domain.Product {
	prefs := s.catalog.Preferences()

	var scored []scoredProduct
	for _, p := range s.catalog.Products() {
		w := lookupWeight(prefs, ageRange, gender, p.Category)
		scored = append(scored, scoredProduct{p, demographicScore(p, w)})
	}
	return rankTop(scored, count)
}

// Categories enumerates the catalog's distinct categories in
// first-seen order.
func (s Service) Categories() []string {
	return s.catalog.Categories()
}

// RecommendByCategory returns the category's products ranked by
// rating, plus demographic-scored products outside the category.
// The two lists are disjoint by construction.
func (s Service) RecommendByCategory(
	category, ageRange, gender string, categoryCount, extraCount int,
) (inCategory, extra []domain.Product) {
	prefs := s.catalog.Preferences()

	var matched []domain.Product
	var scored []scoredProduct
	for _, p := range s.catalog.Products() {
		if productInCategory(p, category) {
			matched = append(matched, p)
			continue
		}
		w := lookupWeight(prefs, ageRange, gender, p.Category)
		scored = append(scored, scoredProduct{p, demographicScore(p, w)})
	}

	return rankByRating(matched, categoryCount), rankTop(scored, extraCount)
}

// RecommendByKeyword returns keyword matches ranked by rating,
// plus a demographic recommendation over the whole catalog. An
// empty matched list is a valid no-results outcome; extra is
// still computed.
func (s Service) RecommendByKeyword(
	keyword, ageRange, gender string, keywordCount, extraCount int,
) (matched, extra []domain.Product) {
	// An empty keyword is a query error and matches nothing.
	var found []domain.Product
	if keyword != "" {
		for _, p := range s.catalog.Products() {
			if productMatchesKeyword(p, keyword) {
				found = append(found, p)
			}
		}
	}

	matched = rankByRating(found, keywordCount)
	extra = s.RecommendByDemographics(ageRange, gender, extraCount)
	return matched, extra
}

// SuggestSimilar ranks the catalog by similarity to the given
// product, excluding the product itself. An unknown ID yields an
// empty set.
func (s Service) SuggestSimilar(productID string, max int) []domain.Product {
	target, ok := s.catalog.ProductByID(productID)
	if !ok {
		return nil
	}
	return rankTop(s.similarTo(target), max)
}

// SearchWithSuggestions computes the keyword matches for query,
// then augments them with each match's similarity set. A product
// ID enters the suggestion list at most once, and never when it
// is already an exact match.
func (s Service) SearchWithSuggestions(
	query string,
) (matches, suggestions []domain.Product) {
	if query == "" {
		return nil, nil
	}

	seen := make(map[string]struct{})
	for _, p := range s.catalog.Products() {
		if productMatchesKeyword(p, query) {
			matches = append(matches, p)
			seen[p.ID] = struct{}{}
		}
	}

	for _, m := range matches {
		if len(suggestions) == s.maxSuggestions {
			break
		}
		for _, p := range rankTop(s.similarTo(m), s.maxSuggestions) {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			suggestions = append(suggestions, p)
			if len(suggestions) == s.maxSuggestions {
				break
			}
		}
	}
	return matches, suggestions
}

// TopRated returns the whole catalog's top count by rating.
func (s Service) TopRated(count int) []domain.Product {
	return rankByRating(s.catalog.Products(), count)
}

// FilterByPrice returns products inside the inclusive price
// range, ranked by rating. minPrice above maxPrice is an empty
// result, not an error.
func (s Service) FilterByPrice(minPrice, maxPrice float64) []domain.Product {
	if minPrice > maxPrice {
		return nil
	}

	var found []domain.Product
	for _, p := range s.catalog.Products() {
		if productInPriceRange(p, minPrice, maxPrice) {
			found = append(found, p)
		}
	}
	return rankByRating(found, len(found))
}

func (s Service) similarTo(target domain.Product) []scoredProduct {
	var scored []scoredProduct
	for _, p := range s.catalog.Products() {
		if p.ID == target.ID {
			continue
		}
		scored = append(scored, scoredProduct{p, similarityScore(target, p)})
	}
	return scored
}
