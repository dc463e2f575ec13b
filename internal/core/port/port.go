package port

import "github.com/niksmo/recommender/internal/core/domain"

// CatalogProvider is the read side of a loaded catalog snapshot.
type CatalogProvider interface {
	Products() []domain.Product
	Preferences() []domain.Preference
	Categories() []string
	ProductByID(id string) (domain.Product, bool)
}

type DemographicRecommender interface {
	RecommendByDemographics(
		ageRange, gender string, count int,
	) []domain.Product
}

type CategoryRecommender interface {
	Categories() []string
	RecommendByCategory(
		category, ageRange, gender string, categoryCount, extraCount int,
	) (inCategory, extra []domain.Product)
}

type KeywordRecommender interface {
	RecommendByKeyword(
		keyword, ageRange, gender string, keywordCount, extraCount int,
	) (matched, extra []domain.Product)
}

type ProductSuggester interface {
	SearchWithSuggestions(query string) (matches, suggestions []domain.Product)
	SuggestSimilar(productID string, max int) []domain.Product
}

type ProductLister interface {
	TopRated(count int) []domain.Product
	FilterByPrice(minPrice, maxPrice float64) []domain.Product
}
