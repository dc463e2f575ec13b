package httphandler

import "github.com/niksmo/recommender/internal/core/domain"

type (
	Product struct {
		ID       string   `json:"id"`
		Name     string   `json:"name"`
		Category string   `json:"category"`
		Price    float64  `json:"price"`
		Rating   float64  `json:"rating"`
		Tags     []string `json:"tags"`
	}

	RecommendationsResponse struct {
		Products []Product `json:"products"`
	}

	CategoryRecommendationsResponse struct {
		Category string    `json:"category"`
		Products []Product `json:"products"`
		Extra    []Product `json:"extra"`
	}

	CategoriesResponse struct {
		Categories []string `json:"categories"`
	}

	SearchResponse struct {
		Keyword  string    `json:"keyword"`
		Products []Product `json:"products"`
		Extra    []Product `json:"extra"`
	}

	SuggestionsResponse struct {
		Query       string    `json:"query"`
		Matches     []Product `json:"matches"`
		Suggestions []Product `json:"suggestions"`
	}
)

func toProducts(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		tags := p.Tags
		if tags == nil {
			tags = []string{}
		}
		out[i] = Product{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Rating:   p.Rating,
			Tags:     tags,
		}
	}
	return out
}
