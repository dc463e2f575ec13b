package service

import (
	"sort"

	"github.com/niksmo/recommender/internal/core/domain"
)

type scoredProduct struct {
	product domain.Product
	score   float64
}

// rankTop orders scored products by descending score and keeps
// the first n. The sort is stable, so score ties keep catalog
// order and identical input always yields identical output.
// n <= 0 yields an empty result, n beyond the set yields all.
func rankTop(scored []scoredProduct, n int) []domain.Product {
	if n <= 0 || len(scored) == 0 {
		return nil
	}

	ranked := make([]scoredProduct, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if n > len(ranked) {
		n = len(ranked)
	}

	top := make([]domain.Product, n)
	for i, sp := range ranked[:n] {
		top[i] = sp.product
	}
	return top
}

// rankByRating is the rating-only ranking used for category,
// keyword and price-filtered listings.
func rankByRating(ps []domain.Product, n int) []domain.Product {
	scored := make([]scoredProduct, len(ps))
	for i, p := range ps {
		scored[i] = scoredProduct{product: p, score: p.Rating}
	}
	return rankTop(scored, n)
}
