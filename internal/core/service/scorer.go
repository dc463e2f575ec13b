package service

import (
	"strings"

	"github.com/niksmo/recommender/internal/core/domain"
)

// Scoring constants. Category equality dominates the similarity
// signal, shared tags add per-match relevance, rating gives a
// small lift toward better-reviewed items.
const (
	defaultWeight     = 0.1
	sameCategoryBonus = 0.5
	tagOverlapWeight  = 0.1
	ratingLiftWeight  = 0.1
)

// lookupWeight scans the preference rules for an exact triple
// match. Gender and category compare case-insensitively, the age
// range exactly. No match is a normal outcome and resolves to
// defaultWeight.
func lookupWeight(
	prefs []domain.Preference, ageRange, gender, category string,
) float64 {
	for _, pref := range prefs {
		if pref.AgeRange == ageRange &&
			strings.EqualFold(pref.Gender, gender) &&
			strings.EqualFold(pref.Category, category) {
			return pref.Weight
		}
	}
	return defaultWeight
}

func demographicScore(p domain.Product, weight float64) float64 {
	return p.Rating * weight
}

// similarityScore rates how related candidate is to target.
// Callers exclude the target itself from its own candidate set.
func similarityScore(target, candidate domain.Product) float64 {
	var score float64
	if candidate.Category == target.Category {
		score += sameCategoryBonus
	}
	score += tagOverlapWeight * float64(tagOverlapCount(target, candidate))
	score += ratingLiftWeight * candidate.Rating
	return score
}
