package service

import (
	"testing"

	"github.com/niksmo/recommender/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTextMatches(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		assert.True(t, textMatches("iPhone 15 Pro", "IPHONE"))
		assert.True(t, textMatches("IPHONE 15 PRO", "iphone"))
	})

	t.Run("Substring", func(t *testing.T) {
		assert.True(t, textMatches("Running Shoes", "shoe"))
		assert.False(t, textMatches("Running Shoes", "boots"))
	})

	t.Run("EmptyNeedleMatches", func(t *testing.T) {
		assert.True(t, textMatches("anything", ""))
		assert.True(t, textMatches("", ""))
	})
}

func TestProductMatchesKeyword(t *testing.T) {
	p := domain.Product{
		Name:     "Galaxy S24",
		Category: "Electronics",
		Tags:     []string{"smartphone", "android"},
	}

	t.Run("ByName", func(t *testing.T) {
		assert.True(t, productMatchesKeyword(p, "galaxy"))
	})

	t.Run("ByCategory", func(t *testing.T) {
		assert.True(t, productMatchesKeyword(p, "electro"))
	})

	t.Run("ByTag", func(t *testing.T) {
		assert.True(t, productMatchesKeyword(p, "ANDROID"))
	})

	t.Run("NoMatch", func(t *testing.T) {
		assert.False(t, productMatchesKeyword(p, "apple"))
	})
}

func TestProductInCategory(t *testing.T) {
	p := domain.Product{Category: "Electronics"}

	assert.True(t, productInCategory(p, "Electronics"))

	// Category browsing selects from the enumerated list,
	// so the comparison stays case-sensitive.
	assert.False(t, productInCategory(p, "electronics"))
}

func TestProductInPriceRange(t *testing.T) {
	p := domain.Product{Price: 100}

	t.Run("InclusiveBounds", func(t *testing.T) {
		assert.True(t, productInPriceRange(p, 100, 200))
		assert.True(t, productInPriceRange(p, 50, 100))
		assert.True(t, productInPriceRange(p, 100, 100))
	})

	t.Run("Outside", func(t *testing.T) {
		assert.False(t, productInPriceRange(p, 100.01, 200))
		assert.False(t, productInPriceRange(p, 0, 99.99))
	})
}

func TestTagOverlapCount(t *testing.T) {
	t.Run("CountsSharedTags", func(t *testing.T) {
		a := domain.Product{Tags: []string{"smartphone", "apple"}}
		b := domain.Product{Tags: []string{"smartphone", "android"}}
		assert.Equal(t, 1, tagOverlapCount(a, b))
	})

	t.Run("AllShared", func(t *testing.T) {
		a := domain.Product{Tags: []string{"shoes", "sports"}}
		b := domain.Product{Tags: []string{"sports", "shoes"}}
		assert.Equal(t, 2, tagOverlapCount(a, b))
	})

	t.Run("CaseSensitive", func(t *testing.T) {
		a := domain.Product{Tags: []string{"Apple"}}
		b := domain.Product{Tags: []string{"apple"}}
		assert.Equal(t, 0, tagOverlapCount(a, b))
	})

	t.Run("NoTags", func(t *testing.T) {
		a := domain.Product{Tags: []string{"apple"}}
		assert.Equal(t, 0, tagOverlapCount(a, domain.Product{}))
		assert.Equal(t, 0, tagOverlapCount(domain.Product{}, a))
	})
}
