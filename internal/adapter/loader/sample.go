package loader

import "github.com/niksmo/recommender/internal/core/domain"

// Sample returns the built-in demo catalog. The app falls back
// to it when the configured source is missing and the fallback
// switch is on.
func Sample() domain.Catalog {
	products := []domain.Product{
		{
			ID: "P001", Name: "iPhone 15 Pro", Category: "Electronics",
			Price: 999.00, Rating: 4.8,
			Tags: []string{"smartphone", "apple"},
		},
		{
			ID: "P002", Name: "Galaxy S24", Category: "Electronics",
			Price: 899.00, Rating: 4.7,
			Tags: []string{"smartphone", "android"},
		},
		{
			ID: "P003", Name: "AirPods Pro", Category: "Electronics",
			Price: 249.00, Rating: 4.6,
			Tags: []string{"audio", "apple"},
		},
		{
			ID: "P004", Name: "Running Shoes", Category: "Clothing",
			Price: 120.00, Rating: 4.5,
			Tags: []string{"shoes", "sports"},
		},
		{
			ID: "P005", Name: "Denim Jacket", Category: "Clothing",
			Price: 79.90, Rating: 4.2,
			Tags: []string{"jacket", "casual"},
		},
		{
			ID: "P006", Name: "Espresso Maker", Category: "Home",
			Price: 189.50, Rating: 4.4,
			Tags: []string{"kitchen", "coffee"},
		},
		{
			ID: "P007", Name: "Yoga Mat", Category: "Sports",
			Price: 35.00, Rating: 4.3,
			Tags: []string{"fitness", "sports"},
		},
		{
			ID: "P008", Name: "Leather Wallet", Category: "Accessories",
			Price: 49.00, Rating: 4.1,
			Tags: []string{"leather", "gift"},
		},
	}

	prefs := []domain.Preference{
		{AgeRange: domain.AgeRange18to24, Gender: "M", Category: "Electronics", Weight: 1.2},
		{AgeRange: domain.AgeRange18to24, Gender: "F", Category: "Clothing", Weight: 1.1},
		{AgeRange: domain.AgeRange25to34, Gender: "M", Category: "Electronics", Weight: 1.0},
		{AgeRange: domain.AgeRange25to34, Gender: "F", Category: "Accessories", Weight: 0.9},
		{AgeRange: domain.AgeRange35to44, Gender: "M", Category: "Sports", Weight: 0.8},
		{AgeRange: domain.AgeRange35to44, Gender: "F", Category: "Home", Weight: 1.0},
		{AgeRange: domain.AgeRange45to54, Gender: "M", Category: "Home", Weight: 0.7},
		{AgeRange: domain.AgeRange65Plus, Gender: "F", Category: "Home", Weight: 0.9},
	}

	catalog, _ := domain.NewCatalog(products, prefs)
	return catalog
}
