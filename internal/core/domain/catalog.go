package domain

import "errors"

// ErrNoData marks an unreadable or missing catalog source.
var ErrNoData = errors.New("no catalog data")

// A Catalog is the read-only product and preference set for one
// engine session. It is built once and never mutated afterwards.
type Catalog struct {
	products    []Product
	preferences []Preference
	categories  []string
	productIdx  map[string]int
}

// NewCatalog builds a catalog snapshot from loaded records.
//
// Product order is preserved. When two records share an ID the
// first one wins and the later ones are dropped; the number of
// dropped duplicates is returned for diagnostics.
func NewCatalog(ps []Product, prefs []Preference) (Catalog, int) {
	c := Catalog{productIdx: make(map[string]int, len(ps))}

	var duplicates int
	seenCategory := make(map[string]struct{})
	for _, p := range ps {
		if _, ok := c.productIdx[p.ID]; ok {
			duplicates++
			continue
		}
		c.productIdx[p.ID] = len(c.products)
		c.products = append(c.products, p)

		if _, ok := seenCategory[p.Category]; !ok {
			seenCategory[p.Category] = struct{}{}
			c.categories = append(c.categories, p.Category)
		}
	}

	c.preferences = append(c.preferences, prefs...)
	return c, duplicates
}

// Products returns the products in load order.
func (c Catalog) Products() []Product {
	return c.products
}

func (c Catalog) Preferences() []Preference {
	return c.preferences
}

// Categories returns the distinct categories in first-seen order.
func (c Catalog) Categories() []string {
	return c.categories
}

func (c Catalog) Len() int {
	return len(c.products)
}

func (c Catalog) ProductByID(id string) (Product, bool) {
	i, ok := c.productIdx[id]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}
