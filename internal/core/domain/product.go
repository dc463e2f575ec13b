package domain

type Product struct {
	ID       string
	Name     string
	Category string
	Price    float64
	Rating   float64
	Tags     []string
}

// Preference is a weight rule keyed by the demographic triple.
// Gender and Category compare case-insensitively at lookup,
// AgeRange compares exactly.
type Preference struct {
	AgeRange string
	Gender   string
	Category string
	Weight   float64
}
