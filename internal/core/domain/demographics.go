package domain

import "strings"

// Age range labels used by the preference table.
const (
	AgeRange18to24 = "18-24"
	AgeRange25to34 = "25-34"
	AgeRange35to44 = "35-44"
	AgeRange45to54 = "45-54"
	AgeRange55to64 = "55-64"
	AgeRange65Plus = "65+"
)

// Gender codes used by the preference table.
const (
	GenderMale   = "M"
	GenderFemale = "F"
)

// AgeRangeForAge buckets an age into a preference table label.
// Ages under 18 fall back to the youngest bucket.
func AgeRangeForAge(age int) string {
	switch {
	case age <= 24:
		return AgeRange18to24
	case age <= 34:
		return AgeRange25to34
	case age <= 44:
		return AgeRange35to44
	case age <= 54:
		return AgeRange45to54
	case age <= 64:
		return AgeRange55to64
	default:
		return AgeRange65Plus
	}
}

// NormalizeGender maps free-form input to a gender code,
// defaulting to GenderMale on anything unrecognized.
func NormalizeGender(g string) string {
	switch strings.ToUpper(strings.TrimSpace(g)) {
	case GenderMale:
		return GenderMale
	case GenderFemale:
		return GenderFemale
	default:
		return GenderMale
	}
}
