package models

import "time"

// Care categories a resource may belong to.
const (
	CategoryChildCare    = "childcare"
	CategorySeniorCare   = "seniorcare"
	CategoryHousekeeping = "housekeeping"
	CategoryTutoring     = "tutoring"
)

// KnownCategories lists every accepted resource category.
var KnownCategories = []string{
	CategoryChildCare,
	CategorySeniorCare,
	CategoryHousekeeping,
	CategoryTutoring,
}

// Resource is a bookable care offering owned by exactly one provider.
type Resource struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"providerId" json:"providerId"`
	Name        string    `bson:"name" json:"name"`
	Category    string    `bson:"category" json:"category"`
	Description string    `bson:"description" json:"description,omitempty"`
	HourlyRate  float64   `bson:"hourlyRate" json:"hourlyRate"`
	City        string    `bson:"city" json:"city,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsKnownCategory reports whether c is an accepted resource category.
func IsKnownCategory(c string) bool {
	for _, k := range KnownCategories {
		if k == c {
			return true
		}
	}
	return false
}
