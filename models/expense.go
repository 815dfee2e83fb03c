package models

import "time"

// Expense categories form a closed set; anything unrecognized is "Other".
const (
	CategoryMarketing  = "Marketing"
	CategoryTech       = "Tech"
	CategoryHR         = "HR"
	CategoryOperations = "Operations"
	CategoryOther      = "Other"
)

var ValidCategories = []string{
	CategoryMarketing,
	CategoryTech,
	CategoryHR,
	CategoryOperations,
	CategoryOther,
}

type Expense struct {
	ID        string    `json:"_id" bson:"_id,omitempty"`
	ProjectID string    `json:"projectId" bson:"projectId"`
	Title     string    `json:"title" bson:"title"`
	Amount    float64   `json:"amount" bson:"amount"`
	Category  string    `json:"category" bson:"category"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// IsValidCategory reports whether label is one of the fixed categories.
func IsValidCategory(label string) bool {
	for _, c := range ValidCategories {
		if c == label {
			return true
		}
	}
	return false
}
