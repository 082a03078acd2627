package usecase

import (
	"strings"

	"admin_backend/internal/shared/validation"
)

// Profile selects how strict the product rules are.
type Profile string

const (
	// ProfileStandard allows an empty stock (count >= 0).
	ProfileStandard Profile = "standard"
	// ProfileRegister requires at least one item (count >= 1).
	ProfileRegister Profile = "register"
)

// Categories is the closed set of product categories.
var Categories = []string{"clothes", "food", "health"}

// ParseProfile maps a config/request value to a Profile. Unknown values fall back to ProfileStandard.
func ParseProfile(s string) Profile {
	if Profile(strings.ToLower(strings.TrimSpace(s))) == ProfileRegister {
		return ProfileRegister
	}
	return ProfileStandard
}

// Rules returns the product rule table for p.
func Rules(p Profile) validation.Schema {
	minCount := validation.AtLeast(0, "Count must be 0 or greater")
	if p == ProfileRegister {
		minCount = validation.AtLeast(1, "Count must be at least 1")
	}

	return validation.NewSchema(
		validation.Field("name",
			validation.Required("Product name is required"),
			validation.NoSurroundingSpace("Product name must not start or end with spaces"),
		),
		validation.Field("owner",
			validation.Required("Owner is required"),
			validation.NoSurroundingSpace("Owner name must not start or end with spaces"),
		),
		validation.Field("category",
			validation.Required("Category is required"),
			validation.NoSurroundingSpace("Category must not start or end with spaces"),
			validation.OneOf(Categories, "Category must be selected"),
		),
		validation.Field("count",
			validation.Required("Count is required"),
			validation.NoSurroundingSpace("Count must not start or end with spaces"),
			validation.Integer("Count must be a number"),
			minCount,
		),
	)
}
