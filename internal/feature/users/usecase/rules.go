package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"admin_backend/internal/shared/validation"
)

// Profile selects how strict the user rules are.
type Profile string

const (
	// ProfileLoose accepts any non-empty category and any digit-only phone.
	ProfileLoose Profile = "loose"
	// ProfileStandard restricts category to Categories.
	ProfileStandard Profile = "standard"
	// ProfileRegister additionally requires a 10-digit phone with an allowed prefix.
	ProfileRegister Profile = "register"
)

// Categories is the closed set of user categories.
var Categories = []string{"student", "teacher", "developer"}

// PhonePrefixes are the allowed 3-digit prefixes under ProfileRegister.
var PhonePrefixes = []string{"056", "059"}

var registerPhone = regexp.MustCompile(`^(` + strings.Join(PhonePrefixes, "|") + `)\d{7}$`)

// ParseProfile maps a config/request value to a Profile. Unknown values fall back to ProfileStandard.
func ParseProfile(s string) Profile {
	switch Profile(strings.ToLower(strings.TrimSpace(s))) {
	case ProfileLoose:
		return ProfileLoose
	case ProfileRegister:
		return ProfileRegister
	default:
		return ProfileStandard
	}
}

// Rules returns the user rule table for p.
func Rules(p Profile) validation.Schema {
	name := validation.Field("name",
		validation.Required("Name is required"),
		validation.NoSurroundingSpace("Name must not start or end with spaces"),
	)
	email := validation.Field("email",
		validation.Required("Email is required"),
		validation.NoSurroundingSpace("Email must not start or end with spaces"),
		validation.Email("Invalid email format"),
	)

	phoneChecks := []validation.Check{
		validation.Required("Phone is required"),
		validation.NoSurroundingSpace("Phone must not start or end with spaces"),
		validation.Digits("Phone must contain only numbers"),
	}
	if p == ProfileRegister {
		phoneChecks = append(phoneChecks, validation.Pattern(registerPhone,
			fmt.Sprintf("Phone must start with %s and have 10 digits", strings.Join(PhonePrefixes, " or "))))
	}
	phone := validation.Field("phone", phoneChecks...)

	categoryChecks := []validation.Check{
		validation.Required("Category is required"),
		validation.NoSurroundingSpace("Category must not start or end with spaces"),
	}
	if p != ProfileLoose {
		categoryChecks = append(categoryChecks, validation.OneOf(Categories, "Category must be selected"))
	}
	category := validation.Field("category", categoryChecks...)

	return validation.NewSchema(name, email, phone, category)
}
