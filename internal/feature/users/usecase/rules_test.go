package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"admin_backend/internal/feature/users/domain/entity"
	"admin_backend/internal/shared/validation"
)

func validInput() entity.UserInput {
	return entity.UserInput{Name: "Alice", Email: "alice@test.com", Phone: "0561234567", Category: "student"}
}

func TestParseProfile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ProfileLoose, ParseProfile("loose"))
	assert.Equal(t, ProfileRegister, ParseProfile(" REGISTER "))
	assert.Equal(t, ProfileStandard, ParseProfile("standard"))
	assert.Equal(t, ProfileStandard, ParseProfile(""))
	assert.Equal(t, ProfileStandard, ParseProfile("strict"))
}

func TestRules_ValidInputPassesEveryProfile(t *testing.T) {
	t.Parallel()

	for _, p := range []Profile{ProfileLoose, ProfileStandard, ProfileRegister} {
		assert.Empty(t, Rules(p).Validate(validInput().Values()), "profile %s", p)
	}
}

func TestRules_SurroundingSpaceRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field   string
		mutate  func(in *entity.UserInput)
		message string
	}{
		{"name", func(in *entity.UserInput) { in.Name = " Alice" }, "Name must not start or end with spaces"},
		{"email", func(in *entity.UserInput) { in.Email = "alice@test.com " }, "Email must not start or end with spaces"},
		{"phone", func(in *entity.UserInput) { in.Phone = " 0561234567" }, "Phone must not start or end with spaces"},
		{"category", func(in *entity.UserInput) { in.Category = "student\t" }, "Category must not start or end with spaces"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			t.Parallel()

			in := validInput()
			tt.mutate(&in)
			errs := Rules(ProfileStandard).Validate(in.Values())

			assert.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs.Message(tt.field))
			assert.Equal(t, validation.CodeWhitespace, errs[0].Code)
		})
	}
}

func TestRules_CollectsEveryField(t *testing.T) {
	t.Parallel()

	errs := Rules(ProfileStandard).Validate(entity.UserInput{}.Values())

	assert.Equal(t, []string{"name", "email", "phone", "category"}, errs.Fields())
	assert.Equal(t, []string{
		"Name is required",
		"Email is required",
		"Phone is required",
		"Category is required",
	}, errs.Messages())
}

func TestRules_ProfileDifferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		profile Profile
		mutate  func(in *entity.UserInput)
		field   string
		message string
	}{
		{
			name:    "loose accepts free-text category",
			profile: ProfileLoose,
			mutate:  func(in *entity.UserInput) { in.Category = "manager" },
		},
		{
			name:    "standard rejects unknown category",
			profile: ProfileStandard,
			mutate:  func(in *entity.UserInput) { in.Category = "manager" },
			field:   "category",
			message: "Category must be selected",
		},
		{
			name:    "standard accepts any digit phone",
			profile: ProfileStandard,
			mutate:  func(in *entity.UserInput) { in.Phone = "0123" },
		},
		{
			name:    "register rejects wrong prefix",
			profile: ProfileRegister,
			mutate:  func(in *entity.UserInput) { in.Phone = "0511234567" },
			field:   "phone",
			message: "Phone must start with 056 or 059 and have 10 digits",
		},
		{
			name:    "register rejects short phone",
			profile: ProfileRegister,
			mutate:  func(in *entity.UserInput) { in.Phone = "059123" },
			field:   "phone",
			message: "Phone must start with 056 or 059 and have 10 digits",
		},
		{
			name:    "non-digit phone in any profile",
			profile: ProfileLoose,
			mutate:  func(in *entity.UserInput) { in.Phone = "056-123-4567" },
			field:   "phone",
			message: "Phone must contain only numbers",
		},
		{
			name:    "bad email",
			profile: ProfileStandard,
			mutate:  func(in *entity.UserInput) { in.Email = "alice.test.com" },
			field:   "email",
			message: "Invalid email format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := validInput()
			tt.mutate(&in)
			errs := Rules(tt.profile).Validate(in.Values())

			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Equal(t, tt.message, errs.Message(tt.field))
		})
	}
}

func TestRules_ValidateField(t *testing.T) {
	t.Parallel()

	s := Rules(ProfileRegister)

	assert.Equal(t, "", s.ValidateField("phone", "0591234567"))
	assert.Equal(t, "Phone is required", s.ValidateField("phone", ""))
	assert.Equal(t, "Invalid email format", s.ValidateField("email", "nope"))
	assert.Equal(t, validation.UnknownFieldMessage, s.ValidateField("age", "3"))
}
