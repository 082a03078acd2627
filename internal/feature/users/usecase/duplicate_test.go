package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"admin_backend/internal/feature/users/domain/entity"
)

func TestFindUserConflict(t *testing.T) {
	t.Parallel()

	existing := []entity.User{
		{ID: 1, Email: "alice@test.com", Phone: "0561234567"},
		{ID: 2, Email: "bob@test.com", Phone: "0599999999"},
	}

	tests := []struct {
		name      string
		candidate entity.User
		excludeID uint
		want      ConflictReason
	}{
		{
			name:      "no conflict",
			candidate: entity.User{Email: "carol@test.com", Phone: "0560000000"},
			want:      ConflictNone,
		},
		{
			name:      "email matches case-insensitively",
			candidate: entity.User{Email: "ALICE@Test.com", Phone: "0560000000"},
			want:      ConflictEmail,
		},
		{
			name:      "phone matches after digit normalization",
			candidate: entity.User{Email: "carol@test.com", Phone: "059-999-9999"},
			want:      ConflictPhone,
		},
		{
			name:      "both on the same row",
			candidate: entity.User{Email: "alice@test.com", Phone: "0561234567"},
			want:      ConflictBoth,
		},
		{
			name:      "both on different rows",
			candidate: entity.User{Email: "alice@test.com", Phone: "0599999999"},
			want:      ConflictBoth,
		},
		{
			name:      "excluded row does not conflict with itself",
			candidate: entity.User{Email: "alice@test.com", Phone: "0561234567"},
			excludeID: 1,
			want:      ConflictNone,
		},
		{
			name:      "exclusion only skips that row",
			candidate: entity.User{Email: "alice@test.com", Phone: "0599999999"},
			excludeID: 1,
			want:      ConflictPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FindUserConflict(tt.candidate, existing, tt.excludeID))
		})
	}
}

func TestFindUserConflict_EmptyStore(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ConflictNone, FindUserConflict(entity.User{Email: "a@b.co", Phone: "1"}, nil, 0))
}

func TestConflictReason_Message(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Email already exists", ConflictEmail.Message())
	assert.Equal(t, "Phone already exists", ConflictPhone.Message())
	assert.Equal(t, "Email and phone already exist", ConflictBoth.Message())
	assert.Equal(t, "", ConflictNone.Message())
}
