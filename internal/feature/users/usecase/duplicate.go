package usecase

import (
	"strings"

	"admin_backend/internal/feature/users/domain/entity"
)

// ConflictReason says which uniqueness key of a user is already taken.
type ConflictReason int

const (
	ConflictNone ConflictReason = iota
	ConflictEmail
	ConflictPhone
	ConflictBoth
)

// Message returns the client-facing text for r.
func (r ConflictReason) Message() string {
	switch r {
	case ConflictEmail:
		return "Email already exists"
	case ConflictPhone:
		return "Phone already exists"
	case ConflictBoth:
		return "Email and phone already exist"
	default:
		return ""
	}
}

// FindUserConflict scans existing for a user sharing candidate's email or phone.
// The user whose ID equals excludeID is skipped so an update never conflicts
// with itself; pass 0 when creating. Email and phone may match on different rows,
// which is still reported as ConflictBoth.
func FindUserConflict(candidate entity.User, existing []entity.User, excludeID uint) ConflictReason {
	email := normalizeEmail(candidate.Email)
	phone := normalizePhone(candidate.Phone)

	var emailTaken, phoneTaken bool
	for _, u := range existing {
		if excludeID != 0 && u.ID == excludeID {
			continue
		}
		if email != "" && normalizeEmail(u.Email) == email {
			emailTaken = true
		}
		if phone != "" && normalizePhone(u.Phone) == phone {
			phoneTaken = true
		}
		if emailTaken && phoneTaken {
			break
		}
	}

	switch {
	case emailTaken && phoneTaken:
		return ConflictBoth
	case emailTaken:
		return ConflictEmail
	case phoneTaken:
		return ConflictPhone
	default:
		return ConflictNone
	}
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
