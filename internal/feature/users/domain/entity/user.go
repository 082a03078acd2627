// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registrant managed from the admin screens.
type User struct {
	// ID is generated by the store and never changes after creation.
	ID uint

	Name string

	// Email is unique across all users (compared case-insensitively).
	Email string

	// Phone is a digit string, unique across all users.
	Phone string

	Category string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserInput is a raw submission from a form or API client.
// Every field is kept as the client sent it so that validation can
// reject padded values instead of silently trimming them.
type UserInput struct {
	Name     string
	Email    string
	Phone    string
	Category string
}

// Values returns the input as a field → value map for rule evaluation.
func (in UserInput) Values() map[string]string {
	return map[string]string{
		"name":     in.Name,
		"email":    in.Email,
		"phone":    in.Phone,
		"category": in.Category,
	}
}

// UserFilter narrows a listing. Zero values mean "no constraint".
type UserFilter struct {
	// Name matches as a case-insensitive substring.
	Name string
	// Category matches case-insensitively.
	Category string
	Page     int
	Size     int
}
